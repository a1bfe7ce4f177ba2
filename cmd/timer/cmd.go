package timer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/arielf-camacho/pue/cmd/cli"
	"github.com/arielf-camacho/pue/config"
	"github.com/arielf-camacho/pue/flows"
	"github.com/arielf-camacho/pue/logger"
	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
	"github.com/arielf-camacho/pue/puers"
	"github.com/arielf-camacho/pue/sinks"
	"github.com/arielf-camacho/pue/sources"
)

// Options are the settings of one timer run.
type Options struct {
	Kind      string
	Intervals []int64
	Limit     int64
	Repeat    bool
}

func NewTimerCommand(env *cli.Env) *cobra.Command {
	var flags Options

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Prints a counter once per interval",
		Long: `Runs a timer on the configured scheduler and prints its counter, one value
per line. The timer stops when the intervals run out, after --limit values or
on interrupt. For instance:

  pue timer --intervals 500,250 --repeat --limit 6
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := Options{
				Kind:      env.Config.Scheduler.Kind,
				Intervals: env.Config.Timer.IntervalsMs,
				Limit:     env.Config.Timer.Limit,
				Repeat:    flags.Repeat,
			}
			if cmd.Flags().Changed("scheduler") {
				opts.Kind = flags.Kind
			}
			if cmd.Flags().Changed("intervals") {
				opts.Intervals = flags.Intervals
			}
			if cmd.Flags().Changed("limit") {
				opts.Limit = flags.Limit
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return Run(ctx, env, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&flags.Kind, "scheduler", "", "scheduler kind: loop, executor or immediate")
	cmd.Flags().Int64SliceVar(&flags.Intervals, "intervals", nil, "intervals between values, in ms")
	cmd.Flags().Int64Var(&flags.Limit, "limit", 0, "stop after this many values (0 means no limit)")
	cmd.Flags().BoolVar(&flags.Repeat, "repeat", false, "cycle through the intervals forever")

	return cmd
}

// Run prints the timer values to out until the stream ends or ctx is done.
func Run(ctx context.Context, env *cli.Env, opts Options, out io.Writer) error {
	if len(opts.Intervals) == 0 {
		return errors.New("at least one interval is required")
	}
	if opts.Limit < 0 {
		return fmt.Errorf("limit must not be negative (got: %d)", opts.Limit)
	}
	if opts.Kind == config.SchedulerImmediate && lo.SomeBy(opts.Intervals, func(i int64) bool { return i > 0 }) {
		return errors.New("the immediate scheduler only supports intervals <= 0")
	}

	scheduler, err := env.NewScheduler(ctx, opts.Kind)
	if err != nil {
		return err
	}
	defer scheduler.Close()

	log := env.Logger.WithComponent("timer")

	var ticks primitives.Pusher[*int64, primitives.Command] = puers.NewTimer(scheduler, intervals(opts))
	if opts.Limit > 0 {
		ticks = flows.LANTake(ticks, opts.Limit)
	}
	ticks = flows.LANPeek(ticks, operators.Consume(func(v int64) {
		log.Debug().Int64(logger.FieldValue, v).Msg("tick")
	}))
	lines := flows.LANMap(ticks, operators.Func(func(v int64) string {
		return strconv.FormatInt(v, 10)
	}))

	done := make(chan struct{})
	writer := sinks.Writer[string](out).Separator("\n").ErrorHandler(func(err error) {
		log.Error().Err(err).Msg("write failed")
	}).Build()

	// The end of the stream cancels the timer, which otherwise keeps ticking
	// into a closed take.
	var controller primitives.Pushee[primitives.Command]
	controller = lines.Call(primitives.PusheeFunc[*string](func(s *string) {
		writer.Call(s)
		if s == nil {
			controller.Call(primitives.Cancel)
			close(done)
		}
	}))

	scheduler.Schedule(0, func() { controller.Call(primitives.Start) })

	select {
	case <-done:
		log.Debug().Msg("timer finished")
	case <-ctx.Done():
		log.Info().Msg("timer interrupted")
	}
	return nil
}

func intervals(opts Options) primitives.Pullee[*int64] {
	if !opts.Repeat {
		return sources.Slice(opts.Intervals)
	}

	i := 0
	return sources.Func(func() (int64, bool) {
		v := opts.Intervals[i%len(opts.Intervals)]
		i++
		return v, true
	})
}
