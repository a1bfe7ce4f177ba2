package relay

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arielf-camacho/pue/cmd/cli"
	"github.com/arielf-camacho/pue/flows"
	"github.com/arielf-camacho/pue/helpers"
	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
	"github.com/arielf-camacho/pue/puers"
	"github.com/arielf-camacho/pue/sinks"
	"github.com/arielf-camacho/pue/sources"
)

// Options are the settings of one relay run.
type Options struct {
	Subscribers int
	Distinct    bool
	Take        int64
}

func NewRelayCommand(env *cli.Env) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Fans the lines of stdin out to several subscribers",
		Long: `Reads lines from stdin and pushes each of them through a relay to every
subscriber. Each subscriber prints the line prefixed with its index. For
instance:

  printf 'a\na\nb\n' | pue relay --subscribers 2 --distinct
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(env, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&opts.Subscribers, "subscribers", 2, "how many subscribers to attach")
	cmd.Flags().BoolVar(&opts.Distinct, "distinct", false, "drop lines repeating the previous one")
	cmd.Flags().Int64Var(&opts.Take, "take", 0, "deliver only the first lines (0 means all)")

	return cmd
}

// Run pushes every line of in through a relay and returns once in is
// exhausted.
func Run(env *cli.Env, opts Options, in io.Reader, out io.Writer) error {
	if opts.Subscribers < 1 {
		return errors.New("at least one subscriber is required")
	}

	log := env.Logger.WithComponent("relay")

	relay := puers.NewRelay[string](opts.Subscribers)
	var lines primitives.Pusher[string, primitives.Command] = relay
	if opts.Distinct {
		lines = flows.Changes(lines)
	}
	if opts.Take > 0 {
		lines = flows.LATake(lines, opts.Take)
	}

	for i := range opts.Subscribers {
		prefix := fmt.Sprintf("[%d] ", i)
		writer := sinks.Writer[string](out).Separator("\n").Build()
		lines.Call(operators.AMap[*string, primitives.Unit, string](writer, operators.Func(func(s string) *string {
			line := prefix + s
			return &line
		})))
	}

	scanner := bufio.NewScanner(in)
	input := sources.Func(func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	})

	pushed := 0
	for line := range helpers.All(input) {
		relay.Push(line)
		pushed++
	}

	log.Debug().Int("lines", pushed).Int("subscribers", relay.Len()).Msg("relay drained")
	return scanner.Err()
}
