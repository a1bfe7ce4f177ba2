// Package cli holds what the pue subcommands share: configuration, logging
// and the scheduler factory.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arielf-camacho/pue/config"
	"github.com/arielf-camacho/pue/logger"
	"github.com/arielf-camacho/pue/primitives"
	"github.com/arielf-camacho/pue/schedulers"
)

// Env is filled by the root command before any subcommand runs.
type Env struct {
	ConfigFile string
	EnvFile    string

	Config *config.Config
	Logger *logger.Logger
}

// AddFlags registers the persistent flags of the root command.
func (e *Env) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&e.ConfigFile, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&e.EnvFile, "env-file", "", "path to a .env file")
}

// Load reads the configuration and builds the logger. The logger writes to
// the error stream of cmd.
func (e *Env) Load(cmd *cobra.Command) error {
	var opts []config.LoaderOption
	if e.ConfigFile != "" {
		opts = append(opts, config.WithConfigFile(e.ConfigFile))
	}
	if e.EnvFile != "" {
		opts = append(opts, config.WithEnvFile(e.EnvFile))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}

	e.Config = cfg
	e.Logger = logger.NewWriter(cfg.Log, cmd.ErrOrStderr(), "pue")
	return nil
}

// Scheduler is a scheduler plus the function releasing it.
type Scheduler struct {
	primitives.Scheduler
	Close func()
}

// NewScheduler builds the scheduler selected by kind, shifted by the
// configured offset. Actions that panic are logged. The immediate scheduler
// cannot be shifted: it only runs actions without delay.
func (e *Env) NewScheduler(ctx context.Context, kind string) (*Scheduler, error) {
	log := e.Logger.WithComponent("scheduler")

	var s Scheduler
	switch kind {
	case config.SchedulerLoop:
		loop := schedulers.Loop().Context(ctx).Logger(log).Build()
		s = Scheduler{Scheduler: loop, Close: loop.Close}
	case config.SchedulerExecutor:
		s = Scheduler{Scheduler: schedulers.Executor().Logger(log).Build(), Close: func() {}}
	case config.SchedulerImmediate:
		s = Scheduler{Scheduler: schedulers.Immediate().Build(), Close: func() {}}
	default:
		return nil, fmt.Errorf("unknown scheduler kind %q", kind)
	}

	if offset := e.Config.Scheduler.OffsetMs; offset > 0 {
		if kind == config.SchedulerImmediate {
			return nil, fmt.Errorf("the immediate scheduler does not support an offset (got: %dms)", offset)
		}
		s.Scheduler = schedulers.Future(s.Scheduler).Offset(offset).Build()
	}

	log.Debug().Str("kind", kind).Int64("offset_ms", e.Config.Scheduler.OffsetMs).Msg("scheduler ready")
	return &s, nil
}
