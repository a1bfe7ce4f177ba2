package root

import (
	"github.com/spf13/cobra"

	"github.com/arielf-camacho/pue/cmd/abc16"
	"github.com/arielf-camacho/pue/cmd/cli"
	"github.com/arielf-camacho/pue/cmd/relay"
	"github.com/arielf-camacho/pue/cmd/timer"
)

func NewRootCmd() *cobra.Command {
	env := &cli.Env{}

	rootCmd := &cobra.Command{
		Use:   "pue",
		Short: "pue plays with push/pull pipelines",
		Long: `pue drives small push/pull pipelines from the command line: timers on
real schedulers, fan-out relays and the abc16 codec.

Settings come from an optional YAML file, an optional .env file and PUE_*
environment variables, for instance PUE_LOG_LEVEL=debug.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.Load(cmd)
		},
	}
	env.AddFlags(rootCmd)

	// add sub-commands
	rootCmd.AddCommand(timer.NewTimerCommand(env))
	rootCmd.AddCommand(relay.NewRelayCommand(env))
	rootCmd.AddCommand(abc16.NewAbc16Command(env))

	return rootCmd
}
