package abc16

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/spf13/cobra"

	"github.com/arielf-camacho/pue/cmd/cli"
	"github.com/arielf-camacho/pue/encodings"
	"github.com/arielf-camacho/pue/events"
	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
)

type codecFlags struct {
	uppercase   bool
	obfuscation int
}

func NewAbc16Command(env *cli.Env) *cobra.Command {
	var flags codecFlags

	cmd := &cobra.Command{
		Use:   "abc16",
		Short: "Encodes and decodes text with the abc16 codec",
		Long: `abc16 writes every byte of a text as two letters from a..p, which makes any
text safe for file names, URLs and shells. Texts are taken from the arguments
or, without arguments, from the lines of stdin.`,
	}

	cmd.PersistentFlags().BoolVar(&flags.uppercase, "uppercase", false, "use the A..P alphabet")
	cmd.PersistentFlags().IntVar(&flags.obfuscation, "obfuscation", 0, "obfuscate bytes with this pepper")

	codec := func(cmd *cobra.Command) *encodings.Abc16Encoder {
		b := encodings.Abc16().Uppercase(env.Config.Abc16.Uppercase)
		if cmd.Flags().Changed("uppercase") {
			b.Uppercase(flags.uppercase)
		}
		if cmd.Flags().Changed("obfuscation") {
			b.Obfuscation(flags.obfuscation)
		} else if pepper := env.Config.Abc16.Obfuscation; pepper != nil {
			b.Obfuscation(*pepper)
		}
		return b.Build()
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "encode [text...]",
		Short: "Encodes texts",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, stop := texts(cmd, args)
			defer stop()
			return Run(encodings.Encoder[string, string](codec(cmd)), in, cmd.OutOrStdout(), env)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "decode [text...]",
		Short: "Decodes texts",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, stop := texts(cmd, args)
			defer stop()
			return Run(encodings.Decoder[string, string](codec(cmd)), in, cmd.OutOrStdout(), env)
		},
	})

	return cmd
}

// Run writes the result of f for every text, one per line. It stops at the
// first failure.
func Run(
	f primitives.Puee[string, *events.Event[string]],
	texts events.EPullee[string],
	out io.Writer,
	env *cli.Env,
) error {
	log := env.Logger.WithComponent("abc16")
	results := operators.VMap(texts, events.Bind(f))

	line := 1
	for e := primitives.Pull(results); e != nil; e = primitives.Pull(results) {
		switch e.Kind {
		case events.KindItem:
			if _, err := fmt.Fprintln(out, e.Item); err != nil {
				return err
			}
		case events.KindWarning:
			log.Warn().Err(e.Err).Int("line", line).Msg("skipped")
		default:
			return fmt.Errorf("text %d: %w", line, e.Err)
		}
		line++
	}
	return nil
}

// texts returns the arguments, or the lines of stdin when there are none,
// plus the function releasing them.
func texts(cmd *cobra.Command, args []string) (events.EPullee[string], func()) {
	if len(args) > 0 {
		return events.FromSlice(args), func() {}
	}
	in := events.FromSeq(lines(cmd.InOrStdin()))
	return in, in.Stop
}

func lines(r io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}
}
