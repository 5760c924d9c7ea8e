package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/datacom/internal/domain"
)

var corruptInjectionFlag string
var corruptSeedFlag uint64

// corruptCmd represents the corrupt command.
var corruptCmd = newCorruptCmd()

func newCorruptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corrupt <message>",
		Short: "Apply one injection strategy to a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			injection, err := injectionSetting(cmd, corruptInjectionFlag)
			if err != nil {
				return err
			}

			_, _, err = workflow.Corrupt(domain.CorruptArgs{
				Data:      messageArg(args),
				Injection: injection,
				Seed:      seedSetting(cmd, corruptSeedFlag),
			})

			return err
		},
	}
	cmd.Flags().StringVarP(&corruptInjectionFlag, "injection", "i", "random", "injection strategy or random/none")
	cmd.Flags().Uint64Var(&corruptSeedFlag, "seed", 0, "fix the injector sequence")

	return cmd
}

func init() {
	rootCmd.AddCommand(corruptCmd)
}
