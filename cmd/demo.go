package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/datacom/internal/domain"
)

var demoMethodFlag string
var demoInjectionFlag string
var demoSeedFlag uint64

// demoCmd represents the demo command.
var demoCmd = newDemoCmd()

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [message]",
		Short: "Run sender, relay and receiver over loopback in one process",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := methodSetting(cmd, demoMethodFlag)
			if err != nil {
				return err
			}

			injection, err := injectionSetting(cmd, demoInjectionFlag)
			if err != nil {
				return err
			}

			_, err = workflow.Demo(cmd.Context(), domain.DemoArgs{
				Data:      messageArg(args),
				Method:    method,
				Injection: injection,
				Seed:      seedSetting(cmd, demoSeedFlag),
			})

			return err
		},
	}
	cmd.Flags().StringVarP(&demoMethodFlag, "method", "m", "parity", "detection method (parity, parity2d, crc16, hamming, checksum)")
	cmd.Flags().StringVarP(&demoInjectionFlag, "injection", "i", "random", "injection strategy or random/none")
	cmd.Flags().Uint64Var(&demoSeedFlag, "seed", 0, "fix the injector sequence")

	return cmd
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
