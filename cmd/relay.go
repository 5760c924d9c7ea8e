package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/datacom/internal/domain"
)

var relayListenFlag string
var relayForwardFlag string
var relayInjectionFlag string
var relaySeedFlag uint64

// relayCmd represents the relay command.
var relayCmd = newRelayCmd()

func newRelayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Accept one frame, corrupt its data and forward it",
		Long: `Relay waits for one frame from the sender, applies an injection strategy to
the data field and forwards the frame to the receiver. The method and
control fields are forwarded unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			injection, err := injectionSetting(cmd, relayInjectionFlag)
			if err != nil {
				return err
			}

			_, err = workflow.Relay(cmd.Context(), domain.RelayArgs{
				ListenAddr:  stringSetting(cmd, "listen", relayListenFlag, cfg.RelayAddr),
				ForwardAddr: stringSetting(cmd, "forward", relayForwardFlag, cfg.ReceiverAddr),
				Injection:   injection,
				Seed:        seedSetting(cmd, relaySeedFlag),
			})

			return err
		},
	}
	cmd.Flags().StringVarP(&relayListenFlag, "listen", "l", "", "address to listen on (default from config)")
	cmd.Flags().StringVarP(&relayForwardFlag, "forward", "f", "", "receiver address (default from config)")
	cmd.Flags().StringVarP(&relayInjectionFlag, "injection", "i", "random", "injection strategy or random/none")
	cmd.Flags().Uint64Var(&relaySeedFlag, "seed", 0, "fix the injector sequence")

	return cmd
}

func init() {
	rootCmd.AddCommand(relayCmd)
}
