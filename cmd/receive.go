package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/datacom/internal/domain"
)

var receiveListenFlag string

// receiveCmd represents the receive command.
var receiveCmd = newReceiveCmd()

func newReceiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receive",
		Short: "Accept one frame and check its control information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.Receive(cmd.Context(), domain.ReceiveArgs{
				ListenAddr: stringSetting(cmd, "listen", receiveListenFlag, cfg.ReceiverAddr),
			})

			return err
		},
	}
	cmd.Flags().StringVarP(&receiveListenFlag, "listen", "l", "", "address to listen on (default from config)")

	return cmd
}

func init() {
	rootCmd.AddCommand(receiveCmd)
}
