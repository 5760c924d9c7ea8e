package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/datacom/internal/domain"
)

var sendMethodFlag string
var sendAddrFlag string

// sendCmd represents the send command.
var sendCmd = newSendCmd()

func newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send [message]",
		Short: "Encode a message and send it to the relay",
		Long: `Send computes the control information for a message and sends the frame
DATA|METHOD|CONTROL to the relay. Without a message it prompts for one and
for the detection method. An empty message sends nothing and exits cleanly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := methodSetting(cmd, sendMethodFlag)
			if err != nil {
				return err
			}

			_, err = workflow.Send(cmd.Context(), domain.SendArgs{
				Addr:   stringSetting(cmd, "addr", sendAddrFlag, cfg.RelayAddr),
				Data:   messageArg(args),
				Method: method,
			})
			if errors.Is(err, domain.ErrEmptyMessage) {
				fmt.Fprintln(cmd.OutOrStdout(), "Empty data, exiting...")

				return nil
			}

			return err
		},
	}
	cmd.Flags().StringVarP(&sendMethodFlag, "method", "m", "parity", "detection method (parity, parity2d, crc16, hamming, checksum)")
	cmd.Flags().StringVarP(&sendAddrFlag, "addr", "a", "", "relay address (default from config)")

	return cmd
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
