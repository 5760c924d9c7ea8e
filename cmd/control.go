package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/datacom/internal/domain"
)

var controlMethodFlag string

// controlCmd represents the control command.
var controlCmd = newControlCmd()

func newControlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "control <message>",
		Short: "Print the frame a sender would transmit for a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := methodSetting(cmd, controlMethodFlag)
			if err != nil {
				return err
			}

			_, err = workflow.Control(domain.ControlArgs{Data: messageArg(args), Method: method})

			return err
		},
	}
	cmd.Flags().StringVarP(&controlMethodFlag, "method", "m", "parity", "detection method (parity, parity2d, crc16, hamming, checksum)")

	return cmd
}

func init() {
	rootCmd.AddCommand(controlCmd)
}
