package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/datacom/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved simulation reports",
		Long:  "View the detection summary of simulation reports saved in a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Reports: reportsSetting(cmd)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
