package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/datacom/internal/domain"
	m "github.com/mouse-blink/datacom/internal/model"
)

const defaultSimulationMessage = "Hello, World!"

var simulateMethodsFlag []string
var simulateInjectionFlag string
var simulateTrialsFlag int
var simulateParallelFlag int
var simulateSeedFlag uint64
var simulateCleanFlag bool
var simulateSaveFlag bool

// simulateCmd represents the simulate command.
var simulateCmd = newSimulateCmd()

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [message]",
		Short: "Run many in-memory exchanges and print detection rates",
		Long: `Simulate encodes the message with each selected method, corrupts it and
checks it again, trials times per method, on a pool of parallel workers.
A summary of detected and missed corruptions is printed and, with --save,
every exchange is written to the reports directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			methods, err := parseMethods(simulateMethodsFlag)
			if err != nil {
				return err
			}

			injection, err := injectionSetting(cmd, simulateInjectionFlag)
			if err != nil {
				return err
			}

			data := messageArg(args)
			if data == nil {
				data = []byte(defaultSimulationMessage)
			}

			var reports m.Path
			if simulateSaveFlag {
				reports = reportsSetting(cmd)
			}

			_, err = workflow.Simulate(cmd.Context(), domain.SimulateArgs{
				Data:      data,
				Methods:   methods,
				Injection: injection,
				Trials:    intSetting(cmd, "trials", simulateTrialsFlag, cfg.Trials),
				Parallel:  intSetting(cmd, "parallel", simulateParallelFlag, cfg.Parallel),
				Seed:      seedSetting(cmd, simulateSeedFlag),
				Reports:   reports,
				Clean:     simulateCleanFlag,
			})

			return err
		},
	}
	cmd.Flags().StringSliceVar(&simulateMethodsFlag, "methods", nil, "methods to simulate (default all)")
	cmd.Flags().StringVarP(&simulateInjectionFlag, "injection", "i", "random", "injection strategy or random/none")
	cmd.Flags().IntVarP(&simulateTrialsFlag, "trials", "n", 100, "exchanges per method")
	cmd.Flags().IntVarP(&simulateParallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().Uint64Var(&simulateSeedFlag, "seed", 0, "fix the injector sequence")
	cmd.Flags().BoolVar(&simulateSaveFlag, "save", false, "write reports to the reports directory")
	cmd.Flags().BoolVar(&simulateCleanFlag, "clean", false, "remove existing reports before saving")

	return cmd
}

func parseMethods(names []string) ([]m.Method, error) {
	methods := make([]m.Method, 0, len(names))

	for _, name := range names {
		method, err := m.ParseMethod(name)
		if err != nil {
			return nil, err
		}

		methods = append(methods, method)
	}

	return methods, nil
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}
