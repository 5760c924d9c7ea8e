// Package cmd provides the root command and CLI setup for datacom.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/datacom/internal/adapter"
	"github.com/mouse-blink/datacom/internal/config"
	"github.com/mouse-blink/datacom/internal/controller"
	"github.com/mouse-blink/datacom/internal/domain"
	"github.com/mouse-blink/datacom/internal/domain/injector"
	"github.com/mouse-blink/datacom/internal/logging"
	m "github.com/mouse-blink/datacom/internal/model"
)

var transport adapter.TransportAdapter
var reportStore adapter.ReportStore
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// cfg holds the defaults merged with --config; flags override it per command.
var cfg = config.Default()

var configFlag string
var logLevelFlag string
var reportsDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datacom",
		Short: "Error detection and injection over a simulated channel",
		Long: `Datacom sends a message from a sender through a relay that corrupts it to a
receiver that checks it with one of five error detection codes:

  PARITY     even parity bit
  PARITY2D   row and column parity over an 8-row matrix
  CRC16      CRC-16 (poly 0x8005, init 0xFFFF)
  HAMMING    Hamming(7,4) summary
  CHECKSUM   Internet checksum

Run relay, receive and send in three terminals, or use demo to run all
three nodes in one process. simulate runs many exchanges in memory and
prints detection rates.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a TOML config file")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level (trace, debug, info, warn, error, disabled)")
	cmd.PersistentFlags().StringVarP(&reportsDirFlag, "reports", "o", config.DefaultReportsDir, "directory for simulation reports")

	return cmd
}

func setup(cmd *cobra.Command, _ []string) error {
	logging.ConfigureRuntime()

	if logLevelFlag != "" && !logging.SetLevel(logLevelFlag) {
		return fmt.Errorf("unknown log level %q", logLevelFlag)
	}

	cfg = config.Default()

	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if workflow == nil {
		wire(cmd.Root(), cfg)
	}

	return nil
}

// wire builds the adapters and the workflow from cfg.
func wire(root *cobra.Command, c config.Config) {
	ui = controller.NewUI(root, controller.IsTTY(os.Stdout))
	transport = adapter.NewTCPTransport(c.DialTimeout, c.ReadTimeout, c.MaxFrameBytes)
	reportStore = adapter.NewReportStore()
	orchestrator = domain.NewOrchestrator(injector.Default())
	workflow = domain.NewWorkflow(transport, reportStore, ui, orchestrator)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func methodSetting(cmd *cobra.Command, flagValue string) (m.Method, error) {
	if cmd.Flags().Changed("method") {
		return m.ParseMethod(flagValue)
	}

	return cfg.Method, nil
}

func injectionSetting(cmd *cobra.Command, flagValue string) (m.InjectionMethod, error) {
	if cmd.Flags().Changed("injection") {
		return m.ParseInjection(flagValue)
	}

	return cfg.Injection, nil
}

// seedSetting returns nil when neither --seed nor a non-zero config seed is set.
func seedSetting(cmd *cobra.Command, flagValue uint64) *uint64 {
	if cmd.Flags().Changed("seed") {
		return &flagValue
	}

	if cfg.Seed != 0 {
		seed := cfg.Seed

		return &seed
	}

	return nil
}

func stringSetting(cmd *cobra.Command, flag, flagValue, configValue string) string {
	if cmd.Flags().Changed(flag) {
		return flagValue
	}

	return configValue
}

func intSetting(cmd *cobra.Command, flag string, flagValue, configValue int) int {
	if cmd.Flags().Changed(flag) {
		return flagValue
	}

	return configValue
}

func reportsSetting(cmd *cobra.Command) m.Path {
	return m.Path(stringSetting(cmd, "reports", reportsDirFlag, string(cfg.ReportsDir)))
}

// messageArg returns nil when no message was given on the command line.
func messageArg(args []string) []byte {
	if len(args) == 0 {
		return nil
	}

	return []byte(strings.Join(args, " "))
}
