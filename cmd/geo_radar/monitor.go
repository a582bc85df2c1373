package main

import (
	"fmt"
	"os"

	"github.com/jonathan/geo-radar/internal/config"
	"github.com/jonathan/geo-radar/internal/engines"
	"github.com/jonathan/geo-radar/internal/monitor"
	"github.com/jonathan/geo-radar/internal/observability"
	"github.com/spf13/cobra"
)

var (
	monitorTargets string
	monitorVerbose bool
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run one collection pass over the monitored queries",
	Long: `Evaluate every monitored query against every configured answer engine,
score the answers, and append one row per query to the store. Engine and
persistence failures are isolated; the batch always runs to completion.`,
	RunE: runMonitor,
}

func init() {
	monitorCmd.Flags().StringVar(&monitorTargets, "targets", "", "Path to a JSON targets file (default: CONFIG_CIBLES worksheet)")
	monitorCmd.Flags().BoolVar(&monitorVerbose, "verbose", false, "Print per-query score summaries")
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	settings := config.FromEnv()
	if err := settings.ValidateStore(); err != nil {
		return err
	}

	st, err := openStore(ctx, settings)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	targets, err := loadTargets(ctx, monitorTargets, st)
	if err != nil {
		return err
	}
	if len(targets.Queries) == 0 {
		return fmt.Errorf("no monitored queries configured")
	}

	engs, err := engines.Build(ctx, engines.CredentialsFromEnv())
	if err != nil {
		return err
	}
	defer engines.CloseAll(engs) //nolint:errcheck // best effort on shutdown

	runner := monitor.NewRunner(engs, st, settings.EnginePause)
	if monitorVerbose {
		runner.Printer = observability.NewPrinter(os.Stdout)
		for _, org := range targets.Organizations {
			runner.Printer.PrintOrganizationConfig(org)
		}
	}

	return runner.Run(ctx, targets.OrgMap(), targets.Queries)
}
