package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/junyi-w/patrol/internal/config"
	"github.com/junyi-w/patrol/internal/engine"
	"github.com/junyi-w/patrol/internal/engine/profile"
	"github.com/junyi-w/patrol/internal/logging"
	"github.com/junyi-w/patrol/internal/pipeline"
	"github.com/junyi-w/patrol/internal/report"
	"github.com/junyi-w/patrol/internal/walker"
)

var (
	logDir  string
	outPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "patrol",
	Short: "Extracts hardware and optical telemetry from vendor inspection logs into a consolidated report.",
	Long: `patrol scans a log directory laid out as <root>/internal and <root>/external,
classifies each *.log file by vendor dialect (Huawei or H3C), extracts CPU,
memory and per-port optical power readings, and writes one consolidated
two-sheet xlsx report. Every log file produces exactly one report row, even
when nothing could be extracted from it.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cfg := config.Load()
	rootCmd.Flags().StringVarP(&logDir, "logs", "l", cfg.LogDir, "root directory with internal/ and external/ log subdirectories")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", cfg.OutPath, "path of the consolidated xlsx report")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", cfg.Debug, "emit verbose extraction trace on stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logging.Init(debug)
	log := slog.Default()

	eng := engine.New(profile.All(), log)
	sink := report.NewExcel(outPath)
	w := walker.New(logDir, log)

	n, err := pipeline.New(w, eng, sink, log).Run()
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintf(os.Stderr, "no inspection logs found under %s\n", logDir)
		return nil
	}
	if err := sink.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Printf("processed %d logs, report written to %s\n", n, outPath)
	return nil
}
