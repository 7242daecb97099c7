// ABOUTME: CLI command for rebuilding daily summaries from raw exports.
// ABOUTME: Runs the full pipeline and replaces the stored tables.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/namtonthat/healthsum/internal/export"
	"github.com/namtonthat/healthsum/internal/ingest"
	"github.com/namtonthat/healthsum/internal/summary"
)

var summarizeParquet string

var summarizeCmd = &cobra.Command{
	Use:   "summarize <export-dir>",
	Short: "Rebuild daily summaries from a directory of CSV exports",
	Long: `Rebuild the daily summary and weekly average tables from raw CSV
exports.

Files in the directory are matched to configured sources by filename
prefix (e.g. HealthAutoExport-2024-06.csv, AutoSleep-June.csv). Unmatched
files are skipped with a log line. The run is a full recompute: both
stored tables are replaced, never appended to.

PRECEDENCE:

  When the general health export and the wearable sleep export both cover
  a date, the wearable's sleep fields win; everything else comes from the
  health export. Dates only the sleep export knows about are dropped.

EXAMPLES:

  healthsum summarize ./exports
  healthsum summarize ./exports --parquet summaries.parquet
  healthsum summarize ./exports --config healthsum.yaml -v`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		sources := make([]string, 0, len(cfg.Sources))
		for name := range cfg.Sources {
			sources = append(sources, name)
		}

		batches, err := ingest.ReadExportDir(dir, sources, logger)
		if err != nil {
			return fmt.Errorf("failed to read exports: %w", err)
		}
		if len(batches) == 0 {
			return fmt.Errorf("no recognized export files in %s", dir)
		}

		result, err := summary.New(cfg, logger).Run(batches)
		if err != nil {
			return err
		}

		r, err := openRepo()
		if err != nil {
			return err
		}
		if err := r.ReplaceAll(result.Days, result.Weekly); err != nil {
			return fmt.Errorf("failed to store summaries: %w", err)
		}

		if summarizeParquet != "" {
			if err := export.WriteSummaries(summarizeParquet, result.Days); err != nil {
				return fmt.Errorf("failed to write parquet: %w", err)
			}
		}

		green := color.New(color.FgGreen)
		green.Printf("✓ Summarized %d days, %d weekly rows\n", len(result.Days), len(result.Weekly))
		if summarizeParquet != "" {
			fmt.Printf("  parquet: %s\n", summarizeParquet)
		}
		return nil
	},
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeParquet, "parquet", "", "also write daily summaries to this parquet file")
	rootCmd.AddCommand(summarizeCmd)
}
