package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/linkscope/internal/core/analytics"
	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driving"
)

var (
	analyzeFormat string
	analyzeNow    string
	analyzeDryRun bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>",
	Short: "Analyse a data export",
	Long: `Reads a data export (an extracted directory or the downloaded .zip),
joins connections against messages and endorsements and prints the network
report. The run is archived unless --dry-run is given.

Use --now to classify against a fixed date, e.g. to reproduce an old report.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", formatText, "output format: text, json or yaml")
	analyzeCmd.Flags().StringVar(&analyzeNow, "now", "", "classify against this date instead of the clock")
	analyzeCmd.Flags().BoolVar(&analyzeDryRun, "dry-run", false, "do not archive the run")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}
	if err := validateFormat(analyzeFormat); err != nil {
		return err
	}

	opts := driving.AnalyzeOptions{DryRun: analyzeDryRun}
	if analyzeNow != "" {
		now, ok := analytics.ParseDate(analyzeNow)
		if !ok {
			return fmt.Errorf("%w: cannot parse --now %q", domain.ErrInvalidInput, analyzeNow)
		}
		opts.Now = now
	}

	snap, err := analysisService.Analyze(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeFormat != formatText {
		return writeStructured(cmd.OutOrStdout(), analyzeFormat, snap.Analytics)
	}
	writeAnalyticsText(cmd.OutOrStdout(), snap)
	if analyzeDryRun {
		cmd.Println("\n(dry run: snapshot not archived)")
	}
	return nil
}
