package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Browse archived analysis runs",
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runReportList,
}

var reportShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show the report of a run (default latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReportShow,
}

var reportDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an archived run",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportDelete,
}

func init() {
	reportCmd.PersistentFlags().StringVarP(&reportFormat, "format", "f", formatText, "output format: text, json or yaml")
	reportCmd.AddCommand(reportListCmd, reportShowCmd, reportDeleteCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportList(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}
	if err := validateFormat(reportFormat); err != nil {
		return err
	}

	infos, err := reportService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if reportFormat != formatText {
		return writeStructured(cmd.OutOrStdout(), reportFormat, infos)
	}
	writeSnapshotListText(cmd.OutOrStdout(), infos)
	return nil
}

func runReportShow(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}
	if err := validateFormat(reportFormat); err != nil {
		return err
	}

	snap, err := reportService.Get(cmd.Context(), optionalArg(args))
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	if reportFormat != formatText {
		return writeStructured(cmd.OutOrStdout(), reportFormat, snap.Analytics)
	}
	writeAnalyticsText(cmd.OutOrStdout(), snap)
	return nil
}

func runReportDelete(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}
	if err := reportService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	cmd.Printf("Deleted snapshot %s\n", args[0])
	return nil
}

// optionalArg returns the first argument or "" for the latest run.
func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
