package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driving"
)

var (
	summaryAnonymize bool
	summaryJSON      bool
	summaryMax       int
)

var summaryCmd = &cobra.Command{
	Use:   "summary [id]",
	Short: "Print a compact summary of a run",
	Long: `Reduces an archived run (default latest) to headline facts and a short
list of notable contacts, suitable for pasting into an AI assistant.
Use --anonymize to replace contact names with positional labels.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().BoolVarP(&summaryAnonymize, "anonymize", "a", false, "replace contact names with labels")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "output the summary as JSON")
	summaryCmd.Flags().IntVarP(&summaryMax, "max", "n", 0, "cap on each contact list (default summary.max_contacts, else 10)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	if summaryService == nil {
		return errors.New("summary service not configured")
	}

	sum, err := summaryService.Summarize(cmd.Context(), optionalArg(args), driving.SummaryOptions{
		Anonymize:   summaryAnonymize,
		MaxContacts: summaryMax,
	})
	if err != nil {
		return fmt.Errorf("failed to build summary: %w", err)
	}

	if summaryJSON {
		return writeStructured(cmd.OutOrStdout(), formatJSON, sum)
	}
	writeSummaryText(cmd.OutOrStdout(), sum)
	return nil
}

func writeSummaryText(w io.Writer, sum *domain.NetworkSummary) {
	t := newTextWriter(w)

	t.line("%s connections built over %d years; %s%% engaged, %s dormant.",
		humanize.Comma(int64(sum.TotalConnections)), sum.YearsBuilding,
		sum.EngagementRate, humanize.Comma(int64(sum.DormantCount)))

	t.heading("Top companies")
	t.counts(sum.TopCompanies)

	if len(sum.TopEndorsedSkills) > 0 {
		t.heading("Endorsed for")
		t.counts(sum.TopEndorsedSkills)
	}
	if len(sum.Themes) > 0 {
		t.heading(fmt.Sprintf("Posting themes (%d posts)", sum.TotalPosts))
		t.counts(sum.Themes)
	}

	t.heading("Notable contacts")
	writeSummaryContacts(t, sum.NotableContacts)

	t.heading("Worth reconnecting")
	writeSummaryContacts(t, sum.Reconnect)
}

func writeSummaryContacts(t *textWriter, contacts []domain.SummaryContact) {
	if len(contacts) == 0 {
		t.line("  (none)")
		return
	}
	for _, c := range contacts {
		t.line("  %-24s %-7s %3d msgs  %s", c.Label, c.RelStrength, c.MessageCount, describeRole(c.Position, c.Company))
	}
}
