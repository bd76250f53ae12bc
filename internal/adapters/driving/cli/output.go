package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle   = lipgloss.NewStyle().Bold(true)
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("%w: unknown format %q (want text, json or yaml)", domain.ErrInvalidInput, format)
}

// writeStructured writes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return enc.Close()
	}
	return validateFormat(format)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// textWriter renders the plain-text report, styled when writing to a terminal.
type textWriter struct {
	w      io.Writer
	styled bool
}

func newTextWriter(w io.Writer) *textWriter {
	return &textWriter{w: w, styled: isTerminal(w)}
}

func (t *textWriter) heading(title string) {
	if t.styled {
		title = headingStyle.Render(title)
	}
	fmt.Fprintf(t.w, "\n%s\n", title)
}

func (t *textWriter) field(label string, value any) {
	l := fmt.Sprintf("%-22s", label+":")
	v := fmt.Sprint(value)
	if t.styled {
		l = labelStyle.Render(l)
		v = valueStyle.Render(v)
	}
	fmt.Fprintf(t.w, "  %s %s\n", l, v)
}

func (t *textWriter) counts(items []domain.NamedCount) {
	if len(items) == 0 {
		fmt.Fprintln(t.w, "  (none)")
		return
	}
	for _, nc := range items {
		fmt.Fprintf(t.w, "  %-30s %s\n", nc.Name, humanize.Comma(int64(nc.Count)))
	}
}

func (t *textWriter) line(format string, args ...any) {
	fmt.Fprintf(t.w, format+"\n", args...)
}

// writeAnalyticsText renders the headline report of a snapshot.
func writeAnalyticsText(w io.Writer, snap *domain.Snapshot) {
	t := newTextWriter(w)
	a := &snap.Analytics

	t.line("Snapshot %s (%s)", snap.ID, snap.Source)
	t.line("Analysed %s", snap.CreatedAt.Format("2006-01-02 15:04 MST"))

	t.heading("Relationships")
	t.field("Connections", humanize.Comma(int64(a.TotalConnections)))
	t.field("Messaged", fmt.Sprintf("%s (%s%%)", humanize.Comma(int64(a.Messaged)), a.EngagementRate))
	t.field("Never messaged", fmt.Sprintf("%s (%s%%)", humanize.Comma(int64(a.NeverMessaged)), a.NeverMessagedPct))
	t.field("Dormant", fmt.Sprintf("%s (%s%%)", humanize.Comma(int64(a.DormantCount)), a.DormantPct))
	for _, s := range domain.Strengths() {
		t.field(strings.ToUpper(string(s[:1]))+string(s[1:]), a.StrengthCounts.Get(s))
	}
	t.field("Years building", a.YearsBuilding)

	t.heading("Top companies")
	t.counts(a.TopCompanies)

	t.heading("Most messaged")
	t.counts(a.TopContacts)

	if len(a.CategoryCounts) > 0 {
		t.heading("Categories")
		t.counts(a.CategoryCounts)
	}

	t.heading("Endorsements")
	t.field("Received", humanize.Comma(int64(a.TotalEndorsements)))
	t.counts(a.TopEndorsedSkills)

	t.heading("Content")
	t.field("Posts", humanize.Comma(int64(a.TotalPosts)))
	if a.FirstPost != nil && a.LastPost != nil {
		t.field("Posting since", a.FirstPost.Format("2006-01-02"))
		t.field("Last post", humanize.RelTime(*a.LastPost, snap.CreatedAt, "ago", "from now"))
	}
	t.counts(a.ThemeCounts)

	t.heading("Profile")
	t.field("Skills listed", a.SkillsListed)
	t.field("Recommendations", a.RecommendationsReceived)
	t.field("Positions held", a.PositionsHeld)
	t.field("Invitations sent", a.InvitationsSent)
	t.field("Invitations received", a.InvitationsReceived)
	t.field("Ad segments", a.AdTargetingSegments)
}

// writeSnapshotListText renders archived runs.
func writeSnapshotListText(w io.Writer, infos []domain.SnapshotInfo) {
	if len(infos) == 0 {
		fmt.Fprintln(w, "No snapshots archived.")
		return
	}
	for _, info := range infos {
		fmt.Fprintf(w, "  %s  %-14s %6s connections  %5s%% engaged  %s\n",
			info.ID,
			humanize.Time(info.CreatedAt),
			humanize.Comma(int64(info.TotalConnections)),
			info.EngagementRate,
			info.Source,
		)
	}
}

// writeContactsText renders contacts one per line.
func writeContactsText(w io.Writer, contacts []domain.ContactProfile) {
	if len(contacts) == 0 {
		fmt.Fprintln(w, "No contacts match.")
		return
	}
	for i := range contacts {
		c := &contacts[i]
		last := "never"
		if c.LastContact != nil {
			last = *c.LastContact
		}
		dormant := ""
		if c.IsDormant {
			dormant = " dormant"
		}
		fmt.Fprintf(w, "  %-28s %-7s %3d msgs  last %-10s %s%s\n",
			c.Name, c.RelStrength, c.MessageCount, last, describeRole(c.Position, c.Company), dormant)
	}
}

func describeRole(position, company string) string {
	switch {
	case position != "" && company != "":
		return position + " @ " + company
	case company != "":
		return company
	}
	return position
}
