// Package overview renders the headline analytics of a run.
package overview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/linkscope/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/linkscope/internal/core/domain"
)

// listLimit caps each ranked list on screen.
const listLimit = 5

// View is the overview tab.
type View struct {
	styles   *styles.Styles
	snapshot *domain.Snapshot
	width    int
	height   int
}

// NewView creates an overview view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80, height: 24}
}

// SetSnapshot sets the run to display.
func (v *View) SetSnapshot(snap *domain.Snapshot) {
	v.snapshot = snap
}

// SetDimensions sets the available size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// View renders the overview.
func (v *View) View() string {
	if v.snapshot == nil {
		return v.styles.Muted.Render("No snapshot loaded.")
	}
	a := &v.snapshot.Analytics

	headline := v.panel("Relationships", []string{
		v.stat("Connections", humanize.Comma(int64(a.TotalConnections))),
		v.stat("Engaged", a.EngagementRate+"%"),
		v.stat("Never messaged", a.NeverMessagedPct+"%"),
		v.stat("Dormant", fmt.Sprintf("%s (%s%%)", humanize.Comma(int64(a.DormantCount)), a.DormantPct)),
		v.stat("Years building", fmt.Sprint(a.YearsBuilding)),
	})

	strength := make([]string, 0, len(domain.Strengths()))
	for _, s := range domain.Strengths() {
		strength = append(strength, v.stat(
			v.styles.Strength(s).Render(string(s)),
			humanize.Comma(int64(a.StrengthCounts.Get(s))),
		))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		headline,
		v.panel("Strength", strength),
		v.panel("Content", []string{
			v.stat("Posts", humanize.Comma(int64(a.TotalPosts))),
			v.stat("Endorsements", humanize.Comma(int64(a.TotalEndorsements))),
			v.stat("Recommendations", fmt.Sprint(a.RecommendationsReceived)),
		}),
	)

	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		v.panel("Top companies", v.ranked(a.TopCompanies)),
		v.panel("Most messaged", v.ranked(a.TopContacts)),
		v.panel("Themes", v.ranked(a.ThemeCounts)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func (v *View) panel(title string, lines []string) string {
	body := v.styles.Subtitle.Render(title) + "\n" + strings.Join(lines, "\n")
	width := v.width/3 - 2
	if width < 24 {
		width = 24
	}
	return v.styles.Border.Width(width).Padding(0, 1).Render(body)
}

func (v *View) stat(label, value string) string {
	return fmt.Sprintf("%s %s", v.styles.Muted.Render(label+":"), v.styles.Normal.Render(value))
}

func (v *View) ranked(items []domain.NamedCount) []string {
	if len(items) == 0 {
		return []string{v.styles.Muted.Render("(none)")}
	}
	n := len(items)
	if n > listLimit {
		n = listLimit
	}
	lines := make([]string, 0, n)
	for _, nc := range items[:n] {
		lines = append(lines, v.stat(nc.Name, humanize.Comma(int64(nc.Count))))
	}
	return lines
}
