// Package contacts renders the enriched contacts of a run as a table.
package contacts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/linkscope/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/linkscope/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/linkscope/internal/core/domain"
)

// chromeHeight is the space taken by tabs, header and status bar.
const chromeHeight = 6

// View is the contacts tab.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	table    table.Model
	all      []domain.ContactProfile
	shown    []domain.ContactProfile
	strength domain.RelStrength
	dormant  bool
}

// NewView creates a contacts view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(24-chromeHeight),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true).Foreground(s.Theme().Secondary)
	ts.Selected = s.Selected
	t.SetStyles(ts)

	return &View{styles: s, keymap: km, table: t}
}

func columns(width int) []table.Column {
	name := width / 4
	if name < 16 {
		name = 16
	}
	role := width - name - 40
	if role < 16 {
		role = 16
	}
	return []table.Column{
		{Title: "Name", Width: name},
		{Title: "Strength", Width: 8},
		{Title: "Msgs", Width: 5},
		{Title: "Last contact", Width: 12},
		{Title: "Role", Width: role},
	}
}

// SetSnapshot loads the contacts of a run.
func (v *View) SetSnapshot(snap *domain.Snapshot) {
	v.all = nil
	if snap != nil {
		v.all = snap.Contacts
	}
	v.refresh()
}

// SetDimensions sets the available size.
func (v *View) SetDimensions(width, height int) {
	v.table.SetColumns(columns(width))
	v.table.SetWidth(width)
	h := height - chromeHeight
	if h < 3 {
		h = 3
	}
	v.table.SetHeight(h)
}

// Update handles key input for the table and filters.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keymap.Matches(key.String(), v.keymap.Strength):
			v.strength = nextStrength(v.strength)
			v.refresh()
			return v, nil
		case keymap.Matches(key.String(), v.keymap.Dormant):
			v.dormant = !v.dormant
			v.refresh()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// nextStrength cycles none, strong, warm, cold, new, none.
func nextStrength(cur domain.RelStrength) domain.RelStrength {
	all := domain.Strengths()
	if cur == "" {
		return all[0]
	}
	for i, s := range all {
		if s == cur && i+1 < len(all) {
			return all[i+1]
		}
	}
	return ""
}

func (v *View) refresh() {
	filter := domain.ContactFilter{Strength: v.strength, DormantOnly: v.dormant}
	v.shown = v.shown[:0]
	rows := make([]table.Row, 0, len(v.all))
	for i := range v.all {
		c := &v.all[i]
		if !filter.Matches(c) {
			continue
		}
		v.shown = append(v.shown, *c)
		rows = append(rows, row(c))
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

func row(c *domain.ContactProfile) table.Row {
	last := "never"
	if c.LastContact != nil {
		last = *c.LastContact
	}
	role := c.Position
	if c.Company != "" {
		if role != "" {
			role += " @ "
		}
		role += c.Company
	}
	return table.Row{c.Name, string(c.RelStrength), fmt.Sprint(c.MessageCount), last, role}
}

// Selected returns the contact under the cursor, or nil.
func (v *View) Selected() *domain.ContactProfile {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.shown) {
		return nil
	}
	return &v.shown[i]
}

// Shown returns the number of contacts passing the filters.
func (v *View) Shown() int {
	return len(v.shown)
}

// Total returns the number of contacts in the run.
func (v *View) Total() int {
	return len(v.all)
}

// FilterLabel describes the active filters, empty when none.
func (v *View) FilterLabel() string {
	var parts []string
	if v.strength != "" {
		parts = append(parts, "strength: "+string(v.strength))
	}
	if v.dormant {
		parts = append(parts, "dormant only")
	}
	return strings.Join(parts, ", ")
}

// View renders the table and the selected contact's detail line.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.table.View())
	b.WriteString("\n")

	if c := v.Selected(); c != nil {
		detail := v.styles.Strength(c.RelStrength).Render(string(c.RelStrength))
		if c.IsDormant {
			detail += v.styles.Warning.Render(" dormant")
		}
		if len(c.EndorsedSkills) > 0 {
			detail += v.styles.Muted.Render(" endorsed for " + strings.Join(c.EndorsedSkills, ", "))
		}
		b.WriteString(detail)
	} else {
		b.WriteString(v.styles.Muted.Render("No contacts match."))
	}
	return b.String()
}
