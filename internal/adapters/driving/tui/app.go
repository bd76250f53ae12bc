package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/linkscope/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/linkscope/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/linkscope/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/linkscope/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/linkscope/internal/adapters/driving/tui/views/contacts"
	"github.com/custodia-labs/linkscope/internal/adapters/driving/tui/views/overview"
	"github.com/custodia-labs/linkscope/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	ctx   context.Context

	// snapshotID selects the run; empty means the latest.
	snapshotID string
	snapshot   *domain.Snapshot

	styles *styles.Styles
	keymap *keymap.KeyMap

	overviewView *overview.View
	contactsView *contacts.View
	statusBar    *status.Bar

	currentTab messages.Tab
	err        error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application for one archived run.
func NewApp(ports *Ports, snapshotID string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		snapshotID:   snapshotID,
		styles:       s,
		keymap:       km,
		overviewView: overview.NewView(s),
		contactsView: contacts.NewView(s, km),
		statusBar:    status.NewBar(s, km),
		currentTab:   messages.TabOverview,
		width:        80,
		height:       24,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("linkscope"),
		a.loadSnapshot(),
	)
}

func (a *App) loadSnapshot() tea.Cmd {
	ctx, reports, id := a.ctx, a.ports.Reports, a.snapshotID
	return func() tea.Msg {
		snap, err := reports.Get(ctx, id)
		return messages.SnapshotLoaded{Snapshot: snap, Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.SnapshotLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.snapshot = msg.Snapshot
		a.overviewView.SetSnapshot(msg.Snapshot)
		a.contactsView.SetSnapshot(msg.Snapshot)
		a.syncStatus()
		return a, nil

	case messages.TabChanged:
		a.currentTab = msg.Tab
		a.syncStatus()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.Help):
		a.statusBar.ToggleHelp()
		return a, nil
	case keymap.Matches(k, a.keymap.NextTab):
		return a.Update(messages.TabChanged{Tab: a.currentTab.Next()})
	case keymap.Matches(k, a.keymap.PrevTab):
		return a.Update(messages.TabChanged{Tab: a.currentTab.Prev()})
	}

	if a.currentTab != messages.TabContacts || a.snapshot == nil {
		return a, nil
	}

	var cmd tea.Cmd
	a.contactsView, cmd = a.contactsView.Update(msg)
	a.syncStatus()
	return a, cmd
}

func (a *App) syncStatus() {
	if a.err != nil {
		return
	}
	if a.snapshot == nil {
		a.statusBar.SetState(status.StateLoading)
		return
	}
	if a.currentTab == messages.TabContacts {
		a.statusBar.SetState(status.StateContacts)
		a.statusBar.SetCounts(a.contactsView.Shown(), a.contactsView.Total())
		a.statusBar.SetMessage(a.contactsView.FilterLabel())
		return
	}
	a.statusBar.SetState(status.StateReady)
	a.statusBar.SetMessage(fmt.Sprintf("%s | %s", a.snapshot.ID, a.snapshot.CreatedAt.Format("2006-01-02 15:04")))
}

// SetDimensions resizes the app and its views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.overviewView.SetDimensions(width, height)
	a.contactsView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch {
	case a.err != nil:
		body = a.styles.Error.Render("Could not load snapshot: " + a.err.Error())
	case a.snapshot == nil:
		body = a.styles.Muted.Render("Loading snapshot...")
	case a.currentTab == messages.TabContacts:
		body = a.contactsView.View()
	default:
		body = a.overviewView.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left, a.renderTabs(), "", body)
	gap := a.height - lipgloss.Height(content) - 1
	if gap < 0 {
		gap = 0
	}
	return content + strings.Repeat("\n", gap) + "\n" + a.statusBar.View()
}

func (a *App) renderTabs() string {
	tabs := make([]string, 0, len(messages.Tabs())+1)
	tabs = append(tabs, a.styles.Title.Render("linkscope "))
	for _, t := range messages.Tabs() {
		style := a.styles.Tab
		if t == a.currentTab {
			style = a.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// CurrentTab returns the active tab.
func (a *App) CurrentTab() messages.Tab {
	return a.currentTab
}

// Snapshot returns the loaded run, nil until loaded.
func (a *App) Snapshot() *domain.Snapshot {
	return a.snapshot
}

// Err returns the load error, if any.
func (a *App) Err() error {
	return a.err
}
