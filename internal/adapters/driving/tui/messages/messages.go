// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/linkscope/internal/core/domain"
)

// SnapshotLoaded carries the archived run back to the model.
type SnapshotLoaded struct {
	Snapshot *domain.Snapshot
	Err      error
}

// TabChanged is sent when switching between tabs.
type TabChanged struct {
	Tab Tab
}

// Tab identifies the active dashboard tab.
type Tab int

const (
	// TabOverview shows the headline analytics.
	TabOverview Tab = iota
	// TabContacts shows the contacts table.
	TabContacts

	tabCount
)

// Tabs returns all tabs in display order.
func Tabs() []Tab {
	return []Tab{TabOverview, TabContacts}
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return (t + 1) % tabCount
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return (t + tabCount - 1) % tabCount
}

// String returns the display name of the tab.
func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabContacts:
		return "Contacts"
	}
	return "unknown"
}
