package domain

import "time"

// Snapshot is one archived analysis run.
type Snapshot struct {
	// ID is the unique identifier for the run.
	ID string `json:"id" yaml:"id"`

	// Source is the export path the run analysed.
	Source string `json:"source" yaml:"source"`

	// CreatedAt is the "now" the run classified against.
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`

	Contacts  []ContactProfile `json:"contacts" yaml:"contacts"`
	Analytics NetworkAnalytics `json:"analytics" yaml:"analytics"`
}

// SnapshotInfo is the listing view of a snapshot without its contacts.
type SnapshotInfo struct {
	ID               string    `json:"id" yaml:"id"`
	Source           string    `json:"source" yaml:"source"`
	CreatedAt        time.Time `json:"createdAt" yaml:"createdAt"`
	TotalConnections int       `json:"totalConnections" yaml:"totalConnections"`
	EngagementRate   string    `json:"engagementRate" yaml:"engagementRate"`
}

// Info returns the listing view of the snapshot.
func (s *Snapshot) Info() SnapshotInfo {
	return SnapshotInfo{
		ID:               s.ID,
		Source:           s.Source,
		CreatedAt:        s.CreatedAt,
		TotalConnections: s.Analytics.TotalConnections,
		EngagementRate:   s.Analytics.EngagementRate,
	}
}

// ContactFilter narrows a contact listing. Zero values match everything.
type ContactFilter struct {
	Strength    RelStrength
	DormantOnly bool
	Category    string
	Limit       int
}

// Matches reports whether a contact passes the filter (Limit is not applied).
func (f ContactFilter) Matches(c *ContactProfile) bool {
	if f.Strength != "" && c.RelStrength != f.Strength {
		return false
	}
	if f.DormantOnly && !c.IsDormant {
		return false
	}
	if f.Category != "" && !c.Categories[f.Category] {
		return false
	}
	return true
}
