package domain

import "time"

// NetworkSummary is the reduced, AI-ready view of a snapshot.
// It carries aggregate facts and a short list of notable contacts only.
type NetworkSummary struct {
	SnapshotID  string    `json:"snapshotId" yaml:"snapshotId"`
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`
	Anonymized  bool      `json:"anonymized" yaml:"anonymized"`

	TotalConnections int            `json:"totalConnections" yaml:"totalConnections"`
	YearsBuilding    int            `json:"yearsBuilding" yaml:"yearsBuilding"`
	EngagementRate   string         `json:"engagementRate" yaml:"engagementRate"`
	DormantCount     int            `json:"dormantCount" yaml:"dormantCount"`
	StrengthCounts   StrengthCounts `json:"strengthCounts" yaml:"strengthCounts"`

	TopCompanies      []NamedCount `json:"topCompanies" yaml:"topCompanies"`
	TopEndorsedSkills []NamedCount `json:"topEndorsedSkills" yaml:"topEndorsedSkills"`
	Categories        []NamedCount `json:"categories" yaml:"categories"`
	Themes            []NamedCount `json:"themes" yaml:"themes"`
	TotalPosts        int          `json:"totalPosts" yaml:"totalPosts"`

	NotableContacts []SummaryContact `json:"notableContacts" yaml:"notableContacts"`
	Reconnect       []SummaryContact `json:"reconnect" yaml:"reconnect"`
}

// SummaryContact is a contact reduced to what a narrative needs.
type SummaryContact struct {
	Label        string      `json:"label" yaml:"label"`
	Position     string      `json:"position,omitempty" yaml:"position,omitempty"`
	Company      string      `json:"company,omitempty" yaml:"company,omitempty"`
	RelStrength  RelStrength `json:"relStrength" yaml:"relStrength"`
	MessageCount int         `json:"messageCount" yaml:"messageCount"`
	IsDormant    bool        `json:"isDormant" yaml:"isDormant"`
}
