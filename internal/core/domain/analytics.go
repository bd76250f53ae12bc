package domain

import "time"

// NamedCount is one entry of a ranked or ordered count list.
type NamedCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// StrengthCounts holds the number of contacts per relationship strength.
type StrengthCounts struct {
	Strong int `json:"strong" yaml:"strong"`
	Warm   int `json:"warm" yaml:"warm"`
	Cold   int `json:"cold" yaml:"cold"`
	New    int `json:"new" yaml:"new"`
}

// Get returns the count for one strength.
func (s StrengthCounts) Get(r RelStrength) int {
	switch r {
	case StrengthStrong:
		return s.Strong
	case StrengthWarm:
		return s.Warm
	case StrengthCold:
		return s.Cold
	case StrengthNew:
		return s.New
	}
	return 0
}

// Recommender is a person who wrote a received recommendation.
type Recommender struct {
	Name    string `json:"name" yaml:"name"`
	Company string `json:"company,omitempty" yaml:"company,omitempty"`
}

// NetworkAnalytics is the aggregate snapshot of one analysis run.
// It is read-only once produced.
type NetworkAnalytics struct {
	TotalConnections int    `json:"totalConnections" yaml:"totalConnections"`
	Messaged         int    `json:"messaged" yaml:"messaged"`
	NeverMessaged    int    `json:"neverMessaged" yaml:"neverMessaged"`
	NeverMessagedPct string `json:"neverMessagedPct" yaml:"neverMessagedPct"`
	EngagementRate   string `json:"engagementRate" yaml:"engagementRate"`

	StrengthCounts StrengthCounts `json:"strengthCounts" yaml:"strengthCounts"`
	DormantCount   int            `json:"dormantCount" yaml:"dormantCount"`
	DormantPct     string         `json:"dormantPct" yaml:"dormantPct"`

	CategoryCounts []NamedCount `json:"categoryCounts" yaml:"categoryCounts"`
	TopCompanies   []NamedCount `json:"topCompanies" yaml:"topCompanies"`
	TopContacts    []NamedCount `json:"topContacts" yaml:"topContacts"`

	YearsBuilding     int         `json:"yearsBuilding" yaml:"yearsBuilding"`
	ConnectionsByYear map[int]int `json:"connectionsByYear" yaml:"connectionsByYear"`

	TotalEndorsements int          `json:"totalEndorsements" yaml:"totalEndorsements"`
	TopEndorsedSkills []NamedCount `json:"topEndorsedSkills" yaml:"topEndorsedSkills"`
	TopEndorsers      []NamedCount `json:"topEndorsers" yaml:"topEndorsers"`

	SkillsListed    int      `json:"skillsListed" yaml:"skillsListed"`
	TopSkillsListed []string `json:"topSkillsListed" yaml:"topSkillsListed"`

	RecommendationsReceived int           `json:"recommendationsReceived" yaml:"recommendationsReceived"`
	TopRecommenders         []Recommender `json:"topRecommenders" yaml:"topRecommenders"`

	TotalPosts   int            `json:"totalPosts" yaml:"totalPosts"`
	PostsByMonth map[string]int `json:"postsByMonth" yaml:"postsByMonth"`
	ThemeCounts  []NamedCount   `json:"themeCounts" yaml:"themeCounts"`
	FirstPost    *time.Time     `json:"firstPost" yaml:"firstPost"`
	LastPost     *time.Time     `json:"lastPost" yaml:"lastPost"`

	Inferences          []string `json:"inferences" yaml:"inferences"`
	AdTargetingSegments int      `json:"adTargetingSegments" yaml:"adTargetingSegments"`
	PositionsHeld       int      `json:"positionsHeld" yaml:"positionsHeld"`
	InvitationsSent     int      `json:"invitationsSent" yaml:"invitationsSent"`
	InvitationsReceived int      `json:"invitationsReceived" yaml:"invitationsReceived"`
}
