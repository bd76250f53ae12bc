package analytics

import "github.com/custodia-labs/linkscope/internal/core/domain"

// DefaultThemes returns the built-in post theme dictionary.
func DefaultThemes() []domain.Theme {
	return []domain.Theme{
		{Name: "Leadership", Keywords: []string{"leader", "leadership", "management", "mentor", "team"}},
		{Name: "Career", Keywords: []string{"hiring", "job", "career", "new role", "opportunity", "promoted"}},
		{Name: "Technology", Keywords: []string{"software", "engineering", "cloud", "data", "machine learning", "artificial intelligence"}},
		{Name: "Learning", Keywords: []string{"learn", "course", "certification", "training", "book"}},
		{Name: "Achievement", Keywords: []string{"proud", "excited", "award", "milestone", "congrat"}},
		{Name: "Events", Keywords: []string{"conference", "webinar", "summit", "meetup", "speaking"}},
	}
}
