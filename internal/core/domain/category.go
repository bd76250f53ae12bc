package domain

// CategoryRule tags contacts whose position or company contains any keyword.
// Matching is a case-insensitive substring test.
type CategoryRule struct {
	Name     string   `json:"name" yaml:"name" toml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords" toml:"keywords"`
}

// Theme buckets post commentary by keyword for content analytics.
type Theme struct {
	Name     string   `json:"name" yaml:"name" toml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords" toml:"keywords"`
}
