package driving

import "github.com/custodia-labs/linkscope/internal/core/domain"

// CategoryService manages user-configured category rules and post themes.
type CategoryService interface {
	// List returns all category rules, ordered by name.
	List() ([]domain.CategoryRule, error)

	// Add creates or replaces a category rule.
	Add(rule domain.CategoryRule) error

	// Remove deletes a category rule.
	// Returns domain.ErrNotFound if no rule has that name.
	Remove(name string) error

	// Themes returns the post themes, falling back to the built-in dictionary.
	Themes() ([]domain.Theme, error)
}
