package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/linkscope/internal/core/analytics"
	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driven"
	"github.com/custodia-labs/linkscope/internal/core/ports/driving"
)

// Ensure CategoryService implements the interface.
var _ driving.CategoryService = (*CategoryService)(nil)

// Config key prefixes for rule storage.
const (
	keyCategories = "categories"
	keyThemes     = "themes"
)

// CategoryService stores category rules and post themes in the config store
// as "categories.<name> = [keywords]" and "themes.<name> = [keywords]".
// TOML tables are unordered, so rules are always returned sorted by name.
type CategoryService struct {
	configStore driven.ConfigStore
}

// NewCategoryService creates a new category service.
func NewCategoryService(configStore driven.ConfigStore) *CategoryService {
	return &CategoryService{configStore: configStore}
}

// List returns all category rules, ordered by name.
func (s *CategoryService) List() ([]domain.CategoryRule, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.load(keyCategories), nil
}

// Add creates or replaces a category rule.
func (s *CategoryService) Add(rule domain.CategoryRule) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	name, err := validateRuleName(rule.Name)
	if err != nil {
		return err
	}
	keywords := cleanKeywords(rule.Keywords)
	if len(keywords) == 0 {
		return fmt.Errorf("%w: category %q needs at least one keyword", domain.ErrInvalidInput, name)
	}

	if err := s.configStore.Set(keyCategories+"."+name, keywords); err != nil {
		return fmt.Errorf("save category %s: %w", name, err)
	}
	return nil
}

// Remove deletes a category rule.
func (s *CategoryService) Remove(name string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	key := keyCategories + "." + strings.TrimSpace(name)
	if _, ok := s.configStore.Get(key); !ok {
		return fmt.Errorf("category %s: %w", name, domain.ErrNotFound)
	}
	if err := s.configStore.Delete(key); err != nil {
		return fmt.Errorf("delete category %s: %w", name, err)
	}
	return nil
}

// Themes returns configured post themes, or the built-in dictionary when
// none are configured.
func (s *CategoryService) Themes() ([]domain.Theme, error) {
	if s.configStore == nil {
		return analytics.DefaultThemes(), nil
	}

	rules := s.load(keyThemes)
	if len(rules) == 0 {
		return analytics.DefaultThemes(), nil
	}

	themes := make([]domain.Theme, 0, len(rules))
	for _, r := range rules {
		themes = append(themes, domain.Theme{Name: r.Name, Keywords: r.Keywords})
	}
	return themes, nil
}

// load reads every "<prefix>.<name>" key. Keys come back sorted.
func (s *CategoryService) load(prefix string) []domain.CategoryRule {
	keys := s.configStore.Keys(prefix)
	rules := make([]domain.CategoryRule, 0, len(keys))
	for _, key := range keys {
		name := strings.TrimPrefix(key, prefix+".")
		keywords := cleanKeywords(s.configStore.GetStringSlice(key))
		if name == "" || len(keywords) == 0 {
			continue
		}
		rules = append(rules, domain.CategoryRule{Name: name, Keywords: keywords})
	}
	return rules
}

func validateRuleName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: category name is required", domain.ErrInvalidInput)
	}
	if strings.ContainsAny(name, ". \t") {
		return "", fmt.Errorf("%w: category name %q may not contain dots or spaces", domain.ErrInvalidInput, name)
	}
	return name, nil
}

func cleanKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
