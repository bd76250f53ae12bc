package analytics

import (
	"fmt"
	"time"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

// Input is everything one analysis run depends on.
type Input struct {
	Export *domain.Export
	Rules  []domain.CategoryRule

	// Themes defaults to DefaultThemes when nil.
	Themes []domain.Theme

	// Now is the single wall-clock reading the whole run classifies against.
	Now time.Time
}

// Result is the output of one analysis run.
type Result struct {
	Contacts  []domain.ContactProfile
	Analytics domain.NetworkAnalytics
}

// Run executes the full pipeline: indexers, enrichment, aggregation.
func Run(in Input) (*Result, error) {
	if in.Export == nil {
		return nil, domain.ErrNoConnections
	}
	if in.Now.IsZero() {
		return nil, fmt.Errorf("%w: analysis time is required", domain.ErrInvalidInput)
	}

	idx := Indexes{
		Messages:     BuildMessageIndex(in.Export.Messages),
		Endorsements: BuildEndorsementIndex(in.Export.Endorsements),
	}

	contacts, err := Enrich(in.Export.Connections, idx, in.Rules, in.Now)
	if err != nil {
		return nil, err
	}

	themes := in.Themes
	if themes == nil {
		themes = DefaultThemes()
	}

	return &Result{
		Contacts:  contacts,
		Analytics: Aggregate(contacts, in.Export, in.Rules, themes, in.Now),
	}, nil
}
