package driving

import (
	"context"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

// SummaryService reduces an archived run to an AI-ready summary.
type SummaryService interface {
	// Summarize builds a summary of a run. An empty ID selects the latest run.
	Summarize(ctx context.Context, id string, opts SummaryOptions) (*domain.NetworkSummary, error)
}

// SummaryOptions tunes the reduced summary.
type SummaryOptions struct {
	// Anonymize replaces contact names with positional labels.
	Anonymize bool

	// MaxContacts caps each contact list. Zero means the default of 10.
	MaxContacts int
}
