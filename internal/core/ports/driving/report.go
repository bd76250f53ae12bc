package driving

import (
	"context"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

// ReportService reads archived analysis runs.
type ReportService interface {
	// List returns all archived runs, newest first.
	List(ctx context.Context) ([]domain.SnapshotInfo, error)

	// Get retrieves a run by ID. An empty ID selects the latest run.
	Get(ctx context.Context, id string) (*domain.Snapshot, error)

	// Contacts returns the contacts of a run that pass the filter.
	// An empty ID selects the latest run.
	Contacts(ctx context.Context, id string, filter domain.ContactFilter) ([]domain.ContactProfile, error)

	// Delete removes an archived run.
	Delete(ctx context.Context, id string) error
}
