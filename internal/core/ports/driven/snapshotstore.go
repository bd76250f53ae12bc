package driven

import (
	"context"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

// SnapshotStore archives analysis runs.
type SnapshotStore interface {
	// Save stores a snapshot, replacing any with the same ID.
	Save(ctx context.Context, snapshot *domain.Snapshot) error

	// Get retrieves a snapshot by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Snapshot, error)

	// Latest retrieves the most recently created snapshot.
	// Returns domain.ErrNotFound if the archive is empty.
	Latest(ctx context.Context) (*domain.Snapshot, error)

	// List returns listing views of all snapshots, newest first.
	List(ctx context.Context) ([]domain.SnapshotInfo, error)

	// Delete removes a snapshot.
	Delete(ctx context.Context, id string) error
}
