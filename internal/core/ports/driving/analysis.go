package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

// AnalysisService runs the analytics engine over an export.
type AnalysisService interface {
	// Analyze reads the export at path and produces a snapshot.
	// Returns domain.ErrNoConnections if the export has no connections.
	Analyze(ctx context.Context, path string, opts AnalyzeOptions) (*domain.Snapshot, error)

	// AnalyzeExport runs the engine over tables already in memory.
	AnalyzeExport(ctx context.Context, export *domain.Export, opts AnalyzeOptions) (*domain.Snapshot, error)
}

// AnalyzeOptions tunes one analysis run.
type AnalyzeOptions struct {
	// Now overrides the clock. Zero means read the service clock.
	Now time.Time

	// DryRun skips archiving the snapshot.
	DryRun bool
}
