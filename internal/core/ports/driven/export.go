package driven

import (
	"context"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

// ExportReader reads the tables of a data export.
// Missing tables are not an error; they are left nil on the Export.
type ExportReader interface {
	// Read loads every known table found at path (a directory or archive).
	Read(ctx context.Context, path string) (*domain.Export, error)
}
