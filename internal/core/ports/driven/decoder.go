package driven

import "github.com/custodia-labs/linkscope/internal/core/domain"

// TableDecoder turns the raw text of one exported table into records.
type TableDecoder interface {
	// Decode parses content into one record per data row.
	// Returns domain.ErrMalformedInput when content is not text.
	Decode(content []byte) ([]domain.Record, error)
}
