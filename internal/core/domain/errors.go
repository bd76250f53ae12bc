package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrMalformedInput indicates a table could not be decoded at all,
	// e.g. the content is not text.
	ErrMalformedInput = errors.New("malformed input")

	// ErrNoConnections indicates the export has no connection records.
	// Analysis cannot proceed without them.
	ErrNoConnections = errors.New("no connections found")

	// ErrExportUnreadable indicates the export path is neither a directory
	// nor a readable archive.
	ErrExportUnreadable = errors.New("export unreadable")
)
