// Package domain defines the core business entities for linkscope.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: One decoded row of an exported table
//   - Export: The named tables of one network data export
//   - ContactProfile: A connection enriched with interaction facts
//   - NetworkAnalytics: The aggregate statistics of one analysis run
//   - Snapshot: An archived analysis run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
