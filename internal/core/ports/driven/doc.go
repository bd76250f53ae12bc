// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TableDecoder: Turns raw delimited text into records
//   - ExportReader: Reads the tables of an export from disk
//   - ConfigStore: Application configuration (category rules, themes)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SnapshotStore: Archives analysis runs. Without it, runs are not kept.
//   - Clock: Supplies "now". Defaults to the system clock.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
