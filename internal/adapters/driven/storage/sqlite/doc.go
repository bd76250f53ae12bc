// Package sqlite provides the SQLite-backed snapshot archive.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Contacts and analytics are stored as JSON documents; the listing columns
// are denormalised so List never decodes them.
//
// # Data Location
//
// By default, the database is stored at ~/.linkscope/data/snapshots.db
package sqlite
