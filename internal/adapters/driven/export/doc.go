// Package export reads a professional-network data export from disk.
//
// An export is either an extracted directory or the original .zip archive.
// Known files are matched by base name, case-insensitively, anywhere in the
// tree; each is decoded with the tabular decoder. Files that are missing
// leave their table nil.
package export
