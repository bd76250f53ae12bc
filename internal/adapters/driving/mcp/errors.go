// Package mcp provides an MCP (Model Context Protocol) server adapter for linkscope.
// It lets AI assistants run analyses and read archived network snapshots.
package mcp

import "errors"

// ErrMissingAnalysisService is returned when the analysis service is not provided.
var ErrMissingAnalysisService = errors.New("mcp: analysis service is required")

// ErrMissingReportService is returned when the report service is not provided.
var ErrMissingReportService = errors.New("mcp: report service is required")

// ErrSummaryUnavailable is returned by network_summary when no summary service is wired.
var ErrSummaryUnavailable = errors.New("mcp: summary service not configured")
