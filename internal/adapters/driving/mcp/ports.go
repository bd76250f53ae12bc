package mcp

import (
	"github.com/custodia-labs/linkscope/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analysis runs the analytics engine.
	Analysis driving.AnalysisService

	// Reports reads archived runs.
	Reports driving.ReportService

	// Summary builds reduced summaries. Optional.
	Summary driving.SummaryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	if p.Reports == nil {
		return ErrMissingReportService
	}
	return nil
}
