// Package tui provides the terminal dashboard for browsing an archived run.
package tui

import (
	"github.com/custodia-labs/linkscope/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI needs.
type Ports struct {
	// Reports loads archived runs.
	Reports driving.ReportService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Reports == nil {
		return ErrMissingReportService
	}
	return nil
}
