package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driving"
)

// mockAnalysisService is a mock implementation of driving.AnalysisService.
type mockAnalysisService struct {
	snapshot *domain.Snapshot
	err      error
	lastPath string
	lastOpts driving.AnalyzeOptions
}

func (m *mockAnalysisService) Analyze(
	_ context.Context,
	path string,
	opts driving.AnalyzeOptions,
) (*domain.Snapshot, error) {
	m.lastPath = path
	m.lastOpts = opts
	return m.snapshot, m.err
}

func (m *mockAnalysisService) AnalyzeExport(
	_ context.Context,
	_ *domain.Export,
	opts driving.AnalyzeOptions,
) (*domain.Snapshot, error) {
	m.lastOpts = opts
	return m.snapshot, m.err
}

// mockReportService is a mock implementation of driving.ReportService.
type mockReportService struct {
	infos      []domain.SnapshotInfo
	snapshot   *domain.Snapshot
	contacts   []domain.ContactProfile
	err        error
	lastID     string
	lastFilter domain.ContactFilter
}

func (m *mockReportService) List(_ context.Context) ([]domain.SnapshotInfo, error) {
	return m.infos, m.err
}

func (m *mockReportService) Get(_ context.Context, id string) (*domain.Snapshot, error) {
	m.lastID = id
	return m.snapshot, m.err
}

func (m *mockReportService) Contacts(
	_ context.Context,
	id string,
	filter domain.ContactFilter,
) ([]domain.ContactProfile, error) {
	m.lastID = id
	m.lastFilter = filter
	return m.contacts, m.err
}

func (m *mockReportService) Delete(_ context.Context, id string) error {
	m.lastID = id
	return m.err
}

// mockSummaryService is a mock implementation of driving.SummaryService.
type mockSummaryService struct {
	summary  *domain.NetworkSummary
	err      error
	lastID   string
	lastOpts driving.SummaryOptions
}

func (m *mockSummaryService) Summarize(
	_ context.Context,
	id string,
	opts driving.SummaryOptions,
) (*domain.NetworkSummary, error) {
	m.lastID = id
	m.lastOpts = opts
	return m.summary, m.err
}

func testSnapshot() *domain.Snapshot {
	last := "2026-05-01"
	return &domain.Snapshot{
		ID:        "snap-1",
		Source:    "/tmp/export",
		CreatedAt: time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC),
		Contacts: []domain.ContactProfile{
			{
				ID:           "c1",
				Name:         "Ada Lovelace",
				Position:     "Engineer",
				Company:      "Analytical",
				RelStrength:  domain.StrengthStrong,
				MessageCount: 4,
				LastContact:  &last,
				Categories:   map[string]bool{"tech": true, "vc": false},
			},
		},
		Analytics: domain.NetworkAnalytics{
			TotalConnections: 3,
			Messaged:         1,
			EngagementRate:   "33.3",
			DormantCount:     1,
			StrengthCounts:   domain.StrengthCounts{Strong: 1, New: 1, Cold: 1},
			TopCompanies:     []domain.NamedCount{{Name: "Analytical", Count: 2}},
		},
	}
}
