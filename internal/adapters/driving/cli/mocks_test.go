package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driving"
)

type mockAnalysisService struct {
	snapshot *domain.Snapshot
	err      error
	lastPath string
	lastOpts driving.AnalyzeOptions
}

func (m *mockAnalysisService) Analyze(_ context.Context, path string, opts driving.AnalyzeOptions) (*domain.Snapshot, error) {
	m.lastPath = path
	m.lastOpts = opts
	return m.snapshot, m.err
}

func (m *mockAnalysisService) AnalyzeExport(_ context.Context, _ *domain.Export, opts driving.AnalyzeOptions) (*domain.Snapshot, error) {
	m.lastOpts = opts
	return m.snapshot, m.err
}

type mockReportService struct {
	infos      []domain.SnapshotInfo
	snapshot   *domain.Snapshot
	contacts   []domain.ContactProfile
	err        error
	lastID     string
	lastFilter domain.ContactFilter
	deleted    []string
}

func (m *mockReportService) List(_ context.Context) ([]domain.SnapshotInfo, error) {
	return m.infos, m.err
}

func (m *mockReportService) Get(_ context.Context, id string) (*domain.Snapshot, error) {
	m.lastID = id
	return m.snapshot, m.err
}

func (m *mockReportService) Contacts(_ context.Context, id string, filter domain.ContactFilter) ([]domain.ContactProfile, error) {
	m.lastID = id
	m.lastFilter = filter
	return m.contacts, m.err
}

func (m *mockReportService) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockCategoryService struct {
	rules   []domain.CategoryRule
	themes  []domain.Theme
	err     error
	added   []domain.CategoryRule
	removed []string
}

func (m *mockCategoryService) List() ([]domain.CategoryRule, error) { return m.rules, m.err }

func (m *mockCategoryService) Add(rule domain.CategoryRule) error {
	if m.err != nil {
		return m.err
	}
	m.added = append(m.added, rule)
	return nil
}

func (m *mockCategoryService) Remove(name string) error {
	if m.err != nil {
		return m.err
	}
	m.removed = append(m.removed, name)
	return nil
}

func (m *mockCategoryService) Themes() ([]domain.Theme, error) { return m.themes, m.err }

type mockSummaryService struct {
	summary  *domain.NetworkSummary
	err      error
	lastID   string
	lastOpts driving.SummaryOptions
}

func (m *mockSummaryService) Summarize(_ context.Context, id string, opts driving.SummaryOptions) (*domain.NetworkSummary, error) {
	m.lastID = id
	m.lastOpts = opts
	return m.summary, m.err
}

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	analysis   *mockAnalysisService
	reports    *mockReportService
	categories *mockCategoryService
	summary    *mockSummaryService
}

// setupTestServices installs fresh mocks and returns them with a restore func.
func setupTestServices() (*testServices, func()) {
	oldAnalysis, oldReports := analysisService, reportService
	oldCategories, oldSummary := categoryService, summaryService

	ts := &testServices{
		analysis:   &mockAnalysisService{snapshot: testSnapshot()},
		reports:    &mockReportService{snapshot: testSnapshot(), contacts: testSnapshot().Contacts},
		categories: &mockCategoryService{},
		summary:    &mockSummaryService{summary: &domain.NetworkSummary{SnapshotID: "snap-1"}},
	}
	SetServices(&Services{
		Analysis:   ts.analysis,
		Reports:    ts.reports,
		Categories: ts.categories,
		Summary:    ts.summary,
	})

	return ts, func() {
		analysisService, reportService = oldAnalysis, oldReports
		categoryService, summaryService = oldCategories, oldSummary
	}
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
			},
			{
				ID:          "c2",
				Name:        "Charles Babbage",
				Company:     "Difference",
				RelStrength: domain.StrengthCold,
				IsDormant:   true,
			},
		},
		Analytics: domain.NetworkAnalytics{
			TotalConnections: 1234,
			Messaged:         1,
			EngagementRate:   "33.3",
			NeverMessagedPct: "67",
			DormantCount:     1,
			DormantPct:       "33",
			StrengthCounts:   domain.StrengthCounts{Strong: 1, New: 1, Cold: 1},
			TopCompanies:     []domain.NamedCount{{Name: "Analytical", Count: 2}},
		},
	}
}
