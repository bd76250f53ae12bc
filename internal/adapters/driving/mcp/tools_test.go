package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

func newTestServer(t *testing.T, analysis *mockAnalysisService, reports *mockReportService, summary *mockSummaryService) *Server {
	t.Helper()
	ports := &Ports{Analysis: analysis, Reports: reports}
	if summary != nil {
		ports.Summary = summary
	}
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestHandleAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("returns headline analytics", func(t *testing.T) {
		analysis := &mockAnalysisService{snapshot: testSnapshot()}
		server := newTestServer(t, analysis, &mockReportService{}, nil)

		result, output, err := server.handleAnalyze(ctx, nil, AnalyzeInput{Path: "/tmp/export", DryRun: true})
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, "snap-1", output.SnapshotID)
		assert.Equal(t, "2026-06-15T12:00:00Z", output.CreatedAt)
		assert.Equal(t, 3, output.TotalConnections)
		assert.Equal(t, "33.3", output.EngagementRate)
		assert.Equal(t, 1, output.Strong)
		assert.Equal(t, 1, output.Cold)
		assert.Equal(t, []NamedCount{{Name: "Analytical", Count: 2}}, output.TopCompanies)
		assert.Equal(t, "/tmp/export", analysis.lastPath)
		assert.True(t, analysis.lastOpts.DryRun)
	})

	t.Run("empty path is invalid", func(t *testing.T) {
		server := newTestServer(t, &mockAnalysisService{}, &mockReportService{}, nil)
		_, _, err := server.handleAnalyze(ctx, nil, AnalyzeInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("service error propagates", func(t *testing.T) {
		analysis := &mockAnalysisService{err: domain.ErrNoConnections}
		server := newTestServer(t, analysis, &mockReportService{}, nil)
		_, _, err := server.handleAnalyze(ctx, nil, AnalyzeInput{Path: "x"})
		assert.ErrorIs(t, err, domain.ErrNoConnections)
	})
}

func TestHandleSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("unavailable without summary service", func(t *testing.T) {
		server := newTestServer(t, &mockAnalysisService{}, &mockReportService{}, nil)
		_, _, err := server.handleSummary(ctx, nil, SummaryInput{})
		assert.ErrorIs(t, err, ErrSummaryUnavailable)
	})

	t.Run("passes options and maps output", func(t *testing.T) {
		summary := &mockSummaryService{summary: &domain.NetworkSummary{
			SnapshotID:       "snap-1",
			Anonymized:       true,
			TotalConnections: 3,
			EngagementRate:   "33.3",
			NotableContacts: []domain.SummaryContact{
				{Label: "Contact 1", RelStrength: domain.StrengthStrong, MessageCount: 4},
			},
		}}
		server := newTestServer(t, &mockAnalysisService{}, &mockReportService{}, summary)

		_, output, err := server.handleSummary(ctx, nil, SummaryInput{SnapshotID: "snap-1", Anonymize: true, MaxContacts: 5})
		require.NoError(t, err)
		assert.Equal(t, "snap-1", summary.lastID)
		assert.True(t, summary.lastOpts.Anonymize)
		assert.Equal(t, 5, summary.lastOpts.MaxContacts)
		assert.True(t, output.Anonymized)
		require.Len(t, output.NotableContacts, 1)
		assert.Equal(t, "Contact 1", output.NotableContacts[0].Label)
		assert.Equal(t, "strong", output.NotableContacts[0].Strength)
		assert.NotNil(t, output.Reconnect)
		assert.NotNil(t, output.TopCompanies)
	})

	t.Run("service error propagates", func(t *testing.T) {
		summary := &mockSummaryService{err: domain.ErrNotFound}
		server := newTestServer(t, &mockAnalysisService{}, &mockReportService{}, summary)
		_, _, err := server.handleSummary(ctx, nil, SummaryInput{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestHandleListContacts(t *testing.T) {
	ctx := context.Background()

	t.Run("applies default limit and filters", func(t *testing.T) {
		reports := &mockReportService{contacts: testSnapshot().Contacts}
		server := newTestServer(t, &mockAnalysisService{}, reports, nil)

		_, output, err := server.handleListContacts(ctx, nil, ContactsInput{Strength: "strong", Category: "tech"})
		require.NoError(t, err)
		assert.Equal(t, defaultContactLimit, reports.lastFilter.Limit)
		assert.Equal(t, domain.StrengthStrong, reports.lastFilter.Strength)
		assert.Equal(t, "tech", reports.lastFilter.Category)
		require.Equal(t, 1, output.Count)

		c := output.Contacts[0]
		assert.Equal(t, "Ada Lovelace", c.Name)
		assert.Equal(t, "2026-05-01", c.LastContact)
		assert.Equal(t, []string{"tech"}, c.Categories)
	})

	t.Run("explicit limit wins", func(t *testing.T) {
		reports := &mockReportService{}
		server := newTestServer(t, &mockAnalysisService{}, reports, nil)
		_, output, err := server.handleListContacts(ctx, nil, ContactsInput{Limit: 3, DormantOnly: true})
		require.NoError(t, err)
		assert.Equal(t, 3, reports.lastFilter.Limit)
		assert.True(t, reports.lastFilter.DormantOnly)
		assert.Empty(t, output.Contacts)
		assert.NotNil(t, output.Contacts)
	})

	t.Run("service error propagates", func(t *testing.T) {
		reports := &mockReportService{err: errors.New("boom")}
		server := newTestServer(t, &mockAnalysisService{}, reports, nil)
		_, _, err := server.handleListContacts(ctx, nil, ContactsInput{})
		assert.EqualError(t, err, "boom")
	})
}
