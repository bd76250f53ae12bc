package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestHandleSnapshotsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("lists snapshots as json", func(t *testing.T) {
		reports := &mockReportService{infos: []domain.SnapshotInfo{testSnapshot().Info()}}
		server := newTestServer(t, &mockAnalysisService{}, reports, nil)

		result, err := server.handleSnapshotsResource(ctx, readRequest("linkscope://snapshots"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var infos []domain.SnapshotInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
		require.Len(t, infos, 1)
		assert.Equal(t, "snap-1", infos[0].ID)
	})

	t.Run("service error propagates", func(t *testing.T) {
		reports := &mockReportService{err: errors.New("db closed")}
		server := newTestServer(t, &mockAnalysisService{}, reports, nil)
		_, err := server.handleSnapshotsResource(ctx, readRequest("linkscope://snapshots"))
		assert.ErrorContains(t, err, "db closed")
	})
}

func TestHandleSnapshotResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns analytics", func(t *testing.T) {
		reports := &mockReportService{snapshot: testSnapshot()}
		server := newTestServer(t, &mockAnalysisService{}, reports, nil)

		result, err := server.handleSnapshotResource(ctx, readRequest("linkscope://snapshots/snap-1"))
		require.NoError(t, err)
		assert.Equal(t, "snap-1", reports.lastID)

		var analytics domain.NetworkAnalytics
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &analytics))
		assert.Equal(t, 3, analytics.TotalConnections)
	})

	t.Run("latest maps to empty id", func(t *testing.T) {
		reports := &mockReportService{snapshot: testSnapshot()}
		server := newTestServer(t, &mockAnalysisService{}, reports, nil)
		_, err := server.handleSnapshotResource(ctx, readRequest("linkscope://snapshots/latest"))
		require.NoError(t, err)
		assert.Equal(t, "", reports.lastID)
	})

	t.Run("missing snapshot is not found", func(t *testing.T) {
		reports := &mockReportService{err: domain.ErrNotFound}
		server := newTestServer(t, &mockAnalysisService{}, reports, nil)
		_, err := server.handleSnapshotResource(ctx, readRequest("linkscope://snapshots/nope"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestExtractSnapshotID(t *testing.T) {
	tests := []struct {
		uri    string
		wantID string
		wantOK bool
	}{
		{"linkscope://snapshots/abc", "abc", true},
		{"linkscope://snapshots/", "", false},
		{"linkscope://snapshots/a/b", "", false},
		{"other://snapshots/abc", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			id, ok := extractSnapshotID(tt.uri)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
