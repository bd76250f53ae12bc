package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for linkscope resources.
	uriScheme = "linkscope://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing snapshots.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "snapshots",
		Name:        "snapshots",
		Description: "Archived analysis runs, newest first",
		MIMEType:    "application/json",
	}, s.handleSnapshotsResource)

	// Template for one snapshot's analytics.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "snapshots/{snapshotId}",
		Name:        "snapshot-analytics",
		Description: "Network analytics of one archived run (\"latest\" for the newest)",
		MIMEType:    "application/json",
	}, s.handleSnapshotResource)
}

// handleSnapshotsResource returns the snapshot listing.
func (s *Server) handleSnapshotsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	infos, err := s.ports.Reports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	return jsonResource(req.Params.URI, infos)
}

// handleSnapshotResource returns the analytics of one snapshot.
func (s *Server) handleSnapshotResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, ok := extractSnapshotID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if id == "latest" {
		id = ""
	}

	snap, err := s.ports.Reports.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting snapshot: %w", err)
	}
	return jsonResource(req.Params.URI, snap.Analytics)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSnapshotID extracts the ID from a URI like linkscope://snapshots/{snapshotId}.
func extractSnapshotID(uri string) (string, bool) {
	const prefix = uriScheme + "snapshots/"

	if !strings.HasPrefix(uri, prefix) {
		return "", false
	}
	id := strings.TrimPrefix(uri, prefix)
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}
