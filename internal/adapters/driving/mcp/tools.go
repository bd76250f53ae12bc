package mcp

import (
	"context"
	"sort"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driving"
)

// defaultContactLimit caps list_contacts when no limit is given.
const defaultContactLimit = 25

// AnalyzeInput is the input schema for the analyze_export tool.
type AnalyzeInput struct {
	Path   string `json:"path" jsonschema:"path to the export directory or zip archive"`
	DryRun bool   `json:"dry_run,omitempty" jsonschema:"analyse without archiving the snapshot"`
}

// AnalyzeOutput is the output schema for the analyze_export tool.
type AnalyzeOutput struct {
	SnapshotID       string       `json:"snapshot_id"`
	CreatedAt        string       `json:"created_at"`
	TotalConnections int          `json:"total_connections"`
	Messaged         int          `json:"messaged"`
	EngagementRate   string       `json:"engagement_rate"`
	DormantCount     int          `json:"dormant_count"`
	Strong           int          `json:"strong"`
	Warm             int          `json:"warm"`
	New              int          `json:"new"`
	Cold             int          `json:"cold"`
	TopCompanies     []NamedCount `json:"top_companies"`
}

// NamedCount is a label with its count.
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SummaryInput is the input schema for the network_summary tool.
type SummaryInput struct {
	SnapshotID  string `json:"snapshot_id,omitempty" jsonschema:"snapshot to summarise (default latest)"`
	Anonymize   bool   `json:"anonymize,omitempty" jsonschema:"replace contact names with positional labels"`
	MaxContacts int    `json:"max_contacts,omitempty" jsonschema:"cap on each contact list (default summary.max_contacts, else 10)"`
}

// SummaryOutput is the output schema for the network_summary tool.
type SummaryOutput struct {
	SnapshotID        string           `json:"snapshot_id"`
	Anonymized        bool             `json:"anonymized"`
	TotalConnections  int              `json:"total_connections"`
	YearsBuilding     int              `json:"years_building"`
	EngagementRate    string           `json:"engagement_rate"`
	DormantCount      int              `json:"dormant_count"`
	TopCompanies      []NamedCount     `json:"top_companies"`
	TopEndorsedSkills []NamedCount     `json:"top_endorsed_skills"`
	Categories        []NamedCount     `json:"categories"`
	Themes            []NamedCount     `json:"themes"`
	TotalPosts        int              `json:"total_posts"`
	NotableContacts   []ContactSummary `json:"notable_contacts"`
	Reconnect         []ContactSummary `json:"reconnect"`
}

// ContactSummary is one contact in a summary.
type ContactSummary struct {
	Label        string `json:"label"`
	Position     string `json:"position,omitempty"`
	Company      string `json:"company,omitempty"`
	Strength     string `json:"strength"`
	MessageCount int    `json:"message_count"`
	Dormant      bool   `json:"dormant"`
}

// ContactsInput is the input schema for the list_contacts tool.
type ContactsInput struct {
	SnapshotID  string `json:"snapshot_id,omitempty" jsonschema:"snapshot to read (default latest)"`
	Strength    string `json:"strength,omitempty" jsonschema:"filter by strength: strong, warm, new or cold"`
	DormantOnly bool   `json:"dormant_only,omitempty" jsonschema:"only contacts silent for over twelve months"`
	Category    string `json:"category,omitempty" jsonschema:"only contacts tagged with this category"`
	Limit       int    `json:"limit,omitempty" jsonschema:"maximum number of contacts (default 25)"`
}

// ContactsOutput is the output schema for the list_contacts tool.
type ContactsOutput struct {
	Contacts []ContactOutput `json:"contacts"`
	Count    int             `json:"count"`
}

// ContactOutput represents a single contact.
type ContactOutput struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Position     string   `json:"position,omitempty"`
	Company      string   `json:"company,omitempty"`
	ConnectedOn  string   `json:"connected_on,omitempty"`
	Strength     string   `json:"strength"`
	MessageCount int      `json:"message_count"`
	LastContact  string   `json:"last_contact,omitempty"`
	Dormant      bool     `json:"dormant"`
	Skills       []string `json:"endorsed_skills,omitempty"`
	Categories   []string `json:"categories,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_export",
		Description: "Analyse a professional-network data export and archive the result",
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "network_summary",
		Description: "Summarise an archived analysis: headline stats and notable contacts",
	}, s.handleSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_contacts",
		Description: "List enriched contacts of an archived analysis with optional filters",
	}, s.handleListContacts)
}

// handleAnalyze handles the analyze_export tool invocation.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	if input.Path == "" {
		return nil, AnalyzeOutput{}, domain.ErrInvalidInput
	}

	snap, err := s.ports.Analysis.Analyze(ctx, input.Path, driving.AnalyzeOptions{DryRun: input.DryRun})
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	a := snap.Analytics
	return nil, AnalyzeOutput{
		SnapshotID:       snap.ID,
		CreatedAt:        snap.CreatedAt.Format(time.RFC3339),
		TotalConnections: a.TotalConnections,
		Messaged:         a.Messaged,
		EngagementRate:   a.EngagementRate,
		DormantCount:     a.DormantCount,
		Strong:           a.StrengthCounts.Strong,
		Warm:             a.StrengthCounts.Warm,
		New:              a.StrengthCounts.New,
		Cold:             a.StrengthCounts.Cold,
		TopCompanies:     toNamedCounts(a.TopCompanies),
	}, nil
}

// handleSummary handles the network_summary tool invocation.
func (s *Server) handleSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummaryInput,
) (*mcp.CallToolResult, SummaryOutput, error) {
	if s.ports.Summary == nil {
		return nil, SummaryOutput{}, ErrSummaryUnavailable
	}

	sum, err := s.ports.Summary.Summarize(ctx, input.SnapshotID, driving.SummaryOptions{
		Anonymize:   input.Anonymize,
		MaxContacts: input.MaxContacts,
	})
	if err != nil {
		return nil, SummaryOutput{}, err
	}

	return nil, SummaryOutput{
		SnapshotID:        sum.SnapshotID,
		Anonymized:        sum.Anonymized,
		TotalConnections:  sum.TotalConnections,
		YearsBuilding:     sum.YearsBuilding,
		EngagementRate:    sum.EngagementRate,
		DormantCount:      sum.DormantCount,
		TopCompanies:      toNamedCounts(sum.TopCompanies),
		TopEndorsedSkills: toNamedCounts(sum.TopEndorsedSkills),
		Categories:        toNamedCounts(sum.Categories),
		Themes:            toNamedCounts(sum.Themes),
		TotalPosts:        sum.TotalPosts,
		NotableContacts:   toContactSummaries(sum.NotableContacts),
		Reconnect:         toContactSummaries(sum.Reconnect),
	}, nil
}

// handleListContacts handles the list_contacts tool invocation.
func (s *Server) handleListContacts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ContactsInput,
) (*mcp.CallToolResult, ContactsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultContactLimit
	}

	contacts, err := s.ports.Reports.Contacts(ctx, input.SnapshotID, domain.ContactFilter{
		Strength:    domain.RelStrength(input.Strength),
		DormantOnly: input.DormantOnly,
		Category:    input.Category,
		Limit:       limit,
	})
	if err != nil {
		return nil, ContactsOutput{}, err
	}

	output := ContactsOutput{
		Contacts: make([]ContactOutput, len(contacts)),
		Count:    len(contacts),
	}
	for i := range contacts {
		output.Contacts[i] = toContactOutput(&contacts[i])
	}
	return nil, output, nil
}

func toContactOutput(c *domain.ContactProfile) ContactOutput {
	out := ContactOutput{
		ID:           c.ID,
		Name:         c.Name,
		Position:     c.Position,
		Company:      c.Company,
		ConnectedOn:  c.ConnectedOn,
		Strength:     string(c.RelStrength),
		MessageCount: c.MessageCount,
		Dormant:      c.IsDormant,
		Skills:       c.EndorsedSkills,
	}
	if c.LastContact != nil {
		out.LastContact = *c.LastContact
	}
	for name, matched := range c.Categories {
		if matched {
			out.Categories = append(out.Categories, name)
		}
	}
	sort.Strings(out.Categories)
	return out
}

func toNamedCounts(in []domain.NamedCount) []NamedCount {
	out := make([]NamedCount, len(in))
	for i, nc := range in {
		out[i] = NamedCount{Name: nc.Name, Count: nc.Count}
	}
	return out
}

func toContactSummaries(in []domain.SummaryContact) []ContactSummary {
	out := make([]ContactSummary, len(in))
	for i, c := range in {
		out[i] = ContactSummary{
			Label:        c.Label,
			Position:     c.Position,
			Company:      c.Company,
			Strength:     string(c.RelStrength),
			MessageCount: c.MessageCount,
			Dormant:      c.IsDormant,
		}
	}
	return out
}
