package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driven"
	"github.com/custodia-labs/linkscope/internal/core/ports/driving"
)

// Ensure SummaryService implements the interface.
var _ driving.SummaryService = (*SummaryService)(nil)

// defaultSummaryContacts caps each contact list when no limit is given.
const defaultSummaryContacts = 10

// strengthRank orders strengths for the notable contacts list.
var strengthRank = map[domain.RelStrength]int{
	domain.StrengthStrong: 0,
	domain.StrengthWarm:   1,
	domain.StrengthNew:    2,
	domain.StrengthCold:   3,
}

// SummaryService reduces archived runs to compact summaries.
type SummaryService struct {
	reports driving.ReportService
	config  driven.ConfigStore
	clock   driven.Clock
}

// NewSummaryService creates a new summary service. config is optional and
// supplies summary.max_contacts when a caller gives no limit.
func NewSummaryService(reports driving.ReportService, config driven.ConfigStore, clock driven.Clock) *SummaryService {
	if clock == nil {
		clock = driven.ClockFunc(time.Now)
	}
	return &SummaryService{reports: reports, config: config, clock: clock}
}

// Summarize builds a summary of a run. An empty ID selects the latest run.
func (s *SummaryService) Summarize(
	ctx context.Context,
	id string,
	opts driving.SummaryOptions,
) (*domain.NetworkSummary, error) {
	if s.reports == nil {
		return nil, domain.ErrNotImplemented
	}
	snapshot, err := s.reports.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if opts.MaxContacts <= 0 && s.config != nil {
		opts.MaxContacts = s.config.GetInt(driven.ConfigSummaryMaxContacts)
	}
	return BuildSummary(snapshot, opts, s.clock.Now()), nil
}

// BuildSummary reduces a snapshot. Notable contacts are messaged contacts by
// strength then message count; reconnect candidates are dormant contacts
// that were once messaged.
func BuildSummary(snapshot *domain.Snapshot, opts driving.SummaryOptions, generatedAt time.Time) *domain.NetworkSummary {
	limit := opts.MaxContacts
	if limit <= 0 {
		limit = defaultSummaryContacts
	}
	a := snapshot.Analytics

	summary := &domain.NetworkSummary{
		SnapshotID:        snapshot.ID,
		GeneratedAt:       generatedAt,
		Anonymized:        opts.Anonymize,
		TotalConnections:  a.TotalConnections,
		YearsBuilding:     a.YearsBuilding,
		EngagementRate:    a.EngagementRate,
		DormantCount:      a.DormantCount,
		StrengthCounts:    a.StrengthCounts,
		TopCompanies:      nonNilCounts(a.TopCompanies),
		TopEndorsedSkills: nonNilCounts(a.TopEndorsedSkills),
		Categories:        nonNilCounts(a.CategoryCounts),
		Themes:            nonNilCounts(a.ThemeCounts),
		TotalPosts:        a.TotalPosts,
	}

	var notable, reconnect []*domain.ContactProfile
	for i := range snapshot.Contacts {
		c := &snapshot.Contacts[i]
		if c.MessageCount == 0 {
			continue
		}
		if c.IsDormant {
			reconnect = append(reconnect, c)
		} else {
			notable = append(notable, c)
		}
	}

	sort.SliceStable(notable, func(i, j int) bool {
		ri, rj := strengthRank[notable[i].RelStrength], strengthRank[notable[j].RelStrength]
		if ri != rj {
			return ri < rj
		}
		return notable[i].MessageCount > notable[j].MessageCount
	})
	sort.SliceStable(reconnect, func(i, j int) bool {
		return reconnect[i].MessageCount > reconnect[j].MessageCount
	})

	labels := newLabeler(opts.Anonymize)
	summary.NotableContacts = summarizeContacts(notable, limit, labels)
	summary.Reconnect = summarizeContacts(reconnect, limit, labels)
	return summary
}

func summarizeContacts(contacts []*domain.ContactProfile, limit int, labels *labeler) []domain.SummaryContact {
	if len(contacts) > limit {
		contacts = contacts[:limit]
	}
	out := make([]domain.SummaryContact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, domain.SummaryContact{
			Label:        labels.label(c),
			Position:     c.Position,
			Company:      c.Company,
			RelStrength:  c.RelStrength,
			MessageCount: c.MessageCount,
			IsDormant:    c.IsDormant,
		})
	}
	return out
}

// labeler hands out stable "Contact N" labels when anonymizing.
type labeler struct {
	anonymize bool
	assigned  map[string]string
}

func newLabeler(anonymize bool) *labeler {
	return &labeler{anonymize: anonymize, assigned: make(map[string]string)}
}

func (l *labeler) label(c *domain.ContactProfile) string {
	if !l.anonymize {
		return c.Name
	}
	if existing, ok := l.assigned[c.ID]; ok {
		return existing
	}
	label := fmt.Sprintf("Contact %d", len(l.assigned)+1)
	l.assigned[c.ID] = label
	return label
}

func nonNilCounts(in []domain.NamedCount) []domain.NamedCount {
	if in == nil {
		return []domain.NamedCount{}
	}
	return in
}
