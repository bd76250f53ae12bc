package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

// Relationship thresholds.
const (
	// strongMinMessages is the message count at which a contact is strong.
	strongMinMessages = 3

	// warmMinMessages is the message count at which a contact is warm.
	warmMinMessages = 1

	// newWithinDays is how recent an unmessaged connection must be to count
	// as new: six 30-day months.
	newWithinDays = 6 * daysPerMonth

	// dormantAfterDays is how long a contact may go silent before turning
	// dormant: twelve 30-day months.
	dormantAfterDays = 12 * daysPerMonth
)

// contactNamespace scopes contact IDs so they never collide with other UUIDv5 uses.
var contactNamespace = uuid.MustParse("7b4c2f6e-3d1a-5c8b-9e0f-1a2b3c4d5e6f")

// Indexes bundles the cross-reference indexes enrichment joins against.
type Indexes struct {
	Messages     MessageIndex
	Endorsements EndorsementIndex
}

// Enrich builds one ContactProfile per connection record, in source order.
//
// Missing optional fields never fail enrichment. An empty connection list
// is a caller precondition violation and returns domain.ErrNoConnections.
func Enrich(
	connections []domain.Record,
	idx Indexes,
	rules []domain.CategoryRule,
	now time.Time,
) ([]domain.ContactProfile, error) {
	if len(connections) == 0 {
		return nil, domain.ErrNoConnections
	}

	profiles := make([]domain.ContactProfile, 0, len(connections))
	for i, rec := range connections {
		profiles = append(profiles, enrichOne(i, rec, idx, rules, now))
	}
	return profiles, nil
}

func enrichOne(
	row int,
	rec domain.Record,
	idx Indexes,
	rules []domain.CategoryRule,
	now time.Time,
) domain.ContactProfile {
	first := strings.TrimSpace(rec.Get(domain.FieldFirstName))
	last := strings.TrimSpace(rec.Get(domain.FieldLastName))
	name := JoinName(first, last)
	position := rec.Get(domain.FieldPosition)
	company := rec.Get(domain.FieldCompany)
	connectedOn := rec.Get(domain.FieldConnectedOn)

	msg := idx.Messages.Lookup(name)
	end := idx.Endorsements.Lookup(name)

	p := domain.ContactProfile{
		ID:               contactID(row, name, connectedOn),
		Name:             name,
		FirstName:        first,
		LastName:         last,
		Position:         position,
		Company:          company,
		ProfileURL:       rec.Get(domain.FieldURL),
		Email:            rec.Get(domain.FieldEmail),
		ConnectedOn:      connectedOn,
		MessageCount:     msg.Count,
		EndorsedSkills:   append(make([]string, 0, len(end.Skills)), end.Skills...),
		EndorsementCount: end.Count,
		Categories:       MatchCategories(rules, position, company),
	}

	if t, ok := ParseDate(connectedOn); ok {
		p.ConnectedDate = &t
	}
	if msg.LastDate != "" {
		lastDate := msg.LastDate
		p.LastContact = &lastDate
	}

	p.RelStrength = ClassifyStrength(p.MessageCount, p.ConnectedDate, now)

	signal := dormancySignal(p.LastContact, p.ConnectedDate)
	p.IsDormant = IsDormant(signal, now)
	if signal != nil {
		days := elapsedDays(*signal, now)
		p.DaysSinceContact = &days
	}

	return p
}

// ClassifyStrength assigns a relationship strength. Rules are checked in
// priority order: strong, warm, new, then cold.
func ClassifyStrength(messageCount int, connected *time.Time, now time.Time) domain.RelStrength {
	switch {
	case messageCount >= strongMinMessages:
		return domain.StrengthStrong
	case messageCount >= warmMinMessages:
		return domain.StrengthWarm
	case connected != nil && elapsedDays(*connected, now) <= newWithinDays:
		return domain.StrengthNew
	default:
		return domain.StrengthCold
	}
}

// IsDormant reports whether more than twelve 30-day months separate the
// last contact signal from now. A missing signal is never dormant.
func IsDormant(signal *time.Time, now time.Time) bool {
	if signal == nil {
		return false
	}
	return elapsedDays(*signal, now) > dormantAfterDays
}

// dormancySignal picks the last message date when it parses, else the
// connection date.
func dormancySignal(lastContact *string, connected *time.Time) *time.Time {
	if lastContact != nil {
		if t, ok := ParseDate(*lastContact); ok {
			return &t
		}
	}
	return connected
}

// MatchCategories evaluates every rule against "position company".
// Matching is a case-insensitive substring test; blank keywords never match.
func MatchCategories(rules []domain.CategoryRule, position, company string) map[string]bool {
	matches := make(map[string]bool, len(rules))
	haystack := strings.ToLower(position + " " + company)
	for _, rule := range rules {
		matched := false
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" && strings.Contains(haystack, kw) {
				matched = true
				break
			}
		}
		matches[rule.Name] = matched
	}
	return matches
}

// contactID derives a UUIDv5 from the row position and identity, so IDs are
// unique within a run and repeat across runs over the same export.
func contactID(row int, name, connectedOn string) string {
	key := fmt.Sprintf("%d|%s|%s", row, strings.ToLower(name), connectedOn)
	return uuid.NewSHA1(contactNamespace, []byte(key)).String()
}
