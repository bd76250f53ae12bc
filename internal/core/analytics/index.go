package analytics

import (
	"strings"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

// MessageStat is the interaction history of one name.
type MessageStat struct {
	// Count is the number of message records naming the person, once per role.
	Count int

	// LastDate is the raw date of the most recent interaction, "" if unknown.
	LastDate string
}

// Merge combines two stats. Counts add and the chronologically newer date
// wins. Unparseable dates are never kept, so the result does not depend on
// merge order.
func (s MessageStat) Merge(o MessageStat) MessageStat {
	return MessageStat{
		Count:    s.Count + o.Count,
		LastDate: newerDate(s.LastDate, o.LastDate),
	}
}

// newerDate returns the later of two raw dates, dropping any that do not
// parse. Equal instants written differently resolve to the lexically smaller
// string.
func newerDate(current, candidate string) string {
	prev, prevOK := ParseDate(current)
	next, nextOK := ParseDate(candidate)
	switch {
	case !nextOK && !prevOK:
		return ""
	case !nextOK:
		return current
	case !prevOK:
		return candidate
	case next.After(prev):
		return candidate
	case next.Equal(prev) && candidate < current:
		return candidate
	}
	return current
}

// MessageIndex maps a lowercased name to its interaction history.
type MessageIndex map[string]MessageStat

// Lookup returns the stat for a name, or the zero stat.
func (ix MessageIndex) Lookup(name string) MessageStat {
	return ix[nameKey(name)]
}

// BuildMessageIndex folds message records into a MessageIndex.
//
// Sender and recipient are both counted, so a person messaging themselves
// counts twice. Relationship thresholds are tuned against this total-touches
// count, not against distinct exchanges.
func BuildMessageIndex(messages []domain.Record) MessageIndex {
	idx := make(MessageIndex)
	for _, m := range messages {
		date := m.Get(domain.FieldDate)
		for _, party := range []string{m.Get(domain.FieldFrom), m.Get(domain.FieldTo)} {
			key := nameKey(party)
			if key == "" {
				continue
			}
			idx[key] = idx[key].Merge(MessageStat{Count: 1, LastDate: date})
		}
	}
	return idx
}

// EndorsementStat is what one endorser has endorsed.
type EndorsementStat struct {
	// Name is the endorser's display name as first seen.
	Name string

	// Skills lists endorsed skills in record order, duplicates kept.
	Skills []string

	Count int
}

// Merge combines two stats without mutating either.
func (s EndorsementStat) Merge(o EndorsementStat) EndorsementStat {
	name := s.Name
	if name == "" {
		name = o.Name
	}
	skills := make([]string, 0, len(s.Skills)+len(o.Skills))
	skills = append(skills, s.Skills...)
	skills = append(skills, o.Skills...)
	return EndorsementStat{Name: name, Skills: skills, Count: s.Count + o.Count}
}

// EndorsementIndex maps a lowercased endorser name to their endorsements.
type EndorsementIndex map[string]EndorsementStat

// Lookup returns the stat for a name, or the zero stat.
func (ix EndorsementIndex) Lookup(name string) EndorsementStat {
	return ix[nameKey(name)]
}

// BuildEndorsementIndex folds endorsement records into an EndorsementIndex.
// Records without an endorser name are skipped.
func BuildEndorsementIndex(endorsements []domain.Record) EndorsementIndex {
	idx := make(EndorsementIndex)
	for _, e := range endorsements {
		name := JoinName(e.Get(domain.FieldEndorserFirst), e.Get(domain.FieldEndorserLast))
		key := nameKey(name)
		if key == "" {
			continue
		}
		stat := EndorsementStat{Name: name, Count: 1}
		if skill := strings.TrimSpace(e.Get(domain.FieldSkillName)); skill != "" {
			stat.Skills = []string{skill}
		}
		idx[key] = idx[key].Merge(stat)
	}
	return idx
}

// JoinName builds a display name from first and last name parts.
// Empty parts collapse, so a missing last name yields just the first.
func JoinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
