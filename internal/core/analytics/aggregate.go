package analytics

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

// topN caps every ranked list in the analytics.
const topN = 10

// Aggregate reduces enriched contacts and the auxiliary export tables into
// one NetworkAnalytics. Missing tables yield zeroed facets; nothing here fails.
func Aggregate(
	contacts []domain.ContactProfile,
	aux *domain.Export,
	rules []domain.CategoryRule,
	themes []domain.Theme,
	now time.Time,
) domain.NetworkAnalytics {
	if aux == nil {
		aux = &domain.Export{}
	}

	a := domain.NetworkAnalytics{
		TotalConnections:  len(contacts),
		ConnectionsByYear: make(map[int]int),
		PostsByMonth:      make(map[string]int),
	}

	aggregateContacts(&a, contacts, rules, now)
	aggregateEndorsements(&a, aux.Endorsements)
	aggregateProfile(&a, aux)
	aggregatePosts(&a, aux.Shares, themes)

	return a
}

func aggregateContacts(a *domain.NetworkAnalytics, contacts []domain.ContactProfile, rules []domain.CategoryRule, now time.Time) {
	companies := newRanking()
	earliest := 0

	for i := range contacts {
		c := &contacts[i]
		if c.MessageCount > 0 {
			a.Messaged++
		}
		if c.IsDormant {
			a.DormantCount++
		}

		switch c.RelStrength {
		case domain.StrengthStrong:
			a.StrengthCounts.Strong++
		case domain.StrengthWarm:
			a.StrengthCounts.Warm++
		case domain.StrengthNew:
			a.StrengthCounts.New++
		default:
			a.StrengthCounts.Cold++
		}

		if company := strings.TrimSpace(c.Company); company != "" {
			companies.add(company, company, 1)
		}

		if c.ConnectedDate != nil {
			year := c.ConnectedDate.Year()
			a.ConnectionsByYear[year]++
			if earliest == 0 || year < earliest {
				earliest = year
			}
		}
	}

	a.NeverMessaged = a.TotalConnections - a.Messaged
	a.EngagementRate = percentOneDecimal(a.Messaged, a.TotalConnections)
	a.NeverMessagedPct = percentRounded(a.NeverMessaged, a.TotalConnections)
	a.DormantPct = percentRounded(a.DormantCount, a.TotalConnections)
	a.TopCompanies = companies.top(topN)
	a.TopContacts = topContacts(contacts, topN)

	if earliest == 0 {
		earliest = now.Year()
	}
	a.YearsBuilding = now.Year() - earliest

	a.CategoryCounts = make([]domain.NamedCount, 0, len(rules))
	for _, rule := range rules {
		count := 0
		for i := range contacts {
			if contacts[i].Categories[rule.Name] {
				count++
			}
		}
		a.CategoryCounts = append(a.CategoryCounts, domain.NamedCount{Name: rule.Name, Count: count})
	}
}

// topContacts ranks messaged contacts by message count, ties in source order.
func topContacts(contacts []domain.ContactProfile, n int) []domain.NamedCount {
	ranked := make([]domain.NamedCount, 0)
	for i := range contacts {
		if contacts[i].MessageCount > 0 {
			ranked = append(ranked, domain.NamedCount{Name: contacts[i].Name, Count: contacts[i].MessageCount})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func aggregateEndorsements(a *domain.NetworkAnalytics, endorsements []domain.Record) {
	skills := newRanking()
	endorsers := newRanking()

	for _, e := range endorsements {
		a.TotalEndorsements++
		if skill := strings.TrimSpace(e.Get(domain.FieldSkillName)); skill != "" {
			skills.add(skill, skill, 1)
		}
		name := JoinName(e.Get(domain.FieldEndorserFirst), e.Get(domain.FieldEndorserLast))
		if key := nameKey(name); key != "" {
			endorsers.add(key, name, 1)
		}
	}

	a.TopEndorsedSkills = skills.top(topN)
	a.TopEndorsers = endorsers.top(topN)
}

func aggregateProfile(a *domain.NetworkAnalytics, aux *domain.Export) {
	a.TopSkillsListed = make([]string, 0)
	for _, s := range aux.Skills {
		name := strings.TrimSpace(s.Get(domain.FieldName))
		if name == "" {
			continue
		}
		a.SkillsListed++
		if len(a.TopSkillsListed) < topN {
			a.TopSkillsListed = append(a.TopSkillsListed, name)
		}
	}

	a.RecommendationsReceived = len(aux.Recommendations)
	a.TopRecommenders = make([]domain.Recommender, 0)
	for _, r := range aux.Recommendations {
		name := JoinName(r.Get(domain.FieldFirstName), r.Get(domain.FieldLastName))
		if name == "" || len(a.TopRecommenders) >= topN {
			continue
		}
		a.TopRecommenders = append(a.TopRecommenders, domain.Recommender{
			Name:    name,
			Company: r.Get(domain.FieldCompany),
		})
	}

	a.Inferences = make([]string, 0)
	for _, inf := range aux.Inferences {
		value := strings.TrimSpace(inf.Get(domain.FieldInference))
		if value == "" {
			continue
		}
		if kind := strings.TrimSpace(inf.Get(domain.FieldType)); kind != "" {
			value = kind + ": " + value
		}
		a.Inferences = append(a.Inferences, value)
	}

	for _, rec := range aux.AdTargeting {
		for _, value := range rec {
			for _, segment := range strings.Split(value, ";") {
				if strings.TrimSpace(segment) != "" {
					a.AdTargetingSegments++
				}
			}
		}
	}

	for _, p := range aux.Positions {
		if p.Get(domain.FieldCompanyName) != "" || p.Get(domain.FieldTitle) != "" {
			a.PositionsHeld++
		}
	}

	for _, inv := range aux.Invitations {
		switch strings.ToUpper(inv.Get(domain.FieldDirection)) {
		case "OUTGOING":
			a.InvitationsSent++
		case "INCOMING":
			a.InvitationsReceived++
		}
	}
}

func aggregatePosts(a *domain.NetworkAnalytics, shares []domain.Record, themes []domain.Theme) {
	a.TotalPosts = len(shares)
	themeHits := make([]int, len(themes))

	for _, post := range shares {
		if t, ok := ParseDate(post.Get(domain.FieldDate)); ok {
			a.PostsByMonth[t.Format("2006-01")]++
			if a.FirstPost == nil || t.Before(*a.FirstPost) {
				first := t
				a.FirstPost = &first
			}
			if a.LastPost == nil || t.After(*a.LastPost) {
				last := t
				a.LastPost = &last
			}
		}

		commentary := strings.ToLower(post.Get(domain.FieldCommentary))
		if commentary == "" {
			continue
		}
		for i, theme := range themes {
			if containsAny(commentary, theme.Keywords) {
				themeHits[i]++
			}
		}
	}

	a.ThemeCounts = make([]domain.NamedCount, 0, len(themes))
	for i, theme := range themes {
		a.ThemeCounts = append(a.ThemeCounts, domain.NamedCount{Name: theme.Name, Count: themeHits[i]})
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// percentOneDecimal formats part/total as a percentage with one decimal.
func percentOneDecimal(part, total int) string {
	if total == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(part)/float64(total)*100)
}

// percentRounded formats part/total as a whole-number percentage.
func percentRounded(part, total int) string {
	if total == 0 {
		return "0"
	}
	return strconv.Itoa(int(math.Round(float64(part) / float64(total) * 100)))
}

// ranking counts keys while remembering first-seen order for tie breaks.
type ranking struct {
	order  []string
	labels map[string]string
	counts map[string]int
}

func newRanking() *ranking {
	return &ranking{
		labels: make(map[string]string),
		counts: make(map[string]int),
	}
}

func (r *ranking) add(key, label string, n int) {
	if _, seen := r.counts[key]; !seen {
		r.order = append(r.order, key)
		r.labels[key] = label
	}
	r.counts[key] += n
}

// top returns the n highest counts, descending, ties in first-seen order.
func (r *ranking) top(n int) []domain.NamedCount {
	out := make([]domain.NamedCount, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, domain.NamedCount{Name: r.labels[key], Count: r.counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
