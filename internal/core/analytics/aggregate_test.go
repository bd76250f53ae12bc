package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

func profile(name, company string, messages int, strength domain.RelStrength, connected *time.Time) domain.ContactProfile {
	return domain.ContactProfile{
		Name:          name,
		Company:       company,
		MessageCount:  messages,
		RelStrength:   strength,
		ConnectedDate: connected,
		Categories:    map[string]bool{},
	}
}

func TestAggregate_EmptyIsSafe(t *testing.T) {
	a := Aggregate(nil, nil, nil, nil, testNow)

	assert.Equal(t, 0, a.TotalConnections)
	assert.Equal(t, "0.0", a.EngagementRate)
	assert.Equal(t, "0", a.NeverMessagedPct)
	assert.Equal(t, "0", a.DormantPct)
	assert.Equal(t, 0, a.YearsBuilding)
	assert.Empty(t, a.TopCompanies)
	assert.Empty(t, a.CategoryCounts)
	assert.NotNil(t, a.ConnectionsByYear)
	assert.NotNil(t, a.PostsByMonth)
	assert.Nil(t, a.FirstPost)
	assert.Nil(t, a.LastPost)
}

func TestAggregate_ContactCounts(t *testing.T) {
	y2019 := time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC)
	y2021 := time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC)

	contacts := []domain.ContactProfile{
		profile("A", "Acme", 5, domain.StrengthStrong, &y2019),
		profile("B", "Acme", 1, domain.StrengthWarm, &y2021),
		profile("C", "Globex", 0, domain.StrengthCold, &y2021),
		profile("D", "", 0, domain.StrengthNew, nil),
	}
	contacts[2].IsDormant = true

	a := Aggregate(contacts, &domain.Export{}, nil, nil, testNow)

	assert.Equal(t, 4, a.TotalConnections)
	assert.Equal(t, 2, a.Messaged)
	assert.Equal(t, 2, a.NeverMessaged)
	assert.Equal(t, "50.0", a.EngagementRate)
	assert.Equal(t, "50", a.NeverMessagedPct)
	assert.Equal(t, 1, a.DormantCount)
	assert.Equal(t, "25", a.DormantPct)
	assert.Equal(t, domain.StrengthCounts{Strong: 1, Warm: 1, Cold: 1, New: 1}, a.StrengthCounts)
	assert.Equal(t, 2026-2019, a.YearsBuilding)
	assert.Equal(t, map[int]int{2019: 1, 2021: 2}, a.ConnectionsByYear)
	assert.Equal(t, []domain.NamedCount{{Name: "Acme", Count: 2}, {Name: "Globex", Count: 1}}, a.TopCompanies)
	assert.Equal(t, []domain.NamedCount{{Name: "A", Count: 5}, {Name: "B", Count: 1}}, a.TopContacts)
}

func TestAggregate_TopCompaniesTiesKeepFirstSeenOrder(t *testing.T) {
	var contacts []domain.ContactProfile
	for i := 0; i < 12; i++ {
		contacts = append(contacts, profile("x", fmt.Sprintf("Co%02d", i), 0, domain.StrengthCold, nil))
	}
	contacts = append(contacts, profile("y", "Co11", 0, domain.StrengthCold, nil))

	a := Aggregate(contacts, nil, nil, nil, testNow)

	require.Len(t, a.TopCompanies, 10)
	assert.Equal(t, domain.NamedCount{Name: "Co11", Count: 2}, a.TopCompanies[0])
	for i := 1; i < 10; i++ {
		assert.Equal(t, fmt.Sprintf("Co%02d", i-1), a.TopCompanies[i].Name)
	}
}

func TestAggregate_CategoryCountsFollowRuleOrder(t *testing.T) {
	rules := []domain.CategoryRule{
		{Name: "zeta", Keywords: []string{"z"}},
		{Name: "alpha", Keywords: []string{"a"}},
	}
	contacts := []domain.ContactProfile{
		{Categories: map[string]bool{"zeta": true, "alpha": true}},
		{Categories: map[string]bool{"zeta": false, "alpha": true}},
	}

	a := Aggregate(contacts, nil, rules, nil, testNow)

	assert.Equal(t, []domain.NamedCount{{Name: "zeta", Count: 1}, {Name: "alpha", Count: 2}}, a.CategoryCounts)
}

func TestAggregate_Endorsements(t *testing.T) {
	aux := &domain.Export{Endorsements: []domain.Record{
		endorsement("Ada", "Lovelace", "Go"),
		endorsement("Alan", "Turing", "SQL"),
		endorsement("ada", "lovelace", "SQL"),
		endorsement("Ada", "Lovelace", "Go"),
		endorsement("", "", "Go"),
	}}

	a := Aggregate(nil, aux, nil, nil, testNow)

	assert.Equal(t, 5, a.TotalEndorsements)
	assert.Equal(t, []domain.NamedCount{{Name: "Go", Count: 3}, {Name: "SQL", Count: 2}}, a.TopEndorsedSkills)
	assert.Equal(t, []domain.NamedCount{{Name: "Ada Lovelace", Count: 3}, {Name: "Alan Turing", Count: 1}}, a.TopEndorsers)
}

func TestAggregate_Posts(t *testing.T) {
	shares := []domain.Record{
		{domain.FieldDate: "2024-03-01 09:00:00", domain.FieldCommentary: "Proud of the team shipping our cloud launch"},
		{domain.FieldDate: "2024-03-20 09:00:00", domain.FieldCommentary: "We are HIRING engineers"},
		{domain.FieldDate: "2023-11-05", domain.FieldCommentary: ""},
		{domain.FieldDate: "unparseable", domain.FieldCommentary: "Speaking at a conference next week"},
	}
	themes := []domain.Theme{
		{Name: "Leadership", Keywords: []string{"team"}},
		{Name: "Technology", Keywords: []string{"cloud", "engineer"}},
		{Name: "Events", Keywords: []string{"conference"}},
		{Name: "Unused", Keywords: []string{"zebra"}},
	}

	a := Aggregate(nil, &domain.Export{Shares: shares}, nil, themes, testNow)

	assert.Equal(t, 4, a.TotalPosts)
	assert.Equal(t, map[string]int{"2024-03": 2, "2023-11": 1}, a.PostsByMonth)
	assert.Equal(t, []domain.NamedCount{
		{Name: "Leadership", Count: 1},
		{Name: "Technology", Count: 2},
		{Name: "Events", Count: 1},
		{Name: "Unused", Count: 0},
	}, a.ThemeCounts)
	require.NotNil(t, a.FirstPost)
	require.NotNil(t, a.LastPost)
	assert.Equal(t, "2023-11-05", a.FirstPost.Format("2006-01-02"))
	assert.Equal(t, "2024-03-20", a.LastPost.Format("2006-01-02"))
}

func TestAggregate_ProfileFacets(t *testing.T) {
	aux := &domain.Export{
		Skills: []domain.Record{
			{domain.FieldName: "Go"},
			{domain.FieldName: ""},
			{domain.FieldName: "SQL"},
		},
		Recommendations: []domain.Record{
			{domain.FieldFirstName: "Grace", domain.FieldLastName: "Hopper", domain.FieldCompany: "Navy"},
		},
		Inferences: []domain.Record{
			{domain.FieldType: "Seniority", domain.FieldInference: "Senior"},
			{domain.FieldType: "", domain.FieldInference: "Engineering"},
			{domain.FieldType: "Empty", domain.FieldInference: ""},
		},
		AdTargeting: []domain.Record{
			{"Member Skills": "Go; SQL;", "Job Titles": "Engineer", "Degrees": ""},
		},
		Positions: []domain.Record{
			{domain.FieldCompanyName: "Acme", domain.FieldTitle: "Engineer"},
			{domain.FieldCompanyName: "", domain.FieldTitle: ""},
		},
		Invitations: []domain.Record{
			{domain.FieldDirection: "OUTGOING"},
			{domain.FieldDirection: "incoming"},
			{domain.FieldDirection: "INCOMING"},
		},
	}

	a := Aggregate(nil, aux, nil, nil, testNow)

	assert.Equal(t, 2, a.SkillsListed)
	assert.Equal(t, []string{"Go", "SQL"}, a.TopSkillsListed)
	assert.Equal(t, 1, a.RecommendationsReceived)
	assert.Equal(t, []domain.Recommender{{Name: "Grace Hopper", Company: "Navy"}}, a.TopRecommenders)
	assert.Equal(t, []string{"Seniority: Senior", "Engineering"}, a.Inferences)
	assert.Equal(t, 3, a.AdTargetingSegments)
	assert.Equal(t, 1, a.PositionsHeld)
	assert.Equal(t, 1, a.InvitationsSent)
	assert.Equal(t, 2, a.InvitationsReceived)
}

func TestPercentFormatting(t *testing.T) {
	assert.Equal(t, "33.3", percentOneDecimal(1, 3))
	assert.Equal(t, "66.7", percentOneDecimal(2, 3))
	assert.Equal(t, "100.0", percentOneDecimal(3, 3))
	assert.Equal(t, "0.0", percentOneDecimal(0, 0))
	assert.Equal(t, "67", percentRounded(2, 3))
	assert.Equal(t, "0", percentRounded(5, 0))
}
