package domain

// Record is one decoded row of an exported table, keyed by column name.
// Column names are canonicalised by the decoder, so lookups use the
// Field constants below regardless of how the export spelled them.
type Record map[string]string

// Get returns the value of a field, or "" when the row lacks it.
func (r Record) Get(field string) string {
	if r == nil {
		return ""
	}
	return r[field]
}

// Canonical column names shared across export tables.
const (
	FieldFirstName     = "First Name"
	FieldLastName      = "Last Name"
	FieldURL           = "URL"
	FieldEmail         = "Email Address"
	FieldCompany       = "Company"
	FieldPosition      = "Position"
	FieldConnectedOn   = "Connected On"
	FieldFrom          = "From"
	FieldTo            = "To"
	FieldDate          = "Date"
	FieldContent       = "Content"
	FieldSkillName     = "Skill Name"
	FieldName          = "Name"
	FieldEndorserFirst = "Endorser First Name"
	FieldEndorserLast  = "Endorser Last Name"
	FieldJobTitle      = "Job Title"
	FieldText          = "Text"
	FieldShareLink     = "ShareLink"
	FieldCommentary    = "ShareCommentary"
	FieldType          = "Type of inference"
	FieldInference     = "Inference"
	FieldCategory      = "Category"
	FieldDirection     = "Direction"
	FieldCompanyName   = "Company Name"
	FieldTitle         = "Title"
)

// Table identifies one tabular file of an export.
type Table string

// Known export tables.
const (
	TableConnections     Table = "connections"
	TableMessages        Table = "messages"
	TableSkills          Table = "skills"
	TableEndorsements    Table = "endorsements"
	TableRecommendations Table = "recommendations"
	TablePositions       Table = "positions"
	TableInvitations     Table = "invitations"
	TableAdTargeting     Table = "ad_targeting"
	TableInferences      Table = "inferences"
	TableShares          Table = "shares"
)

// AllTables lists every table an export may carry, in reading order.
func AllTables() []Table {
	return []Table{
		TableConnections,
		TableMessages,
		TableSkills,
		TableEndorsements,
		TableRecommendations,
		TablePositions,
		TableInvitations,
		TableAdTargeting,
		TableInferences,
		TableShares,
	}
}

// Export holds the decoded tables of one data export.
// A nil table means the export did not include that file.
type Export struct {
	// Source is where the export was read from (path or archive name).
	Source string

	Connections     []Record
	Messages        []Record
	Skills          []Record
	Endorsements    []Record
	Recommendations []Record
	Positions       []Record
	Invitations     []Record
	AdTargeting     []Record
	Inferences      []Record
	Shares          []Record
}

// Set assigns the records of a table.
func (e *Export) Set(t Table, records []Record) {
	switch t {
	case TableConnections:
		e.Connections = records
	case TableMessages:
		e.Messages = records
	case TableSkills:
		e.Skills = records
	case TableEndorsements:
		e.Endorsements = records
	case TableRecommendations:
		e.Recommendations = records
	case TablePositions:
		e.Positions = records
	case TableInvitations:
		e.Invitations = records
	case TableAdTargeting:
		e.AdTargeting = records
	case TableInferences:
		e.Inferences = records
	case TableShares:
		e.Shares = records
	}
}

// Table returns the records of a table, nil when absent.
func (e *Export) Table(t Table) []Record {
	switch t {
	case TableConnections:
		return e.Connections
	case TableMessages:
		return e.Messages
	case TableSkills:
		return e.Skills
	case TableEndorsements:
		return e.Endorsements
	case TableRecommendations:
		return e.Recommendations
	case TablePositions:
		return e.Positions
	case TableInvitations:
		return e.Invitations
	case TableAdTargeting:
		return e.AdTargeting
	case TableInferences:
		return e.Inferences
	case TableShares:
		return e.Shares
	}
	return nil
}
