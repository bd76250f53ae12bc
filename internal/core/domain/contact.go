package domain

import "time"

// RelStrength classifies how actively a contact has been engaged.
type RelStrength string

// Relationship strength values.
const (
	// StrengthStrong means three or more recorded messages.
	StrengthStrong RelStrength = "strong"

	// StrengthWarm means at least one recorded message.
	StrengthWarm RelStrength = "warm"

	// StrengthNew means no messages but a recent connection.
	StrengthNew RelStrength = "new"

	// StrengthCold means no messages and an older (or unknown) connection.
	StrengthCold RelStrength = "cold"
)

// Strengths returns every strength value in display order.
func Strengths() []RelStrength {
	return []RelStrength{StrengthStrong, StrengthWarm, StrengthCold, StrengthNew}
}

// ContactProfile is one connection joined against messages and endorsements.
// Profiles are created fresh on every analysis run and never mutated after.
type ContactProfile struct {
	// ID is unique within one analysis run.
	ID string `json:"id" yaml:"id"`

	Name      string `json:"name" yaml:"name"`
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`

	Position string `json:"position" yaml:"position"`
	Company  string `json:"company" yaml:"company"`

	// ProfileURL and Email are carried through when the export has them.
	ProfileURL string `json:"profileUrl,omitempty" yaml:"profileUrl,omitempty"`
	Email      string `json:"email,omitempty" yaml:"email,omitempty"`

	// ConnectedOn is the raw export value; ConnectedDate is nil when unparseable.
	ConnectedOn   string     `json:"connectedOn" yaml:"connectedOn"`
	ConnectedDate *time.Time `json:"connectedDate" yaml:"connectedDate"`

	MessageCount int     `json:"messageCount" yaml:"messageCount"`
	LastContact  *string `json:"lastContact" yaml:"lastContact"`

	EndorsedSkills   []string `json:"endorsedSkills" yaml:"endorsedSkills"`
	EndorsementCount int      `json:"endorsementCount" yaml:"endorsementCount"`

	RelStrength RelStrength `json:"relStrength" yaml:"relStrength"`
	IsDormant   bool        `json:"isDormant" yaml:"isDormant"`

	// DaysSinceContact is measured from the dormancy signal; nil without one.
	DaysSinceContact *int `json:"daysSinceContact,omitempty" yaml:"daysSinceContact,omitempty"`

	// Categories maps each category rule name to its match result.
	Categories map[string]bool `json:"categories" yaml:"categories"`
}
