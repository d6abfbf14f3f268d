package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxImages  = 6
	MaxPrompts = 3
)

// ProfileFields holds every user-editable profile attribute. A nil field is
// unset; on update a nil field leaves the stored value unchanged.
type ProfileFields struct {
	Name             *string `json:"name" db:"name" binding:"omitempty,min=1,max=100"`
	Bio              *string `json:"bio" db:"bio" binding:"omitempty,max=500"`
	Birthdate        *string `json:"birthdate" db:"birthdate" binding:"omitempty,datetime=2006-01-02"`
	Pronouns         *string `json:"pronouns" db:"pronouns" binding:"omitempty,max=50"`
	Gender           *string `json:"gender" db:"gender" binding:"omitempty,max=50"`
	Sexuality        *string `json:"sexuality" db:"sexuality" binding:"omitempty,max=50"`
	Height           *int    `json:"height" db:"height" binding:"omitempty,min=90,max=250"`
	Job              *string `json:"job" db:"job" binding:"omitempty,max=100"`
	Company          *string `json:"company" db:"company" binding:"omitempty,max=100"`
	School           *string `json:"school" db:"school" binding:"omitempty,max=100"`
	Ethnicity        *string `json:"ethnicity" db:"ethnicity" binding:"omitempty,max=50"`
	Politics         *string `json:"politics" db:"politics" binding:"omitempty,max=50"`
	Religion         *string `json:"religion" db:"religion" binding:"omitempty,max=50"`
	RelationshipType *string `json:"relationship_type" db:"relationship_type" binding:"omitempty,max=50"`
	DatingIntention  *string `json:"dating_intention" db:"dating_intention" binding:"omitempty,max=100"`
	Drinks           *string `json:"drinks" db:"drinks" binding:"omitempty,max=50"`
	Smokes           *string `json:"smokes" db:"smokes" binding:"omitempty,max=50"`
}

type Profile struct {
	UserID uuid.UUID `json:"user_id" db:"user_id"`
	ProfileFields
	IsComplete bool      `json:"is_complete" db:"is_complete"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// MissingFields returns the JSON names of unset attributes, in declaration order.
func (f *ProfileFields) MissingFields() []string {
	var missing []string
	check := func(name string, set bool) {
		if !set {
			missing = append(missing, name)
		}
	}
	check("name", f.Name != nil)
	check("bio", f.Bio != nil)
	check("birthdate", f.Birthdate != nil)
	check("pronouns", f.Pronouns != nil)
	check("gender", f.Gender != nil)
	check("sexuality", f.Sexuality != nil)
	check("height", f.Height != nil)
	check("job", f.Job != nil)
	check("company", f.Company != nil)
	check("school", f.School != nil)
	check("ethnicity", f.Ethnicity != nil)
	check("politics", f.Politics != nil)
	check("religion", f.Religion != nil)
	check("relationship_type", f.RelationshipType != nil)
	check("dating_intention", f.DatingIntention != nil)
	check("drinks", f.Drinks != nil)
	check("smokes", f.Smokes != nil)
	return missing
}

// AllFieldsMissing is the pending list for a user without a profile row.
func AllFieldsMissing() []string {
	return (&ProfileFields{}).MissingFields()
}

// FullProfile is a profile together with its ordered media.
type FullProfile struct {
	ID         uuid.UUID      `json:"id"`
	IsComplete bool           `json:"is_complete"`
	Images     []*Image       `json:"images"`
	Prompts    []*Prompt      `json:"prompts"`
	Details    *ProfileFields `json:"details"`
}
