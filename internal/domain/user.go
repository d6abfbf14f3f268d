package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Phone     string    `json:"phone" db:"phone"`
	Email     *string   `json:"email,omitempty" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UserSummary is the compact user view returned by auth and match endpoints.
type UserSummary struct {
	ID                uuid.UUID `json:"id"`
	IsProfileComplete bool      `json:"is_profile_complete"`
	IsNewUser         bool      `json:"is_new_user"`
}
