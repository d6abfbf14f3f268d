package domain

import (
	"time"

	"github.com/google/uuid"
)

type Image struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"-" db:"user_id"`
	URL          string    `json:"url" db:"url"`
	ObjectKey    string    `json:"-" db:"object_key"`
	DisplayOrder int       `json:"order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Prompt struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"-" db:"user_id"`
	Question     string    `json:"question" db:"question"`
	Answer       string    `json:"answer" db:"answer"`
	DisplayOrder int       `json:"order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func ValidImageOrder(order int) bool  { return order >= 0 && order < MaxImages }
func ValidPromptOrder(order int) bool { return order >= 0 && order < MaxPrompts }
