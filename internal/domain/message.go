package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultMessageLimit = 50
	MaxMessageLimit     = 100
	MaxMessageLength    = 2000
)

type Message struct {
	ID        uuid.UUID `json:"id" db:"id"`
	MatchID   uuid.UUID `json:"match_id" db:"match_id"`
	SenderID  uuid.UUID `json:"sender_id" db:"sender_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	IsRead    bool      `json:"is_read" db:"is_read"`
}

// MessagePage is one page of a match's history. NextCursor is set when the
// page was full and more messages may follow.
type MessagePage struct {
	Messages   []*Message `json:"messages"`
	NextCursor *string    `json:"next_cursor,omitempty"`
}

// ClampMessageLimit applies the default and the hard maximum.
func ClampMessageLimit(limit int) (int, error) {
	switch {
	case limit < 0:
		return 0, ErrInvalidLimit
	case limit == 0:
		return DefaultMessageLimit, nil
	case limit > MaxMessageLimit:
		return MaxMessageLimit, nil
	}
	return limit, nil
}
