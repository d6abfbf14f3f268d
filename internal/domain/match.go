package domain

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// Match is an unordered pair of users who liked each other. User1ID always
// sorts before User2ID so the pair has one stored representation.
type Match struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	User1ID       uuid.UUID  `json:"user1_id" db:"user1_id"`
	User2ID       uuid.UUID  `json:"user2_id" db:"user2_id"`
	LastMessage   *string    `json:"last_message" db:"last_message"`
	LastMessageAt *time.Time `json:"last_message_at" db:"last_message_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

func (m *Match) HasUser(userID uuid.UUID) bool {
	return m.User1ID == userID || m.User2ID == userID
}

func (m *Match) GetOtherUserID(userID uuid.UUID) (uuid.UUID, bool) {
	if m.User1ID == userID {
		return m.User2ID, true
	}
	if m.User2ID == userID {
		return m.User1ID, true
	}
	return uuid.Nil, false
}

// OrderedPair returns a and b sorted by byte value, matching the
// user1_id < user2_id check on the matches table.
func OrderedPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) > 0 {
		return b, a
	}
	return a, b
}

// PairKey identifies an unordered pair; used for advisory locking.
func PairKey(a, b uuid.UUID) string {
	lo, hi := OrderedPair(a, b)
	return lo.String() + ":" + hi.String()
}

type MessagePreview struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

type MatchedUser struct {
	ID       uuid.UUID `json:"id"`
	Name     *string   `json:"name"`
	PhotoURL *string   `json:"photo_url"`
}

type MatchSummary struct {
	ID          uuid.UUID       `json:"id"`
	WithUser    MatchedUser     `json:"with_user"`
	LastMessage *MessagePreview `json:"last_message"`
	CreatedAt   time.Time       `json:"created_at"`
}
