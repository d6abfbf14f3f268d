package domain

import (
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionLike Action = "LIKE"
	ActionPass Action = "PASS"
)

func (a Action) Valid() bool { return a == ActionLike || a == ActionPass }

type ContextType string

const (
	ContextImage  ContextType = "IMAGE"
	ContextPrompt ContextType = "PROMPT"
)

func (t ContextType) Valid() bool { return t == ContextImage || t == ContextPrompt }

// InteractionContext points at the image or prompt an interaction reacted to.
type InteractionContext struct {
	Type ContextType `json:"type"`
	ID   string      `json:"id"`
}

// Interaction is a directed LIKE/PASS edge. There is at most one per ordered
// pair; re-interacting overwrites it.
type Interaction struct {
	FromUserID  uuid.UUID    `db:"from_user_id"`
	ToUserID    uuid.UUID    `db:"to_user_id"`
	Action      Action       `db:"action"`
	ContextType *ContextType `db:"context_type"`
	ContextID   *string      `db:"context_id"`
	Comment     *string      `db:"comment"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

const MaxCommentLength = 500

func (i *Interaction) Validate() error {
	if i.FromUserID == i.ToUserID {
		return ErrCannotInteractSelf
	}
	if !i.Action.Valid() {
		return ErrInvalidAction
	}
	if (i.ContextType == nil) != (i.ContextID == nil) {
		return ErrInvalidContext
	}
	if i.ContextType != nil && !i.ContextType.Valid() {
		return ErrInvalidContext
	}
	if i.Comment != nil && len([]rune(*i.Comment)) > MaxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}

type InteractionStatus string

const (
	StatusMatch InteractionStatus = "MATCH"
	StatusSent  InteractionStatus = "SENT"
)

// InteractionResult is the outcome of recording an interaction.
type InteractionResult struct {
	Status  InteractionStatus `json:"status"`
	MatchID *uuid.UUID        `json:"match_id,omitempty"`
}
