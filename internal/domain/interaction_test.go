package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestInteractionValidate(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	image := ContextImage
	bogus := ContextType("VIDEO")
	contextID := uuid.NewString()
	longComment := strings.Repeat("a", MaxCommentLength+1)

	tests := []struct {
		name        string
		interaction Interaction
		wantErr     error
	}{
		{
			name:        "plain like",
			interaction: Interaction{FromUserID: from, ToUserID: to, Action: ActionLike},
		},
		{
			name:        "pass",
			interaction: Interaction{FromUserID: from, ToUserID: to, Action: ActionPass},
		},
		{
			name:        "like with context and comment",
			interaction: Interaction{FromUserID: from, ToUserID: to, Action: ActionLike, ContextType: &image, ContextID: &contextID, Comment: strPtr("nice photo")},
		},
		{
			name:        "self",
			interaction: Interaction{FromUserID: from, ToUserID: from, Action: ActionLike},
			wantErr:     ErrCannotInteractSelf,
		},
		{
			name:        "unknown action",
			interaction: Interaction{FromUserID: from, ToUserID: to, Action: "SUPERLIKE"},
			wantErr:     ErrInvalidAction,
		},
		{
			name:        "context type without id",
			interaction: Interaction{FromUserID: from, ToUserID: to, Action: ActionLike, ContextType: &image},
			wantErr:     ErrInvalidContext,
		},
		{
			name:        "unknown context type",
			interaction: Interaction{FromUserID: from, ToUserID: to, Action: ActionLike, ContextType: &bogus, ContextID: &contextID},
			wantErr:     ErrInvalidContext,
		},
		{
			name:        "comment too long",
			interaction: Interaction{FromUserID: from, ToUserID: to, Action: ActionLike, Comment: &longComment},
			wantErr:     ErrCommentTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.interaction.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCommentTooLongNamesTheLimit(t *testing.T) {
	long := strings.Repeat("ж", MaxCommentLength+1)
	err := (&Interaction{FromUserID: uuid.New(), ToUserID: uuid.New(), Action: ActionLike, Comment: &long}).Validate()
	assert.EqualError(t, err, "invalid input: comment must be at most 500 characters")

	exact := strings.Repeat("ж", MaxCommentLength)
	assert.NoError(t, (&Interaction{FromUserID: uuid.New(), ToUserID: uuid.New(), Action: ActionLike, Comment: &exact}).Validate())
}
