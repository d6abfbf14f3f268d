package match

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type MatchUseCase struct {
	tx              repository.Transactor
	matchRepo       repository.MatchRepository
	messageRepo     repository.MessageRepository
	interactionRepo repository.InteractionRepository
}

func NewMatchUseCase(
	tx repository.Transactor,
	matchRepo repository.MatchRepository,
	messageRepo repository.MessageRepository,
	interactionRepo repository.InteractionRepository,
) *MatchUseCase {
	return &MatchUseCase{
		tx:              tx,
		matchRepo:       matchRepo,
		messageRepo:     messageRepo,
		interactionRepo: interactionRepo,
	}
}

// SendMessageRequest represents send message request
type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// ResolveMutualLike is called after from liked to. When to already liked
// from, the pair's match is created (or the existing one returned).
// It must run inside the transaction that recorded the like.
func (uc *MatchUseCase) ResolveMutualLike(ctx context.Context, from, to uuid.UUID) (*domain.InteractionResult, error) {
	var result *domain.InteractionResult
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.interactionRepo.LockPair(ctx, from, to); err != nil {
			return err
		}

		mutual, err := uc.interactionRepo.Exists(ctx, to, from, domain.ActionLike)
		if err != nil {
			return err
		}
		if !mutual {
			result = &domain.InteractionResult{Status: domain.StatusSent}
			return nil
		}

		match, created, err := uc.matchRepo.CreateIfAbsent(ctx, from, to)
		if err != nil {
			return err
		}
		if created {
			logrus.WithFields(logrus.Fields{
				"match_id": match.ID,
				"user1_id": match.User1ID,
				"user2_id": match.User2ID,
			}).Info("match created")
		}

		matchID := match.ID
		result = &domain.InteractionResult{Status: domain.StatusMatch, MatchID: &matchID}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve match: %w", err)
	}
	return result, nil
}

// ListMatches returns the user's matches, most recent activity first
func (uc *MatchUseCase) ListMatches(ctx context.Context, userID uuid.UUID) ([]*domain.MatchSummary, error) {
	matches, err := uc.matchRepo.GetUserMatches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}
	return matches, nil
}

// GetMessages returns up to limit messages created strictly after cursor.
// An empty cursor starts at the beginning of the conversation.
func (uc *MatchUseCase) GetMessages(ctx context.Context, matchID, requesterID uuid.UUID, cursor string, limit int) (*domain.MessagePage, error) {
	limit, err := domain.ClampMessageLimit(limit)
	if err != nil {
		return nil, err
	}

	var after *time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, domain.ErrInvalidCursor
		}
		after = &t
	}

	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasUser(requesterID) {
		return nil, domain.ErrNotMatchParticipant
	}

	messages, err := uc.messageRepo.ListAfter(ctx, matchID, after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	page := &domain.MessagePage{Messages: messages}
	if len(messages) == limit {
		next := messages[len(messages)-1].CreatedAt.UTC().Format(time.RFC3339Nano)
		page.NextCursor = &next
	}
	return page, nil
}

// SendMessage appends a message and updates the match preview atomically
func (uc *MatchUseCase) SendMessage(ctx context.Context, matchID, senderID uuid.UUID, text string) (*domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}
	if len([]rune(text)) > domain.MaxMessageLength {
		return nil, domain.ErrMessageTooLong
	}

	message := &domain.Message{MatchID: matchID, SenderID: senderID, Text: text}
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		match, err := uc.matchRepo.GetByIDForUpdate(ctx, matchID)
		if err != nil {
			return err
		}
		if !match.HasUser(senderID) {
			return domain.ErrNotMatchParticipant
		}

		if err := uc.messageRepo.Create(ctx, message); err != nil {
			return err
		}
		return uc.matchRepo.UpdateLastMessage(ctx, matchID, message.Text, message.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return message, nil
}

// MarkRead marks the counterpart's messages in the match as read
func (uc *MatchUseCase) MarkRead(ctx context.Context, matchID, readerID uuid.UUID) (int64, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return 0, err
	}
	if !match.HasUser(readerID) {
		return 0, domain.ErrNotMatchParticipant
	}

	updated, err := uc.messageRepo.MarkRead(ctx, matchID, readerID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", err)
	}
	return updated, nil
}
