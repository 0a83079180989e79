package conversation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// OpenConversation marks the conversation read for viewer and returns it.
// Opening an already read conversation writes nothing.
func (s *Service) OpenConversation(ctx context.Context, id string, viewer domain.Identity) (*domain.Conversation, error) {
	if err := s.checkMember(id, viewer); err != nil {
		return nil, err
	}

	conv, err := s.conversations.Get(ctx, id)
	if err != nil {
		return nil, domain.PersistenceError("get conversation", err)
	}
	if conv.UnreadCount[viewer] == 0 {
		return conv, nil
	}

	reset, err := s.conversations.ResetUnread(ctx, id, viewer)
	if err != nil {
		return nil, domain.PersistenceError("reset unread", err)
	}
	conv.UnreadCount[viewer] = 0
	if !reset {
		return conv, nil
	}

	s.log.DebugContext(ctx, "conversation opened",
		slog.String("conversation_id", id),
		slog.String("viewer", viewer.String()),
	)
	if err := s.events.Publish(ctx, domain.Event{
		Kind:       domain.EventConversation,
		Recipient:  viewer,
		Actor:      viewer,
		Payload:    map[string]any{"conversation_id": id, "unread": 0},
		OccurredAt: s.now(),
	}); err != nil {
		s.log.WarnContext(ctx, "publish conversation event",
			slog.String("conversation_id", id),
			slog.String("error", err.Error()),
		)
	}
	return conv, nil
}

// checkMember validates id and reports ErrForbidden when viewer is not one
// of its members.
func (s *Service) checkMember(id string, viewer domain.Identity) error {
	if err := viewer.Validate("viewer"); err != nil {
		return err
	}
	a, b, err := domain.ParseConversationID(id)
	if err != nil {
		return err
	}
	if viewer != a && viewer != b {
		return fmt.Errorf("conversation %s: %w", id, domain.ErrForbidden)
	}
	return nil
}

// GetConversation returns the conversation without changing its unread
// counts.
func (s *Service) GetConversation(ctx context.Context, id string, viewer domain.Identity) (*domain.Conversation, error) {
	if err := s.checkMember(id, viewer); err != nil {
		return nil, err
	}
	conv, err := s.conversations.Get(ctx, id)
	if err != nil {
		return nil, domain.PersistenceError("get conversation", err)
	}
	return conv, nil
}
