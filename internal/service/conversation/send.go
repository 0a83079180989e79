package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// SendMessage appends a message to the conversation, creating it on first
// use. Only the two members encoded in the id may send, and both must have a
// profile (domain.ErrNotFound otherwise).
func (s *Service) SendMessage(ctx context.Context, input SendMessageInput) (domain.Message, error) {
	if err := input.Validate(); err != nil {
		return domain.Message{}, err
	}
	a, b, _ := domain.ParseConversationID(input.ConversationID)
	conv := domain.Conversation{ID: input.ConversationID, Members: [2]domain.Identity{a, b}}
	recipient, ok := conv.Peer(input.Sender)
	if !ok {
		return domain.Message{}, fmt.Errorf("conversation %s: %w", input.ConversationID, domain.ErrForbidden)
	}

	msgType := input.Type
	if msgType == "" {
		msgType = domain.MessageTypeText
	}
	msg := domain.Message{
		ID:             uuid.New(),
		ConversationID: input.ConversationID,
		SenderID:       input.Sender,
		Content:        strings.TrimSpace(input.Content),
		Type:           msgType,
		CreatedAt:      s.now().UTC(),
	}

	var stored domain.Message
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.profiles.LockPair(txCtx, a, b); err != nil {
			return fmt.Errorf("lock members: %w", err)
		}
		if err := s.conversations.Ensure(txCtx, conv.ID, a, b); err != nil {
			return fmt.Errorf("ensure conversation: %w", err)
		}
		m, err := s.conversations.InsertMessage(txCtx, msg)
		if err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
		if err := s.conversations.RecordSend(txCtx, m); err != nil {
			return fmt.Errorf("record send: %w", err)
		}
		stored = m
		return nil
	})
	if err != nil {
		return domain.Message{}, domain.PersistenceError("send message", err)
	}

	s.log.InfoContext(ctx, "message sent",
		slog.String("conversation_id", conv.ID),
		slog.String("sender", input.Sender.String()),
		slog.Int64("seq", stored.Seq),
	)

	s.announce(ctx, stored, recipient)
	return stored, nil
}

// SendMessageTo sends to the conversation between sender and peer.
func (s *Service) SendMessageTo(ctx context.Context, sender, peer domain.Identity, content string, msgType domain.MessageType) (domain.Message, error) {
	if err := domain.ValidatePair(sender, peer); err != nil {
		return domain.Message{}, err
	}
	return s.SendMessage(ctx, SendMessageInput{
		ConversationID: domain.ConversationID(sender, peer),
		Sender:         sender,
		Content:        content,
		Type:           msgType,
	})
}

// announce publishes the message to both members and pushes a notification
// to the recipient. Failures are logged only.
func (s *Service) announce(ctx context.Context, m domain.Message, recipient domain.Identity) {
	payload := map[string]any{
		"conversation_id": m.ConversationID,
		"message_id":      m.ID.String(),
		"seq":             m.Seq,
		"type":            m.Type.String(),
	}
	for _, to := range []domain.Identity{m.SenderID, recipient} {
		err := s.events.Publish(ctx, domain.Event{
			Kind:       domain.EventMessage,
			Recipient:  to,
			Actor:      m.SenderID,
			Payload:    payload,
			OccurredAt: m.CreatedAt,
		})
		if err != nil {
			s.log.WarnContext(ctx, "publish message event",
				slog.String("recipient", to.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	name := m.SenderID.String()
	if p, err := s.profiles.GetByID(ctx, m.SenderID); err == nil {
		name = p.Name()
	}

	body := m.Content
	if m.Type != domain.MessageTypeText {
		body = "Sent you a message"
	}
	if _, err := s.notify.Send(ctx, domain.Notification{
		Recipient: recipient,
		Kind:      domain.NotificationNewMessage,
		Title:     "New message from " + name,
		Body:      truncate(body, 140),
		Data:      map[string]string{"conversation_id": m.ConversationID},
	}); err != nil {
		s.log.WarnContext(ctx, "new message notification failed",
			slog.String("recipient", recipient.String()),
			slog.String("error", err.Error()),
		)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
