package relationship

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// afterCommit publishes change events to both parties and sends the push
// notification for request and accept. Failures are logged only.
func (s *Service) afterCommit(ctx context.Context, t domain.Transition, viewer domain.Profile, target domain.Identity) {
	now := time.Now()
	for _, ev := range []domain.Event{
		{
			Kind:       domain.EventRelationship,
			Recipient:  viewer.ID,
			Actor:      viewer.ID,
			Payload:    map[string]any{"peer": target.String(), "state": t.To.String(), "action": t.Action.String()},
			OccurredAt: now,
		},
		{
			Kind:       domain.EventRelationship,
			Recipient:  target,
			Actor:      viewer.ID,
			Payload:    map[string]any{"peer": viewer.ID.String(), "state": t.To.Mirror().String(), "action": t.Action.String()},
			OccurredAt: now,
		},
	} {
		if err := s.events.Publish(ctx, ev); err != nil {
			s.log.WarnContext(ctx, "publish relationship event",
				slog.String("recipient", ev.Recipient.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	var n domain.Notification
	switch t.Action {
	case domain.ActionRequest:
		n = domain.Notification{
			Kind:  domain.NotificationConnectionRequest,
			Title: "New Connection Request",
			Body:  viewer.Name() + " wants to connect with you",
		}
	case domain.ActionAccept:
		n = domain.Notification{
			Kind:  domain.NotificationConnectionAccept,
			Title: "Connection Accepted",
			Body:  viewer.Name() + " accepted your connection request",
		}
	default:
		return
	}
	n.Recipient = target
	n.Data = map[string]string{"peer": viewer.ID.String()}

	res, err := s.notify.Send(ctx, n)
	if err != nil {
		s.log.WarnContext(ctx, "relationship notification failed",
			slog.String("target", target.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	s.log.DebugContext(ctx, "relationship notification sent",
		slog.String("target", target.String()),
		slog.Int("delivered", res.Delivered),
		slog.Int("failed", res.Failed),
	)
}
