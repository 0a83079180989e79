package follow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// Follow makes viewer a follower of target. It reports whether a new follow
// was recorded; repeating it changes nothing, counters included.
func (s *Service) Follow(ctx context.Context, viewer, target domain.Identity) (bool, error) {
	if err := domain.ValidatePair(viewer, target); err != nil {
		return false, err
	}

	var (
		inserted bool
		follower domain.Profile
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		pair, err := s.profiles.LockPair(txCtx, viewer, target)
		if err != nil {
			return fmt.Errorf("lock profiles: %w", err)
		}
		for _, p := range pair {
			if p.ID == viewer {
				follower = p
			}
		}

		inserted, err = s.followers.Insert(txCtx, target, viewer)
		if err != nil {
			return fmt.Errorf("insert follower: %w", err)
		}
		if !inserted {
			return nil
		}

		if err := s.adjust(txCtx, viewer, target, 1); err != nil {
			return err
		}
		return s.logAudit(txCtx, viewer, target, domain.AuditActionCreate)
	})
	if err != nil {
		return false, domain.PersistenceError("follow", err)
	}
	if !inserted {
		return false, nil
	}

	s.log.InfoContext(ctx, "follow recorded",
		slog.String("follower", viewer.String()),
		slog.String("target", target.String()),
	)

	s.publish(ctx, viewer, target, true)

	res, err := s.notify.Send(ctx, domain.Notification{
		Recipient: target,
		Kind:      domain.NotificationNewFollower,
		Title:     "New Follower",
		Body:      follower.Name() + " started following you",
		Data:      map[string]string{"follower": viewer.String()},
	})
	if err != nil {
		s.log.WarnContext(ctx, "new follower notification failed",
			slog.String("target", target.String()),
			slog.String("error", err.Error()),
		)
	} else {
		s.log.DebugContext(ctx, "new follower notification sent",
			slog.String("target", target.String()),
			slog.Int("delivered", res.Delivered),
			slog.Int("failed", res.Failed),
		)
	}

	return true, nil
}

// Unfollow removes viewer from target's followers. It reports whether a
// follow existed.
func (s *Service) Unfollow(ctx context.Context, viewer, target domain.Identity) (bool, error) {
	if err := domain.ValidatePair(viewer, target); err != nil {
		return false, err
	}

	var deleted bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.profiles.LockPair(txCtx, viewer, target); err != nil {
			return fmt.Errorf("lock profiles: %w", err)
		}

		var err error
		deleted, err = s.followers.Delete(txCtx, target, viewer)
		if err != nil {
			return fmt.Errorf("delete follower: %w", err)
		}
		if !deleted {
			return nil
		}

		if err := s.adjust(txCtx, viewer, target, -1); err != nil {
			return err
		}
		return s.logAudit(txCtx, viewer, target, domain.AuditActionDelete)
	})
	if err != nil {
		return false, domain.PersistenceError("unfollow", err)
	}
	if !deleted {
		return false, nil
	}

	s.log.InfoContext(ctx, "follow removed",
		slog.String("follower", viewer.String()),
		slog.String("target", target.String()),
	)

	s.publish(ctx, viewer, target, false)

	return true, nil
}

func (s *Service) adjust(ctx context.Context, viewer, target domain.Identity, delta int) error {
	if err := s.profiles.AdjustCounter(ctx, target, domain.CounterFollowers, delta); err != nil {
		return fmt.Errorf("adjust follower count: %w", err)
	}
	if err := s.profiles.AdjustCounter(ctx, viewer, domain.CounterFollowing, delta); err != nil {
		return fmt.Errorf("adjust following count: %w", err)
	}
	return nil
}

func (s *Service) logAudit(ctx context.Context, viewer, target domain.Identity, action domain.AuditAction) error {
	if err := s.audit.Log(ctx, domain.AuditRecord{
		ActorID:    viewer,
		EntityType: domain.EntityTypeFollow,
		TargetID:   &target,
		Action:     action,
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, viewer, target domain.Identity, following bool) {
	now := time.Now()
	for _, ev := range []domain.Event{
		{
			Kind:       domain.EventFollow,
			Recipient:  target,
			Actor:      viewer,
			Payload:    map[string]any{"follower": viewer.String(), "following": following},
			OccurredAt: now,
		},
		{
			Kind:       domain.EventFollow,
			Recipient:  viewer,
			Actor:      viewer,
			Payload:    map[string]any{"target": target.String(), "following": following},
			OccurredAt: now,
		},
	} {
		if err := s.events.Publish(ctx, ev); err != nil {
			s.log.WarnContext(ctx, "publish follow event",
				slog.String("recipient", ev.Recipient.String()),
				slog.String("error", err.Error()),
			)
		}
	}
}
