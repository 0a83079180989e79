package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// RegisterToken records a delivery token for the owner, refreshing its
// last-seen time when it is already known.
func (s *Service) RegisterToken(ctx context.Context, input RegisterTokenInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	now := s.now()
	err := s.tokens.Upsert(ctx, domain.DeliveryToken{
		OwnerID:    input.Owner,
		Token:      strings.TrimSpace(input.Token),
		Platform:   input.Platform,
		CreatedAt:  now,
		LastSeenAt: now,
	})
	if err != nil {
		return domain.PersistenceError("register token", err)
	}

	s.log.DebugContext(ctx, "delivery token registered",
		slog.String("owner", input.Owner.String()),
		slog.String("platform", input.Platform.String()),
	)
	return nil
}

// UnregisterToken removes one of the owner's tokens.
func (s *Service) UnregisterToken(ctx context.Context, owner domain.Identity, token string) error {
	if err := owner.Validate("owner"); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.NewValidationError("token", "required")
	}

	n, err := s.tokens.DeleteTokens(ctx, owner, []string{token})
	if err != nil {
		return domain.PersistenceError("unregister token", err)
	}
	if n == 0 {
		return fmt.Errorf("delivery token: %w", domain.ErrNotFound)
	}
	return nil
}

// PruneStale deletes tokens not seen for maxIdle and returns how many were
// removed.
func (s *Service) PruneStale(ctx context.Context, maxIdle time.Duration) (int64, error) {
	if maxIdle <= 0 {
		return 0, domain.NewValidationError("max_idle", "must be positive")
	}

	n, err := s.tokens.DeleteStale(ctx, s.now().Add(-maxIdle))
	if err != nil {
		return 0, domain.PersistenceError("prune stale tokens", err)
	}
	prunedTotal.Add(float64(n))

	s.log.InfoContext(ctx, "stale delivery tokens pruned",
		slog.Int64("deleted", n),
		slog.Duration("max_idle", maxIdle),
	)
	return n, nil
}

// RecentNotifications returns up to limit notifications from id's inbox,
// newest first.
func (s *Service) RecentNotifications(ctx context.Context, id domain.Identity, limit int) ([]domain.Notification, error) {
	if err := id.Validate("id"); err != nil {
		return nil, err
	}
	if limit < 0 || limit > MaxRecentLimit {
		return nil, domain.NewValidationError("limit", "must be between 0 and 100")
	}
	if limit == 0 {
		limit = DefaultRecentLimit
	}

	out, err := s.inbox.Recent(ctx, id, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("read inbox: %w", err)
	}
	return out, nil
}
