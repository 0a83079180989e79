package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/ideamatcher-backend/internal/config"
	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

type tokenRepo interface {
	Upsert(ctx context.Context, tok domain.DeliveryToken) error
	ListByOwner(ctx context.Context, owner domain.Identity) ([]domain.DeliveryToken, error)
	DeleteTokens(ctx context.Context, owner domain.Identity, tokens []string) (int64, error)
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}

type profileRepo interface {
	Exists(ctx context.Context, id domain.Identity) (bool, error)
}

type pushProvider interface {
	Send(ctx context.Context, tokens []string, n domain.Notification) ([]domain.TokenOutcome, error)
}

type inboxStore interface {
	Push(ctx context.Context, n domain.Notification) error
	Recent(ctx context.Context, id domain.Identity, limit int64) ([]domain.Notification, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

var (
	tokensTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ideamatcher_notifications_tokens_total",
		Help: "Push delivery attempts per token, by result.",
	}, []string{"result"})

	prunedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ideamatcher_notifications_pruned_total",
		Help: "Delivery tokens removed after the provider reported them invalid.",
	})
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

// Service resolves delivery tokens and fans notifications out to the push
// provider.
type Service struct {
	tokens   tokenRepo
	profiles profileRepo
	push     pushProvider
	inbox    inboxStore
	events   eventPublisher
	cfg      config.NotificationsConfig
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new notification service.
func NewService(
	log *slog.Logger,
	tokens tokenRepo,
	profiles profileRepo,
	push pushProvider,
	inbox inboxStore,
	events eventPublisher,
	cfg config.NotificationsConfig,
) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = 1
	}
	return &Service{
		tokens:   tokens,
		profiles: profiles,
		push:     push,
		inbox:    inbox,
		events:   events,
		cfg:      cfg,
		now:      time.Now,
		log:      log.With("service", "notification"),
	}
}
