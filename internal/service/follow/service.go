package follow

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

type followerRepo interface {
	Insert(ctx context.Context, target, follower domain.Identity) (bool, error)
	Delete(ctx context.Context, target, follower domain.Identity) (bool, error)
	Exists(ctx context.Context, target, follower domain.Identity) (bool, error)
	ListFollowers(ctx context.Context, target domain.Identity, limit, offset int) ([]domain.ProfileSummary, error)
	ListFollowing(ctx context.Context, follower domain.Identity, limit, offset int) ([]domain.ProfileSummary, error)
}

type profileRepo interface {
	LockPair(ctx context.Context, a, b domain.Identity) ([]domain.Profile, error)
	AdjustCounter(ctx context.Context, id domain.Identity, field domain.CounterField, delta int) error
}

type notifier interface {
	Send(ctx context.Context, n domain.Notification) (domain.DeliveryResult, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Service maintains follower sets and the follower/following counters.
type Service struct {
	followers followerRepo
	profiles  profileRepo
	notify    notifier
	events    eventPublisher
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new follow service.
func NewService(
	log *slog.Logger,
	followers followerRepo,
	profiles profileRepo,
	notify notifier,
	events eventPublisher,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		followers: followers,
		profiles:  profiles,
		notify:    notify,
		events:    events,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "follow"),
	}
}
