package relationship

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

type profileRepo interface {
	LockPair(ctx context.Context, a, b domain.Identity) ([]domain.Profile, error)
	AdjustCounter(ctx context.Context, id domain.Identity, field domain.CounterField, delta int) error
}

type connectionRepo interface {
	Kinds(ctx context.Context, owner, peer domain.Identity) (*domain.ConnectionKind, *domain.ConnectionKind, error)
	PutPair(ctx context.Context, owner, peer domain.Identity, kind domain.ConnectionKind) error
	DeletePair(ctx context.Context, a, b domain.Identity) (int64, error)
	ListPeers(ctx context.Context, owner domain.Identity, kind domain.ConnectionKind, limit, offset int) ([]domain.ProfileSummary, error)
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

// Service owns the mirrored connection records of identity pairs.
type Service struct {
	profiles    profileRepo
	connections connectionRepo
	notify      notifier
	events      eventPublisher
	audit       auditLogger
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new relationship service.
func NewService(
	log *slog.Logger,
	profiles profileRepo,
	connections connectionRepo,
	notify notifier,
	events eventPublisher,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		profiles:    profiles,
		connections: connections,
		notify:      notify,
		events:      events,
		audit:       audit,
		tx:          tx,
		log:         log.With("service", "relationship"),
	}
}
