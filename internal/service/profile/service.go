package profile

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

type profileRepo interface {
	GetByID(ctx context.Context, id domain.Identity) (*domain.Profile, error)
	GetByHandle(ctx context.Context, handle string) (*domain.Profile, error)
	Upsert(ctx context.Context, p domain.Profile) (*domain.Profile, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the public profile record of each identity.
type Service struct {
	profiles profileRepo
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new profile service.
func NewService(
	log *slog.Logger,
	profiles profileRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		profiles: profiles,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "profile"),
	}
}
