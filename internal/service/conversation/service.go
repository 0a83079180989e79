package conversation

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/ideamatcher-backend/internal/config"
	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

type conversationRepo interface {
	Ensure(ctx context.Context, id string, a, b domain.Identity) error
	InsertMessage(ctx context.Context, m domain.Message) (domain.Message, error)
	RecordSend(ctx context.Context, m domain.Message) error
	ResetUnread(ctx context.Context, id string, member domain.Identity) (bool, error)
	Get(ctx context.Context, id string) (*domain.Conversation, error)
	ListMessages(ctx context.Context, id string, before *domain.MessageCursor, limit int) ([]domain.Message, error)
	ListForMember(ctx context.Context, member domain.Identity, limit, offset int) ([]domain.ConversationSummary, error)
}

type profileRepo interface {
	GetByID(ctx context.Context, id domain.Identity) (*domain.Profile, error)
	LockPair(ctx context.Context, a, b domain.Identity) ([]domain.Profile, error)
}

type notifier interface {
	Send(ctx context.Context, n domain.Notification) (domain.DeliveryResult, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Service stores pairwise conversations and their messages.
type Service struct {
	conversations conversationRepo
	profiles      profileRepo
	notify        notifier
	events        eventPublisher
	tx            txManager
	cfg           config.MessagingConfig
	now           func() time.Time
	log           *slog.Logger
}

// NewService creates a new conversation service.
func NewService(
	log *slog.Logger,
	conversations conversationRepo,
	profiles profileRepo,
	notify notifier,
	events eventPublisher,
	tx txManager,
	cfg config.MessagingConfig,
) *Service {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 100
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
	}
	return &Service{
		conversations: conversations,
		profiles:      profiles,
		notify:        notify,
		events:        events,
		tx:            tx,
		cfg:           cfg,
		now:           time.Now,
		log:           log.With("service", "conversation"),
	}
}
