// Package stream turns per-identity change events into a lazy sequence of
// state snapshots. Each snapshot is re-read from the ledgers when its event
// arrives, so a subscriber never sees state the writer only intended.
package stream

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

type eventSource interface {
	Subscribe(recipient domain.Identity, h func(ctx context.Context, ev domain.Event)) (func() error, error)
}

type relationshipReader interface {
	State(ctx context.Context, viewer, target domain.Identity) (domain.RelationshipState, error)
}

type profileReader interface {
	GetProfile(ctx context.Context, id domain.Identity) (*domain.Profile, error)
}

type conversationReader interface {
	GetConversation(ctx context.Context, id string, viewer domain.Identity) (*domain.Conversation, error)
}

// DefaultBuffer is the number of events held for a slow consumer before new
// ones are dropped.
const DefaultBuffer = 64

var droppedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ideamatcher_stream_events_dropped_total",
	Help: "Events dropped because a subscriber fell behind.",
})

// Service serves subscriptions.
type Service struct {
	source        eventSource
	relationships relationshipReader
	profiles      profileReader
	conversations conversationReader
	buffer        int
	log           *slog.Logger
}

// NewService creates a new stream service.
func NewService(
	log *slog.Logger,
	source eventSource,
	relationships relationshipReader,
	profiles profileReader,
	conversations conversationReader,
	buffer int,
) *Service {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Service{
		source:        source,
		relationships: relationships,
		profiles:      profiles,
		conversations: conversations,
		buffer:        buffer,
		log:           log.With("service", "stream"),
	}
}
