// Package nats carries post-commit change events over NATS core subjects.
// Each event is addressed to one identity; trace context travels in the
// message headers.
package nats

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/ideamatcher-backend/internal/config"
	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

const tracerName = "github.com/heartmarshall/ideamatcher-backend/internal/adapter/nats"

// Connect dials the NATS server described by cfg. Connection state changes
// are logged.
func Connect(cfg config.NATSConfig, log *slog.Logger) (*nats.Conn, error) {
	log = log.With("component", "nats")

	nc, err := nats.Connect(cfg.URL,
		nats.Name(cfg.ClientName),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("nats disconnected", slog.String("error", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("nats reconnected", slog.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats %s: %w", cfg.URL, err)
	}
	return nc, nil
}

// subjectToken encodes an identity as a single subject token. Identities may
// contain '.', '*' or '>' which are reserved in subjects.
func subjectToken(id domain.Identity) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

// Subject returns the subject an event of kind for recipient is published on.
func Subject(prefix string, recipient domain.Identity, kind domain.EventKind) string {
	return strings.Join([]string{prefix, "user", subjectToken(recipient), string(kind)}, ".")
}

// WildcardSubject matches every event addressed to recipient.
func WildcardSubject(prefix string, recipient domain.Identity) string {
	return strings.Join([]string{prefix, "user", subjectToken(recipient), ">"}, ".")
}

// ---------------------------------------------------------------------------
// Publisher
// ---------------------------------------------------------------------------

type msgPublisher interface {
	PublishMsg(m *nats.Msg) error
}

// Publisher publishes domain events.
type Publisher struct {
	nc     msgPublisher
	prefix string
	log    *slog.Logger
}

// NewPublisher creates a Publisher on nc using the subject prefix.
func NewPublisher(nc msgPublisher, prefix string, log *slog.Logger) *Publisher {
	return &Publisher{nc: nc, prefix: prefix, log: log.With("component", "nats.publisher")}
}

// Publish sends ev to its recipient's subject.
func (p *Publisher) Publish(ctx context.Context, ev domain.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := &nats.Msg{
		Subject: Subject(p.prefix, ev.Recipient, ev.Kind),
		Data:    data,
		Header:  nats.Header{},
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(msg.Header))

	if err := p.nc.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish %s: %w", msg.Subject, err)
	}

	p.log.DebugContext(ctx, "event published",
		slog.String("subject", msg.Subject),
		slog.String("kind", string(ev.Kind)),
	)
	return nil
}

// ---------------------------------------------------------------------------
// Subscriber
// ---------------------------------------------------------------------------

// Subscriber subscribes to per-identity event streams.
type Subscriber struct {
	nc     *nats.Conn
	prefix string
	log    *slog.Logger
}

// NewSubscriber creates a Subscriber on nc using the subject prefix.
func NewSubscriber(nc *nats.Conn, prefix string, log *slog.Logger) *Subscriber {
	return &Subscriber{nc: nc, prefix: prefix, log: log.With("component", "nats.subscriber")}
}

// Subscribe delivers every event addressed to recipient to h until the
// returned cancel function is called. The ctx passed to h carries the
// publisher's trace.
func (s *Subscriber) Subscribe(recipient domain.Identity, h func(ctx context.Context, ev domain.Event)) (func() error, error) {
	subject := WildcardSubject(s.prefix, recipient)
	sub, err := s.nc.Subscribe(subject, func(msg *nats.Msg) {
		s.dispatch(msg, h)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", subject, err)
	}
	return sub.Unsubscribe, nil
}

func (s *Subscriber) dispatch(msg *nats.Msg, h func(ctx context.Context, ev domain.Event)) {
	ctx := otel.GetTextMapPropagator().Extract(context.Background(), propagation.HeaderCarrier(msg.Header))
	ctx, span := otel.Tracer(tracerName).Start(ctx, "event.receive",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(attribute.String("messaging.destination.name", msg.Subject)),
	)
	defer span.End()

	ev, err := Decode(msg.Data)
	if err != nil {
		span.RecordError(err)
		s.log.Warn("dropping malformed event", slog.String("subject", msg.Subject), slog.String("error", err.Error()))
		return
	}
	h(ctx, ev)
}

// Decode parses an event payload.
func Decode(data []byte) (domain.Event, error) {
	var ev domain.Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return domain.Event{}, fmt.Errorf("decode event: %w", err)
	}
	if ev.Recipient == "" || ev.Kind == "" {
		return domain.Event{}, fmt.Errorf("decode event: %w", domain.ErrValidation)
	}
	return ev, nil
}
