// Package fcm delivers push notifications through Firebase Cloud Messaging.
package fcm

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// MaxBatchSize is the largest multicast FCM accepts in one call.
const MaxBatchSize = 500

type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// Provider sends multicast messages and classifies per-token outcomes.
type Provider struct {
	client multicastSender
	// permanent reports whether a per-token error means the token will never
	// work again.
	permanent func(error) bool
	log       *slog.Logger
}

// NewProvider initializes a Firebase app for projectID using Application
// Default Credentials.
func NewProvider(ctx context.Context, projectID string, logger *slog.Logger) (*Provider, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("fcm: init app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("fcm: init messaging: %w", err)
	}
	return newProvider(client, logger), nil
}

func newProvider(client multicastSender, logger *slog.Logger) *Provider {
	return &Provider{
		client:    client,
		permanent: isPermanentTokenError,
		log:       logger.With("adapter", "fcm"),
	}
}

// isPermanentTokenError matches only token-specific codes. INVALID_ARGUMENT
// is also returned for a malformed or oversized message, so it never prunes.
func isPermanentTokenError(err error) bool {
	return messaging.IsUnregistered(err) || messaging.IsSenderIDMismatch(err)
}

// Send delivers n to tokens in one multicast. A non-nil error means the
// whole batch failed and no outcome is known.
func (p *Provider) Send(ctx context.Context, tokens []string, n domain.Notification) ([]domain.TokenOutcome, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	if len(tokens) > MaxBatchSize {
		return nil, fmt.Errorf("fcm: batch of %d exceeds %d tokens", len(tokens), MaxBatchSize)
	}

	data := make(map[string]string, len(n.Data)+1)
	for k, v := range n.Data {
		data[k] = v
	}
	data["kind"] = string(n.Kind)

	resp, err := p.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: data,
	})
	if err != nil {
		p.log.ErrorContext(ctx, "fcm multicast failed",
			slog.Int("tokens", len(tokens)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("fcm: multicast: %w", err)
	}

	outcomes := make([]domain.TokenOutcome, len(tokens))
	for i, tok := range tokens {
		outcomes[i] = domain.TokenOutcome{Token: tok}
		if i >= len(resp.Responses) || resp.Responses[i] == nil {
			outcomes[i].Err = fmt.Errorf("fcm: missing response for token %d", i)
			continue
		}
		r := resp.Responses[i]
		if r.Success {
			outcomes[i].Delivered = true
			continue
		}
		outcomes[i].Err = r.Error
		outcomes[i].Invalid = r.Error != nil && p.permanent(r.Error)
	}

	p.log.DebugContext(ctx, "fcm multicast sent",
		slog.Int("success", resp.SuccessCount),
		slog.Int("failure", resp.FailureCount),
	)
	return outcomes, nil
}
