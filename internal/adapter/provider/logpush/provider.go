// Package logpush is a development push provider that logs notifications
// instead of delivering them. Every token is reported as delivered.
package logpush

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// Provider logs each send.
type Provider struct {
	log *slog.Logger
}

// NewProvider creates a logging provider.
func NewProvider(logger *slog.Logger) *Provider {
	return &Provider{log: logger.With("adapter", "logpush")}
}

// Send logs n and reports every token delivered.
func (p *Provider) Send(ctx context.Context, tokens []string, n domain.Notification) ([]domain.TokenOutcome, error) {
	p.log.InfoContext(ctx, "push notification",
		slog.String("recipient", string(n.Recipient)),
		slog.String("kind", string(n.Kind)),
		slog.String("title", n.Title),
		slog.Int("tokens", len(tokens)),
	)

	outcomes := make([]domain.TokenOutcome, len(tokens))
	for i, tok := range tokens {
		outcomes[i] = domain.TokenOutcome{Token: tok, Delivered: true}
	}
	return outcomes, nil
}
