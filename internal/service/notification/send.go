package notification

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// Notify sends a generic notification to target.
func (s *Service) Notify(ctx context.Context, target domain.Identity, title, body string) (domain.DeliveryResult, error) {
	return s.Send(ctx, domain.Notification{
		Recipient: target,
		Kind:      domain.NotificationGeneric,
		Title:     title,
		Body:      body,
	})
}

// Send delivers n to every token registered for n.Recipient. A recipient
// without tokens yields a zero result and no error.
//
// Per-token outcomes are counted independently. Tokens the provider reports
// as permanently invalid are pruned even when other batches fail. A failed
// batch counts all of its tokens as failed and makes Send return an error
// wrapping domain.ErrDelivery alongside the partial result.
func (s *Service) Send(ctx context.Context, n domain.Notification) (domain.DeliveryResult, error) {
	if err := n.Recipient.Validate("recipient"); err != nil {
		return domain.DeliveryResult{}, err
	}
	if errs := validateText(n.Title, n.Body); len(errs) > 0 {
		return domain.DeliveryResult{}, domain.NewValidationErrors(errs)
	}

	tokens, err := s.tokens.ListByOwner(ctx, n.Recipient)
	if err != nil {
		return domain.DeliveryResult{}, domain.PersistenceError("list delivery tokens", err)
	}
	return s.dispatch(ctx, n, tokens)
}

// Deliver backs the service-to-service push endpoint. Unlike Send it reports
// an unknown receiver as domain.ErrNotFound and a receiver without tokens as
// domain.ErrNoDeliveryTokens.
func (s *Service) Deliver(ctx context.Context, input DeliverInput) (domain.DeliveryResult, error) {
	if err := input.Validate(); err != nil {
		return domain.DeliveryResult{}, err
	}

	ok, err := s.profiles.Exists(ctx, input.ReceiverID)
	if err != nil {
		return domain.DeliveryResult{}, domain.PersistenceError("check receiver", err)
	}
	if !ok {
		return domain.DeliveryResult{}, fmt.Errorf("receiver %s: %w", input.ReceiverID, domain.ErrNotFound)
	}

	tokens, err := s.tokens.ListByOwner(ctx, input.ReceiverID)
	if err != nil {
		return domain.DeliveryResult{}, domain.PersistenceError("list delivery tokens", err)
	}
	if len(tokens) == 0 {
		return domain.DeliveryResult{}, fmt.Errorf("receiver %s: %w", input.ReceiverID, domain.ErrNoDeliveryTokens)
	}

	return s.dispatch(ctx, domain.Notification{
		Recipient: input.ReceiverID,
		Kind:      domain.NotificationGeneric,
		Title:     input.Title,
		Body:      input.Body,
	}, tokens)
}

type batchResult struct {
	tokens   []string
	outcomes []domain.TokenOutcome
	err      error
}

func (s *Service) dispatch(ctx context.Context, n domain.Notification, tokens []domain.DeliveryToken) (domain.DeliveryResult, error) {
	if len(tokens) == 0 {
		return domain.DeliveryResult{}, nil
	}
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.now()
	}

	values := make([]string, len(tokens))
	for i, t := range tokens {
		values[i] = t.Token
	}

	var batches []*batchResult
	for chunk := range slices.Chunk(values, s.cfg.BatchSize) {
		batches = append(batches, &batchResult{tokens: chunk})
	}

	var g errgroup.Group
	g.SetLimit(s.cfg.BatchConcurrency)
	for _, b := range batches {
		g.Go(func() error {
			b.outcomes, b.err = s.push.Send(ctx, b.tokens, n)
			return nil
		})
	}
	_ = g.Wait()

	var (
		res      domain.DeliveryResult
		invalid  []string
		batchErr error
	)
	for _, b := range batches {
		if b.err != nil {
			res.Failed += len(b.tokens)
			if batchErr == nil {
				batchErr = b.err
			}
			continue
		}
		for _, o := range b.outcomes {
			if o.Delivered {
				res.Delivered++
				continue
			}
			res.Failed++
			if o.Invalid {
				invalid = append(invalid, o.Token)
			}
		}
	}

	if len(invalid) > 0 {
		pruned, err := s.tokens.DeleteTokens(ctx, n.Recipient, invalid)
		if err != nil {
			s.log.ErrorContext(ctx, "prune invalid tokens",
				slog.String("recipient", n.Recipient.String()),
				slog.Int("tokens", len(invalid)),
				slog.String("error", err.Error()),
			)
		}
		res.Pruned = int(pruned)
	}

	tokensTotal.WithLabelValues("delivered").Add(float64(res.Delivered))
	tokensTotal.WithLabelValues("failed").Add(float64(res.Failed))
	prunedTotal.Add(float64(res.Pruned))

	s.remember(ctx, n)

	s.log.InfoContext(ctx, "notification dispatched",
		slog.String("recipient", n.Recipient.String()),
		slog.String("kind", string(n.Kind)),
		slog.Int("delivered", res.Delivered),
		slog.Int("failed", res.Failed),
		slog.Int("pruned", res.Pruned),
	)

	if batchErr != nil {
		return res, fmt.Errorf("%w: %w", domain.ErrDelivery, batchErr)
	}
	return res, nil
}

// remember stores n in the recipient's inbox and announces it on the event
// bus. Both are best-effort.
func (s *Service) remember(ctx context.Context, n domain.Notification) {
	if err := s.inbox.Push(ctx, n); err != nil {
		s.log.WarnContext(ctx, "inbox push failed",
			slog.String("recipient", n.Recipient.String()),
			slog.String("error", err.Error()),
		)
	}
	if err := s.events.Publish(ctx, domain.Event{
		Kind:      domain.EventNotification,
		Recipient: n.Recipient,
		Payload: map[string]any{
			"id":    n.ID.String(),
			"kind":  string(n.Kind),
			"title": n.Title,
			"body":  n.Body,
		},
		OccurredAt: n.CreatedAt,
	}); err != nil {
		s.log.WarnContext(ctx, "publish notification event",
			slog.String("recipient", n.Recipient.String()),
			slog.String("error", err.Error()),
		)
	}
}
