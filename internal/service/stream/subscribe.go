package stream

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// Subscribe returns an unbounded sequence of snapshots for events addressed
// to viewer that pass filter. The subscription starts when the sequence is
// ranged and ends when the consumer stops or ctx is done. A snapshot that
// cannot be read is yielded with its error and the sequence continues.
//
// Events arriving while the consumer is busy are buffered; once the buffer
// is full further events are dropped.
func (s *Service) Subscribe(ctx context.Context, viewer domain.Identity, filter Filter) iter.Seq2[Snapshot, error] {
	return func(yield func(Snapshot, error) bool) {
		if err := viewer.Validate("viewer"); err != nil {
			yield(Snapshot{}, err)
			return
		}

		events := make(chan domain.Event, s.buffer)
		cancel, err := s.source.Subscribe(viewer, func(_ context.Context, ev domain.Event) {
			if !filter.Match(ev) {
				return
			}
			select {
			case events <- ev:
			default:
				droppedTotal.Inc()
				s.log.Warn("subscriber behind, dropping event",
					slog.String("viewer", viewer.String()),
					slog.String("kind", string(ev.Kind)),
				)
			}
		})
		if err != nil {
			yield(Snapshot{}, fmt.Errorf("subscribe: %w", err))
			return
		}
		defer func() {
			if err := cancel(); err != nil {
				s.log.Warn("unsubscribe failed", slog.String("viewer", viewer.String()), slog.String("error", err.Error()))
			}
		}()

		s.log.DebugContext(ctx, "subscription started", slog.String("viewer", viewer.String()))

		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-events:
				snap, err := s.snapshot(ctx, viewer, ev)
				if !yield(snap, err) {
					return
				}
			}
		}
	}
}
