package conversation

import (
	"context"
	"iter"
	"slices"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// ListMessages returns one page of history older than input.Before, in
// chronological order.
func (s *Service) ListMessages(ctx context.Context, input ListMessagesInput) ([]domain.Message, error) {
	if err := s.checkMember(input.ConversationID, input.Viewer); err != nil {
		return nil, err
	}
	limit, err := s.pageSize(input.Limit)
	if err != nil {
		return nil, err
	}

	page, err := s.conversations.ListMessages(ctx, input.ConversationID, input.Before, limit)
	if err != nil {
		return nil, domain.PersistenceError("list messages", err)
	}
	slices.Reverse(page)
	return page, nil
}

// Messages walks the whole history of a conversation from the newest message
// back to the oldest, strictly descending by (CreatedAt, Seq). Pages are
// fetched lazily as the caller ranges. Every range starts again from the
// newest message.
func (s *Service) Messages(ctx context.Context, id string, viewer domain.Identity, pageSize int) iter.Seq2[domain.Message, error] {
	return func(yield func(domain.Message, error) bool) {
		if err := s.checkMember(id, viewer); err != nil {
			yield(domain.Message{}, err)
			return
		}
		limit, err := s.pageSize(pageSize)
		if err != nil {
			yield(domain.Message{}, err)
			return
		}

		var before *domain.MessageCursor
		for {
			page, err := s.conversations.ListMessages(ctx, id, before, limit)
			if err != nil {
				yield(domain.Message{}, domain.PersistenceError("list messages", err))
				return
			}
			if len(page) == 0 {
				return
			}
			oldest := page[len(page)-1].Cursor()
			for _, m := range page {
				if !yield(m, nil) {
					return
				}
			}
			if len(page) < limit {
				return
			}
			before = &oldest
		}
	}
}

// ListConversations returns the viewer's conversations, most recent activity
// first.
func (s *Service) ListConversations(ctx context.Context, viewer domain.Identity, limit, offset int) ([]domain.ConversationSummary, error) {
	if err := viewer.Validate("viewer"); err != nil {
		return nil, err
	}
	if limit < 0 || limit > MaxListLimit {
		return nil, domain.NewValidationError("limit", "must be between 0 and 200")
	}
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must be non-negative")
	}
	if limit == 0 {
		limit = DefaultListLimit
	}

	out, err := s.conversations.ListForMember(ctx, viewer, limit, offset)
	if err != nil {
		return nil, domain.PersistenceError("list conversations", err)
	}
	return out, nil
}

func (s *Service) pageSize(n int) (int, error) {
	switch {
	case n == 0:
		return s.cfg.DefaultPageSize, nil
	case n < 0 || n > s.cfg.MaxPageSize:
		return 0, domain.NewValidationError("limit", "out of range")
	}
	return n, nil
}
