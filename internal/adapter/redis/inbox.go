package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// Inbox stores the most recent notifications of each identity.
type Inbox struct {
	client goredis.Cmdable
	size   int64
	ttl    time.Duration
}

// NewInbox creates an Inbox keeping at most size entries per identity for ttl
// after the last push.
func NewInbox(client goredis.Cmdable, size int64, ttl time.Duration) *Inbox {
	return &Inbox{client: client, size: size, ttl: ttl}
}

func inboxKey(id domain.Identity) string {
	return "notifications:" + string(id)
}

type entry struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Push appends n to its recipient's inbox and trims the inbox to size.
func (i *Inbox) Push(ctx context.Context, n domain.Notification) error {
	member, err := json.Marshal(entry{
		ID:        n.ID.String(),
		Kind:      string(n.Kind),
		Title:     n.Title,
		Body:      n.Body,
		Data:      n.Data,
		CreatedAt: n.CreatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	key := inboxKey(n.Recipient)
	pipe := i.client.TxPipeline()
	pipe.ZAdd(ctx, key, goredis.Z{
		Score:  float64(n.CreatedAt.UnixMilli()),
		Member: string(member),
	})
	// keep the newest `size` entries
	pipe.ZRemRangeByRank(ctx, key, 0, -(i.size + 1))
	pipe.Expire(ctx, key, i.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push notification %s: %w", n.Recipient, err)
	}
	return nil
}

// Recent returns up to limit notifications of id, newest first.
func (i *Inbox) Recent(ctx context.Context, id domain.Identity, limit int64) ([]domain.Notification, error) {
	if limit <= 0 || limit > i.size {
		limit = i.size
	}

	members, err := i.client.ZRevRange(ctx, inboxKey(id), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read inbox %s: %w", id, err)
	}

	out := make([]domain.Notification, 0, len(members))
	for _, m := range members {
		n, ok := decodeEntry(id, m)
		if !ok {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func decodeEntry(recipient domain.Identity, member string) (domain.Notification, bool) {
	var e entry
	if err := json.Unmarshal([]byte(member), &e); err != nil {
		return domain.Notification{}, false
	}
	n := domain.Notification{
		Recipient: recipient,
		Kind:      domain.NotificationKind(e.Kind),
		Title:     e.Title,
		Body:      e.Body,
		Data:      e.Data,
		CreatedAt: e.CreatedAt,
	}
	if id, err := uuid.Parse(e.ID); err == nil {
		n.ID = id
	}
	return n, true
}
