// Package devicetoken persists push delivery tokens per identity.
package devicetoken

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

const table = "delivery_tokens"

// Repo provides delivery token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new delivery token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	OwnerID    string    `db:"owner_id"`
	Token      string    `db:"token"`
	Platform   string    `db:"platform"`
	CreatedAt  time.Time `db:"created_at"`
	LastSeenAt time.Time `db:"last_seen_at"`
}

// Upsert registers token for its owner, refreshing platform and last_seen_at
// when it is already known.
func (r *Repo) Upsert(ctx context.Context, tok domain.DeliveryToken) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("owner_id", "token", "platform").
		Values(string(tok.OwnerID), tok.Token, string(tok.Platform)).
		Suffix("ON CONFLICT (owner_id, token) DO UPDATE SET platform = EXCLUDED.platform, last_seen_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build token upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "delivery_token", tok.OwnerID)
	}
	return nil
}

// ListByOwner returns every token registered for owner, most recently seen first.
func (r *Repo) ListByOwner(ctx context.Context, owner domain.Identity) ([]domain.DeliveryToken, error) {
	query, args, err := postgres.Builder().
		Select("owner_id", "token", "platform", "created_at", "last_seen_at").
		From(table).
		Where(squirrel.Eq{"owner_id": string(owner)}).
		OrderBy("last_seen_at DESC", "token").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build token query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "delivery_token", owner)
	}

	out := make([]domain.DeliveryToken, len(rows))
	for i, rw := range rows {
		out[i] = domain.DeliveryToken{
			OwnerID:    domain.Identity(rw.OwnerID),
			Token:      rw.Token,
			Platform:   domain.Platform(rw.Platform),
			CreatedAt:  rw.CreatedAt,
			LastSeenAt: rw.LastSeenAt,
		}
	}
	return out, nil
}

// DeleteTokens removes the given tokens of owner and returns how many were
// deleted. Unknown tokens are ignored.
func (r *Repo) DeleteTokens(ctx context.Context, owner domain.Identity, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"owner_id": string(owner), "token": tokens}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build token delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "delivery_token", owner)
	}
	return tag.RowsAffected(), nil
}

// DeleteStale removes tokens not seen since before and returns how many were
// deleted.
func (r *Repo) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"last_seen_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build stale token delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "delivery_token", before)
	}
	return tag.RowsAffected(), nil
}
