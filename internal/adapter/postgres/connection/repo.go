// Package connection persists relationship records as mirrored rows, one per
// (owner, peer) pair. Callers keep the mirror consistent by always writing
// and deleting both rows of a pair inside one transaction.
package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

const table = "connections"

// Repo provides relationship record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new connection repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type connectionRow struct {
	OwnerID   string    `db:"owner_id"`
	PeerID    string    `db:"peer_id"`
	Kind      string    `db:"kind"`
	CreatedAt time.Time `db:"created_at"`
}

type summaryRow struct {
	ID          string  `db:"id"`
	Handle      string  `db:"handle"`
	DisplayName string  `db:"display_name"`
	AvatarURL   *string `db:"avatar_url"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Kinds returns the stored memberships of owner→peer and peer→owner. A nil
// kind means the row is absent.
func (r *Repo) Kinds(ctx context.Context, owner, peer domain.Identity) (ownerKind, peerKind *domain.ConnectionKind, err error) {
	query, args, err := postgres.Builder().
		Select("owner_id", "peer_id", "kind", "created_at").
		From(table).
		Where(squirrel.Or{
			squirrel.Eq{"owner_id": string(owner), "peer_id": string(peer)},
			squirrel.Eq{"owner_id": string(peer), "peer_id": string(owner)},
		}).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build connection query: %w", err)
	}

	var rows []connectionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, nil, postgres.MapError(err, "connection", owner)
	}

	for _, rw := range rows {
		k := domain.ConnectionKind(rw.Kind)
		if domain.Identity(rw.OwnerID) == owner {
			ownerKind = &k
		} else {
			peerKind = &k
		}
	}
	return ownerKind, peerKind, nil
}

// ListPeers returns the profiles owner holds with the given membership kind,
// newest first.
func (r *Repo) ListPeers(ctx context.Context, owner domain.Identity, kind domain.ConnectionKind, limit, offset int) ([]domain.ProfileSummary, error) {
	q := postgres.Builder().
		Select("p.id", "p.handle", "p.display_name", "p.avatar_url").
		From(table + " c").
		Join("profiles p ON p.id = c.peer_id").
		Where(squirrel.Eq{"c.owner_id": string(owner), "c.kind": string(kind)}).
		OrderBy("c.created_at DESC", "p.id")
	query, args, err := postgres.Paginate(q, limit, offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build peers query: %w", err)
	}

	var rows []summaryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "connection", owner)
	}

	out := make([]domain.ProfileSummary, len(rows))
	for i, rw := range rows {
		out[i] = domain.ProfileSummary{
			ID:          domain.Identity(rw.ID),
			Handle:      rw.Handle,
			DisplayName: rw.DisplayName,
			AvatarURL:   rw.AvatarURL,
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// PutPair stores owner→peer with kind and peer→owner with the mirrored kind,
// replacing whatever either row held before.
func (r *Repo) PutPair(ctx context.Context, owner, peer domain.Identity, kind domain.ConnectionKind) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("owner_id", "peer_id", "kind").
		Values(string(owner), string(peer), string(kind)).
		Values(string(peer), string(owner), string(kind.Mirror())).
		Suffix("ON CONFLICT (owner_id, peer_id) DO UPDATE SET kind = EXCLUDED.kind, created_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build connection upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "connection", owner)
	}
	return nil
}

// DeletePair removes both rows of the pair and returns how many were deleted.
func (r *Repo) DeletePair(ctx context.Context, a, b domain.Identity) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Or{
			squirrel.Eq{"owner_id": string(a), "peer_id": string(b)},
			squirrel.Eq{"owner_id": string(b), "peer_id": string(a)},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build connection delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "connection", a)
	}
	return tag.RowsAffected(), nil
}
