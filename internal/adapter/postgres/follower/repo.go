// Package follower persists the follow ledger: one row per (target, follower).
package follower

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

const table = "followers"

// Repo provides follow ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new follower repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type summaryRow struct {
	ID          string  `db:"id"`
	Handle      string  `db:"handle"`
	DisplayName string  `db:"display_name"`
	AvatarURL   *string `db:"avatar_url"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert records that follower follows target. It reports whether a new row
// was created; an existing row is left untouched.
func (r *Repo) Insert(ctx context.Context, target, follower domain.Identity) (bool, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("target_id", "follower_id").
		Values(string(target), string(follower)).
		Suffix("ON CONFLICT (target_id, follower_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build follower insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "follower", target)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete removes the follow row and reports whether one existed.
func (r *Repo) Delete(ctx context.Context, target, follower domain.Identity) (bool, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"target_id": string(target), "follower_id": string(follower)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build follower delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "follower", target)
	}
	return tag.RowsAffected() == 1, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Exists reports whether follower follows target.
func (r *Repo) Exists(ctx context.Context, target, follower domain.Identity) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM followers WHERE target_id = $1 AND follower_id = $2)`,
		string(target), string(follower),
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "follower", target)
	}
	return exists, nil
}

// CountFollowers returns the number of rows for target.
func (r *Repo) CountFollowers(ctx context.Context, target domain.Identity) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM followers WHERE target_id = $1`, string(target),
	).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "follower", target)
	}
	return n, nil
}

// ListFollowers returns the profiles following target, newest first.
func (r *Repo) ListFollowers(ctx context.Context, target domain.Identity, limit, offset int) ([]domain.ProfileSummary, error) {
	return r.list(ctx, "f.follower_id", "f.target_id", target, limit, offset)
}

// ListFollowing returns the profiles follower follows, newest first.
func (r *Repo) ListFollowing(ctx context.Context, follower domain.Identity, limit, offset int) ([]domain.ProfileSummary, error) {
	return r.list(ctx, "f.target_id", "f.follower_id", follower, limit, offset)
}

func (r *Repo) list(ctx context.Context, joinCol, filterCol string, id domain.Identity, limit, offset int) ([]domain.ProfileSummary, error) {
	q := postgres.Builder().
		Select("p.id", "p.handle", "p.display_name", "p.avatar_url").
		From(table + " f").
		Join("profiles p ON p.id = " + joinCol).
		Where(squirrel.Eq{filterCol: string(id)}).
		OrderBy("f.created_at DESC", "p.id")
	query, args, err := postgres.Paginate(q, limit, offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build follower list: %w", err)
	}

	var rows []summaryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "follower", id)
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
