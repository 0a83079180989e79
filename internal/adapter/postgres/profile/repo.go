// Package profile implements the identity store using PostgreSQL.
// Besides plain reads and create-or-merge writes it owns the denormalized
// counters maintained by the relationship and follow ledgers.
package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/ideamatcher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

const table = "profiles"

var columns = []string{
	"id", "handle", "display_name", "bio", "avatar_url", "tags",
	"connection_count", "follower_count", "following_count",
	"created_at", "updated_at",
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID              string    `db:"id"`
	Handle          string    `db:"handle"`
	DisplayName     string    `db:"display_name"`
	Bio             string    `db:"bio"`
	AvatarURL       *string   `db:"avatar_url"`
	Tags            []string  `db:"tags"`
	ConnectionCount int       `db:"connection_count"`
	FollowerCount   int       `db:"follower_count"`
	FollowingCount  int       `db:"following_count"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Profile {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.Profile{
		ID:              domain.Identity(r.ID),
		Handle:          r.Handle,
		DisplayName:     r.DisplayName,
		Bio:             r.Bio,
		AvatarURL:       r.AvatarURL,
		Tags:            tags,
		ConnectionCount: r.ConnectionCount,
		FollowerCount:   r.FollowerCount,
		FollowingCount:  r.FollowingCount,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the profile with the given identity.
func (r *Repo) GetByID(ctx context.Context, id domain.Identity) (*domain.Profile, error) {
	return r.getOne(ctx, squirrel.Eq{"id": string(id)}, id)
}

// GetByHandle returns the profile with the given (normalized) handle.
func (r *Repo) GetByHandle(ctx context.Context, handle string) (*domain.Profile, error) {
	return r.getOne(ctx, squirrel.Eq{"handle": handle}, handle)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.Profile, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", key)
	}

	p := dst.toDomain()
	return &p, nil
}

// Exists reports whether a profile with the given identity exists.
func (r *Repo) Exists(ctx context.Context, id domain.Identity) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM profiles WHERE id = $1)`, string(id),
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "profile", id)
	}
	return exists, nil
}

// LockPair locks the profile rows of a and b with FOR UPDATE in sorted id
// order and returns them in that order. Must be called inside a transaction.
// Returns domain.ErrNotFound if either profile is missing.
func (r *Repo) LockPair(ctx context.Context, a, b domain.Identity) ([]domain.Profile, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": []string{string(a), string(b)}}).
		OrderBy("id").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lock query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", domain.ConversationID(a, b))
	}
	if len(rows) != 2 {
		return nil, fmt.Errorf("profile pair %s/%s: %w", a, b, domain.ErrNotFound)
	}

	out := make([]domain.Profile, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert creates the profile or merges the editable fields into the existing
// row. Counters are never touched.
func (r *Repo) Upsert(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "handle", "display_name", "bio", "avatar_url", "tags").
		Values(string(p.ID), p.Handle, p.DisplayName, p.Bio, p.AvatarURL, tags).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			handle = EXCLUDED.handle,
			display_name = EXCLUDED.display_name,
			bio = EXCLUDED.bio,
			avatar_url = EXCLUDED.avatar_url,
			tags = EXCLUDED.tags,
			updated_at = now()`).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile upsert: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", p.ID)
	}

	out := dst.toDomain()
	return &out, nil
}

// AdjustCounter adds delta to one counter of the profile. The counter never
// drops below zero.
func (r *Repo) AdjustCounter(ctx context.Context, id domain.Identity, field domain.CounterField, delta int) error {
	if !field.IsValid() {
		return fmt.Errorf("adjust counter %q: %w", field, domain.ErrValidation)
	}
	if delta == 0 {
		return nil
	}

	col := string(field)
	query, args, err := postgres.Builder().
		Update(table).
		Set(col, squirrel.Expr("GREATEST("+col+" + ?, 0)", delta)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": string(id)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build counter update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "profile", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
