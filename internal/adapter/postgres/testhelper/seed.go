package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return strings.ReplaceAll(uuid.New().String()[:13], "-", "")
}

// UniqueIdentity returns an identity that no other test uses.
func UniqueIdentity() domain.Identity {
	return domain.Identity("uid" + uniqueSuffix())
}

// SeedProfile creates a profile with zeroed counters and a unique handle.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Profile{
		ID:          domain.Identity("uid" + suffix),
		Handle:      "builder" + suffix,
		DisplayName: "Builder " + suffix,
		Bio:         "",
		Tags:        []string{"go"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO profiles (id, handle, display_name, bio, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		string(p.ID), p.Handle, p.DisplayName, p.Bio, p.Tags, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert: %v", err)
	}

	return p
}

// SeedConnection writes the mirrored pair of connection rows for owner and
// peer, starting from owner's kind.
func SeedConnection(t *testing.T, pool *pgxpool.Pool, owner, peer domain.Identity, kind domain.ConnectionKind) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO connections (owner_id, peer_id, kind) VALUES ($1, $2, $3), ($2, $1, $4)`,
		string(owner), string(peer), string(kind), string(kind.Mirror()),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedConnection insert: %v", err)
	}
}

// SeedDeliveryToken registers a delivery token for owner.
func SeedDeliveryToken(t *testing.T, pool *pgxpool.Pool, owner domain.Identity) domain.DeliveryToken {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	tok := domain.DeliveryToken{
		OwnerID:    owner,
		Token:      "tok-" + uniqueSuffix(),
		Platform:   domain.PlatformAndroid,
		CreatedAt:  now,
		LastSeenAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO delivery_tokens (owner_id, token, platform, created_at, last_seen_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		string(tok.OwnerID), tok.Token, string(tok.Platform), tok.CreatedAt, tok.LastSeenAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeliveryToken insert: %v", err)
	}

	return tok
}

// ProfileCounters reads the denormalized counters of a profile.
func ProfileCounters(t *testing.T, pool *pgxpool.Pool, id domain.Identity) (connections, followers, following int) {
	t.Helper()

	err := pool.QueryRow(context.Background(),
		`SELECT connection_count, follower_count, following_count FROM profiles WHERE id = $1`,
		string(id),
	).Scan(&connections, &followers, &following)
	if err != nil {
		t.Fatalf("testhelper: ProfileCounters: %v", err)
	}
	return connections, followers, following
}
