package domain

import "time"

// Profile is the public identity record of a builder, with the
// denormalized counters maintained by the ledgers.
type Profile struct {
	ID              Identity
	Handle          string
	DisplayName     string
	Bio             string
	AvatarURL       *string
	Tags            []string
	ConnectionCount int
	FollowerCount   int
	FollowingCount  int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Name returns the best human-readable label for notifications.
func (p Profile) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.Handle != "" {
		return p.Handle
	}
	return string(p.ID)
}

// ProfileSummary is the compact profile shape used in lists.
type ProfileSummary struct {
	ID          Identity
	Handle      string
	DisplayName string
	AvatarURL   *string
}

// CounterField names a denormalized profile counter.
type CounterField string

const (
	CounterConnections CounterField = "connection_count"
	CounterFollowers   CounterField = "follower_count"
	CounterFollowing   CounterField = "following_count"
)

func (c CounterField) IsValid() bool {
	switch c {
	case CounterConnections, CounterFollowers, CounterFollowing:
		return true
	}
	return false
}
