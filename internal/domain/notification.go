package domain

import (
	"time"

	"github.com/google/uuid"
)

// Platform is the client platform a delivery token was issued for.
type Platform string

const (
	PlatformIOS     Platform = "IOS"
	PlatformAndroid Platform = "ANDROID"
	PlatformWeb     Platform = "WEB"
)

func (p Platform) String() string { return string(p) }

func (p Platform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return true
	}
	return false
}

// DeliveryToken is a push-capable device address owned by an identity.
type DeliveryToken struct {
	OwnerID    Identity
	Token      string
	Platform   Platform
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// NotificationKind classifies notifications for clients and the inbox.
type NotificationKind string

const (
	NotificationGeneric           NotificationKind = "GENERIC"
	NotificationNewFollower       NotificationKind = "NEW_FOLLOWER"
	NotificationConnectionRequest NotificationKind = "CONNECTION_REQUEST"
	NotificationConnectionAccept  NotificationKind = "CONNECTION_ACCEPTED"
	NotificationNewMessage        NotificationKind = "NEW_MESSAGE"
)

// Notification is a user-visible message delivered through push and kept in
// the recipient's recent inbox.
type Notification struct {
	ID        uuid.UUID
	Recipient Identity
	Kind      NotificationKind
	Title     string
	Body      string
	Data      map[string]string
	CreatedAt time.Time
}

// TokenOutcome is the provider's verdict for a single token.
type TokenOutcome struct {
	Token     string
	Delivered bool
	// Invalid is set when the provider reports the token permanently unusable.
	Invalid bool
	Err     error
}

// DeliveryResult summarizes one notify call.
type DeliveryResult struct {
	Delivered int
	Failed    int
	Pruned    int
}
