package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType identifies the kind of ledger entity (used in audit logs).
type EntityType string

const (
	EntityTypeRelationship EntityType = "RELATIONSHIP"
	EntityTypeFollow       EntityType = "FOLLOW"
	EntityTypeConversation EntityType = "CONVERSATION"
	EntityTypeProfile      EntityType = "PROFILE"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeRelationship, EntityTypeFollow, EntityTypeConversation, EntityTypeProfile:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// AuditRecord is an append-only record of a ledger mutation.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    Identity
	EntityType EntityType
	TargetID   *Identity
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
