package domain

import "time"

// EventKind names the subject suffix of a change event.
type EventKind string

const (
	EventRelationship EventKind = "relationship"
	EventFollow       EventKind = "follow"
	EventMessage      EventKind = "message"
	EventConversation EventKind = "conversation"
	EventNotification EventKind = "notification"
)

// Event is a post-commit change notice addressed to one identity.
// Subscribers re-read state from the event rather than from the writer.
type Event struct {
	Kind       EventKind      `json:"kind"`
	Recipient  Identity       `json:"recipient"`
	Actor      Identity       `json:"actor,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
