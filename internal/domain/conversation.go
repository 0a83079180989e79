package domain

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ConversationSeparator joins the two member identities of a pairwise
// conversation id.
const ConversationSeparator = "_"

// MaxMessageLen bounds message content, in characters.
const MaxMessageLen = 4000

// ConversationID returns the deterministic id of the conversation between a
// and b. The result does not depend on argument order.
func ConversationID(a, b Identity) string {
	if b < a {
		a, b = b, a
	}
	return string(a) + ConversationSeparator + string(b)
}

// ParseConversationID splits a pairwise conversation id into its sorted
// members.
func ParseConversationID(id string) (Identity, Identity, error) {
	a, b, ok := strings.Cut(id, ConversationSeparator)
	if !ok || a == "" || b == "" || strings.Contains(b, ConversationSeparator) {
		return "", "", NewValidationError("conversation_id", "malformed")
	}
	if a >= b {
		return "", "", NewValidationError("conversation_id", "members must be distinct and sorted")
	}
	return Identity(a), Identity(b), nil
}

// Conversation is a pairwise thread between two identities.
type Conversation struct {
	ID            string
	Members       [2]Identity
	LastMessage   string
	LastMessageAt *time.Time
	LastSenderID  *Identity
	UnreadCount   map[Identity]int
	CreatedAt     time.Time
}

// Peer returns the other member, or false if viewer is not a member.
func (c Conversation) Peer(viewer Identity) (Identity, bool) {
	switch viewer {
	case c.Members[0]:
		return c.Members[1], true
	case c.Members[1]:
		return c.Members[0], true
	}
	return "", false
}

// HasMember reports whether id belongs to the conversation.
func (c Conversation) HasMember(id Identity) bool {
	_, ok := c.Peer(id)
	return ok
}

// ConversationSummary is one row of a member's conversation list.
type ConversationSummary struct {
	ID            string
	Peer          Identity
	LastMessage   string
	LastMessageAt *time.Time
	LastSenderID  *Identity
	UnreadCount   int
}

// MessageType classifies message content.
type MessageType string

const (
	MessageTypeText   MessageType = "TEXT"
	MessageTypeImage  MessageType = "IMAGE"
	MessageTypeSystem MessageType = "SYSTEM"
)

func (t MessageType) String() string { return string(t) }

func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeSystem:
		return true
	}
	return false
}

// Message is an immutable entry of a conversation.
type Message struct {
	ID             uuid.UUID
	Seq            int64
	ConversationID string
	SenderID       Identity
	Content        string
	Type           MessageType
	CreatedAt      time.Time
}

// MessageCursor is a keyset position in a conversation's history.
type MessageCursor struct {
	CreatedAt time.Time
	Seq       int64
}

// Cursor returns the keyset position of m.
func (m Message) Cursor() MessageCursor {
	return MessageCursor{CreatedAt: m.CreatedAt, Seq: m.Seq}
}

// Encode renders c as an opaque token suitable for query strings.
func (c MessageCursor) Encode() string {
	raw := c.CreatedAt.UTC().Format(time.RFC3339Nano) + "|" + strconv.FormatInt(c.Seq, 10)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeMessageCursor parses a token produced by MessageCursor.Encode.
func DecodeMessageCursor(token string) (MessageCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return MessageCursor{}, NewValidationError("before", "malformed cursor")
	}
	at, seq, ok := strings.Cut(string(raw), "|")
	if !ok {
		return MessageCursor{}, NewValidationError("before", "malformed cursor")
	}
	t, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return MessageCursor{}, NewValidationError("before", "malformed cursor")
	}
	n, err := strconv.ParseInt(seq, 10, 64)
	if err != nil {
		return MessageCursor{}, NewValidationError("before", "malformed cursor")
	}
	return MessageCursor{CreatedAt: t, Seq: n}, nil
}
