package domain

import "time"

// RelationshipState is the connection state between a viewer and a target,
// as seen from the viewer's side.
type RelationshipState string

const (
	RelationshipNotConnected    RelationshipState = "NOT_CONNECTED"
	RelationshipRequested       RelationshipState = "REQUESTED"
	RelationshipIncomingRequest RelationshipState = "INCOMING_REQUEST"
	RelationshipConnected       RelationshipState = "CONNECTED"
)

func (s RelationshipState) String() string { return string(s) }

func (s RelationshipState) IsValid() bool {
	switch s {
	case RelationshipNotConnected, RelationshipRequested, RelationshipIncomingRequest, RelationshipConnected:
		return true
	}
	return false
}

// Mirror returns the same relationship as seen from the other party.
func (s RelationshipState) Mirror() RelationshipState {
	switch s {
	case RelationshipRequested:
		return RelationshipIncomingRequest
	case RelationshipIncomingRequest:
		return RelationshipRequested
	}
	return s
}

// RelationshipAction is a user intent applied to a relationship.
type RelationshipAction string

const (
	ActionRequest    RelationshipAction = "REQUEST"
	ActionCancel     RelationshipAction = "CANCEL"
	ActionAccept     RelationshipAction = "ACCEPT"
	ActionReject     RelationshipAction = "REJECT"
	ActionDisconnect RelationshipAction = "DISCONNECT"
)

func (a RelationshipAction) String() string { return string(a) }

func (a RelationshipAction) IsValid() bool {
	switch a {
	case ActionRequest, ActionCancel, ActionAccept, ActionReject, ActionDisconnect:
		return true
	}
	return false
}

// IsDestructive reports whether the action needs explicit confirmation.
func (a RelationshipAction) IsDestructive() bool {
	return a == ActionCancel || a == ActionDisconnect
}

// DefaultAction returns the action a one-button UI performs for a state.
// An incoming request defaults to accepting it.
func DefaultAction(s RelationshipState) RelationshipAction {
	switch s {
	case RelationshipRequested:
		return ActionCancel
	case RelationshipIncomingRequest:
		return ActionAccept
	case RelationshipConnected:
		return ActionDisconnect
	}
	return ActionRequest
}

// ConnectionKind is the membership stored on an owner's relationship record.
type ConnectionKind string

const (
	ConnectionKindConnected ConnectionKind = "CONNECTED"
	ConnectionKindSent      ConnectionKind = "SENT"
	ConnectionKindIncoming  ConnectionKind = "INCOMING"
)

func (k ConnectionKind) String() string { return string(k) }

func (k ConnectionKind) IsValid() bool {
	switch k {
	case ConnectionKindConnected, ConnectionKindSent, ConnectionKindIncoming:
		return true
	}
	return false
}

// Mirror returns the kind stored on the peer's record.
func (k ConnectionKind) Mirror() ConnectionKind {
	switch k {
	case ConnectionKindSent:
		return ConnectionKindIncoming
	case ConnectionKindIncoming:
		return ConnectionKindSent
	}
	return k
}

// StateFromKind converts a stored membership into the viewer-side state.
// A nil kind means the pair has no record.
func StateFromKind(kind *ConnectionKind) RelationshipState {
	if kind == nil {
		return RelationshipNotConnected
	}
	switch *kind {
	case ConnectionKindConnected:
		return RelationshipConnected
	case ConnectionKindSent:
		return RelationshipRequested
	case ConnectionKindIncoming:
		return RelationshipIncomingRequest
	}
	return RelationshipNotConnected
}

// KindForState is the inverse of StateFromKind. It returns nil for
// RelationshipNotConnected.
func KindForState(s RelationshipState) *ConnectionKind {
	var k ConnectionKind
	switch s {
	case RelationshipConnected:
		k = ConnectionKindConnected
	case RelationshipRequested:
		k = ConnectionKindSent
	case RelationshipIncomingRequest:
		k = ConnectionKindIncoming
	default:
		return nil
	}
	return &k
}

// Transition describes one edge of the relationship state machine.
type Transition struct {
	From   RelationshipState
	Action RelationshipAction
	To     RelationshipState
	// ConnectionDelta is applied to both profiles' connection counters.
	ConnectionDelta int
}

type transitionKey struct {
	from   RelationshipState
	action RelationshipAction
}

var transitions = map[transitionKey]Transition{
	{RelationshipNotConnected, ActionRequest}: {
		From: RelationshipNotConnected, Action: ActionRequest, To: RelationshipRequested,
	},
	{RelationshipRequested, ActionCancel}: {
		From: RelationshipRequested, Action: ActionCancel, To: RelationshipNotConnected,
	},
	{RelationshipIncomingRequest, ActionAccept}: {
		From: RelationshipIncomingRequest, Action: ActionAccept, To: RelationshipConnected, ConnectionDelta: 1,
	},
	{RelationshipIncomingRequest, ActionReject}: {
		From: RelationshipIncomingRequest, Action: ActionReject, To: RelationshipNotConnected,
	},
	{RelationshipConnected, ActionDisconnect}: {
		From: RelationshipConnected, Action: ActionDisconnect, To: RelationshipNotConnected, ConnectionDelta: -1,
	},
}

// NextTransition looks up the edge leaving from for action. The second result
// is false when the pair is not part of the state machine.
func NextTransition(from RelationshipState, action RelationshipAction) (Transition, bool) {
	t, ok := transitions[transitionKey{from: from, action: action}]
	return t, ok
}

// Connection is one row of an owner's relationship record.
type Connection struct {
	OwnerID   Identity
	PeerID    Identity
	Kind      ConnectionKind
	CreatedAt time.Time
}
