package stream

import (
	"context"
	"fmt"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// Snapshot is the viewer's view of whatever an event touched, read after the
// event arrived. Only the part matching the event kind is set.
type Snapshot struct {
	Event        domain.Event
	Relationship *RelationshipView
	Profile      *domain.Profile
	Conversation *domain.Conversation
}

// RelationshipView is the stored state between the viewer and a peer.
type RelationshipView struct {
	Peer  domain.Identity
	State domain.RelationshipState
}

// Filter selects event kinds. The zero Filter matches everything.
type Filter struct {
	Kinds []domain.EventKind
}

// Match reports whether ev passes f.
func (f Filter) Match(ev domain.Event) bool {
	if len(f.Kinds) == 0 {
		return true
	}
	for _, k := range f.Kinds {
		if k == ev.Kind {
			return true
		}
	}
	return false
}

func payloadString(ev domain.Event, key string) string {
	v, _ := ev.Payload[key].(string)
	return v
}

// snapshot re-reads the state ev refers to.
func (s *Service) snapshot(ctx context.Context, viewer domain.Identity, ev domain.Event) (Snapshot, error) {
	snap := Snapshot{Event: ev}

	switch ev.Kind {
	case domain.EventRelationship:
		peer := domain.Identity(payloadString(ev, "peer"))
		if peer == "" {
			return snap, fmt.Errorf("relationship event without peer: %w", domain.ErrValidation)
		}
		state, err := s.relationships.State(ctx, viewer, peer)
		if err != nil {
			return snap, fmt.Errorf("read relationship: %w", err)
		}
		snap.Relationship = &RelationshipView{Peer: peer, State: state}

	case domain.EventFollow:
		p, err := s.profiles.GetProfile(ctx, viewer)
		if err != nil {
			return snap, fmt.Errorf("read profile: %w", err)
		}
		snap.Profile = p

	case domain.EventMessage, domain.EventConversation:
		id := payloadString(ev, "conversation_id")
		if id == "" {
			return snap, fmt.Errorf("%s event without conversation: %w", ev.Kind, domain.ErrValidation)
		}
		c, err := s.conversations.GetConversation(ctx, id, viewer)
		if err != nil {
			return snap, fmt.Errorf("read conversation: %w", err)
		}
		snap.Conversation = c
	}

	return snap, nil
}
