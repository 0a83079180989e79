package ws

import (
	"time"

	"github.com/heartmarshall/ideamatcher-backend/internal/service/stream"
)

type frame struct {
	Kind         string             `json:"kind"`
	Actor        string             `json:"actor,omitempty"`
	Payload      map[string]any     `json:"payload,omitempty"`
	OccurredAt   time.Time          `json:"occurredAt"`
	Relationship *relationshipFrame `json:"relationship,omitempty"`
	Profile      *profileFrame      `json:"profile,omitempty"`
	Conversation *conversationFrame `json:"conversation,omitempty"`
	Error        string             `json:"error,omitempty"`
}

type relationshipFrame struct {
	Peer  string `json:"peer"`
	State string `json:"state"`
}

type profileFrame struct {
	ID              string `json:"id"`
	ConnectionCount int    `json:"connectionCount"`
	FollowerCount   int    `json:"followerCount"`
	FollowingCount  int    `json:"followingCount"`
}

type conversationFrame struct {
	ID            string         `json:"id"`
	LastMessage   string         `json:"lastMessage"`
	LastMessageAt *time.Time     `json:"lastMessageAt,omitempty"`
	UnreadCount   map[string]int `json:"unreadCount"`
}

func toFrame(s stream.Snapshot, err error) frame {
	f := frame{
		Kind:       string(s.Event.Kind),
		Actor:      s.Event.Actor.String(),
		Payload:    s.Event.Payload,
		OccurredAt: s.Event.OccurredAt,
	}
	if err != nil {
		f.Error = "snapshot unavailable"
		return f
	}
	if r := s.Relationship; r != nil {
		f.Relationship = &relationshipFrame{Peer: r.Peer.String(), State: r.State.String()}
	}
	if p := s.Profile; p != nil {
		f.Profile = &profileFrame{
			ID:              p.ID.String(),
			ConnectionCount: p.ConnectionCount,
			FollowerCount:   p.FollowerCount,
			FollowingCount:  p.FollowingCount,
		}
	}
	if c := s.Conversation; c != nil {
		f.Conversation = &conversationFrame{
			ID:            c.ID,
			LastMessage:   c.LastMessage,
			LastMessageAt: c.LastMessageAt,
			UnreadCount:   make(map[string]int, len(c.UnreadCount)),
		}
		for id, n := range c.UnreadCount {
			f.Conversation.UnreadCount[id.String()] = n
		}
	}
	return f
}
