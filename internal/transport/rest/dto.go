package rest

import (
	"time"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

type profileResponse struct {
	ID              string    `json:"id"`
	Handle          string    `json:"handle"`
	DisplayName     string    `json:"displayName"`
	Bio             string    `json:"bio"`
	AvatarURL       *string   `json:"avatarUrl,omitempty"`
	Tags            []string  `json:"tags"`
	ConnectionCount int       `json:"connectionCount"`
	FollowerCount   int       `json:"followerCount"`
	FollowingCount  int       `json:"followingCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return profileResponse{
		ID:              p.ID.String(),
		Handle:          p.Handle,
		DisplayName:     p.DisplayName,
		Bio:             p.Bio,
		AvatarURL:       p.AvatarURL,
		Tags:            tags,
		ConnectionCount: p.ConnectionCount,
		FollowerCount:   p.FollowerCount,
		FollowingCount:  p.FollowingCount,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

type profileSummaryResponse struct {
	ID          string  `json:"id"`
	Handle      string  `json:"handle"`
	DisplayName string  `json:"displayName"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
}

func toSummaries(in []domain.ProfileSummary) []profileSummaryResponse {
	out := make([]profileSummaryResponse, len(in))
	for i, p := range in {
		out[i] = profileSummaryResponse{
			ID:          p.ID.String(),
			Handle:      p.Handle,
			DisplayName: p.DisplayName,
			AvatarURL:   p.AvatarURL,
		}
	}
	return out
}

type messageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Content        string    `json:"content"`
	Type           string    `json:"type"`
	CreatedAt      time.Time `json:"createdAt"`
	Cursor         string    `json:"cursor"`
}

func toMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		ID:             m.ID.String(),
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID.String(),
		Content:        m.Content,
		Type:           m.Type.String(),
		CreatedAt:      m.CreatedAt,
		Cursor:         m.Cursor().Encode(),
	}
}

type conversationResponse struct {
	ID            string         `json:"id"`
	Members       []string       `json:"members"`
	LastMessage   string         `json:"lastMessage"`
	LastMessageAt *time.Time     `json:"lastMessageAt,omitempty"`
	LastSenderID  *string        `json:"lastSenderId,omitempty"`
	UnreadCount   map[string]int `json:"unreadCount"`
}

func toConversationResponse(c *domain.Conversation) conversationResponse {
	resp := conversationResponse{
		ID:            c.ID,
		Members:       []string{c.Members[0].String(), c.Members[1].String()},
		LastMessage:   c.LastMessage,
		LastMessageAt: c.LastMessageAt,
		UnreadCount:   make(map[string]int, len(c.UnreadCount)),
	}
	if c.LastSenderID != nil {
		s := c.LastSenderID.String()
		resp.LastSenderID = &s
	}
	for id, n := range c.UnreadCount {
		resp.UnreadCount[id.String()] = n
	}
	return resp
}

type conversationSummaryResponse struct {
	ID            string     `json:"id"`
	Peer          string     `json:"peer"`
	LastMessage   string     `json:"lastMessage"`
	LastMessageAt *time.Time `json:"lastMessageAt,omitempty"`
	LastSenderID  *string    `json:"lastSenderId,omitempty"`
	UnreadCount   int        `json:"unreadCount"`
}

func toConversationSummaries(in []domain.ConversationSummary) []conversationSummaryResponse {
	out := make([]conversationSummaryResponse, len(in))
	for i, c := range in {
		out[i] = conversationSummaryResponse{
			ID:            c.ID,
			Peer:          c.Peer.String(),
			LastMessage:   c.LastMessage,
			LastMessageAt: c.LastMessageAt,
			UnreadCount:   c.UnreadCount,
		}
		if c.LastSenderID != nil {
			s := c.LastSenderID.String()
			out[i].LastSenderID = &s
		}
	}
	return out
}

type notificationResponse struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

func toNotifications(in []domain.Notification) []notificationResponse {
	out := make([]notificationResponse, len(in))
	for i, n := range in {
		out[i] = notificationResponse{
			ID:        n.ID.String(),
			Kind:      string(n.Kind),
			Title:     n.Title,
			Body:      n.Body,
			Data:      n.Data,
			CreatedAt: n.CreatedAt,
		}
	}
	return out
}
