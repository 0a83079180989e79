package rest

import (
	"context"
	"encoding/json"
	"iter"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/conversation"
)

type conversationService interface {
	SendMessage(ctx context.Context, input conversation.SendMessageInput) (domain.Message, error)
	SendMessageTo(ctx context.Context, sender, peer domain.Identity, content string, msgType domain.MessageType) (domain.Message, error)
	OpenConversation(ctx context.Context, id string, viewer domain.Identity) (*domain.Conversation, error)
	ListMessages(ctx context.Context, input conversation.ListMessagesInput) ([]domain.Message, error)
	ListConversations(ctx context.Context, viewer domain.Identity, limit, offset int) ([]domain.ConversationSummary, error)
	Messages(ctx context.Context, id string, viewer domain.Identity, pageSize int) iter.Seq2[domain.Message, error]
}

// ConversationHandler serves conversation and message endpoints.
type ConversationHandler struct {
	svc conversationService
	log *slog.Logger
}

// NewConversationHandler creates a ConversationHandler.
func NewConversationHandler(svc conversationService, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{svc: svc, log: logger.With("handler", "conversation")}
}

type sendMessageRequest struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

type messagePageResponse struct {
	Messages   []messageResponse `json:"messages"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

// List handles GET /api/conversations?limit=&offset=.
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := viewer(w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.svc.ListConversations(r.Context(), id, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toConversationSummaries(out))
}

// Send handles POST /api/conversations/{id}/messages.
func (h *ConversationHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := viewer(w, r)
	if !ok {
		return
	}
	var req sendMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.svc.SendMessage(r.Context(), conversation.SendMessageInput{
		ConversationID: r.PathValue("id"),
		Sender:         id,
		Content:        req.Content,
		Type:           domain.MessageType(strings.ToUpper(req.Type)),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMessageResponse(m))
}

// SendTo handles POST /api/conversations/with/{peer}/messages.
func (h *ConversationHandler) SendTo(w http.ResponseWriter, r *http.Request) {
	id, ok := viewer(w, r)
	if !ok {
		return
	}
	var req sendMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.svc.SendMessageTo(r.Context(), id, domain.Identity(r.PathValue("peer")), req.Content,
		domain.MessageType(strings.ToUpper(req.Type)))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMessageResponse(m))
}

// Open handles POST /api/conversations/{id}/open.
func (h *ConversationHandler) Open(w http.ResponseWriter, r *http.Request) {
	id, ok := viewer(w, r)
	if !ok {
		return
	}
	c, err := h.svc.OpenConversation(r.Context(), r.PathValue("id"), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toConversationResponse(c))
}

// Messages handles GET /api/conversations/{id}/messages?before=&limit=.
// The page is chronological; nextCursor points at the page before it.
func (h *ConversationHandler) Messages(w http.ResponseWriter, r *http.Request) {
	id, ok := viewer(w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := conversation.ListMessagesInput{
		ConversationID: r.PathValue("id"),
		Viewer:         id,
		Limit:          limit,
	}
	if token := r.URL.Query().Get("before"); token != "" {
		c, err := domain.DecodeMessageCursor(token)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		input.Before = &c
	}

	page, err := h.svc.ListMessages(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := messagePageResponse{Messages: make([]messageResponse, len(page))}
	for i, m := range page {
		resp.Messages[i] = toMessageResponse(m)
	}
	if len(page) > 0 && (limit == 0 || len(page) == limit) {
		resp.NextCursor = page[0].Cursor().Encode()
	}
	writeJSON(w, http.StatusOK, resp)
}

// Export handles GET /api/conversations/{id}/export. It streams the whole
// history as newline-delimited JSON, newest message first, fetching pages
// as the client reads.
func (h *ConversationHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := viewer(w, r)
	if !ok {
		return
	}

	enc := json.NewEncoder(w)
	started := false
	for m, err := range h.svc.Messages(r.Context(), r.PathValue("id"), id, 0) {
		if err != nil {
			if !started {
				handleError(h.log, w, r, err)
				return
			}
			h.log.WarnContext(r.Context(), "export interrupted", slog.String("error", err.Error()))
			return
		}
		if !started {
			w.Header().Set("Content-Type", "application/x-ndjson")
			w.WriteHeader(http.StatusOK)
			started = true
		}
		if err := enc.Encode(toMessageResponse(m)); err != nil {
			return
		}
	}
	if !started {
		w.Header().Set("Content-Type", "application/x-ndjson")
		w.WriteHeader(http.StatusOK)
	}
}
