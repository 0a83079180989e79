package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/notification"
	"github.com/heartmarshall/ideamatcher-backend/internal/transport/middleware"
)

type notificationService interface {
	Deliver(ctx context.Context, input notification.DeliverInput) (domain.DeliveryResult, error)
	RegisterToken(ctx context.Context, input notification.RegisterTokenInput) error
	UnregisterToken(ctx context.Context, owner domain.Identity, token string) error
	RecentNotifications(ctx context.Context, id domain.Identity, limit int) ([]domain.Notification, error)
}

// NotificationHandler serves push delivery and device token endpoints.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

type sendNotificationRequest struct {
	ReceiverUID string `json:"receiverUid"`
	Title       string `json:"title"`
	Body        string `json:"body"`
}

type sendNotificationResponse struct {
	Success   bool   `json:"success"`
	Delivered int    `json:"delivered"`
	Failed    int    `json:"failed"`
	Error     string `json:"error,omitempty"`
}

// Send handles POST /api/send-notification. Only service callers may use
// it. Unknown receivers are 404; a receiver without tokens or a malformed
// body is 400; any other failure is 500.
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireService(r.Context()); err != nil {
		writeJSON(w, http.StatusForbidden, sendNotificationResponse{Error: "service token required"})
		return
	}

	var req sendNotificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, sendNotificationResponse{Error: "invalid request body"})
		return
	}

	res, err := h.svc.Deliver(r.Context(), notification.DeliverInput{
		ReceiverID: domain.Identity(req.ReceiverUID),
		Title:      req.Title,
		Body:       req.Body,
	})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, sendNotificationResponse{Success: true, Delivered: res.Delivered, Failed: res.Failed})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, sendNotificationResponse{Error: "receiver not found"})
	case errors.Is(err, domain.ErrNoDeliveryTokens):
		writeJSON(w, http.StatusBadRequest, sendNotificationResponse{Error: "receiver has no delivery tokens"})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, sendNotificationResponse{Error: err.Error()})
	default:
		h.log.ErrorContext(r.Context(), "send notification",
			slog.String("receiver", req.ReceiverUID),
			slog.Int("delivered", res.Delivered),
			slog.Int("failed", res.Failed),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, sendNotificationResponse{
			Delivered: res.Delivered,
			Failed:    res.Failed,
			Error:     "failed to send notification",
		})
	}
}

type registerTokenRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

// RegisterToken handles POST /api/devices/tokens.
func (h *NotificationHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	id, ok := viewer(w, r)
	if !ok {
		return
	}

	var req registerTokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.RegisterToken(r.Context(), notification.RegisterTokenInput{
		Owner:    id,
		Token:    req.Token,
		Platform: domain.Platform(strings.ToUpper(req.Platform)),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UnregisterToken handles DELETE /api/devices/tokens/{token}.
func (h *NotificationHandler) UnregisterToken(w http.ResponseWriter, r *http.Request) {
	id, ok := viewer(w, r)
	if !ok {
		return
	}
	if err := h.svc.UnregisterToken(r.Context(), id, r.PathValue("token")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Recent handles GET /api/notifications?limit=.
func (h *NotificationHandler) Recent(w http.ResponseWriter, r *http.Request) {
	id, ok := viewer(w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.svc.RecentNotifications(r.Context(), id, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotifications(out))
}
