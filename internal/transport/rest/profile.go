package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/profile"
)

type profileService interface {
	GetProfile(ctx context.Context, id domain.Identity) (*domain.Profile, error)
	GetProfileByHandle(ctx context.Context, handle string) (*domain.Profile, error)
	UpsertProfile(ctx context.Context, viewer domain.Identity, input profile.UpsertInput) (*domain.Profile, error)
}

// ProfileHandler serves profile endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type upsertProfileRequest struct {
	Handle      *string   `json:"handle"`
	DisplayName *string   `json:"displayName"`
	Bio         *string   `json:"bio"`
	AvatarURL   *string   `json:"avatarUrl"`
	Tags        *[]string `json:"tags"`
}

// Upsert handles PUT /api/profile.
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	id, ok := viewer(w, r)
	if !ok {
		return
	}

	var req upsertProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := profile.UpsertInput{
		Handle:      req.Handle,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
	}
	if req.Tags != nil {
		input.Tags = *req.Tags
		input.SetTags = true
	}

	p, err := h.svc.UpsertProfile(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Get handles GET /api/profiles/{id}.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := viewer(w, r); !ok {
		return
	}
	p, err := h.svc.GetProfile(r.Context(), domain.Identity(r.PathValue("id")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// GetByHandle handles GET /api/profiles/by-handle/{handle}.
func (h *ProfileHandler) GetByHandle(w http.ResponseWriter, r *http.Request) {
	if _, ok := viewer(w, r); !ok {
		return
	}
	p, err := h.svc.GetProfileByHandle(r.Context(), r.PathValue("handle"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}
