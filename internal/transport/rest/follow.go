package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

type followService interface {
	Follow(ctx context.Context, viewer, target domain.Identity) (bool, error)
	Unfollow(ctx context.Context, viewer, target domain.Identity) (bool, error)
	IsFollowing(ctx context.Context, viewer, target domain.Identity) (bool, error)
	ListFollowers(ctx context.Context, id domain.Identity, limit, offset int) ([]domain.ProfileSummary, error)
	ListFollowing(ctx context.Context, id domain.Identity, limit, offset int) ([]domain.ProfileSummary, error)
}

// FollowHandler serves follow ledger endpoints.
type FollowHandler struct {
	svc followService
	log *slog.Logger
}

// NewFollowHandler creates a FollowHandler.
func NewFollowHandler(svc followService, logger *slog.Logger) *FollowHandler {
	return &FollowHandler{svc: svc, log: logger.With("handler", "follow")}
}

type followResponse struct {
	Target    string `json:"target"`
	Following bool   `json:"following"`
	Changed   bool   `json:"changed"`
}

// Follow handles POST /api/follows/{target}.
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, true)
}

// Unfollow handles DELETE /api/follows/{target}.
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, false)
}

func (h *FollowHandler) toggle(w http.ResponseWriter, r *http.Request, follow bool) {
	id, ok := viewer(w, r)
	if !ok {
		return
	}
	target := domain.Identity(r.PathValue("target"))

	op := h.svc.Unfollow
	if follow {
		op = h.svc.Follow
	}
	changed, err := op(r.Context(), id, target)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, followResponse{Target: target.String(), Following: follow, Changed: changed})
}

// Status handles GET /api/follows/{target}.
func (h *FollowHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := viewer(w, r)
	if !ok {
		return
	}
	target := domain.Identity(r.PathValue("target"))

	following, err := h.svc.IsFollowing(r.Context(), id, target)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, followResponse{Target: target.String(), Following: following})
}

// Followers handles GET /api/followers/{id}.
func (h *FollowHandler) Followers(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListFollowers)
}

// Following handles GET /api/following/{id}.
func (h *FollowHandler) Following(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListFollowing)
}

func (h *FollowHandler) list(w http.ResponseWriter, r *http.Request, fetch func(context.Context, domain.Identity, int, int) ([]domain.ProfileSummary, error)) {
	if _, ok := viewer(w, r); !ok {
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

	out, err := fetch(r.Context(), domain.Identity(r.PathValue("id")), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaries(out))
}
