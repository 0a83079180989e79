package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/relationship"
)

type relationshipService interface {
	Transition(ctx context.Context, input relationship.TransitionInput) (domain.RelationshipState, error)
	State(ctx context.Context, viewer, target domain.Identity) (domain.RelationshipState, error)
	ListConnections(ctx context.Context, input relationship.ListInput) ([]domain.ProfileSummary, error)
}

// RelationshipHandler serves connection ledger endpoints.
type RelationshipHandler struct {
	svc relationshipService
	log *slog.Logger
}

// NewRelationshipHandler creates a RelationshipHandler.
func NewRelationshipHandler(svc relationshipService, logger *slog.Logger) *RelationshipHandler {
	return &RelationshipHandler{svc: svc, log: logger.With("handler", "relationship")}
}

type transitionRequest struct {
	Observed  string `json:"observed"`
	Action    string `json:"action"`
	Confirmed bool   `json:"confirmed"`
}

type stateResponse struct {
	Target string `json:"target"`
	State  string `json:"state"`
}

// State handles GET /api/relationships/{target}.
func (h *RelationshipHandler) State(w http.ResponseWriter, r *http.Request) {
	id, ok := viewer(w, r)
	if !ok {
		return
	}
	target := domain.Identity(r.PathValue("target"))

	state, err := h.svc.State(r.Context(), id, target)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{Target: target.String(), State: state.String()})
}

// Transition handles POST /api/relationships/{target}/transition. When the
// action is omitted the default action for the observed state is used.
func (h *RelationshipHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, ok := viewer(w, r)
	if !ok {
		return
	}

	var req transitionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	observed := domain.RelationshipState(strings.ToUpper(req.Observed))
	action := domain.RelationshipAction(strings.ToUpper(req.Action))
	if action == "" {
		action = domain.DefaultAction(observed)
	}
	target := domain.Identity(r.PathValue("target"))

	state, err := h.svc.Transition(r.Context(), relationship.TransitionInput{
		Viewer:    id,
		Target:    target,
		Observed:  observed,
		Action:    action,
		Confirmed: req.Confirmed,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{Target: target.String(), State: state.String()})
}

// ListConnections handles GET /api/connections?kind=&limit=&offset=.
func (h *RelationshipHandler) ListConnections(w http.ResponseWriter, r *http.Request) {
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
	kind := domain.ConnectionKind(strings.ToUpper(r.URL.Query().Get("kind")))
	if kind == "" {
		kind = domain.ConnectionKindConnected
	}

	peers, err := h.svc.ListConnections(r.Context(), relationship.ListInput{
		Viewer: id,
		Kind:   kind,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaries(peers))
}
