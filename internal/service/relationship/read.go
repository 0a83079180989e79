package relationship

import (
	"context"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// State returns the stored relationship between viewer and target, from the
// viewer's side.
func (s *Service) State(ctx context.Context, viewer, target domain.Identity) (domain.RelationshipState, error) {
	if err := domain.ValidatePair(viewer, target); err != nil {
		return "", err
	}
	kind, _, err := s.connections.Kinds(ctx, viewer, target)
	if err != nil {
		return "", domain.PersistenceError("relationship state", err)
	}
	return domain.StateFromKind(kind), nil
}

// ListConnections returns one page of the viewer's peers of the given kind.
func (s *Service) ListConnections(ctx context.Context, input ListInput) ([]domain.ProfileSummary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}
	peers, err := s.connections.ListPeers(ctx, input.Viewer, input.Kind, limit, input.Offset)
	if err != nil {
		return nil, domain.PersistenceError("list connections", err)
	}
	return peers, nil
}
