package relationship

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// Transition applies input.Action to the stored relationship between the
// viewer and the target and returns the viewer-side state afterwards.
//
// The stored state is read under row locks inside the transaction. When it
// differs from input.Observed, or when the action is not defined for it, the
// call writes nothing and returns the stored state so the caller can
// resynchronize.
func (s *Service) Transition(ctx context.Context, input TransitionInput) (domain.RelationshipState, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	var (
		result  domain.RelationshipState
		applied *domain.Transition
		viewer  domain.Profile
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Reset per attempt; the closure re-runs on serialization conflicts.
		applied = nil

		pair, err := s.profiles.LockPair(txCtx, input.Viewer, input.Target)
		if err != nil {
			return fmt.Errorf("lock profiles: %w", err)
		}
		for _, p := range pair {
			if p.ID == input.Viewer {
				viewer = p
			}
		}

		viewerKind, _, err := s.connections.Kinds(txCtx, input.Viewer, input.Target)
		if err != nil {
			return fmt.Errorf("read connection: %w", err)
		}
		stored := domain.StateFromKind(viewerKind)
		result = stored

		if stored != input.Observed {
			return nil
		}
		t, ok := domain.NextTransition(stored, input.Action)
		if !ok {
			return nil
		}

		if err := s.write(txCtx, input.Viewer, input.Target, t.To); err != nil {
			return err
		}

		if t.ConnectionDelta != 0 {
			for _, id := range []domain.Identity{input.Viewer, input.Target} {
				if err := s.profiles.AdjustCounter(txCtx, id, domain.CounterConnections, t.ConnectionDelta); err != nil {
					return fmt.Errorf("adjust connection count: %w", err)
				}
			}
		}

		target := input.Target
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    input.Viewer,
			EntityType: domain.EntityTypeRelationship,
			TargetID:   &target,
			Action:     auditAction(t.Action),
			Changes: map[string]any{
				"action": string(t.Action),
				"from":   string(t.From),
				"to":     string(t.To),
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		result = t.To
		applied = &t
		return nil
	})
	if err != nil {
		return "", domain.PersistenceError("relationship transition", err)
	}

	if applied == nil {
		s.log.DebugContext(ctx, "relationship transition skipped",
			slog.String("viewer", input.Viewer.String()),
			slog.String("target", input.Target.String()),
			slog.String("observed", input.Observed.String()),
			slog.String("stored", result.String()),
			slog.String("action", input.Action.String()),
		)
		return result, nil
	}

	s.log.InfoContext(ctx, "relationship changed",
		slog.String("viewer", input.Viewer.String()),
		slog.String("target", input.Target.String()),
		slog.String("action", applied.Action.String()),
		slog.String("state", applied.To.String()),
	)

	s.afterCommit(ctx, *applied, viewer, input.Target)

	return result, nil
}

// write stores the viewer-side state to and its mirror on the target's record.
func (s *Service) write(ctx context.Context, viewer, target domain.Identity, to domain.RelationshipState) error {
	kind := domain.KindForState(to)
	if kind == nil {
		if _, err := s.connections.DeletePair(ctx, viewer, target); err != nil {
			return fmt.Errorf("delete connection: %w", err)
		}
		return nil
	}
	if err := s.connections.PutPair(ctx, viewer, target, *kind); err != nil {
		return fmt.Errorf("put connection: %w", err)
	}
	return nil
}

func auditAction(a domain.RelationshipAction) domain.AuditAction {
	switch a {
	case domain.ActionRequest:
		return domain.AuditActionCreate
	case domain.ActionAccept:
		return domain.AuditActionUpdate
	}
	return domain.AuditActionDelete
}
