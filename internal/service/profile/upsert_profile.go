package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// UpsertProfile creates the viewer's profile or merges input into it.
func (s *Service) UpsertProfile(ctx context.Context, viewer domain.Identity, input UpsertInput) (*domain.Profile, error) {
	if err := viewer.Validate("viewer"); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		saved   *domain.Profile
		created bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.profiles.GetByID(txCtx, viewer)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			if input.Handle == nil {
				return domain.NewValidationError("handle", "required")
			}
			current = &domain.Profile{ID: viewer}
			created = true
		case err != nil:
			return fmt.Errorf("get profile: %w", err)
		}

		next, changes := merge(*current, input)
		if !created && len(changes) == 0 {
			saved = current
			return nil
		}

		saved, err = s.profiles.Upsert(txCtx, next)
		if err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}

		action := domain.AuditActionUpdate
		if created {
			action = domain.AuditActionCreate
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    viewer,
			EntityType: domain.EntityTypeProfile,
			TargetID:   &viewer,
			Action:     action,
			Changes:    changes,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, domain.PersistenceError("upsert profile", err)
	}

	if created {
		s.log.InfoContext(ctx, "profile created",
			slog.String("identity", viewer.String()),
			slog.String("handle", saved.Handle),
		)
	}

	return saved, nil
}

// merge applies input to p and returns the result with a change set for the
// audit log.
func merge(p domain.Profile, input UpsertInput) (domain.Profile, map[string]any) {
	changes := map[string]any{}
	set := func(field, old, next string, dst *string) {
		if old == next {
			return
		}
		changes[field] = map[string]any{"old": old, "new": next}
		*dst = next
	}

	if input.Handle != nil {
		set("handle", p.Handle, normalizeHandle(*input.Handle), &p.Handle)
	}
	if input.DisplayName != nil {
		set("display_name", p.DisplayName, strings.TrimSpace(*input.DisplayName), &p.DisplayName)
	}
	if input.Bio != nil {
		set("bio", p.Bio, strings.TrimSpace(*input.Bio), &p.Bio)
	}
	if input.AvatarURL != nil {
		var old string
		if p.AvatarURL != nil {
			old = *p.AvatarURL
		}
		if url := strings.TrimSpace(*input.AvatarURL); url != old {
			changes["avatar_url"] = map[string]any{"old": old, "new": url}
			if url == "" {
				p.AvatarURL = nil
			} else {
				p.AvatarURL = &url
			}
		}
	}
	if input.SetTags {
		tags := domain.NormalizeTags(input.Tags)
		if !equalStrings(p.Tags, tags) {
			changes["tags"] = map[string]any{"old": p.Tags, "new": tags}
			p.Tags = tags
		}
	}
	return p, changes
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
