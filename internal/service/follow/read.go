package follow

import (
	"context"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// IsFollowing reports whether viewer follows target.
func (s *Service) IsFollowing(ctx context.Context, viewer, target domain.Identity) (bool, error) {
	if err := domain.ValidatePair(viewer, target); err != nil {
		return false, err
	}
	ok, err := s.followers.Exists(ctx, target, viewer)
	if err != nil {
		return false, domain.PersistenceError("is following", err)
	}
	return ok, nil
}

// ListFollowers returns one page of id's followers, newest first.
func (s *Service) ListFollowers(ctx context.Context, id domain.Identity, limit, offset int) ([]domain.ProfileSummary, error) {
	limit, err := page(id, limit, offset)
	if err != nil {
		return nil, err
	}
	out, err := s.followers.ListFollowers(ctx, id, limit, offset)
	if err != nil {
		return nil, domain.PersistenceError("list followers", err)
	}
	return out, nil
}

// ListFollowing returns one page of the identities id follows, newest first.
func (s *Service) ListFollowing(ctx context.Context, id domain.Identity, limit, offset int) ([]domain.ProfileSummary, error) {
	limit, err := page(id, limit, offset)
	if err != nil {
		return nil, err
	}
	out, err := s.followers.ListFollowing(ctx, id, limit, offset)
	if err != nil {
		return nil, domain.PersistenceError("list following", err)
	}
	return out, nil
}

func page(id domain.Identity, limit, offset int) (int, error) {
	var errs []domain.FieldError
	if err := id.Validate("id"); err != nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "invalid identity"})
	}
	if limit < 0 || limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return 0, &domain.ValidationError{Errors: errs}
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	return limit, nil
}
