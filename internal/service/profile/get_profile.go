package profile

import (
	"context"
	"strings"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// GetProfile returns the profile of id.
func (s *Service) GetProfile(ctx context.Context, id domain.Identity) (*domain.Profile, error) {
	if err := id.Validate("id"); err != nil {
		return nil, err
	}
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, domain.PersistenceError("get profile", err)
	}
	return p, nil
}

// GetProfileByHandle returns the profile registered under handle.
func (s *Service) GetProfileByHandle(ctx context.Context, handle string) (*domain.Profile, error) {
	handle = normalizeHandle(handle)
	if handle == "" || strings.ContainsAny(handle, " /") {
		return nil, domain.NewValidationError("handle", "required")
	}
	p, err := s.profiles.GetByHandle(ctx, handle)
	if err != nil {
		return nil, domain.PersistenceError("get profile by handle", err)
	}
	return p, nil
}
