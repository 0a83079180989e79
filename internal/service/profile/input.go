package profile

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

const (
	MaxDisplayNameLen = 80
	MaxBioLen         = 500
	MaxTags           = 10
	MaxTagLen         = 32
	MaxAvatarURLLen   = 2048
)

var handlePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]{2,29}$`)

// UpsertInput holds the editable profile fields. A nil field keeps the
// stored value; Handle is required when the profile does not exist yet.
type UpsertInput struct {
	Handle      *string
	DisplayName *string
	Bio         *string
	AvatarURL   *string // ptr("") clears
	Tags        []string
	// SetTags distinguishes an empty Tags (clear) from an omitted one.
	SetTags bool
}

// Validate checks all fields and collects all errors.
func (i UpsertInput) Validate() error {
	var errs []domain.FieldError

	if i.Handle != nil && !handlePattern.MatchString(normalizeHandle(*i.Handle)) {
		errs = append(errs, domain.FieldError{Field: "handle", Message: "3-30 chars: lowercase letters, digits, '_', '.', '-'"})
	}
	if i.DisplayName != nil && utf8.RuneCountInString(strings.TrimSpace(*i.DisplayName)) > MaxDisplayNameLen {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: fmt.Sprintf("max %d characters", MaxDisplayNameLen)})
	}
	if i.Bio != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Bio)) > MaxBioLen {
		errs = append(errs, domain.FieldError{Field: "bio", Message: fmt.Sprintf("max %d characters", MaxBioLen)})
	}
	if i.AvatarURL != nil && len(*i.AvatarURL) > MaxAvatarURLLen {
		errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "too long"})
	}
	if i.SetTags {
		tags := domain.NormalizeTags(i.Tags)
		if len(tags) > MaxTags {
			errs = append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("max %d tags", MaxTags)})
		}
		for _, t := range tags {
			if utf8.RuneCountInString(t) > MaxTagLen {
				errs = append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("each tag max %d characters", MaxTagLen)})
				break
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func normalizeHandle(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
