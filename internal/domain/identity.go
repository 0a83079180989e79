package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxIdentityLen bounds identities issued by the external auth provider.
const MaxIdentityLen = 128

// Identity is the opaque, stable user id issued by the auth provider.
type Identity string

func (id Identity) String() string { return string(id) }

// Validate reports whether the identity can be stored and paired. Identities
// must not contain the conversation id separator.
func (id Identity) Validate(field string) error {
	if fe := id.fieldError(field); fe != nil {
		return NewValidationErrors([]FieldError{*fe})
	}
	return nil
}

func (id Identity) fieldError(field string) *FieldError {
	s := string(id)
	switch {
	case strings.TrimSpace(s) == "":
		return &FieldError{Field: field, Message: "required"}
	case len(s) > MaxIdentityLen:
		return &FieldError{Field: field, Message: "max 128 bytes"}
	case !utf8.ValidString(s):
		return &FieldError{Field: field, Message: "must be valid UTF-8"}
	case strings.Contains(s, ConversationSeparator):
		return &FieldError{Field: field, Message: "must not contain " + ConversationSeparator}
	}
	return nil
}

// ValidatePair validates viewer and target and rejects self-targeting.
func ValidatePair(viewer, target Identity) error {
	var errs []FieldError
	if fe := viewer.fieldError("viewer"); fe != nil {
		errs = append(errs, *fe)
	}
	if fe := target.fieldError("target"); fe != nil {
		errs = append(errs, *fe)
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	if viewer == target {
		return ErrInvalidOperation
	}
	return nil
}
