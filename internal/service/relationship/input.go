package relationship

import (
	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// TransitionInput is one relationship intent issued by Viewer towards Target.
type TransitionInput struct {
	Viewer domain.Identity
	Target domain.Identity
	// Observed is the state the caller last displayed. The transition only
	// applies when it matches the stored state.
	Observed domain.RelationshipState
	Action   domain.RelationshipAction
	// Confirmed must be set for cancel and disconnect.
	Confirmed bool
}

// Validate checks all fields and collects all errors. Self-targeting is
// reported as domain.ErrInvalidOperation.
func (i TransitionInput) Validate() error {
	if err := domain.ValidatePair(i.Viewer, i.Target); err != nil {
		return err
	}

	var errs []domain.FieldError
	if !i.Observed.IsValid() {
		errs = append(errs, domain.FieldError{Field: "observed", Message: "unknown relationship state"})
	}
	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "unknown action"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	if i.Action.IsDestructive() && !i.Confirmed {
		return domain.ErrConfirmationRequired
	}
	return nil
}

// ListInput selects one bucket of the viewer's connection record.
type ListInput struct {
	Viewer domain.Identity
	Kind   domain.ConnectionKind
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if err := i.Viewer.Validate("viewer"); err != nil {
		errs = append(errs, domain.FieldError{Field: "viewer", Message: "invalid identity"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be CONNECTED, SENT or INCOMING"})
	}
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
