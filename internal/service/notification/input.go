package notification

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

const (
	MaxTitleLen = 200
	MaxBodyLen  = 2000
	MaxTokenLen = 4096

	// MaxTextBytes caps title plus body in bytes. Push providers reject
	// payloads over 4 KB, and the rest is left for data and envelope.
	MaxTextBytes = 3072
)

// DeliverInput is a service-to-service push request.
type DeliverInput struct {
	ReceiverID domain.Identity
	Title      string
	Body       string
}

// Validate checks all fields and collects all errors.
func (i DeliverInput) Validate() error {
	var errs []domain.FieldError

	if err := i.ReceiverID.Validate("receiverUid"); err != nil {
		errs = append(errs, domain.FieldError{Field: "receiverUid", Message: "required"})
	}
	errs = append(errs, validateText(i.Title, i.Body)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(title, body string) []domain.FieldError {
	var errs []domain.FieldError
	if strings.TrimSpace(title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if utf8.RuneCountInString(body) > MaxBodyLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 2000 characters"})
	} else if len(title)+len(body) > MaxTextBytes {
		errs = append(errs, domain.FieldError{Field: "body", Message: "title and body exceed 3072 bytes"})
	}
	return errs
}

// RegisterTokenInput registers a device for push delivery.
type RegisterTokenInput struct {
	Owner    domain.Identity
	Token    string
	Platform domain.Platform
}

// Validate checks all fields and collects all errors.
func (i RegisterTokenInput) Validate() error {
	var errs []domain.FieldError

	if err := i.Owner.Validate("owner"); err != nil {
		errs = append(errs, domain.FieldError{Field: "owner", Message: "invalid identity"})
	}
	tok := strings.TrimSpace(i.Token)
	if tok == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	}
	if len(tok) > MaxTokenLen {
		errs = append(errs, domain.FieldError{Field: "token", Message: "too long"})
	}
	if !i.Platform.IsValid() {
		errs = append(errs, domain.FieldError{Field: "platform", Message: "must be IOS, ANDROID or WEB"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
