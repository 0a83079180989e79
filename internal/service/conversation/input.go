package conversation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

// SendMessageInput is a message posted to an existing or new conversation.
type SendMessageInput struct {
	ConversationID string
	Sender         domain.Identity
	Content        string
	Type           domain.MessageType
}

// Validate checks all fields and collects all errors. Membership is checked
// separately.
func (i SendMessageInput) Validate() error {
	var errs []domain.FieldError

	if err := i.Sender.Validate("sender"); err != nil {
		errs = append(errs, domain.FieldError{Field: "sender", Message: "invalid identity"})
	}
	if _, _, err := domain.ParseConversationID(i.ConversationID); err != nil {
		errs = append(errs, domain.FieldError{Field: "conversation_id", Message: "malformed"})
	}

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(content) > domain.MaxMessageLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: fmt.Sprintf("max %d characters", domain.MaxMessageLen)})
	}
	if i.Type != "" && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be TEXT, IMAGE or SYSTEM"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListMessagesInput selects one page of a conversation's history.
type ListMessagesInput struct {
	ConversationID string
	Viewer         domain.Identity
	Before         *domain.MessageCursor
	Limit          int
}
