package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch c.Push.PushProvider() {
	case "log":
	case "fcm":
		if c.Push.ProjectID == "" {
			return fmt.Errorf("push.project_id is required for the fcm provider")
		}
	default:
		return fmt.Errorf("push.provider must be one of fcm, log (got %q)", c.Push.Provider)
	}

	if err := c.Ledger.validate(); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	if err := c.Messaging.validate(); err != nil {
		return fmt.Errorf("messaging: %w", err)
	}
	if err := c.Notifications.validate(); err != nil {
		return fmt.Errorf("notifications: %w", err)
	}

	return nil
}

func (l *LedgerConfig) validate() error {
	if l.MaxAttempts == 0 {
		return fmt.Errorf("max_attempts must be >= 1")
	}
	if l.InitialInterval <= 0 {
		return fmt.Errorf("initial_interval must be > 0 (got %v)", l.InitialInterval)
	}
	if l.MaxInterval < l.InitialInterval {
		return fmt.Errorf("max_interval must be >= initial_interval (got %v < %v)", l.MaxInterval, l.InitialInterval)
	}
	return nil
}

func (m *MessagingConfig) validate() error {
	if m.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", m.DefaultPageSize)
	}
	if m.MaxPageSize < m.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", m.MaxPageSize, m.DefaultPageSize)
	}
	return nil
}

func (n *NotificationsConfig) validate() error {
	// FCM multicast accepts at most 500 tokens per call.
	if n.BatchSize <= 0 || n.BatchSize > 500 {
		return fmt.Errorf("batch_size must be in 1..500 (got %d)", n.BatchSize)
	}
	if n.BatchConcurrency <= 0 {
		return fmt.Errorf("batch_concurrency must be > 0 (got %d)", n.BatchConcurrency)
	}
	if n.InboxSize <= 0 {
		return fmt.Errorf("inbox_size must be > 0 (got %d)", n.InboxSize)
	}
	return nil
}
