package models

import "time"

// Event represents an audit entry for an account or list action.
type Event struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Type      string    `json:"type"`  // e.g., "auth.login", "list.item.toggle"
	Level     string    `json:"level"` // e.g., "info", "warn"
	Message   string    `json:"message"`
	ListID    *string   `json:"listId,omitempty"` // Nullable for account-level events
	CreatedAt time.Time `json:"createdAt"`
}
