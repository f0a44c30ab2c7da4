package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/avross/shoplist-be/internal/models"
	"github.com/google/uuid"
)

// EventServiceProvider defines the interface for event services.
type EventServiceProvider interface {
	Record(userID, eventType, level, message string, listID *string) error
	GetRecent(userID string, limit int) ([]models.Event, error)
}

// EventService keeps an audit trail of account and list activity. Events
// are scoped to the user who caused them, like every other resource.
type EventService struct {
	db *sql.DB
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{db: db}
}

// Record appends a new audit event for a user.
func (s *EventService) Record(userID, eventType, level, message string, listID *string) error {
	_, err := s.db.Exec(
		"INSERT INTO events (id, user_id, type, level, message, list_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		uuid.New().String(), userID, eventType, level, message, listID, time.Now().UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetRecent retrieves the user's most recent audit events.
func (s *EventService) GetRecent(userID string, limit int) ([]models.Event, error) {
	rows, err := s.db.Query(
		"SELECT id, user_id, type, level, message, list_id, created_at FROM events WHERE user_id = ? ORDER BY created_at DESC LIMIT ?",
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		var createdAt string
		if err := rows.Scan(&event.ID, &event.UserID, &event.Type, &event.Level, &event.Message, &event.ListID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		event.CreatedAt, _ = time.Parse(timeFormat, createdAt)
		events = append(events, event)
	}
	return events, rows.Err()
}
