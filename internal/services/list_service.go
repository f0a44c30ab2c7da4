package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avross/shoplist-be/internal/models"
	"github.com/google/uuid"
)

// ListServiceProvider defines the interface for list services.
type ListServiceProvider interface {
	GetAllForUser(userID string) ([]models.List, error)
	Create(userID, name string) (models.List, error)
	Delete(userID, listID string) error
	AddItem(userID, listID, name string) (models.List, error)
	DeleteItem(userID, listID, itemID string) error
	ToggleItem(userID, listID, itemID string) (models.Item, error)
}

// ListService provides ownership-scoped access to lists and their items.
// Every operation takes the authenticated user ID and only touches rows
// whose user_id matches it; a list is never addressable by ID alone.
//
// Item mutations re-read the list scoped by (id, user_id) and write the
// whole item collection back. Two concurrent mutations of the same list by
// the same user are last-writer-wins at the list-row level; item-level
// atomicity is not guaranteed.
type ListService struct {
	db *sql.DB
}

// NewListService creates a new ListService.
func NewListService(db *sql.DB) *ListService {
	return &ListService{db: db}
}

// GetAllForUser retrieves every list owned by the user, newest first.
func (s *ListService) GetAllForUser(userID string) ([]models.List, error) {
	rows, err := s.db.Query(
		"SELECT id, name, user_id, items_json, created_at FROM lists WHERE user_id = ? ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	defer rows.Close()

	lists := []models.List{}
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, rows.Err()
}

// Create creates an empty list owned by the user.
func (s *ListService) Create(userID, name string) (models.List, error) {
	list := models.List{
		ID:        uuid.New().String(),
		Name:      name,
		UserID:    userID,
		Items:     []models.Item{},
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		"INSERT INTO lists (id, name, user_id, items_json, created_at) VALUES (?, ?, ?, ?, ?)",
		list.ID, list.Name, list.UserID, "[]", list.CreatedAt.Format(timeFormat),
	)
	if err != nil {
		return models.List{}, fmt.Errorf("insert list: %w", err)
	}
	return list, nil
}

// Delete removes a list, but only if it exists and is owned by the user.
// Nonexistence and ownership mismatch are the same failure.
func (s *ListService) Delete(userID, listID string) error {
	res, err := s.db.Exec("DELETE FROM lists WHERE id = ? AND user_id = ?", listID, userID)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	if affected == 0 {
		return ErrNotFoundOrUnauthorized
	}
	return nil
}

// AddItem appends a new, uncompleted item to an owned list and returns the
// updated list.
func (s *ListService) AddItem(userID, listID, name string) (models.List, error) {
	list, err := s.getOwned(userID, listID)
	if err != nil {
		return models.List{}, err
	}

	list.Items = append(list.Items, models.Item{
		ID:        uuid.New().String(),
		Name:      name,
		Completed: false,
	})

	if err := s.saveItems(&list); err != nil {
		return models.List{}, err
	}
	return list, nil
}

// DeleteItem removes one item from an owned list.
func (s *ListService) DeleteItem(userID, listID, itemID string) error {
	list, err := s.getOwned(userID, listID)
	if err != nil {
		return err
	}

	kept := list.Items[:0]
	found := false
	for _, item := range list.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return ErrItemNotFound
	}
	list.Items = kept

	return s.saveItems(&list)
}

// ToggleItem flips an item's completed flag and returns the updated item.
func (s *ListService) ToggleItem(userID, listID, itemID string) (models.Item, error) {
	list, err := s.getOwned(userID, listID)
	if err != nil {
		return models.Item{}, err
	}

	for i := range list.Items {
		if list.Items[i].ID != itemID {
			continue
		}
		list.Items[i].Completed = !list.Items[i].Completed
		if err := s.saveItems(&list); err != nil {
			return models.Item{}, err
		}
		return list.Items[i], nil
	}
	return models.Item{}, ErrItemNotFound
}

// getOwned reads a list scoped by (id, user_id). The ownership filter is
// part of the read itself, so there is no separate exists-then-fetch window.
func (s *ListService) getOwned(userID, listID string) (models.List, error) {
	row := s.db.QueryRow(
		"SELECT id, name, user_id, items_json, created_at FROM lists WHERE id = ? AND user_id = ?",
		listID, userID,
	)
	list, err := scanList(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.List{}, ErrNotFoundOrUnauthorized
		}
		return models.List{}, err
	}
	return list, nil
}

// saveItems writes the whole item collection back, again scoped by owner.
func (s *ListService) saveItems(list *models.List) error {
	itemsJSON, err := json.Marshal(list.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	res, err := s.db.Exec(
		"UPDATE lists SET items_json = ? WHERE id = ? AND user_id = ?",
		string(itemsJSON), list.ID, list.UserID,
	)
	if err != nil {
		return fmt.Errorf("update list items: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update list items: %w", err)
	}
	if affected == 0 {
		return ErrNotFoundOrUnauthorized
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanList(row rowScanner) (models.List, error) {
	var list models.List
	var itemsJSON, createdAt string
	if err := row.Scan(&list.ID, &list.Name, &list.UserID, &itemsJSON, &createdAt); err != nil {
		return models.List{}, err
	}
	if err := json.Unmarshal([]byte(itemsJSON), &list.Items); err != nil {
		return models.List{}, fmt.Errorf("unmarshal items: %w", err)
	}
	if list.Items == nil {
		list.Items = []models.Item{}
	}
	list.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	return list, nil
}
