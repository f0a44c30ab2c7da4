package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avross/shoplist-be/internal/auth"
	"github.com/avross/shoplist-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ListHandler handles HTTP requests for lists and their items.
type ListHandler struct {
	lists  services.ListServiceProvider
	events services.EventServiceProvider
}

// NewListHandler creates a new ListHandler.
func NewListHandler(lists services.ListServiceProvider, events services.EventServiceProvider) *ListHandler {
	return &ListHandler{lists: lists, events: events}
}

// CreateListPayload defines the structure for list creation requests.
type CreateListPayload struct {
	Name string `json:"name"`
}

// AddItemPayload defines the structure for item creation requests.
type AddItemPayload struct {
	Name string `json:"name"`
}

// GetAll returns every list owned by the authenticated user, newest first.
func (h *ListHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Missing auth token", http.StatusUnauthorized)
		return
	}

	lists, err := h.lists.GetAllForUser(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to fetch lists")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lists)
}

// Create handles creation of a new, empty list.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Missing auth token", http.StatusUnauthorized)
		return
	}

	var payload CreateListPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	list, err := h.lists.Create(userID, payload.Name)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to create list")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.record(userID, "list.create", fmt.Sprintf("Created list %q", list.Name), list.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(list)
}

// Delete handles deletion of an owned list.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Missing auth token", http.StatusUnauthorized)
		return
	}
	listID := chi.URLParam(r, "listID")

	if err := h.lists.Delete(userID, listID); err != nil {
		h.renderListError(w, err, userID, listID, "Failed to delete list")
		return
	}

	h.record(userID, "list.delete", "Deleted list", listID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "List deleted"})
}

// AddItem appends a new item to an owned list and returns the updated list.
func (h *ListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Missing auth token", http.StatusUnauthorized)
		return
	}
	listID := chi.URLParam(r, "listID")

	var payload AddItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	list, err := h.lists.AddItem(userID, listID, payload.Name)
	if err != nil {
		h.renderListError(w, err, userID, listID, "Failed to add item")
		return
	}

	h.record(userID, "list.item.add", fmt.Sprintf("Added item %q", payload.Name), listID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(list)
}

// DeleteItem removes an item from an owned list.
func (h *ListHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Missing auth token", http.StatusUnauthorized)
		return
	}
	listID := chi.URLParam(r, "listID")
	itemID := chi.URLParam(r, "itemID")

	if err := h.lists.DeleteItem(userID, listID, itemID); err != nil {
		h.renderListError(w, err, userID, listID, "Failed to delete item")
		return
	}

	h.record(userID, "list.item.delete", "Deleted item", listID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Item deleted"})
}

// ToggleItem flips an item's completed flag and returns the updated item.
func (h *ListHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Missing auth token", http.StatusUnauthorized)
		return
	}
	listID := chi.URLParam(r, "listID")
	itemID := chi.URLParam(r, "itemID")

	item, err := h.lists.ToggleItem(userID, listID, itemID)
	if err != nil {
		h.renderListError(w, err, userID, listID, "Failed to toggle item")
		return
	}

	h.record(userID, "list.item.toggle", fmt.Sprintf("Toggled item %q", item.Name), listID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// renderListError maps typed service failures to responses. Nonexistent and
// foreign-owned lists render the same 404 so list IDs cannot be probed;
// anything unexpected renders a generic 500 with detail logged server-side.
func (h *ListHandler) renderListError(w http.ResponseWriter, err error, userID, listID, logMsg string) {
	switch {
	case errors.Is(err, services.ErrNotFoundOrUnauthorized):
		http.Error(w, "List not found or unauthorized", http.StatusNotFound)
	case errors.Is(err, services.ErrItemNotFound):
		http.Error(w, "Item not found", http.StatusNotFound)
	default:
		log.Error().Err(err).Str("user_id", userID).Str("list_id", listID).Msg(logMsg)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *ListHandler) record(userID, eventType, message, listID string) {
	if err := h.events.Record(userID, eventType, "info", message, &listID); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Failed to record event")
	}
}
