package services

import (
	"database/sql"
	"errors"
	"testing"
	"time"
)

func createTestUser(t *testing.T, db *sql.DB, name, email string) string {
	t.Helper()
	user, err := NewUserService(db).Register(name, email, "pw123")
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user.ID
}

func TestCreateAndGetAllNewestFirst(t *testing.T) {
	db := newTestDB(t)
	s := NewListService(db)
	alice := createTestUser(t, db, "Alice", "a@x.com")

	for _, name := range []string{"Groceries", "Hardware", "Pharmacy"} {
		if _, err := s.Create(alice, name); err != nil {
			t.Fatalf("create list %s: %v", name, err)
		}
		time.Sleep(time.Millisecond)
	}

	lists, err := s.GetAllForUser(alice)
	if err != nil {
		t.Fatalf("get lists: %v", err)
	}
	if len(lists) != 3 {
		t.Fatalf("expected 3 lists, got %d", len(lists))
	}
	if lists[0].Name != "Pharmacy" || lists[2].Name != "Groceries" {
		t.Fatalf("expected newest-first ordering, got %s, %s, %s", lists[0].Name, lists[1].Name, lists[2].Name)
	}
	if lists[0].Items == nil || len(lists[0].Items) != 0 {
		t.Fatalf("expected empty item collection, got %v", lists[0].Items)
	}
}

func TestOwnershipScoping(t *testing.T) {
	db := newTestDB(t)
	s := NewListService(db)
	alice := createTestUser(t, db, "Alice", "a@x.com")
	bob := createTestUser(t, db, "Bob", "b@x.com")

	list, err := s.Create(alice, "Groceries")
	if err != nil {
		t.Fatalf("create list: %v", err)
	}

	bobLists, err := s.GetAllForUser(bob)
	if err != nil {
		t.Fatalf("get lists: %v", err)
	}
	if len(bobLists) != 0 {
		t.Fatalf("expected no lists for Bob, got %d", len(bobLists))
	}

	// Another user's list is indistinguishable from a missing one.
	if err := s.Delete(bob, list.ID); !errors.Is(err, ErrNotFoundOrUnauthorized) {
		t.Fatalf("expected ErrNotFoundOrUnauthorized, got %v", err)
	}
	if _, err := s.AddItem(bob, list.ID, "Milk"); !errors.Is(err, ErrNotFoundOrUnauthorized) {
		t.Fatalf("expected ErrNotFoundOrUnauthorized, got %v", err)
	}
	if _, err := s.ToggleItem(bob, list.ID, "whatever"); !errors.Is(err, ErrNotFoundOrUnauthorized) {
		t.Fatalf("expected ErrNotFoundOrUnauthorized, got %v", err)
	}

	// Alice's list survives Bob's attempts.
	aliceLists, err := s.GetAllForUser(alice)
	if err != nil {
		t.Fatalf("get lists: %v", err)
	}
	if len(aliceLists) != 1 || aliceLists[0].ID != list.ID {
		t.Fatalf("expected Alice's list to survive, got %v", aliceLists)
	}

	if err := s.Delete(alice, list.ID); err != nil {
		t.Fatalf("delete own list: %v", err)
	}
}

func TestAddItemAndToggleInvolution(t *testing.T) {
	db := newTestDB(t)
	s := NewListService(db)
	alice := createTestUser(t, db, "Alice", "a@x.com")

	list, err := s.Create(alice, "Groceries")
	if err != nil {
		t.Fatalf("create list: %v", err)
	}

	updated, err := s.AddItem(alice, list.ID, "Milk")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if len(updated.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(updated.Items))
	}
	item := updated.Items[0]
	if item.Name != "Milk" || item.Completed {
		t.Fatalf("expected new item Milk with completed=false, got %+v", item)
	}
	if item.ID == "" {
		t.Fatal("expected assigned item ID")
	}

	toggled, err := s.ToggleItem(alice, list.ID, item.ID)
	if err != nil {
		t.Fatalf("toggle item: %v", err)
	}
	if !toggled.Completed {
		t.Fatal("expected completed=true after first toggle")
	}

	toggled, err = s.ToggleItem(alice, list.ID, item.ID)
	if err != nil {
		t.Fatalf("toggle item: %v", err)
	}
	if toggled.Completed {
		t.Fatal("expected completed=false after second toggle")
	}
}

func TestDeleteItem(t *testing.T) {
	db := newTestDB(t)
	s := NewListService(db)
	alice := createTestUser(t, db, "Alice", "a@x.com")

	list, err := s.Create(alice, "Groceries")
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	if _, err := s.AddItem(alice, list.ID, "Milk"); err != nil {
		t.Fatalf("add item: %v", err)
	}
	updated, err := s.AddItem(alice, list.ID, "Eggs")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if len(updated.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(updated.Items))
	}

	if err := s.DeleteItem(alice, list.ID, updated.Items[0].ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}

	lists, err := s.GetAllForUser(alice)
	if err != nil {
		t.Fatalf("get lists: %v", err)
	}
	if len(lists[0].Items) != 1 || lists[0].Items[0].Name != "Eggs" {
		t.Fatalf("expected only Eggs to remain, got %v", lists[0].Items)
	}
}

func TestDeleteItemNotFound(t *testing.T) {
	db := newTestDB(t)
	s := NewListService(db)
	alice := createTestUser(t, db, "Alice", "a@x.com")

	list, err := s.Create(alice, "Groceries")
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	if _, err := s.AddItem(alice, list.ID, "Milk"); err != nil {
		t.Fatalf("add item: %v", err)
	}

	if err := s.DeleteItem(alice, list.ID, "no-such-item"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := s.ToggleItem(alice, list.ID, "no-such-item"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	// Other items are left alone.
	lists, err := s.GetAllForUser(alice)
	if err != nil {
		t.Fatalf("get lists: %v", err)
	}
	if len(lists[0].Items) != 1 || lists[0].Items[0].Name != "Milk" {
		t.Fatalf("expected Milk to remain, got %v", lists[0].Items)
	}
}
