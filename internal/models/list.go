package models

import "time"

// Item is an entry embedded in a List. Items have no owner of their own;
// they inherit ownership from the parent List.
type Item struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// List is a shopping list together with its items. The aggregate is
// persisted as one unit: items live in a JSON column on the lists row and
// every mutation rewrites the whole collection.
type List struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
}
