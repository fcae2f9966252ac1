package model

import "time"

// GroceryItem is a single entry on the shopping list. Items are constructed
// only by the list model; the ID is assigned at creation and never changes.
type GroceryItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  string    `json:"quantity,omitempty"`
	Purchased bool      `json:"purchased"`
	CreatedAt time.Time `json:"created_at"`
}
