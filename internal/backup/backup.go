// Package backup exports and imports encrypted snapshots of the shopping
// list. Unlike the store, backup operations report errors: they run only on
// explicit user action and the user must see a failure.
package backup

import (
	"fmt"
	"os"

	"github.com/alexsparkes/ShoppingList/internal/model"
	"github.com/alexsparkes/ShoppingList/internal/storage"
)

// Export writes the item collection to path as an encrypted snapshot in the
// same wire layout the store persists.
func Export(path string, items []model.GroceryItem, passphrase string) error {
	plaintext, err := storage.MarshalItems(items)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	sealed, err := seal(plaintext, passphrase)
	if err != nil {
		return fmt.Errorf("encrypt snapshot: %w", err)
	}

	if err := os.WriteFile(path, sealed, 0600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Import reads an encrypted snapshot written by Export. Records that fail
// shape validation are dropped, matching store load behavior.
func Import(path, passphrase string) ([]model.GroceryItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	plaintext, err := unseal(data, passphrase)
	if err != nil {
		return nil, fmt.Errorf("decrypt snapshot: %w", err)
	}

	items, _, err := storage.UnmarshalItems(plaintext)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return items, nil
}
