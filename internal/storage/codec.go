package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexsparkes/ShoppingList/internal/model"
)

// itemRecord is the persisted wire shape of a grocery item. CreatedAt is
// milliseconds since the Unix epoch.
type itemRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity,omitempty"`
	Purchased bool   `json:"purchased"`
	CreatedAt int64  `json:"createdAt"`
}

// MarshalItems encodes the collection in the grocery-items:v1 layout.
func MarshalItems(items []model.GroceryItem) ([]byte, error) {
	records := make([]itemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, itemRecord{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Purchased: item.Purchased,
			CreatedAt: item.CreatedAt.UnixMilli(),
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}
	return data, nil
}

// UnmarshalItems decodes a grocery-items:v1 blob. Records that fail shape
// validation (empty id, blank name, duplicate id) are dropped rather than
// trusted; the second return value is the number dropped.
func UnmarshalItems(data []byte) ([]model.GroceryItem, int, error) {
	var records []itemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, 0, fmt.Errorf("unmarshal items: %w", err)
	}

	items := make([]model.GroceryItem, 0, len(records))
	seen := make(map[string]bool, len(records))
	dropped := 0
	for _, r := range records {
		name := strings.TrimSpace(r.Name)
		if r.ID == "" || name == "" || seen[r.ID] {
			dropped++
			continue
		}
		seen[r.ID] = true
		items = append(items, model.GroceryItem{
			ID:        r.ID,
			Name:      name,
			Quantity:  strings.TrimSpace(r.Quantity),
			Purchased: r.Purchased,
			CreatedAt: time.UnixMilli(r.CreatedAt),
		})
	}
	return items, dropped, nil
}
