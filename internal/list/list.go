package list

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexsparkes/ShoppingList/internal/model"
	"github.com/alexsparkes/ShoppingList/internal/storage"
)

// List owns the authoritative in-memory item collection. Mutations update
// the collection immediately and schedule a fire-and-forget write of the
// full snapshot; queries always read in-memory state, never the store.
//
// Saves may overlap when mutations arrive in rapid succession. Each save
// writes the collection as it was at mutation time, and the store's
// overwrite semantics make the last completed write win. A write that
// completes out of initiation order can leave a stale snapshot behind; the
// next save reconciles.
type List struct {
	mu     sync.Mutex
	items  []model.GroceryItem
	store  *storage.Store
	logger *slog.Logger
	saves  sync.WaitGroup
}

func New(store *storage.Store, logger *slog.Logger) *List {
	if logger == nil {
		logger = slog.Default()
	}
	return &List{store: store, logger: logger}
}

// Initialize populates the collection from the store. Call once at startup,
// before any mutation. A missing or corrupt snapshot yields an empty list.
func (l *List) Initialize() {
	items := l.store.Load()
	l.mu.Lock()
	l.items = items
	l.mu.Unlock()
	l.logger.Debug("list initialized", "items", len(items))
}

// Add creates a new item from a name and optional quantity. Both are
// trimmed; a blank name is a deliberate no-op and returns nil.
func (l *List) Add(name, quantity string) *model.GroceryItem {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}

	item := model.GroceryItem{
		ID:        uuid.NewString(),
		Name:      trimmed,
		Quantity:  strings.TrimSpace(quantity),
		Purchased: false,
		CreatedAt: time.Now(),
	}

	l.mu.Lock()
	// Insert at the head so equal-timestamp items still render newest first.
	l.items = append([]model.GroceryItem{item}, l.items...)
	l.scheduleSave()
	l.mu.Unlock()
	return &item
}

// TogglePurchased flips the purchased flag of the item with the given id.
// An unknown id is a no-op.
func (l *List) TogglePurchased(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Purchased = !l.items[i].Purchased
			l.scheduleSave()
			return
		}
	}
}

// Remove deletes the item with the given id. An unknown id is a no-op.
func (l *List) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.scheduleSave()
			return
		}
	}
}

// ClearPurchased deletes every purchased item. Callers are expected to
// confirm destructive intent first.
func (l *List) ClearPurchased() {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.items[:0]
	for _, item := range l.items {
		if !item.Purchased {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(l.items) {
		return
	}
	l.items = kept
	l.scheduleSave()
}

// RemainingCount returns the number of unpurchased items.
func (l *List) RemainingCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	count := 0
	for _, item := range l.items {
		if !item.Purchased {
			count++
		}
	}
	return count
}

// Flush blocks until every save scheduled so far has completed. Used at
// shutdown and in tests; normal operation never waits on a save.
func (l *List) Flush() {
	l.saves.Wait()
}

// scheduleSave snapshots the current collection and writes it in the
// background. Caller must hold l.mu.
func (l *List) scheduleSave() {
	snapshot := make([]model.GroceryItem, len(l.items))
	copy(snapshot, l.items)

	l.saves.Add(1)
	go func() {
		defer l.saves.Done()
		l.store.Save(snapshot)
	}()
}
