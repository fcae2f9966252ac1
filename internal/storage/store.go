package storage

import (
	"log/slog"

	"github.com/alexsparkes/ShoppingList/internal/model"
)

// SnapshotKey is the fixed key the full item collection lives under. The
// version suffix exists so a future layout can coexist with this one; a v2
// reader must not assume it can decode v1 data without a migration.
const SnapshotKey = "grocery-items:v1"

// Store persists the entire item collection as one snapshot under
// SnapshotKey. Neither Load nor Save ever surfaces an error to the caller:
// a poisoned or unwritable snapshot degrades to "no prior list" and a
// diagnostic, never a crash.
type Store struct {
	kv     KV
	logger *slog.Logger
}

func New(kv KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, logger: logger}
}

// Load reads and decodes the current snapshot. Absent, unreadable, or
// malformed data all yield an empty collection.
func (s *Store) Load() []model.GroceryItem {
	data, ok, err := s.kv.Get(SnapshotKey)
	if err != nil {
		s.logger.Warn("failed to read snapshot, starting empty", "key", SnapshotKey, "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	items, dropped, err := UnmarshalItems(data)
	if err != nil {
		s.logger.Warn("corrupt snapshot discarded, starting empty", "key", SnapshotKey, "error", err)
		return nil
	}
	if dropped > 0 {
		s.logger.Warn("dropped malformed item records from snapshot", "key", SnapshotKey, "dropped", dropped)
	}
	return items
}

// Save overwrites the snapshot with the given collection. Failures are
// logged and absorbed; the next successful save reconciles.
func (s *Store) Save(items []model.GroceryItem) {
	data, err := MarshalItems(items)
	if err != nil {
		s.logger.Warn("failed to encode snapshot", "key", SnapshotKey, "error", err)
		return
	}
	if err := s.kv.Set(SnapshotKey, data); err != nil {
		s.logger.Warn("failed to write snapshot", "key", SnapshotKey, "error", err)
	}
}
