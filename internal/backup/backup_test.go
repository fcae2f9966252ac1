package backup

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexsparkes/ShoppingList/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.enc")

	want := []model.GroceryItem{
		{ID: "a", Name: "Milk", Quantity: "2", CreatedAt: time.UnixMilli(1700000000000)},
		{ID: "b", Name: "Bread", Purchased: true, CreatedAt: time.UnixMilli(1700000001000)},
	}

	if err := Export(path, want, "correct horse"); err != nil {
		t.Fatalf("export: %v", err)
	}

	got, err := Import(path, "correct horse")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("imported %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Name != want[i].Name ||
			got[i].Quantity != want[i].Quantity || got[i].Purchased != want[i].Purchased {
			t.Errorf("item[%d] = %+v, want %+v", i, got[i], want[i])
		}
		if got[i].CreatedAt.UnixMilli() != want[i].CreatedAt.UnixMilli() {
			t.Errorf("item[%d].CreatedAt = %v, want %v", i, got[i].CreatedAt, want[i].CreatedAt)
		}
	}
}

func TestExportEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.enc")

	if err := Export(path, nil, "pw"); err != nil {
		t.Fatalf("export: %v", err)
	}
	got, err := Import(path, "pw")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("imported %d items, want 0", len(got))
	}
}

func TestExportOutputIsCiphertext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.enc")

	items := []model.GroceryItem{{ID: "a", Name: "Milk", CreatedAt: time.UnixMilli(1)}}
	if err := Export(path, items, "pw"); err != nil {
		t.Fatalf("export: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if bytes.Contains(raw, []byte("Milk")) {
		t.Error("exported file should not contain plaintext item names")
	}
}

func TestImportWrongPassphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.enc")

	items := []model.GroceryItem{{ID: "a", Name: "Milk", CreatedAt: time.UnixMilli(1)}}
	if err := Export(path, items, "right"); err != nil {
		t.Fatalf("export: %v", err)
	}

	if _, err := Import(path, "wrong"); err == nil {
		t.Fatal("expected error for wrong passphrase")
	}
}

func TestImportTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.enc")
	if err := os.WriteFile(path, []byte("too short"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Import(path, "pw"); err == nil {
		t.Fatal("expected error for truncated file")
	}
}

func TestImportMissingFile(t *testing.T) {
	if _, err := Import(filepath.Join(t.TempDir(), "nope.enc"), "pw"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDeriveKeyDeterminism(t *testing.T) {
	salt := []byte("1234567890abcdef")

	key1 := deriveKey("mypassphrase", salt)
	key2 := deriveKey("mypassphrase", salt)
	if !bytes.Equal(key1, key2) {
		t.Error("same passphrase+salt should produce same key")
	}
	if len(key1) != keySize {
		t.Errorf("key length = %d, want %d", len(key1), keySize)
	}

	other := deriveKey("different", salt)
	if bytes.Equal(key1, other) {
		t.Error("different passphrases should produce different keys")
	}
}
