package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexsparkes/ShoppingList/internal/backup"
	"github.com/alexsparkes/ShoppingList/internal/database"
	"github.com/alexsparkes/ShoppingList/internal/list"
	"github.com/alexsparkes/ShoppingList/internal/logging"
	"github.com/alexsparkes/ShoppingList/internal/storage"
)

func main() {
	dbPath := os.Getenv("SHOPLIST_DB_PATH")
	if dbPath == "" {
		dbPath = "shoplist.db"
	}

	logLevel := os.Getenv("SHOPLIST_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "error"
	}
	logger := logging.Setup(os.Stderr, logLevel)

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	store := storage.New(storage.NewSQLiteKV(db), logger)

	// export/import operate on the snapshot directly; the interactive list
	// model is only needed for the UI.
	if len(os.Args) > 1 {
		if err := runSnapshotCommand(store, os.Args[1:]); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	items := list.New(store, logger)
	items.Initialize()

	p := tea.NewProgram(newUI(items), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("ui error: %v", err)
	}

	// Let any in-flight save finish before the process exits.
	items.Flush()
}

func runSnapshotCommand(store *storage.Store, args []string) error {
	passphrase := os.Getenv("SHOPLIST_BACKUP_PASSPHRASE")

	switch args[0] {
	case "export":
		if len(args) != 2 {
			return fmt.Errorf("usage: shoplist export <file>")
		}
		if passphrase == "" {
			return fmt.Errorf("SHOPLIST_BACKUP_PASSPHRASE must be set")
		}
		items := store.Load()
		if err := backup.Export(args[1], items, passphrase); err != nil {
			return err
		}
		fmt.Printf("exported %d items to %s\n", len(items), args[1])
		return nil

	case "import":
		if len(args) != 2 {
			return fmt.Errorf("usage: shoplist import <file>")
		}
		if passphrase == "" {
			return fmt.Errorf("SHOPLIST_BACKUP_PASSPHRASE must be set")
		}
		items, err := backup.Import(args[1], passphrase)
		if err != nil {
			return err
		}
		store.Save(items)
		fmt.Printf("imported %d items from %s\n", len(items), args[1])
		return nil

	default:
		return fmt.Errorf("unknown command %q (expected export or import)", args[0])
	}
}
