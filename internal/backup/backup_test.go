package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/sipwait/internal/constants"
	"github.com/julianstephens/sipwait/internal/storage"
	"github.com/julianstephens/sipwait/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "sipwait.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Set(constants.StateDrinkCount, "7"); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
	return dbPath
}

func TestCreate(t *testing.T) {
	dbPath := setupTestDB(t)
	m := NewManager(dbPath)

	path, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if filepath.Dir(path) != m.Dir() {
		t.Errorf("backup written to %s, want under %s", path, m.Dir())
	}

	restored := sqlite.NewStore(path)
	if err := restored.Load(); err != nil {
		t.Fatalf("backup is not a usable database: %v", err)
	}
	defer restored.Close()
	if got := storage.LoadState(restored).DrinkCount; got != 7 {
		t.Errorf("backup DrinkCount = %d, want 7", got)
	}
}

func TestCreate_MissingDatabase(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := m.Create(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestCreate_UniqueNamesAndPruning(t *testing.T) {
	dbPath := setupTestDB(t)
	m := NewManager(dbPath)
	fixed := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < MaxBackups+3; i++ {
		// Every other snapshot collides on the timestamp
		m.now = func() time.Time { return fixed.Add(time.Duration(i/2) * time.Minute) }
		if _, err := m.Create(); err != nil {
			t.Fatalf("Create() #%d error: %v", i, err)
		}
	}

	paths, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != MaxBackups {
		t.Errorf("kept %d backups, want %d", len(paths), MaxBackups)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("listed backup missing: %v", err)
		}
	}
}

func TestList_NoDirectory(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "sipwait.db"))
	paths, err := m.List()
	if err != nil || len(paths) != 0 {
		t.Errorf("List() = (%v, %v), want empty", paths, err)
	}
}
