package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quilljournal/quill/internal/constants"
	"github.com/quilljournal/quill/internal/models"
	"github.com/quilljournal/quill/internal/storage/sqlite"
)

func newTestDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "quill.db")
	store := sqlite.NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	if _, err := store.CreateEntry(models.Entry{
		Title:     "Backup fixture",
		Content:   "An entry so the database has something worth keeping.",
		EntryDate: "2026-08-27",
		Mood:      models.Mood{Name: "calm", Category: models.MoodNeutral},
	}); err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
	return path
}

func TestCreateAndListBackups(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if _, err := os.Stat(first); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	// A second backup in the same second gets a dedup suffix, not an error.
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("second CreateBackup() error = %v", err)
	}
	if second == first {
		t.Fatalf("second backup reused path %s", first)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("ListBackups() returned %d backups, want 2", len(backups))
	}
	for _, b := range backups {
		if b.Size == 0 {
			t.Errorf("backup %s has zero size", b.Path)
		}
	}
}

func TestListBackupsEmptyDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "quill.db"))

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("ListBackups() = %v, want empty", backups)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Fatal("CreateBackup() with no database = nil, want error")
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	// Fill the retention window with old backups.
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < constants.MaxBackups; i++ {
		name := fmt.Sprintf("%s%s%s", constants.BackupFilePrefix,
			base.Add(time.Duration(i)*time.Minute).Format("20060102-150405"),
			constants.BackupFileSuffix)
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("old"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	oldest := filepath.Join(mgr.GetBackupDir(), fmt.Sprintf("%s%s%s",
		constants.BackupFilePrefix, base.Format("20060102-150405"), constants.BackupFileSuffix))

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("retained %d backups, want %d", len(backups), constants.MaxBackups)
	}
	if _, err := os.Stat(oldest); !os.IsNotExist(err) {
		t.Errorf("oldest backup %s survived rotation", oldest)
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	// Add a second entry, then restore the earlier snapshot.
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := store.CreateEntry(models.Entry{
		Title:     "After the backup",
		Content:   "This entry should disappear when the backup is restored.",
		EntryDate: "2026-08-28",
		Mood:      models.Mood{Name: "calm", Category: models.MoodNeutral},
	}); err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}
	store.Close()

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}

	store = sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() after restore error = %v", err)
	}
	defer store.Close()

	count, err := store.CountEntries()
	if err != nil {
		t.Fatalf("CountEntries() error = %v", err)
	}
	if count != 1 {
		t.Errorf("entry count after restore = %d, want 1", count)
	}
}

func TestRestoreBackupMissingFile(t *testing.T) {
	mgr := NewManager(newTestDB(t))
	if err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Fatal("RestoreBackup() with missing file = nil, want error")
	}
}
