package storage

import (
	"os"
	"path/filepath"
	"testing"

	"studyquest/internal/models"
)

// TestSQLiteBackendLifecycle tests the complete SQLite backend lifecycle
func TestSQLiteBackendLifecycle(t *testing.T) {
	// Skip if not in integration test mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "test_state.db")
	defer os.Remove(dbPath)

	backend, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("Failed to open sqlite backend: %v", err)
	}
	defer backend.Close()

	// Raw key/value round trip
	if err := backend.Set("k1", []byte(`"v1"`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, found, err := backend.Get("k1")
	if err != nil || !found {
		t.Fatalf("Get failed: found=%v err=%v", found, err)
	}
	if string(value) != `"v1"` {
		t.Errorf("Get = %s, want %q", value, `"v1"`)
	}

	// Overwrite is visible immediately
	if err := backend.Set("k1", []byte(`"v2"`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	value, _, _ = backend.Get("k1")
	if string(value) != `"v2"` {
		t.Errorf("after overwrite Get = %s, want %q", value, `"v2"`)
	}

	// Delete of absent key is not an error
	if err := backend.Delete("never-existed"); err != nil {
		t.Errorf("Delete of absent key errored: %v", err)
	}
}

// TestStoreOverSQLite exercises the typed store against a real SQLite file
func TestStoreOverSQLite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "test_store.db")
	defer os.Remove(dbPath)

	backend, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("Failed to open sqlite backend: %v", err)
	}
	defer backend.Close()

	store := New(backend)

	store.InitializeStats("u1")
	store.SetOnboardingCompleted(true)
	store.UpsertProgress(models.StudyProgress{
		UserID: "u1", SubjectID: "matematica", SubjectName: "Matemática",
		Progress: 0, CompletedLessons: []string{}, TotalLessons: 12,
	})

	stats, found := store.Stats()
	if !found || stats.UserID != "u1" || stats.Level != 1 {
		t.Errorf("stats = %+v found=%v", stats, found)
	}
	if !store.OnboardingCompleted() {
		t.Error("onboarding flag lost")
	}
	progress := store.Progress()
	if len(progress) != 1 || progress[0].SubjectName != "Matemática" {
		t.Errorf("progress = %+v", progress)
	}
}
