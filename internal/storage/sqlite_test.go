package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestLoadUnknownProfile(t *testing.T) {
	store := openTestStore(t)

	st, ok, err := store.LoadSettings("alice")
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if ok {
		t.Error("unknown profile should not be found")
	}
	if st.Profile != "alice" {
		t.Errorf("Profile = %q, expected alice", st.Profile)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveSettings(Settings{Profile: "alice", SpeedMultiplier: 1.5, Difficulty: "hard"}); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	st, ok, err := store.LoadSettings("alice")
	if err != nil || !ok {
		t.Fatalf("LoadSettings() = (%v, %v)", ok, err)
	}
	if st.SpeedMultiplier != 1.5 || st.Difficulty != "hard" {
		t.Errorf("loaded %+v, expected 1.5/hard", st)
	}

	// Overwrite
	if err := store.SaveSettings(Settings{Profile: "alice", SpeedMultiplier: 0.7}); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	st, _, _ = store.LoadSettings("alice")
	if st.SpeedMultiplier != 0.7 || st.Difficulty != "" {
		t.Errorf("after overwrite got %+v, expected 0.7 and no difficulty", st)
	}
}

func TestEmptyProfileIsLocal(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveSettings(Settings{SpeedMultiplier: 2}); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	st, ok, err := store.LoadSettings("local")
	if err != nil || !ok {
		t.Fatalf("LoadSettings(local) = (%v, %v)", ok, err)
	}
	if st.SpeedMultiplier != 2 {
		t.Errorf("SpeedMultiplier = %v, expected 2", st.SpeedMultiplier)
	}
}

func TestProfilesAndDelete(t *testing.T) {
	store := openTestStore(t)

	for _, p := range []string{"carol", "alice", "bob"} {
		if err := store.SaveSettings(Settings{Profile: p, SpeedMultiplier: 1}); err != nil {
			t.Fatalf("SaveSettings(%s) failed: %v", p, err)
		}
	}

	list, err := store.Profiles()
	if err != nil {
		t.Fatalf("Profiles() failed: %v", err)
	}
	if len(list) != 3 || list[0].Profile != "alice" || list[2].Profile != "carol" {
		t.Errorf("Profiles() = %+v, expected alice, bob, carol", list)
	}

	if err := store.DeleteSettings("bob"); err != nil {
		t.Fatalf("DeleteSettings() failed: %v", err)
	}
	if err := store.DeleteSettings("nobody"); err != nil {
		t.Errorf("deleting an unknown profile should not fail: %v", err)
	}
	if _, ok, _ := store.LoadSettings("bob"); ok {
		t.Error("bob should be gone")
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveSettings(Settings{Profile: "alice", SpeedMultiplier: 1.2}); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	st, ok, err := store.LoadSettings("alice")
	if err != nil || !ok || st.SpeedMultiplier != 1.2 {
		t.Errorf("after reopen got (%+v, %v, %v)", st, ok, err)
	}
}
