package storage

import (
	"fmt"
	"testing"
	"time"
)

// testAppName points gdata at a fresh home directory.
func testAppName(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	return fmt.Sprintf("jumpboy_test_%d", time.Now().UnixNano())
}

func openTestSnapshots(t *testing.T, appName, gameID string) *SnapshotStore {
	t.Helper()
	s, err := OpenSnapshots(appName, gameID)
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return s
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	s := openTestSnapshots(t, testAppName(t), "jumpboy")

	data, err := s.Load()
	if err != nil {
		t.Fatalf("Load() on empty store failed: %v", err)
	}
	if data != nil {
		t.Errorf("Load() = %q, expected nil before any save", data)
	}

	want := `{"score_board":[],"level":1}`
	if err := s.Save([]byte(want)); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	data, err = s.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if string(data) != want {
		t.Errorf("Load() = %q, expected %q", data, want)
	}
}

func TestSnapshotStoreSeparatesGames(t *testing.T) {
	app := testAppName(t)
	normal := openTestSnapshots(t, app, "jumpboy")
	hard := openTestSnapshots(t, app, "jumpboy_hard")

	if err := normal.Save([]byte(`{"level":0}`)); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	data, err := hard.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if data != nil {
		t.Errorf("hard Load() = %q, expected nil", data)
	}

	reopened := openTestSnapshots(t, app, "jumpboy")
	data, err = reopened.Load()
	if err != nil {
		t.Fatalf("Load() after reopen failed: %v", err)
	}
	if string(data) != `{"level":0}` {
		t.Errorf("Load() after reopen = %q", data)
	}
}
