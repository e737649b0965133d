package history

import (
	"testing"
	"time"
)

func TestInitAndMigrate(t *testing.T) {
	db, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer db.Close()

	version, err := getUserVersion(db)
	if err != nil {
		t.Fatalf("getUserVersion failed: %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("user_version = %d, want %d", version, CurrentSchemaVersion)
	}
}

func TestInit_Idempotent(t *testing.T) {
	baseDir := t.TempDir()

	db1, err := Init(baseDir)
	if err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	db1.Close()

	db2, err := Init(baseDir)
	if err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	db2.Close()
}

func TestRecordAndRecent(t *testing.T) {
	db, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer db.Close()

	id1, err := Record(db, KindCopy, "shot.png", "")
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	id2, err := Record(db, KindCaptureID, "abc123", "")
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if id1 == id2 {
		t.Errorf("ids collide: %q", id1)
	}

	entries, err := Recent(db, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	// ULIDs are lexicographically time-ordered; within the same second the
	// id tiebreak keeps insertion order, newest first.
	if entries[0].ID != id2 || entries[1].ID != id1 {
		t.Errorf("order = [%s %s], want newest first", entries[0].ID, entries[1].ID)
	}
	if entries[0].Kind != KindCaptureID || entries[0].Name != "abc123" {
		t.Errorf("entry = %+v, want capture-id abc123", entries[0])
	}
	if entries[1].Detail != "" {
		t.Errorf("Detail = %q, want empty", entries[1].Detail)
	}

	now := time.Now().Unix()
	if entries[0].CreatedAt == 0 || entries[0].CreatedAt > now {
		t.Errorf("CreatedAt = %d, want a recent timestamp", entries[0].CreatedAt)
	}
}

func TestRecent_Limit(t *testing.T) {
	db, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer db.Close()

	for i := 0; i < 5; i++ {
		if _, err := Record(db, KindCopy, "shot.png", ""); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries, err := Recent(db, 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("len(entries) = %d, want 3", len(entries))
	}
}

func TestRecord_StoresDetail(t *testing.T) {
	db, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer db.Close()

	if _, err := Record(db, KindClipboardEvent, "clipboard-event.json", `{"action":"copied"}`); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := Recent(db, 1)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if entries[0].Detail != `{"action":"copied"}` {
		t.Errorf("Detail = %q, want payload", entries[0].Detail)
	}
}
