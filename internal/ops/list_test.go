package ops

import (
	"os"
	"testing"
	"time"

	"github.com/grabapp/grabd/internal/capture"
	"github.com/grabapp/grabd/internal/settings"
)

func TestListCaptures_Empty(t *testing.T) {
	env, _ := testEnv(t)

	output, err := ListCaptures(env)
	if err != nil {
		t.Fatalf("ListCaptures failed: %v", err)
	}
	if output.Count != 0 || len(output.Items) != 0 {
		t.Errorf("Count = %d, want 0", output.Count)
	}
	if output.Items == nil {
		t.Error("Items = nil, want empty slice")
	}
	if output.ScanID == "" {
		t.Error("ScanID is empty")
	}
}

func TestListCaptures_MixedDirectory(t *testing.T) {
	env, _ := testEnv(t)
	writeCapture(t, env, "shot.png", "img")
	writeCapture(t, env, "note.txt", "text")
	writeCapture(t, env, "video.mov", "skip me")
	writeCapture(t, env, "shot.png.json", `{
		"id": "abc123",
		"timestamp": "2024-05-01T12:00:00Z",
		"type": "screenshot",
		"filename": "shot.png",
		"fileExtension": "png",
		"fileSize": 2048,
		"metadata": {}
	}`)

	output, err := ListCaptures(env)
	if err != nil {
		t.Fatalf("ListCaptures failed: %v", err)
	}
	if output.Count != 2 {
		t.Fatalf("Count = %d, want 2 (mov and sidecar excluded)", output.Count)
	}
	if output.Sort != "modified_desc" {
		t.Errorf("Sort = %q, want modified_desc", output.Sort)
	}

	byName := make(map[string]capture.Entry)
	for _, e := range output.Items {
		byName[e.Name] = e
	}

	shot, ok := byName["shot.png"]
	if !ok {
		t.Fatal("shot.png missing from listing")
	}
	if !shot.HasMetadata || shot.Metadata == nil || shot.Metadata.ID != "abc123" {
		t.Errorf("shot.png metadata = %+v, want id abc123", shot.Metadata)
	}

	note, ok := byName["note.txt"]
	if !ok {
		t.Fatal("note.txt missing from listing")
	}
	if note.HasMetadata || note.Metadata != nil {
		t.Errorf("note.txt = %+v, want no metadata", note)
	}
}

func TestListCaptures_NewestFirst(t *testing.T) {
	env, _ := testEnv(t)
	now := time.Now()

	oldPath := writeCapture(t, env, "old.png", "img")
	newPath := writeCapture(t, env, "new.png", "img")
	if err := os.Chtimes(oldPath, now.Add(-time.Hour), now.Add(-time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(newPath, now, now); err != nil {
		t.Fatal(err)
	}

	output, err := ListCaptures(env)
	if err != nil {
		t.Fatalf("ListCaptures failed: %v", err)
	}
	if output.Items[0].Name != "new.png" || output.Items[1].Name != "old.png" {
		t.Errorf("order = [%s %s], want newest first", output.Items[0].Name, output.Items[1].Name)
	}
}

func TestListCaptures_FreshScanPerCall(t *testing.T) {
	env, _ := testEnv(t)

	first, err := ListCaptures(env)
	if err != nil {
		t.Fatalf("ListCaptures failed: %v", err)
	}

	writeCapture(t, env, "late.png", "img")

	second, err := ListCaptures(env)
	if err != nil {
		t.Fatalf("ListCaptures failed: %v", err)
	}
	if second.Count != first.Count+1 {
		t.Errorf("second Count = %d, want %d", second.Count, first.Count+1)
	}
	if second.ScanID == first.ScanID {
		t.Error("scan ids equal across calls, want distinct snapshots")
	}
}

func TestListCaptures_UsesConfiguredFolder(t *testing.T) {
	env, _ := testEnv(t)

	folder := t.TempDir()
	if _, err := SaveAppSettings(env, SaveSettingsInput{CaptureFolder: folder}); err != nil {
		t.Fatalf("SaveAppSettings failed: %v", err)
	}
	if err := os.WriteFile(folder+"/pic.png", []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}

	output, err := ListCaptures(env)
	if err != nil {
		t.Fatalf("ListCaptures failed: %v", err)
	}
	if output.Count != 1 || output.Items[0].Name != "pic.png" {
		t.Errorf("items = %+v, want pic.png from configured folder", output.Items)
	}

	// Sanity: the default folder was not the one scanned.
	if def, _ := settings.ResolveCapturesDir(env.BaseDir); def != folder {
		t.Errorf("resolved = %q, want configured %q", def, folder)
	}
}
