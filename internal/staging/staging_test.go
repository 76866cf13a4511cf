package staging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureCreatesLayout(t *testing.T) {
	root := filepath.Join(t.TempDir(), "data")
	layout := NewLayout(root)

	if err := layout.Ensure(); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	for _, dir := range []string{layout.Uploads, layout.Videos, layout.Audios, layout.Subtitles} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("missing staging dir %s: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}

	// Idempotent on an already-populated tree.
	if err := layout.Ensure(); err != nil {
		t.Errorf("second Ensure: %v", err)
	}
}

func TestJobUploadDir(t *testing.T) {
	layout := NewLayout(t.TempDir())
	if err := layout.Ensure(); err != nil {
		t.Fatal(err)
	}

	dir, err := layout.JobUploadDir("job-123")
	if err != nil {
		t.Fatalf("JobUploadDir: %v", err)
	}
	if dir != filepath.Join(layout.Uploads, "job-123") {
		t.Errorf("dir = %s", dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("job dir not created: %v", err)
	}

	other, err := layout.JobUploadDir("job-456")
	if err != nil {
		t.Fatal(err)
	}
	if other == dir {
		t.Error("distinct jobs share an upload dir")
	}
}

func TestClearDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mp4", "b.srt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	sub := filepath.Join(dir, "keep")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := ClearDirectory(dir); err != nil {
		t.Fatalf("ClearDirectory: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "keep" {
		t.Errorf("expected only the subdirectory to remain, got %v", entries)
	}
}

func TestClearDirectoryMissing(t *testing.T) {
	if err := ClearDirectory(filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Errorf("missing dir should not error, got %v", err)
	}
}
