package ffmpeg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestListClipsFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp4", "a.MOV", "notes.txt", "c.webm", "files.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.mp4"), 0o755); err != nil {
		t.Fatal(err)
	}

	clips, err := ListClips(dir)
	if err != nil {
		t.Fatalf("ListClips: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.MOV"),
		filepath.Join(dir, "b.mp4"),
		filepath.Join(dir, "c.webm"),
	}
	if len(clips) != len(want) {
		t.Fatalf("got %d clips, want %d: %v", len(clips), len(want), clips)
	}
	for i := range want {
		if clips[i] != want[i] {
			t.Errorf("clip %d = %s, want %s", i, clips[i], want[i])
		}
	}
}

func TestConcatClipsEmptyDir(t *testing.T) {
	dir := t.TempDir()
	err := ConcatClips(context.Background(), dir, filepath.Join(dir, "out.mp4"))
	if !errors.Is(err, ErrNoClips) {
		t.Errorf("ConcatClips on empty dir = %v, want ErrNoClips", err)
	}
}

func TestConcatClipsMissingDir(t *testing.T) {
	err := ConcatClips(context.Background(), filepath.Join(t.TempDir(), "nope"), "out.mp4")
	if err == nil || errors.Is(err, ErrNoClips) {
		t.Errorf("expected read error for missing dir, got %v", err)
	}
}
