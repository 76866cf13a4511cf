package staging

import (
	"fmt"
	"os"
	"path/filepath"
)

// Layout names the staging directories a render job works in. Uploads and
// subtitles are transient; audios and videos hold the served artifacts.
type Layout struct {
	Root      string
	Uploads   string
	Videos    string
	Audios    string
	Subtitles string
}

// NewLayout derives the standard staging directories under root.
func NewLayout(root string) Layout {
	return Layout{
		Root:      root,
		Uploads:   filepath.Join(root, "uploads"),
		Videos:    filepath.Join(root, "videos"),
		Audios:    filepath.Join(root, "audios"),
		Subtitles: filepath.Join(root, "subtitles"),
	}
}

// Ensure creates the staging directories. Called once at process start;
// idempotent.
func (l Layout) Ensure() error {
	for _, dir := range []string{l.Uploads, l.Videos, l.Audios, l.Subtitles} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating staging dir %s: %w", dir, err)
		}
	}
	return nil
}

// JobUploadDir returns (and creates) the per-job upload subdirectory.
// Concurrent jobs each get their own so in-flight clips never clobber each
// other.
func (l Layout) JobUploadDir(jobID string) (string, error) {
	dir := filepath.Join(l.Uploads, jobID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating job upload dir: %w", err)
	}
	return dir, nil
}

// ClearDirectory removes the regular files directly inside dir, leaving the
// directory itself and any subdirectories in place. A missing directory is
// not an error.
func ClearDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
