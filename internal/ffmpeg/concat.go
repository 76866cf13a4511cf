package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoClips is returned when a slideshow concat finds no usable video files.
var ErrNoClips = errors.New("no video clips found for slideshow")

// clipExtensions are the container types accepted as slideshow inputs.
var clipExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
}

// ListClips returns the supported video files in dir, sorted by name so
// concat order is deterministic.
func ListClips(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading clip directory: %w", err)
	}
	var clips []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if clipExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			clips = append(clips, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(clips)
	return clips, nil
}

// NormalizeClip re-encodes one clip to exactly targetSeconds at 30fps by
// looping it as needed. Every slideshow clip goes through this before concat
// so the copy-concat sees a single codec/resolution/timebase.
func NormalizeClip(ctx context.Context, inputPath, outputPath string, targetSeconds int) error {
	res, err := Run(ctx, "ffmpeg",
		"-y",
		"-stream_loop", "-1",
		"-i", inputPath,
		"-t", fmt.Sprintf("%d", targetSeconds),
		"-vf", "fps=30",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		outputPath,
	)
	if err != nil {
		return fmt.Errorf("normalization failed for %s: %w", inputPath, err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("normalization failed for %s (code %d): %s", inputPath, res.ExitCode, tail(res.Stderr, 512))
	}
	return nil
}

// ConcatClips stream-copies every supported clip in dir into one continuous
// track via a concat manifest. Inputs MUST already be normalized to a common
// codec/resolution/timebase or the copy-concat produces corrupt output.
func ConcatClips(ctx context.Context, dir, outputPath string) error {
	clips, err := ListClips(dir)
	if err != nil {
		return err
	}
	if len(clips) == 0 {
		return ErrNoClips
	}

	var manifest strings.Builder
	for _, clip := range clips {
		manifest.WriteString(fmt.Sprintf("file '%s'\n", strings.ReplaceAll(clip, "\\", "/")))
	}
	listPath := filepath.Join(dir, "files.txt")
	if err := os.WriteFile(listPath, []byte(manifest.String()), 0o644); err != nil {
		return fmt.Errorf("writing concat manifest: %w", err)
	}
	defer os.Remove(listPath)

	res, err := Run(ctx, "ffmpeg",
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		outputPath,
	)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("concat failed with code %d: %s", res.ExitCode, tail(res.Stderr, 512))
	}
	return nil
}
