package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EncodeError reports a failed encoder invocation, carrying the process exit
// code and the captured diagnostic stream.
type EncodeError struct {
	ExitCode int
	Stderr   string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("ffmpeg exited with code %d: %s", e.ExitCode, tail(e.Stderr, 512))
}

// imageExtensions are input types encoded with the still-image strategy
// (loop a single frame for the duration of the audio).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// IsImage reports whether the input file should be looped as a still image.
func IsImage(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// EncodeOptions carries everything one final-composition invocation needs.
type EncodeOptions struct {
	InputMedia   string
	AudioFile    string
	SubtitleFile string
	OutputFile   string
	Filter       string
}

// Encode drives the final composition: first input's video stream plus the
// second input's audio stream, filter graph applied, trimmed to the shortest
// stream. Still images are looped to the audio length; videos loop their
// stream until the audio runs out.
func Encode(ctx context.Context, opts EncodeOptions) error {
	for _, f := range []string{opts.InputMedia, opts.AudioFile, opts.SubtitleFile} {
		if _, err := os.Stat(f); err != nil {
			return fmt.Errorf("encode input missing: %w", err)
		}
	}

	var args []string
	if IsImage(opts.InputMedia) {
		args = []string{
			"-y",
			"-loop", "1",
			"-i", opts.InputMedia,
			"-i", opts.AudioFile,
			"-vf", opts.Filter,
			"-map", "0:v:0",
			"-map", "1:a:0",
			"-c:v", "libx264",
			"-tune", "stillimage",
			"-c:a", "libmp3lame",
			"-q:a", "2",
			"-f", "mp4",
			"-shortest",
			"-pix_fmt", "yuv420p",
			opts.OutputFile,
		}
	} else {
		args = []string{
			"-y",
			"-stream_loop", "-1",
			"-i", opts.InputMedia,
			"-i", opts.AudioFile,
			"-vf", opts.Filter,
			"-map", "0:v:0",
			"-map", "1:a:0",
			"-c:v", "libx264",
			"-c:a", "libmp3lame",
			"-q:a", "2",
			"-f", "mp4",
			"-shortest",
			"-pix_fmt", "yuv420p",
			opts.OutputFile,
		}
	}

	res, err := Run(ctx, "ffmpeg", args...)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &EncodeError{ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return nil
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
