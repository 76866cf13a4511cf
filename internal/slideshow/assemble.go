package slideshow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"autovid/internal/ffmpeg"
	"autovid/internal/jobs"
	"autovid/internal/worker"
)

// Assemble turns a directory of downloaded clips into one continuous
// slideshow track: every clip is normalized to the fixed slide duration in
// parallel, then the normalized copies are stream-concatenated. The pool join
// is the barrier the copy-concat depends on.
func Assemble(ctx context.Context, pool *worker.Pool, clipDir, outputPath string, log *logrus.Logger) error {
	clips, err := ffmpeg.ListClips(clipDir)
	if err != nil {
		return err
	}
	if len(clips) == 0 {
		return ffmpeg.ErrNoClips
	}

	tempDir := filepath.Join(clipDir, "normalized")
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return fmt.Errorf("creating normalization dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tasks := make([]worker.Task, 0, len(clips))
	for i, clip := range clips {
		tasks = append(tasks, &jobs.NormalizeClipJob{
			JobID:         fmt.Sprintf("normalize-%d", i),
			InputFile:     clip,
			OutputFile:    filepath.Join(tempDir, fmt.Sprintf("clip%d.mp4", i)),
			TargetSeconds: windowSeconds,
		})
	}
	if err := pool.RunAll(ctx, tasks); err != nil {
		return err
	}

	log.WithField("clips", len(clips)).Info("clips normalized, concatenating")
	return ffmpeg.ConcatClips(ctx, tempDir, outputPath)
}
