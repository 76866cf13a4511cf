package jobs

import (
	"context"
	"fmt"

	"autovid/internal/ffmpeg"
)

// NormalizeClipJob re-encodes one slideshow clip to the fixed slide duration.
// It implements the worker.Task interface.
type NormalizeClipJob struct {
	JobID         string
	InputFile     string
	OutputFile    string
	TargetSeconds int
}

// Run performs the normalization using the ffmpeg package.
func (j *NormalizeClipJob) Run(ctx context.Context) error {
	if err := ffmpeg.NormalizeClip(ctx, j.InputFile, j.OutputFile, j.TargetSeconds); err != nil {
		return fmt.Errorf("normalize job %s: %w", j.JobID, err)
	}
	return nil
}

// ID returns the unique identifier for this job.
func (j *NormalizeClipJob) ID() string {
	return j.JobID
}
