package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// Result is the structured outcome of a finished external process: exit code
// plus whatever it wrote to stdout and stderr. A non-zero exit code is not an
// error at this level; callers decide what it means for their stage.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Run starts an external process and suspends the caller until it exits.
// The returned error is non-nil only when the process could not be started
// (or the context was canceled); an unsuccessful exit is reported through
// Result.ExitCode so each pipeline stage can attach its own failure type.
func Run(ctx context.Context, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return nil, fmt.Errorf("starting %s failed: %w", name, err)
	}
	return res, nil
}

// FFProbeOutput defines the structure for ffprobe JSON output relevant to
// duration. Only format.duration is needed here.
type FFProbeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDuration uses ffprobe to get the duration of a media file.
func ProbeDuration(ctx context.Context, filePath string) (time.Duration, error) {
	res, err := Run(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		filePath,
	)
	if err != nil {
		return 0, err
	}
	if res.ExitCode != 0 {
		return 0, fmt.Errorf("ffprobe failed with code %d: %s", res.ExitCode, res.Stderr)
	}

	var probe FFProbeOutput
	if err := json.Unmarshal([]byte(res.Stdout), &probe); err != nil {
		return 0, fmt.Errorf("error unmarshalling ffprobe output: %w", err)
	}
	if probe.Format.Duration == "" {
		return 0, fmt.Errorf("could not retrieve duration from ffprobe output: %s", res.Stdout)
	}

	durationFloat, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing duration string %q: %w", probe.Format.Duration, err)
	}
	return time.Duration(durationFloat * float64(time.Second)), nil
}
