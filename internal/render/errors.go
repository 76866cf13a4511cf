package render

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest covers bad or missing request input. Not retryable.
var ErrInvalidRequest = errors.New("invalid render request")

// ErrMissingInputMedia is raised at encode time when a style that composes
// over uploaded media has no input file to read.
var ErrMissingInputMedia = errors.New("input media file not found")

// Stage names the orchestrator state a job failed in.
type Stage string

const (
	StageValidating Stage = "validating"
	StageScript     Stage = "script"
	StageAudio      Stage = "audio"
	StageSubtitles  Stage = "subtitles"
	StageMedia      Stage = "media"
	StageEncoding   Stage = "encoding"
)

// StageError reports which pipeline stage a render died in, wrapping the
// underlying cause.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func fail(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
