package transcribe

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"autovid/internal/ffmpeg"
)

// Whisper runs the external speech-recognition process. The script transcribes
// the audio with word-level timestamps, writes an SRT next to the configured
// subtitles directory, and prints the absolute SRT path on its last stdout
// line.
type Whisper struct {
	python string
	script string
	log    *logrus.Logger
}

// NewWhisper creates a transcriber driving the given python script.
func NewWhisper(pythonBin, scriptPath string, log *logrus.Logger) *Whisper {
	return &Whisper{python: pythonBin, script: scriptPath, log: log}
}

// Transcribe converts an audio file into a word-timed SRT file and returns
// the SRT path the process reported.
func (w *Whisper) Transcribe(ctx context.Context, audioPath string) (string, error) {
	res, err := ffmpeg.Run(ctx, w.python, w.script, audioPath)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("transcription failed with code %d: %s", res.ExitCode, res.Stderr)
	}

	srtPath := lastLine(res.Stdout)
	if srtPath == "" {
		return "", fmt.Errorf("transcription produced no output path")
	}

	w.log.WithField("srt", srtPath).Info("audio transcribed")
	return srtPath, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
