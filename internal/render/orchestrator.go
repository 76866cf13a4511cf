package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"autovid/internal/ffmpeg"
	"autovid/internal/script"
	"autovid/internal/slideshow"
	"autovid/internal/staging"
	"autovid/internal/subtitle"
	"autovid/internal/worker"
	"autovid/models"
)

// ScriptGenerator produces narration text from a prompt.
type ScriptGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SpeechSynthesizer turns narration text into encoded audio bytes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

// Transcriber derives a word-timed SRT file from an audio file and returns
// its path.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// ClipFetcher downloads slideshow source clips keyed off a subtitle track,
// returning how many clips it saved.
type ClipFetcher interface {
	Fetch(ctx context.Context, srtPath, destDir string) (int, error)
}

// Orchestrator drives one render request through the pipeline stages:
// Validating, ScriptReady, AudioReady, SubtitlesReady, MediaReady, Encoding.
// Each instance is safe for concurrent use; all per-job state lives in the
// job itself and its staging subdirectories.
type Orchestrator struct {
	layout      staging.Layout
	scripts     ScriptGenerator
	tts         SpeechSynthesizer
	transcriber Transcriber
	clips       ClipFetcher
	pool        *worker.Pool
	log         *logrus.Logger
}

// NewOrchestrator wires the render pipeline's collaborators together.
func NewOrchestrator(
	layout staging.Layout,
	scripts ScriptGenerator,
	tts SpeechSynthesizer,
	transcriber Transcriber,
	clips ClipFetcher,
	pool *worker.Pool,
	log *logrus.Logger,
) *Orchestrator {
	return &Orchestrator{
		layout:      layout,
		scripts:     scripts,
		tts:         tts,
		transcriber: transcriber,
		clips:       clips,
		pool:        pool,
		log:         log,
	}
}

// Request is one caller-supplied render job. InputMedia is the path of an
// already-saved upload, empty when the caller sent none.
type Request struct {
	JobID       string
	Message     string
	AspectRatio string
	VoiceChoice string
	Style       models.VideoStyle
	ScriptType  models.ScriptType
	InputMedia  string
}

// Result describes the artifacts a finished job produced. OutputFile and
// VideoURL are empty on the text/audio-only path.
type Result struct {
	ScriptText   string
	AudioFile    string
	AudioURL     string
	SubtitleFile string
	SubtitleURL  string
	OutputFile   string
	VideoURL     string
}

// Render runs the full pipeline for one request. Every stage failure
// short-circuits the job with a StageError; nothing is retried. Transient
// files are cleared on success only.
func (o *Orchestrator) Render(ctx context.Context, req Request) (*Result, error) {
	if err := o.validate(req); err != nil {
		return nil, fail(StageValidating, err)
	}

	job := &models.RenderJob{
		ID:          req.JobID,
		Style:       req.Style,
		AspectRatio: req.AspectRatio,
		InputMedia:  req.InputMedia,
	}

	log := o.log.WithFields(logrus.Fields{
		"job":   job.ID,
		"style": string(job.Style),
	})

	scriptText, err := o.resolveScript(ctx, req)
	if err != nil {
		return nil, fail(StageScript, err)
	}
	job.ScriptText = scriptText
	log.WithField("chars", len(scriptText)).Info("script ready")

	audioPath, err := o.synthesizeAudio(ctx, req, scriptText)
	if err != nil {
		return nil, fail(StageAudio, err)
	}
	job.AudioFile = audioPath
	log.WithField("audio", audioPath).Info("audio ready")

	srtPath, err := o.buildSubtitles(ctx, req, scriptText, audioPath)
	if err != nil {
		return nil, fail(StageSubtitles, err)
	}
	job.SubtitleFile = srtPath
	log.WithField("srt", srtPath).Info("subtitles ready")

	result := &Result{
		ScriptText:   scriptText,
		AudioFile:    audioPath,
		AudioURL:     "/audios/" + filepath.Base(audioPath),
		SubtitleFile: srtPath,
		SubtitleURL:  o.subtitleURL(srtPath),
	}

	inputMedia, cleanupPaths, err := o.prepareMedia(ctx, req, srtPath)
	if err != nil {
		return nil, fail(StageMedia, err)
	}
	if inputMedia == "" {
		// Text/audio-only path: nothing to encode, the descriptor is the
		// whole response.
		log.Info("no input media, returning audio-only result")
		return result, nil
	}
	job.InputMedia = inputMedia
	log.WithField("input", inputMedia).Info("media ready")

	job.OutputFile = filepath.Join(o.layout.Videos, "output_"+job.ID+".mp4")
	if err := o.encode(ctx, job); err != nil {
		return nil, fail(StageEncoding, err)
	}

	result.OutputFile = job.OutputFile
	result.VideoURL = "/videos/" + filepath.Base(job.OutputFile)
	log.WithField("output", job.OutputFile).Info("render succeeded")

	o.cleanup(job, cleanupPaths)
	return result, nil
}

// subtitleURL maps an SRT path to the static mount serving it. Synthetic
// captions land in the subtitles dir, but the transcriber writes its SRT next
// to the audio file, so the mount follows the file's actual staging root.
func (o *Orchestrator) subtitleURL(srtPath string) string {
	if filepath.Base(filepath.Dir(srtPath)) == filepath.Base(o.layout.Audios) {
		return "/audios/" + filepath.Base(srtPath)
	}
	return "/subtitles/" + filepath.Base(srtPath)
}

func (o *Orchestrator) validate(req Request) error {
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidRequest)
	}
	if !req.Style.Valid() {
		return fmt.Errorf("%w: unsupported video style %q", ErrInvalidRequest, req.Style)
	}
	if !req.ScriptType.Valid() {
		return fmt.Errorf("%w: unsupported script type %q", ErrInvalidRequest, req.ScriptType)
	}
	return nil
}

// resolveScript returns the user's own text or runs the style-specific
// prompt through the generation provider.
func (o *Orchestrator) resolveScript(ctx context.Context, req Request) (string, error) {
	if req.ScriptType == models.ScriptTypeUser {
		return req.Message, nil
	}

	prompt, err := script.BuildPrompt(req.Style, req.Message)
	if err != nil {
		return "", err
	}
	return o.scripts.Generate(ctx, prompt)
}

func (o *Orchestrator) synthesizeAudio(ctx context.Context, req Request, scriptText string) (string, error) {
	audio, err := o.tts.Synthesize(ctx, scriptText, req.VoiceChoice)
	if err != nil {
		return "", err
	}

	audioPath := filepath.Join(o.layout.Audios, "speech_"+req.JobID+".mp3")
	if err := os.WriteFile(audioPath, audio, 0o644); err != nil {
		return "", fmt.Errorf("saving audio file: %w", err)
	}
	return audioPath, nil
}

// buildSubtitles produces the SRT track for the job. Reddit Story and Quiz
// derive synthetic timings from the script and the measured audio length;
// Slide Show transcribes the audio itself so caption windows line up with
// the spoken words.
func (o *Orchestrator) buildSubtitles(ctx context.Context, req Request, scriptText, audioPath string) (string, error) {
	if req.Style == models.StyleSlideShow {
		return o.transcriber.Transcribe(ctx, audioPath)
	}

	duration, err := ffmpeg.ProbeDuration(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("probing audio duration: %w", err)
	}

	var content string
	if req.Style == models.StyleQuiz {
		captions, err := subtitle.GenerateLineCaptions(scriptText, duration.Seconds())
		if err != nil {
			return "", err
		}
		content = subtitle.FormatQuizSRT(subtitle.ReformatForQuiz(captions))
	} else {
		captions, err := subtitle.GenerateCaptions(scriptText, duration.Seconds())
		if err != nil {
			return "", err
		}
		content = subtitle.FormatSRT(captions)
	}

	srtPath := filepath.Join(o.layout.Subtitles, "speech_"+req.JobID+".srt")
	if err := os.WriteFile(srtPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("saving subtitle file: %w", err)
	}
	return srtPath, nil
}

// prepareMedia resolves the encoder's first input. Reddit Story and Quiz use
// the caller's upload as-is (or signal the audio-only path when there is
// none); Slide Show assembles its own input from fetched stock clips.
func (o *Orchestrator) prepareMedia(ctx context.Context, req Request, srtPath string) (string, []string, error) {
	if req.Style != models.StyleSlideShow {
		return req.InputMedia, nil, nil
	}

	clipDir, err := o.layout.JobUploadDir(req.JobID)
	if err != nil {
		return "", nil, err
	}

	n, err := o.clips.Fetch(ctx, srtPath, clipDir)
	if err != nil {
		return "", nil, err
	}
	if n == 0 {
		return "", nil, ffmpeg.ErrNoClips
	}

	concatPath := filepath.Join(o.layout.Videos, "slideshow_"+req.JobID+".mp4")
	if err := slideshow.Assemble(ctx, o.pool, clipDir, concatPath, o.log); err != nil {
		return "", nil, err
	}
	return concatPath, []string{concatPath}, nil
}

func (o *Orchestrator) encode(ctx context.Context, job *models.RenderJob) error {
	if _, err := os.Stat(job.InputMedia); err != nil {
		return ErrMissingInputMedia
	}

	var filter string
	if job.Style == models.StyleSlideShow {
		filter = ffmpeg.SlideshowFilter(job.AspectRatio, job.SubtitleFile)
	} else {
		filter = ffmpeg.VideoFilter(job.AspectRatio, job.SubtitleFile)
	}

	return ffmpeg.Encode(ctx, ffmpeg.EncodeOptions{
		InputMedia:   job.InputMedia,
		AudioFile:    job.AudioFile,
		SubtitleFile: job.SubtitleFile,
		OutputFile:   job.OutputFile,
		Filter:       filter,
	})
}

// cleanup clears the job's transient inputs after a successful encode. The
// produced video and audio stay; they are served from the staging roots.
func (o *Orchestrator) cleanup(job *models.RenderJob, extra []string) {
	jobUploads := filepath.Join(o.layout.Uploads, job.ID)
	if err := os.RemoveAll(jobUploads); err != nil {
		o.log.WithError(err).Warn("failed to clear job upload dir")
	}
	if err := os.Remove(job.SubtitleFile); err != nil && !os.IsNotExist(err) {
		o.log.WithError(err).Warn("failed to remove subtitle scratch file")
	}
	for _, path := range extra {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			o.log.WithError(err).Warn("failed to remove transient media file")
		}
	}
}
