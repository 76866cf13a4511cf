package models

// VideoStyle selects which render pipeline variant runs for a job.
type VideoStyle string

const (
	StyleRedditStory VideoStyle = "Reddit Story"
	StyleQuiz        VideoStyle = "Quiz"
	StyleSlideShow   VideoStyle = "Slide Show"
)

// Valid reports whether the style is one the pipeline knows how to render.
func (s VideoStyle) Valid() bool {
	switch s {
	case StyleRedditStory, StyleQuiz, StyleSlideShow:
		return true
	}
	return false
}

// ScriptType declares where the narration script comes from.
type ScriptType string

const (
	ScriptTypeAI   ScriptType = "AI Script"
	ScriptTypeUser ScriptType = "User Script"
)

// Valid reports whether the script type is recognized.
func (t ScriptType) Valid() bool {
	return t == ScriptTypeAI || t == ScriptTypeUser
}

// RenderJob is the ephemeral unit of work owned by the render orchestrator
// for the lifetime of one request. Paths are absolute and live under the
// job's staging directories until cleanup.
type RenderJob struct {
	ID           string     `json:"id"`
	Style        VideoStyle `json:"style"`
	AspectRatio  string     `json:"aspect_ratio"`
	ScriptText   string     `json:"script_text"`
	AudioFile    string     `json:"audio_file"`
	SubtitleFile string     `json:"subtitle_file"`
	InputMedia   string     `json:"input_media"`
	OutputFile   string     `json:"output_file"`
}
