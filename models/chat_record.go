package models

import "time"

// ChatRecord is the row shape written to the chat_history table once per
// attempted render. The table itself belongs to the persistence collaborator;
// the pipeline only supplies this shape.
type ChatRecord struct {
	UserID      string    `json:"user_id"`
	UserMessage string    `json:"user_message"`
	AspectRatio string    `json:"aspect_ratio"`
	VoiceChoice string    `json:"voice_choice"`
	FileName    string    `json:"file_name,omitempty"`
	VideoStyle  string    `json:"video_style"`
	ScriptType  string    `json:"script_type"`
	VideoURL    string    `json:"video_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
