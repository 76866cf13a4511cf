package models

// Caption represents a single timed subtitle fragment.
// StartTime and EndTime are offsets in seconds from the beginning of the audio.
type Caption struct {
	Index     int     `json:"index"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Text      string  `json:"text"`
}

// Duration returns the display length of the caption in seconds.
func (c Caption) Duration() float64 {
	return c.EndTime - c.StartTime
}
