package models

// TimeRange is a half-open display window in seconds.
type TimeRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// QuizAnswer is a single lettered option inside a quiz question.
type QuizAnswer struct {
	Text  string    `json:"text"`
	Range TimeRange `json:"range"`
}

// QuizQuestion groups the captions that make up one multiple-choice question.
// CorrectAnswer is nil when the source captions never produced a
// "Correct answer" marker before the next question started.
type QuizQuestion struct {
	Number        int          `json:"number"`
	Range         TimeRange    `json:"range"`
	Text          string       `json:"text"`
	Answers       []QuizAnswer `json:"answers"`
	CorrectAnswer *QuizAnswer  `json:"correct_answer,omitempty"`
}
