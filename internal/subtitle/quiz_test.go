package subtitle

import (
	"strings"
	"testing"

	"autovid/models"
)

func TestClassifyBlock(t *testing.T) {
	tests := []struct {
		text string
		want BlockKind
	}{
		{"1. What is the capital of France?", BlockQuestionStart},
		{"12. A later question", BlockQuestionStart},
		{"A) Paris", BlockAnswerOption},
		{"C) Berlin", BlockAnswerOption},
		{"Correct answer A.", BlockCorrectAnswer},
		{"correct ANSWER is B", BlockCorrectAnswer},
		{"and it has been since 508 AD", BlockContinuation},
		{"Welcome to today's quiz", BlockContinuation},
		{"  2. leading whitespace still counts", BlockQuestionStart},
	}
	for _, tt := range tests {
		if got := ClassifyBlock(tt.text); got != tt.want {
			t.Errorf("ClassifyBlock(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func quizCaptions() []models.Caption {
	lines := []string{
		"Welcome to today's quiz about capitals.",
		"1. What is the capital of France?",
		"A) Paris",
		"B) Berlin",
		"C) Madrid",
		"Correct answer A.",
		"2. What is the capital of Japan?",
		"A) Seoul",
		"B) Tokyo",
		"C) Beijing",
		"Correct answer B.",
	}
	captions := make([]models.Caption, len(lines))
	start := 0.0
	for i, line := range lines {
		captions[i] = models.Caption{
			Index:     i + 1,
			StartTime: start,
			EndTime:   start + 2,
			Text:      line,
		}
		start += 2
	}
	return captions
}

func TestReformatForQuiz(t *testing.T) {
	questions := ReformatForQuiz(quizCaptions())
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	for i, q := range questions {
		if q.Number != i+1 {
			t.Errorf("question %d numbered %d", i+1, q.Number)
		}
		if len(q.Answers) != 3 {
			t.Errorf("question %d has %d answers, want 3", i+1, len(q.Answers))
		}
		if q.CorrectAnswer == nil {
			t.Errorf("question %d missing correct answer", i+1)
		}
	}

	// Display windows must be contiguous: each question holds the screen
	// until the next one starts.
	if questions[0].Range.End != questions[1].Range.Start {
		t.Errorf("window gap: question 1 ends at %v, question 2 starts at %v",
			questions[0].Range.End, questions[1].Range.Start)
	}
	// The last window closes when its correct-answer narration ends.
	if questions[1].Range.End != questions[1].CorrectAnswer.Range.End {
		t.Errorf("last window ends at %v, correct answer ends at %v",
			questions[1].Range.End, questions[1].CorrectAnswer.Range.End)
	}
}

func TestReformatForQuizContinuationExtendsQuestion(t *testing.T) {
	captions := []models.Caption{
		{Index: 1, StartTime: 0, EndTime: 2, Text: "1. Which planet is known"},
		{Index: 2, StartTime: 2, EndTime: 4, Text: "as the red planet?"},
		{Index: 3, StartTime: 4, EndTime: 6, Text: "A) Mars"},
		{Index: 4, StartTime: 6, EndTime: 8, Text: "B) Venus"},
		{Index: 5, StartTime: 8, EndTime: 10, Text: "Correct answer A."},
	}

	questions := ReformatForQuiz(captions)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	want := "1. Which planet is known as the red planet?"
	if questions[0].Text != want {
		t.Errorf("question text = %q, want %q", questions[0].Text, want)
	}
	if len(questions[0].Answers) != 2 {
		t.Errorf("got %d answers, want 2", len(questions[0].Answers))
	}
}

func TestReformatForQuizUnterminatedQuestion(t *testing.T) {
	captions := []models.Caption{
		{Index: 1, StartTime: 0, EndTime: 2, Text: "1. A question the model never resolved?"},
		{Index: 2, StartTime: 2, EndTime: 4, Text: "A) Only option"},
	}
	questions := ReformatForQuiz(captions)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectAnswer != nil {
		t.Error("expected no correct answer on unterminated question")
	}
}

func TestFormatQuizSRT(t *testing.T) {
	questions := ReformatForQuiz(quizCaptions())
	doc := FormatQuizSRT(questions)

	captions := ParseSRT(doc)
	// 2 questions, each with 3 answers and a correct-answer reveal.
	if len(captions) != 10 {
		t.Fatalf("expected 10 caption blocks, got %d", len(captions))
	}
	for i, c := range captions {
		if c.Index != i+1 {
			t.Errorf("block %d carries index %d", i+1, c.Index)
		}
	}

	// The question text holds for its entire window while the answers come
	// and go, so the question's end must not precede any answer's end.
	q := captions[0]
	for _, c := range captions[1:5] {
		if c.EndTime > q.EndTime {
			t.Errorf("answer %q outlives its question window", c.Text)
		}
		if c.StartTime < q.StartTime {
			t.Errorf("answer %q starts before its question", c.Text)
		}
	}

	if !strings.Contains(doc, "A) Paris") || !strings.Contains(doc, "Correct answer B.") {
		t.Error("serialized quiz missing expected blocks")
	}
}
