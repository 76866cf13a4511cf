package subtitle

import (
	"regexp"
	"strconv"
	"strings"

	"autovid/models"
)

// BlockKind classifies the role a caption plays inside a quiz script.
type BlockKind int

const (
	BlockQuestionStart BlockKind = iota
	BlockAnswerOption
	BlockCorrectAnswer
	BlockContinuation
)

var (
	questionRe = regexp.MustCompile(`^\d+\.`)
	answerRe   = regexp.MustCompile(`^[A-Z]\)`)
	correctRe  = regexp.MustCompile(`(?i)^correct answer`)
)

// ClassifyBlock tags one caption's text with its quiz role. Anything that is
// not a numbered question, a lettered option or a correct-answer marker is a
// continuation line.
func ClassifyBlock(text string) BlockKind {
	trimmed := strings.TrimSpace(text)
	switch {
	case questionRe.MatchString(trimmed):
		return BlockQuestionStart
	case answerRe.MatchString(trimmed):
		return BlockAnswerOption
	case correctRe.MatchString(trimmed):
		return BlockCorrectAnswer
	default:
		return BlockContinuation
	}
}

// ReformatForQuiz groups a flat caption sequence into quiz questions.
// A numbered caption opens a question, lettered captions append answers, a
// correct-answer caption closes it. Continuation captions that arrive before
// any answers extend the question's text; a question still open at end of
// input is emitted without a correct answer.
//
// Each question's display window runs from its own start to the next
// question's start; the last question ends at its correct answer's end time,
// or its own end time when no correct answer was captured.
func ReformatForQuiz(captions []models.Caption) []models.QuizQuestion {
	var questions []models.QuizQuestion
	var current *models.QuizQuestion

	for _, c := range captions {
		text := strings.TrimSpace(c.Text)
		switch ClassifyBlock(text) {
		case BlockQuestionStart:
			if current != nil {
				questions = append(questions, *current)
			}
			current = &models.QuizQuestion{
				Number: questionNumber(text, len(questions)+1),
				Text:   text,
				Range:  models.TimeRange{Start: c.StartTime, End: c.EndTime},
			}
		case BlockAnswerOption:
			if current == nil {
				continue
			}
			current.Answers = append(current.Answers, models.QuizAnswer{
				Text:  text,
				Range: models.TimeRange{Start: c.StartTime, End: c.EndTime},
			})
		case BlockCorrectAnswer:
			if current == nil {
				continue
			}
			current.CorrectAnswer = &models.QuizAnswer{
				Text:  text,
				Range: models.TimeRange{Start: c.StartTime, End: c.EndTime},
			}
			questions = append(questions, *current)
			current = nil
		case BlockContinuation:
			if current != nil && len(current.Answers) == 0 {
				current.Text += " " + text
				current.Range.End = c.EndTime
			}
		}
	}
	if current != nil {
		questions = append(questions, *current)
	}

	// Stretch each question's window to the next question's start so the
	// burned-in text stays visible while its answers are narrated.
	for i := range questions {
		if i < len(questions)-1 {
			questions[i].Range.End = questions[i+1].Range.Start
			continue
		}
		if questions[i].CorrectAnswer != nil {
			questions[i].Range.End = questions[i].CorrectAnswer.Range.End
		}
	}
	return questions
}

// FormatQuizSRT serializes quiz questions back into SRT blocks. The question
// text holds for the whole window; each answer and the correct-answer reveal
// appear at their own narration time and stay until the window closes.
func FormatQuizSRT(questions []models.QuizQuestion) string {
	var captions []models.Caption
	index := 1
	push := func(start, end float64, text string) {
		captions = append(captions, models.Caption{
			Index:     index,
			StartTime: start,
			EndTime:   end,
			Text:      text,
		})
		index++
	}

	for _, q := range questions {
		push(q.Range.Start, q.Range.End, q.Text)
		for _, a := range q.Answers {
			push(a.Range.Start, q.Range.End, a.Text)
		}
		if q.CorrectAnswer != nil {
			push(q.CorrectAnswer.Range.Start, q.Range.End, q.CorrectAnswer.Text)
		}
	}
	return FormatSRT(captions)
}

func questionNumber(text string, fallback int) int {
	digits := strings.TrimRight(questionRe.FindString(text), ".")
	if n, err := strconv.Atoi(digits); err == nil {
		return n
	}
	return fallback
}
