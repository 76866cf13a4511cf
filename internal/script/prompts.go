package script

import (
	"fmt"

	"autovid/models"
)

// Each style wraps the raw topic in a template that pins down the output
// format: the whole script inside a single pair of ## delimiters (so it can
// be pulled back out of any surrounding model commentary) plus a hard
// per-style character budget.

const quizPromptTemplate = `Make 3 questions multiple choice quiz script about: "%s".

Write the entire quiz script inside a single pair of ## delimiters.

The quiz script should start with something like:
Welcome to today's quiz about the topic.

Then write exactly 3 questions and answers in this format:
##
[1. Short Question 1 text]
[A) ]
[B) ]
[C) ]
Correct answer [ .]

[2. Short Question 2 text]
[A) ]
[B) ]
[C) ]
Correct answer [ .]

[3. Short Question 3 text]
[A) ]
[B) ]
[C) ]
Correct answer [ .]
##
4500 characters max
Do NOT include any narrator labels, parentheses, comments, or extra delimiters.`

const slideShowPromptTemplate = `Make a YouTube slideshow narration script about: "%s" for a youtube video.

Then write the entire narration script inside a single pair of ## delimiters.

Write only the narration text to be spoken throughout the slideshow.

Do NOT include slide notes, timestamps, multiple delimiters, parentheses, or narrator labels.

Example output format:

##
[Pure narration script here...]
##
1500 characters max`

const redditStoryPromptTemplate = `Create a Reddit-style story script based on: "%s" for a YouTube video.

Write the entire story script inside a single pair of ## delimiters.

Write the story as pure text, without any narrator labels, parentheses, stage directions, or commentary.

Example output format:

##
[Story text here...]
##
4500 characters max`

// BuildPrompt wraps the user's raw topic in the style-specific template.
func BuildPrompt(style models.VideoStyle, topic string) (string, error) {
	switch style {
	case models.StyleQuiz:
		return fmt.Sprintf(quizPromptTemplate, topic), nil
	case models.StyleSlideShow:
		return fmt.Sprintf(slideShowPromptTemplate, topic), nil
	case models.StyleRedditStory:
		return fmt.Sprintf(redditStoryPromptTemplate, topic), nil
	default:
		return "", fmt.Errorf("no prompt template for video style %q", style)
	}
}
