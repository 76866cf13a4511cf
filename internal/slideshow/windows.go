package slideshow

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"

	"autovid/internal/ffmpeg"
	"autovid/models"
)

// defaultKeyword is the degrade-gracefully fallback when entity extraction
// yields nothing usable. A slideshow with generic footage beats a failed job.
const defaultKeyword = "code"

// GroupByInterval walks captions in order and accumulates their text into
// windows of roughly intervalSeconds. A caption whose end time pushes past
// the threshold closes the current window and opens a new one. Captions with
// degenerate timing are skipped.
func GroupByInterval(captions []models.Caption, intervalSeconds float64) []string {
	var groups []string
	var current []string

	i := 0
	for i < len(captions) && !hasTiming(captions[i]) {
		i++
	}
	if i == len(captions) {
		return groups
	}

	windowStart := captions[i].StartTime
	for ; i < len(captions); i++ {
		c := captions[i]
		if c.Text == "" || !hasTiming(c) {
			continue
		}
		if c.EndTime-windowStart <= intervalSeconds {
			current = append(current, c.Text)
		} else {
			if len(current) > 0 {
				groups = append(groups, strings.Join(current, " "))
			}
			current = []string{c.Text}
			windowStart = c.StartTime
		}
	}
	if len(current) > 0 {
		groups = append(groups, strings.Join(current, " "))
	}
	return groups
}

// hasTiming reports whether a caption carries a usable time range.
func hasTiming(c models.Caption) bool {
	return c.EndTime > c.StartTime
}

// KeywordExtractor shells out to the entity-recognition process, which prints
// a JSON array of entities for the given text.
type KeywordExtractor struct {
	python string
	script string
	log    *logrus.Logger
}

// NewKeywordExtractor creates an extractor driving the given python script.
func NewKeywordExtractor(pythonBin, scriptPath string, log *logrus.Logger) *KeywordExtractor {
	return &KeywordExtractor{python: pythonBin, script: scriptPath, log: log}
}

// Extract returns the first entity found in text, or defaultKeyword when the
// process fails, exits non-zero, or finds nothing. Keyword extraction never
// fails a render.
func (k *KeywordExtractor) Extract(ctx context.Context, text string) string {
	res, err := ffmpeg.Run(ctx, k.python, k.script, text)
	if err != nil {
		k.log.WithError(err).Warn("keyword extraction process failed, using default keyword")
		return defaultKeyword
	}
	if res.ExitCode != 0 {
		k.log.WithField("code", res.ExitCode).Warn("keyword extraction exited non-zero, using default keyword")
		return defaultKeyword
	}

	var entities []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(res.Stdout)), &entities); err != nil {
		k.log.WithError(err).Warn("keyword extraction output malformed, using default keyword")
		return defaultKeyword
	}
	if len(entities) == 0 || strings.TrimSpace(entities[0]) == "" {
		return defaultKeyword
	}
	return entities[0]
}
