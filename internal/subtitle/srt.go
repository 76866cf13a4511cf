package subtitle

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"autovid/models"
)

// ErrEmptyScript is returned when caption generation receives text with no
// word tokens to allocate time to.
var ErrEmptyScript = errors.New("script text contains no words")

// timingScale stretches every word's equal time slice. The narration audio is
// read faster than the raw duration/wordCount split suggests, so each word
// stays on screen three times its naive slice. Applied uniformly, so caption
// order and contiguity are unaffected.
const timingScale = 3.0

// GenerateCaptions splits text into whitespace-separated words and gives each
// one an equal slice of durationSec (scaled by timingScale). Timestamps are
// cumulative, starting at zero.
func GenerateCaptions(text string, durationSec float64) ([]models.Caption, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, ErrEmptyScript
	}

	wordDuration := durationSec / float64(len(words)) * timingScale

	captions := make([]models.Caption, 0, len(words))
	start := 0.0
	for i, word := range words {
		end := start + wordDuration
		captions = append(captions, models.Caption{
			Index:     i + 1,
			StartTime: start,
			EndTime:   end,
			Text:      word,
		})
		start = end
	}
	return captions, nil
}

// GenerateLineCaptions allocates one caption per non-empty line of text,
// with each line's duration weighted by its share of the total word count
// (scaled by timingScale like GenerateCaptions). The quiz pipeline needs
// line-level captions so question/answer patterns survive as whole blocks.
func GenerateLineCaptions(text string, durationSec float64) ([]models.Caption, error) {
	var lines []string
	totalWords := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		totalWords += len(strings.Fields(line))
	}
	if totalWords == 0 {
		return nil, ErrEmptyScript
	}

	perWord := durationSec / float64(totalWords) * timingScale

	captions := make([]models.Caption, 0, len(lines))
	start := 0.0
	for i, line := range lines {
		end := start + perWord*float64(len(strings.Fields(line)))
		captions = append(captions, models.Caption{
			Index:     i + 1,
			StartTime: start,
			EndTime:   end,
			Text:      line,
		})
		start = end
	}
	return captions, nil
}

// FormatTime renders a float seconds offset as an SRT timestamp
// (HH:MM:SS,mmm with fixed-width zero-padded fields).
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := int(seconds / 3600)
	m := int(math.Mod(seconds, 3600) / 60)
	s := int(math.Mod(seconds, 60))
	ms := int(math.Mod(seconds, 1) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// FormatSRT serializes captions into an SRT document.
func FormatSRT(captions []models.Caption) string {
	var b strings.Builder
	for _, c := range captions {
		b.WriteString(strconv.Itoa(c.Index))
		b.WriteString("\n")
		b.WriteString(FormatTime(c.StartTime))
		b.WriteString(" --> ")
		b.WriteString(FormatTime(c.EndTime))
		b.WriteString("\n")
		b.WriteString(c.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

// ParseSRT reads an SRT document back into captions. Blocks are delimited by
// blank lines; a block missing its time range or its text is dropped rather
// than failing the whole parse, since transcriber output is not always clean.
func ParseSRT(raw string) []models.Caption {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	blocks := strings.Split(raw, "\n\n")

	var captions []models.Caption
	for _, block := range blocks {
		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}

		timeLine := -1
		for i, line := range lines {
			if strings.Contains(line, "-->") {
				timeLine = i
				break
			}
		}
		if timeLine < 0 || timeLine == len(lines)-1 {
			continue
		}

		start, end, err := parseTimeRange(lines[timeLine])
		if err != nil {
			continue
		}

		index := len(captions) + 1
		if timeLine > 0 {
			if n, err := strconv.Atoi(strings.TrimSpace(lines[0])); err == nil {
				index = n
			}
		}

		captions = append(captions, models.Caption{
			Index:     index,
			StartTime: start,
			EndTime:   end,
			Text:      strings.Join(lines[timeLine+1:], "\n"),
		})
	}
	return captions
}

func nonEmptyLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func parseTimeRange(line string) (float64, float64, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time range: %q", line)
	}
	start, err := ParseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseTimestamp(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// ParseTimestamp converts "HH:MM:SS,mmm" (or the dot-separated variant some
// tools emit) into float seconds.
func ParseTimestamp(ts string) (float64, error) {
	ts = strings.Replace(ts, ",", ".", 1)
	fields := strings.Split(ts, ":")
	if len(fields) != 3 {
		return 0, fmt.Errorf("malformed timestamp: %q", ts)
	}
	h, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp: %q", ts)
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp: %q", ts)
	}
	s, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp: %q", ts)
	}
	return float64(h)*3600 + float64(m)*60 + s, nil
}
