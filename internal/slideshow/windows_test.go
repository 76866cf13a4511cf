package slideshow

import (
	"testing"

	"autovid/models"
)

func wordCaptions(words []string, perWord float64) []models.Caption {
	captions := make([]models.Caption, len(words))
	start := 0.0
	for i, w := range words {
		captions[i] = models.Caption{
			Index:     i + 1,
			StartTime: start,
			EndTime:   start + perWord,
			Text:      w,
		}
		start += perWord
	}
	return captions
}

func TestGroupByInterval(t *testing.T) {
	// 8 words at 2s each: windows close at 6s boundaries, giving 6s/6s/4s.
	captions := wordCaptions([]string{"a", "b", "c", "d", "e", "f", "g", "h"}, 2)

	groups := GroupByInterval(captions, 6)
	want := []string{"a b c", "d e f", "g h"}
	if len(groups) != len(want) {
		t.Fatalf("got %d groups %v, want %d", len(groups), groups, len(want))
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Errorf("group %d = %q, want %q", i, groups[i], want[i])
		}
	}
}

func TestGroupByIntervalSingleWindow(t *testing.T) {
	captions := wordCaptions([]string{"short", "script"}, 1)
	groups := GroupByInterval(captions, 6)
	if len(groups) != 1 || groups[0] != "short script" {
		t.Errorf("groups = %v", groups)
	}
}

func TestGroupByIntervalSkipsDegenerateTimings(t *testing.T) {
	captions := []models.Caption{
		{Index: 1, StartTime: 0, EndTime: 0, Text: "untimed"},
		{Index: 2, StartTime: 0, EndTime: 2, Text: "first"},
		{Index: 3, StartTime: 2, EndTime: 2, Text: "stuck"},
		{Index: 4, StartTime: 2, EndTime: 4, Text: "second"},
	}
	groups := GroupByInterval(captions, 6)
	if len(groups) != 1 || groups[0] != "first second" {
		t.Errorf("groups = %v", groups)
	}
}

func TestGroupByIntervalEmpty(t *testing.T) {
	if groups := GroupByInterval(nil, 6); len(groups) != 0 {
		t.Errorf("expected no groups, got %v", groups)
	}
	untimed := []models.Caption{{Index: 1, Text: "only"}}
	if groups := GroupByInterval(untimed, 6); len(groups) != 0 {
		t.Errorf("expected no groups for untimed captions, got %v", groups)
	}
}
