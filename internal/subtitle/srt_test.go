package subtitle

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{1.5, "00:00:01,500"},
		{59.999, "00:00:59,999"},
		{61, "00:01:01,000"},
		{3661.5, "01:01:01,500"},
		{-3, "00:00:00,000"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestGenerateCaptions(t *testing.T) {
	text := "one two three four five"
	duration := 10.0

	captions, err := GenerateCaptions(text, duration)
	if err != nil {
		t.Fatalf("GenerateCaptions returned error: %v", err)
	}
	if len(captions) != 5 {
		t.Fatalf("expected 5 captions, got %d", len(captions))
	}

	if captions[0].StartTime != 0 {
		t.Errorf("first caption starts at %v, want 0", captions[0].StartTime)
	}
	for i := 1; i < len(captions); i++ {
		if captions[i].StartTime != captions[i-1].EndTime {
			t.Errorf("caption %d starts at %v, previous ends at %v", i+1, captions[i].StartTime, captions[i-1].EndTime)
		}
		if captions[i].EndTime <= captions[i].StartTime {
			t.Errorf("caption %d has non-positive duration", i+1)
		}
	}

	// Each word gets duration/wordCount scaled by the display factor, so the
	// final timestamp lands at duration * scale.
	wantEnd := duration * timingScale
	gotEnd := captions[len(captions)-1].EndTime
	if math.Abs(gotEnd-wantEnd) > 1e-9 {
		t.Errorf("final end time = %v, want %v", gotEnd, wantEnd)
	}

	for i, c := range captions {
		if c.Index != i+1 {
			t.Errorf("caption %d has index %d", i+1, c.Index)
		}
	}
}

func TestGenerateCaptionsEmptyScript(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		if _, err := GenerateCaptions(text, 10); !errors.Is(err, ErrEmptyScript) {
			t.Errorf("GenerateCaptions(%q) error = %v, want ErrEmptyScript", text, err)
		}
	}
}

func TestGenerateLineCaptions(t *testing.T) {
	text := "1. What is Go?\nA) A language\nB) A board game\n\nCorrect answer A.\n"
	captions, err := GenerateLineCaptions(text, 8)
	if err != nil {
		t.Fatalf("GenerateLineCaptions returned error: %v", err)
	}
	if len(captions) != 4 {
		t.Fatalf("expected 4 line captions, got %d", len(captions))
	}
	if captions[0].Text != "1. What is Go?" {
		t.Errorf("first line = %q", captions[0].Text)
	}
	for i := 1; i < len(captions); i++ {
		if captions[i].StartTime != captions[i-1].EndTime {
			t.Errorf("line %d not contiguous with previous", i+1)
		}
	}

	// Lines with more words hold the screen longer.
	if captions[0].Duration() <= captions[1].Duration() {
		t.Errorf("4-word line duration %v not greater than 3-word line duration %v",
			captions[0].Duration(), captions[1].Duration())
	}
}

func TestFormatSRTRoundTrip(t *testing.T) {
	captions, err := GenerateCaptions("hello world again", 3)
	if err != nil {
		t.Fatal(err)
	}

	doc := FormatSRT(captions)
	parsed := ParseSRT(doc)
	if len(parsed) != len(captions) {
		t.Fatalf("round trip lost captions: wrote %d, read %d", len(captions), len(parsed))
	}
	for i := range captions {
		if parsed[i].Text != captions[i].Text {
			t.Errorf("caption %d text = %q, want %q", i+1, parsed[i].Text, captions[i].Text)
		}
		if math.Abs(parsed[i].StartTime-captions[i].StartTime) > 0.001 {
			t.Errorf("caption %d start = %v, want %v", i+1, parsed[i].StartTime, captions[i].StartTime)
		}
	}
}

func TestParseSRTDropsMalformedBlocks(t *testing.T) {
	raw := strings.Join([]string{
		"1",
		"00:00:00,000 --> 00:00:02,000",
		"first",
		"",
		"not a caption block at all",
		"",
		"2",
		"garbage --> timestamps",
		"dropped",
		"",
		"3",
		"00:00:02,000 --> 00:00:04,500",
		"second",
		"",
	}, "\n")

	captions := ParseSRT(raw)
	if len(captions) != 2 {
		t.Fatalf("expected 2 captions, got %d", len(captions))
	}
	if captions[0].Text != "first" || captions[1].Text != "second" {
		t.Errorf("unexpected texts: %q, %q", captions[0].Text, captions[1].Text)
	}
	if captions[1].EndTime != 4.5 {
		t.Errorf("second caption end = %v, want 4.5", captions[1].EndTime)
	}
}

func TestParseSRTMultilineText(t *testing.T) {
	raw := "1\n00:00:00,000 --> 00:00:03,000\nline one\nline two\n\n"
	captions := ParseSRT(raw)
	if len(captions) != 1 {
		t.Fatalf("expected 1 caption, got %d", len(captions))
	}
	if captions[0].Text != "line one\nline two" {
		t.Errorf("text = %q", captions[0].Text)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"00:00:00,000", 0, false},
		{"00:01:01,500", 61.5, false},
		{"01:00:00.250", 3600.25, false},
		{"99:99", 0, true},
		{"aa:bb:cc,ddd", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTimestamp(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimestamp(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimestamp(%q) error: %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
