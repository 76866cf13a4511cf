package models

import "testing"

func TestVideoStyleValid(t *testing.T) {
	for _, s := range []VideoStyle{StyleRedditStory, StyleQuiz, StyleSlideShow} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []VideoStyle{"", "reddit story", "Documentary"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestScriptTypeValid(t *testing.T) {
	for _, s := range []ScriptType{ScriptTypeAI, ScriptTypeUser} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if ScriptType("Improvised").Valid() {
		t.Error("unknown script type should be invalid")
	}
}

func TestCaptionDuration(t *testing.T) {
	c := Caption{StartTime: 1.5, EndTime: 4}
	if got := c.Duration(); got != 2.5 {
		t.Errorf("Duration = %v, want 2.5", got)
	}
}
