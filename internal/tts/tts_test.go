package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSynthesize(t *testing.T) {
	audio := []byte("fake mp3 bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text  string `json:"text"`
			Voice string `json:"voice"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Text != "hello" || req.Voice != "en_us_001" {
			t.Errorf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"data": base64.StdEncoding.EncodeToString(audio),
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	got, err := c.Synthesize(context.Background(), "hello", "en_us_001")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if !bytes.Equal(got, audio) {
		t.Errorf("audio bytes = %q, want %q", got, audio)
	}
}

func TestSynthesizeNoAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": ""}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	if _, err := c.Synthesize(context.Background(), "hello", "v"); !errors.Is(err, ErrNoAudio) {
		t.Errorf("error = %v, want ErrNoAudio", err)
	}
}

func TestSynthesizeUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "worker overloaded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	if _, err := c.Synthesize(context.Background(), "hello", "v"); err == nil {
		t.Error("expected error on non-200 response")
	}
}

func TestSynthesizeMalformedBase64(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": "!!! not base64 !!!"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, testLogger())
	if _, err := c.Synthesize(context.Background(), "hello", "v"); err == nil {
		t.Error("expected error on undecodable payload")
	}
}
