package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrNoAudio is returned when the synthesis response carries no audio
// payload. Surfaced to the caller as a terminal failure; no retry.
var ErrNoAudio = errors.New("tts response missing audio data")

// Client calls the speech-synthesis worker: one JSON POST in, base64 MP3 out.
type Client struct {
	endpoint string
	http     *http.Client
	log      *logrus.Logger
}

// NewClient creates a speech-synthesis client for the given endpoint.
func NewClient(endpoint string, log *logrus.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 90 * time.Second},
		log:      log,
	}
}

type synthesisRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

type synthesisResponse struct {
	Data string `json:"data"`
}

// Synthesize sends the script text to the TTS endpoint and returns the
// decoded audio bytes.
func (c *Client) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	body, err := json.Marshal(synthesisRequest{Text: text, Voice: voice})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts generation failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts generation failed: endpoint returned %s", resp.Status)
	}

	var parsed synthesisResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("tts generation failed: malformed response: %w", err)
	}
	if parsed.Data == "" {
		return nil, ErrNoAudio
	}

	audio, err := base64.StdEncoding.DecodeString(parsed.Data)
	if err != nil {
		return nil, fmt.Errorf("tts generation failed: decoding audio: %w", err)
	}

	c.log.WithField("bytes", len(audio)).Info("speech synthesized")
	return audio, nil
}
