package script

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// ErrUpstream is returned when the script provider responds with a
// non-success status. No automatic retry; the failure surfaces to the caller.
var ErrUpstream = errors.New("script provider request failed")

// maxScriptLen is the hard cap on extracted script text, counted in
// characters and inclusive: a 5000-character script passes untouched.
const maxScriptLen = 5000

var delimitedRe = regexp.MustCompile(`##\s*([\s\S]*?)\s*##`)

// Config selects the provider and model for one generation call. It travels
// with the job rather than living in package state, so concurrent jobs can
// use different providers without racing.
type Config struct {
	Provider          string
	Model             string
	TogetherAPIKey    string
	TogetherBaseURL   string
	HuggingFaceURL    string
	HuggingFaceAPIKey string
}

// Client calls one of the two supported text-generation providers.
type Client struct {
	cfg  Config
	http *http.Client
	log  *logrus.Logger
}

// NewClient creates a script-generation client.
func NewClient(cfg Config, log *logrus.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 120 * time.Second},
		log:  log,
	}
}

// Generate sends the prompt to the configured provider and returns the
// extracted, length-capped script text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	switch c.cfg.Provider {
	case "together":
		return c.generateTogether(ctx, prompt)
	case "huggingface":
		return c.generateHuggingFace(ctx, prompt)
	default:
		return "", fmt.Errorf("%w: unsupported provider %q", ErrUpstream, c.cfg.Provider)
	}
}

// generateTogether uses the OpenAI-compatible chat completions endpoint that
// Together exposes.
func (c *Client) generateTogether(ctx context.Context, prompt string) (string, error) {
	oaCfg := openai.DefaultConfig(c.cfg.TogetherAPIKey)
	oaCfg.BaseURL = c.cfg.TogetherBaseURL
	oaCfg.HTTPClient = c.http
	client := openai.NewClientWithConfig(oaCfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: together: %v", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: together returned no choices", ErrUpstream)
	}

	c.log.WithField("model", c.cfg.Model).Info("script generated via together")
	return ExtractContent(resp.Choices[0].Message.Content), nil
}

type huggingFaceRequest struct {
	Inputs struct {
		Text string `json:"text"`
	} `json:"inputs"`
}

type huggingFaceResponse struct {
	GeneratedText string `json:"generated_text"`
}

// generateHuggingFace posts to the HF inference endpoint. There is no client
// library for this API; the request shape is two fields of JSON.
func (c *Client) generateHuggingFace(ctx context.Context, prompt string) (string, error) {
	var payload huggingFaceRequest
	payload.Inputs.Text = prompt
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.HuggingFaceURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.HuggingFaceAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: huggingface: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: huggingface returned %s", ErrUpstream, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: huggingface: %v", ErrUpstream, err)
	}

	var parsed huggingFaceResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: huggingface: malformed response: %v", ErrUpstream, err)
	}

	c.log.Info("script generated via huggingface")
	return ExtractContent(parsed.GeneratedText), nil
}

// ExtractContent pulls the script out of the model's raw output. Preference
// order: content between a pair of ## delimiters, then content after a single
// leading delimiter, then the raw text as-is. The result is hard-capped at
// maxScriptLen characters.
func ExtractContent(raw string) string {
	content := strings.TrimSpace(raw)
	if m := delimitedRe.FindStringSubmatch(raw); m != nil {
		content = strings.TrimSpace(m[1])
	} else if strings.HasPrefix(content, "##") {
		content = strings.TrimSpace(strings.TrimPrefix(content, "##"))
	}

	// Truncate on rune boundaries; a byte slice could cut a multibyte
	// character in half and feed invalid UTF-8 to TTS and the subtitles.
	if runes := []rune(content); len(runes) > maxScriptLen {
		content = string(runes[:maxScriptLen])
	}
	return content
}
