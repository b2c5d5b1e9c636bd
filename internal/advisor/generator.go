// internal/advisor/generator.go
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// ErrUnavailable is returned by generators that have no backend.
var ErrUnavailable = errors.New("advisor: text generator unavailable")

// Generator produces a short text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NopGenerator always fails, so every request resolves to fallback text.
type NopGenerator struct{}

func (NopGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrUnavailable
}

// StatusError is a non-2xx response from the backend.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("advisor: backend returned %d: %s", e.Code, e.Body)
}

// IsQuota reports whether err means the backend refused for quota reasons.
// Such errors are expected and not worth a warning.
func IsQuota(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == http.StatusTooManyRequests
	}
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "quota")
}

// HTTPGenerator calls a generateContent style endpoint.
type HTTPGenerator struct {
	Endpoint    string // e.g. https://generativelanguage.googleapis.com/v1beta
	Model       string
	APIKey      string
	Temperature float64
	MaxTokens   int
	Client      *http.Client
}

// NewGenerator returns an HTTPGenerator when the environment variable
// keyEnv holds an API key, and a NopGenerator otherwise.
func NewGenerator(endpoint, model, keyEnv string, client *http.Client) Generator {
	key := os.Getenv(keyEnv)
	if key == "" || endpoint == "" {
		return NopGenerator{}
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPGenerator{
		Endpoint:    strings.TrimRight(endpoint, "/"),
		Model:       model,
		APIKey:      key,
		Temperature: 0.8,
		MaxTokens:   100,
		Client:      client,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *HTTPGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{Temperature: g.Temperature, MaxOutputTokens: g.MaxTokens},
	})
	if err != nil {
		return "", fmt.Errorf("advisor: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.Endpoint, g.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("advisor: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.APIKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("advisor: request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("advisor: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("advisor: decode response: %w", err)
	}
	for _, c := range out.Candidates {
		for _, p := range c.Content.Parts {
			if text := strings.TrimSpace(p.Text); text != "" {
				return text, nil
			}
		}
	}
	return "", errors.New("advisor: empty response")
}
