package gen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultModel is the image-capable Gemini model the pipeline targets.
const DefaultModel = "gemini-3-pro-image-preview"

// DefaultEndpoint is the Gemini API base URL.
const DefaultEndpoint = "https://generativelanguage.googleapis.com"

// DefaultTimeout bounds the single generation call. Image generation
// regularly takes 15-30 seconds.
const DefaultTimeout = 120 * time.Second

// Client talks to the Gemini generateContent endpoint.
type Client struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
	log        *logrus.Logger
}

// NewClient creates a generation client. Empty endpoint, model, or timeout
// select the defaults. The API key must be non-empty.
func NewClient(endpoint, model, apiKey string, timeout time.Duration, log *logrus.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}, nil
}

// request envelope for generateContent.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
	Temperature        float64  `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Result holds a generated image and any accompanying model text.
type Result struct {
	Data     []byte
	MimeType string
	Text     string
}

// Generate sends a prompt to the generateContent endpoint and returns the
// first inline image from the response.
//
// Errors cover the full failure surface of the one call: request encoding,
// transport failure, non-200 status (with a bounded excerpt of the body),
// undecodable response JSON, and a response that contains no image part.
func (c *Client) Generate(ctx context.Context, prompt string) (*Result, error) {
	reqID := uuid.NewString()
	log := c.log.WithFields(logrus.Fields{
		"request_id": reqID,
		"model":      c.model,
	})

	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
			Temperature:        0.8,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Info("calling image generation endpoint")
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("generation failed: status %d: %s", resp.StatusCode, string(excerpt))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	result := &Result{}
	var textParts []string
	for _, cand := range parsed.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && result.Data == nil {
				data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("failed to decode image data: %w", err)
				}
				result.Data = data
				result.MimeType = p.InlineData.MimeType
			}
			if p.Text != "" {
				textParts = append(textParts, p.Text)
			}
		}
	}
	result.Text = strings.Join(textParts, "\n")

	if result.Data == nil {
		if result.Text != "" {
			return nil, fmt.Errorf("no image in response; model said: %s", truncate(result.Text, 200))
		}
		return nil, fmt.Errorf("no image in response")
	}

	log.WithFields(logrus.Fields{
		"bytes":    len(result.Data),
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Info("image generated")

	return result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
