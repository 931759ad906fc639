// Package ai implements the external model-service boundaries (document
// extraction, demand forecasting, transaction auditing, the assistant)
// against the generateContent REST API. Failures are always surfaced to the
// caller; nothing in this package substitutes default data for a failed call.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/synergytrade/backend/internal/domain/shared"
)

const systemInstruction = `You are the AI Assistant for 'Synergy Trade', a large motorcycle dealer and trading company.
You have access to ERP data including Inventory, Sales, Purchasing and Finance.
Your goal is to assist with efficiency, prevent fraud, optimize stock and automate data entry.
Tone: Professional, analytical, and helpful.
Currency: Indonesian Rupiah (IDR).`

// ErrServiceUnavailable marks a recoverable model-service failure. Callers
// map it to a retryable HTTP error.
var ErrServiceUnavailable = shared.NewDomainError("AI_SERVICE_UNAVAILABLE", "AI service is unavailable, please retry")

// Config holds the client settings
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("ai: api key is required")
	}
	if c.Model == "" {
		return fmt.Errorf("ai: model is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("ai: base url is required")
	}
	return nil
}

// Client is a thin generateContent REST client shared by the adapters
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a new Client
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// generate sends one generateContent request and returns the first
// candidate's text
func (c *Client) generate(ctx context.Context, req *generateContentRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("ai: marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent",
		strings.TrimRight(c.config.BaseURL, "/"), c.config.Model)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ai: building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrServiceUnavailable, err)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrServiceUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return "", fmt.Errorf("%w: %s", ErrServiceUnavailable, msg)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrServiceUnavailable)
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: empty response text", ErrServiceUnavailable)
	}
	return text, nil
}

// generateJSON sends a schema-constrained request and unmarshals the JSON
// response into out
func (c *Client) generateJSON(ctx context.Context, system string, parts []part, schema *schemaNode, out any) error {
	req := &generateContentRequest{
		Contents: []content{{Role: "user", Parts: parts}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	}
	if system != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("%w: malformed JSON payload: %v", ErrServiceUnavailable, err)
	}
	return nil
}
