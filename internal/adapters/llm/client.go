// Package llm is the chat-completion adapter. It speaks the
// OpenAI-compatible API offered by Groq and similar hosted providers,
// in both streaming and non-streaming modes, and classifies failures
// as transient or fatal for the caller's retry logic.
package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kdeguzman/negosyoplan/internal/pkg/metrics"
)

const (
	defaultTimeout = 30 * time.Second

	// maxResponseSize caps response reads to prevent memory exhaustion.
	maxResponseSize = 10 * 1024 * 1024
)

// Client implements ports.ChatCompleter against an OpenAI-compatible
// chat-completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	config     ModelConfig
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a chat-completion client.
func New(baseURL, apiKey string, config ModelConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		config:     config,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_completion_tokens"`
	TopP        float64   `json:"top_p"`
	Stream      bool      `json:"stream"`
	Stop        []string  `json:"stop,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// Complete sends one prompt and returns the full response text. The
// configured messages, system instruction first, are always prepended
// before the user turn.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	messages := make([]Message, 0, len(c.config.Messages)+1)
	messages = append(messages, c.config.Messages...)
	messages = append(messages, Message{Role: "user", Content: prompt})

	body, err := json.Marshal(chatRequest{
		Model:       c.config.Model,
		Messages:    messages,
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
		TopP:        c.config.TopP,
		Stream:      c.config.Stream,
		Stop:        c.config.Stop,
	})
	if err != nil {
		return "", NewFatalError(fmt.Errorf("build request body: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", NewFatalError(fmt.Errorf("create HTTP request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	slog.Debug("sending chat completion request",
		"model", c.config.Model, "stream", c.config.Stream, "prompt_chars", len(prompt))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network errors are transient
		return "", NewTransientError(fmt.Errorf("HTTP request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		return "", classifyHTTPError(resp.StatusCode, respBody)
	}

	var text string
	if c.config.Stream {
		text, err = readStream(resp.Body)
	} else {
		text, err = readComplete(resp.Body)
	}
	if err != nil {
		return "", err
	}

	metrics.LLMRequestDuration.WithLabelValues(c.config.Model).Observe(time.Since(start).Seconds())
	return text, nil
}

func (c *Client) endpoint() string {
	base := strings.TrimSuffix(c.baseURL, "/")
	if strings.HasSuffix(base, "/chat/completions") {
		return base
	}
	return base + "/chat/completions"
}

// readComplete parses a non-streaming response. A response with no
// choices or no content yields the empty string, not an error.
func readComplete(r io.Reader) (string, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxResponseSize))
	if err != nil {
		return "", NewTransientError(fmt.Errorf("read response body: %w", err))
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", NewFatalError(fmt.Errorf("parse chat response: %w", err))
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// readStream concatenates delta fragments from a server-sent-events
// stream. Unparseable chunks are skipped; the terminal [DONE] marker
// ends the stream.
func readStream(r io.Reader) (string, error) {
	var b strings.Builder
	scanner := bufio.NewScanner(io.LimitReader(r, maxResponseSize))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "[DONE]" {
			if payload == "[DONE]" {
				break
			}
			continue
		}

		var chunk streamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			slog.Debug("skipping unparseable stream chunk", "error", err)
			continue
		}
		if len(chunk.Choices) > 0 {
			b.WriteString(chunk.Choices[0].Delta.Content)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", NewTransientError(fmt.Errorf("read stream: %w", err))
	}
	return b.String(), nil
}

// classifyHTTPError determines if an HTTP error is transient or fatal.
func classifyHTTPError(statusCode int, body []byte) error {
	bodyStr := string(body)
	if len(bodyStr) > 200 {
		bodyStr = bodyStr[:200] + "..."
	}

	err := fmt.Errorf("chat completion API error (status %d): %s", statusCode, bodyStr)

	switch {
	case statusCode == http.StatusTooManyRequests:
		// Rate limiting is transient
		return NewTransientError(err)
	case statusCode >= 500:
		// Server errors are transient
		return NewTransientError(err)
	case statusCode == http.StatusUnauthorized,
		statusCode == http.StatusForbidden:
		// Auth errors are fatal
		return NewFatalError(err)
	case statusCode == http.StatusBadRequest:
		return NewFatalError(err)
	default:
		// Unknown errors default to fatal
		return NewFatalError(err)
	}
}
