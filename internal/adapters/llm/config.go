package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// defaultSystemPrompt frames every completion as municipal business
// siting advice regardless of what the user typed.
const defaultSystemPrompt = "You are a business siting and zoning advisor for Philippine local government " +
	"units. You analyze locations, foot traffic, competition, and municipal regulations to give practical, " +
	"specific advice to small business owners. Answer in clear sections using markdown bold for headings."

// Message is one turn in the chat-completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ModelConfig holds the tunable chat-completion parameters. It can be
// overridden by a remotely hosted JSON document of the shape
// {"chatCompletion": {messages, model, temperature, max_completion_tokens,
// top_p, stream, stop}} so model changes do not require a redeploy.
// Messages are prepended before the user turn on every call; the first
// entry is the system instruction.
type ModelConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int
	TopP        float64
	Stream      bool
	Stop        []string
	Messages    []Message
}

// DefaultModelConfig returns the built-in parameters used when no remote
// override is reachable.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Model:       "gemma2-9b-it",
		Temperature: 0.6,
		MaxTokens:   600,
		TopP:        0.95,
		Stream:      true,
		Messages:    []Message{{Role: "system", Content: defaultSystemPrompt}},
	}
}

// FetchModelConfig loads the remote override document. Any failure,
// including a missing document, degrades to the built-in defaults;
// fields absent from the document keep their default values.
func FetchModelConfig(ctx context.Context, client *http.Client, url string) ModelConfig {
	cfg := DefaultModelConfig()
	if strings.TrimSpace(url) == "" {
		return cfg
	}
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Warn("invalid model config URL, using defaults", "url", url, "error", err)
		return cfg
	}

	resp, err := client.Do(req)
	if err != nil {
		slog.Warn("model config fetch failed, using defaults", "error", err)
		return cfg
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("model config fetch returned non-200, using defaults", "status", resp.StatusCode)
		return cfg
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		slog.Warn("model config read failed, using defaults", "error", err)
		return cfg
	}
	if err := applyOverrides(&cfg, body); err != nil {
		slog.Warn("model config parse failed, using defaults", "error", err)
		return DefaultModelConfig()
	}
	return cfg
}

// applyOverrides merges the fields present under the document's
// chatCompletion envelope into cfg.
func applyOverrides(cfg *ModelConfig, body []byte) error {
	var doc struct {
		ChatCompletion struct {
			Messages    []Message `json:"messages"`
			Model       *string   `json:"model"`
			Temperature *float64  `json:"temperature"`
			MaxTokens   *int      `json:"max_completion_tokens"`
			TopP        *float64  `json:"top_p"`
			Stream      *bool     `json:"stream"`
			Stop        []string  `json:"stop"`
		} `json:"chatCompletion"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("parse model config: %w", err)
	}

	cc := doc.ChatCompletion
	if cc.Model != nil && *cc.Model != "" {
		cfg.Model = *cc.Model
	}
	if cc.Temperature != nil {
		cfg.Temperature = *cc.Temperature
	}
	if cc.MaxTokens != nil && *cc.MaxTokens > 0 {
		cfg.MaxTokens = *cc.MaxTokens
	}
	if cc.TopP != nil {
		cfg.TopP = *cc.TopP
	}
	if cc.Stream != nil {
		cfg.Stream = *cc.Stream
	}
	if cc.Stop != nil {
		cfg.Stop = cc.Stop
	}
	if len(cc.Messages) > 0 {
		cfg.Messages = cc.Messages
	}
	return nil
}
