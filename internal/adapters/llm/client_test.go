package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func nonStreamingConfig() ModelConfig {
	cfg := DefaultModelConfig()
	cfg.Stream = false
	return cfg
}

func TestComplete_NonStreaming(t *testing.T) {
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model": "gemma2-9b-it",
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "**Viable** site."}},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", nonStreamingConfig())
	got, err := c.Complete(context.Background(), "analyze this lot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "**Viable** site." {
		t.Errorf("unexpected completion: %q", got)
	}

	if len(gotBody.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(gotBody.Messages))
	}
	if gotBody.Messages[0].Role != "system" || gotBody.Messages[0].Content == "" {
		t.Error("system prompt must be prepended")
	}
	if gotBody.Messages[1].Role != "user" || gotBody.Messages[1].Content != "analyze this lot" {
		t.Errorf("unexpected user message: %+v", gotBody.Messages[1])
	}
	if gotBody.Model != "gemma2-9b-it" {
		t.Errorf("unexpected model: %s", gotBody.Model)
	}
}

func TestComplete_CarriesConfiguredMessagesAndStop(t *testing.T) {
	var raw []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		raw, err = io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer srv.Close()

	cfg := nonStreamingConfig()
	cfg.Messages = []Message{
		{Role: "system", Content: "You advise on siting."},
		{Role: "assistant", Content: "Understood."},
	}
	cfg.Stop = []string{"END"}

	c := New(srv.URL, "", cfg)
	if _, err := c.Complete(context.Background(), "analyze this lot"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var gotBody chatRequest
	if err := json.Unmarshal(raw, &gotBody); err != nil {
		t.Fatalf("decode request: %v", err)
	}
	if len(gotBody.Messages) != 3 {
		t.Fatalf("expected configured messages plus user turn, got %d", len(gotBody.Messages))
	}
	if gotBody.Messages[1].Role != "assistant" || gotBody.Messages[1].Content != "Understood." {
		t.Errorf("configured message dropped: %+v", gotBody.Messages[1])
	}
	if gotBody.Messages[2].Role != "user" || gotBody.Messages[2].Content != "analyze this lot" {
		t.Errorf("user turn must come last: %+v", gotBody.Messages[2])
	}
	if len(gotBody.Stop) != 1 || gotBody.Stop[0] != "END" {
		t.Errorf("stop sequences dropped: %v", gotBody.Stop)
	}

	// Wire field names, not Go names.
	body := string(raw)
	if !strings.Contains(body, `"max_completion_tokens"`) {
		t.Error("request must use the max_completion_tokens field")
	}
	if strings.Contains(body, `"max_tokens"`) {
		t.Error("request must not carry a max_tokens field")
	}
}

func TestComplete_NoChoicesYieldsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := New(srv.URL, "", nonStreamingConfig())
	got, err := c.Complete(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty completion, got %q", got)
	}
}

func TestComplete_Streaming(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(
			"data: {\"choices\":[{\"delta\":{\"content\":\"**Location\"}}]}\n\n" +
				"data: {\"choices\":[{\"delta\":{\"content\":\" Analysis**\"}}]}\n\n" +
				": keepalive comment\n\n" +
				"data: {\"choices\":[{\"delta\":{\"content\":\" looks good\"}}]}\n\n" +
				"data: [DONE]\n\n",
		))
	}))
	defer srv.Close()

	c := New(srv.URL, "", DefaultModelConfig())
	got, err := c.Complete(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "**Location Analysis** looks good" {
		t.Errorf("unexpected concatenation: %q", got)
	}
}

func TestComplete_ErrorClassification(t *testing.T) {
	cases := []struct {
		status    int
		transient bool
	}{
		{http.StatusTooManyRequests, true},
		{http.StatusServiceUnavailable, true},
		{http.StatusInternalServerError, true},
		{http.StatusUnauthorized, false},
		{http.StatusForbidden, false},
		{http.StatusBadRequest, false},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`{"error":"nope"}`))
		}))

		c := New(srv.URL, "", nonStreamingConfig())
		_, err := c.Complete(context.Background(), "x")
		srv.Close()

		if err == nil {
			t.Errorf("status %d: expected error", tc.status)
			continue
		}
		if IsTransient(err) != tc.transient {
			t.Errorf("status %d: transient=%v, want %v", tc.status, IsTransient(err), tc.transient)
		}
		if IsFatal(err) == tc.transient {
			t.Errorf("status %d: fatal=%v, want %v", tc.status, IsFatal(err), !tc.transient)
		}
	}
}

func TestComplete_NetworkErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, "", nonStreamingConfig())
	_, err := c.Complete(context.Background(), "x")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsTransient(err) {
		t.Errorf("network errors must be transient: %v", err)
	}
}

func TestEndpointBuilding(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"https://api.groq.com/openai/v1", "https://api.groq.com/openai/v1/chat/completions"},
		{"https://api.groq.com/openai/v1/", "https://api.groq.com/openai/v1/chat/completions"},
		{"https://host/v1/chat/completions", "https://host/v1/chat/completions"},
	}
	for _, tc := range cases {
		c := New(tc.base, "", DefaultModelConfig())
		if got := c.endpoint(); got != tc.want {
			t.Errorf("endpoint(%q) = %q, want %q", tc.base, got, tc.want)
		}
	}
}
