package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(serverURL string) *OpenAIClient {
	return NewOpenAIClientWithConfig(OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Model:   "gpt-4o-mini",
		Timeout: 2 * time.Second,
	})
}

func TestCompleteSuccess(t *testing.T) {
	var captured openAIRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatal(err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  drafted text \n"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	got, err := client.Complete(context.Background(), Request{
		Messages: []Message{
			{Role: "system", Content: "sys"},
			{Role: "user", Content: "draft something"},
		},
		MaxTokens:   240,
		Temperature: 0.4,
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if got != "drafted text" {
		t.Errorf("result not trimmed: %q", got)
	}
	if captured.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", captured.Model)
	}
	if captured.MaxTokens != 240 || captured.Temperature != 0.4 {
		t.Errorf("params not forwarded: %+v", captured)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Errorf("messages not forwarded: %+v", captured.Messages)
	}
}

func TestCompleteMissingKey(t *testing.T) {
	client := NewOpenAIClientWithConfig(OpenAIConfig{})
	_, err := client.Complete(context.Background(), Request{})
	if err == nil || !strings.Contains(err.Error(), "API key") {
		t.Errorf("expected missing-key error, got %v", err)
	}
}

func TestCompleteNon200IncludesBodyExcerpt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error on 429")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("error missing status or body: %v", err)
	}
}

func TestCompleteNon200TruncatesLongBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(strings.Repeat("x", 2000)))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(err.Error()) > 600 {
		t.Errorf("error body not truncated: %d chars", len(err.Error()))
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), Request{})
	if err == nil || !strings.Contains(err.Error(), "no completion") {
		t.Errorf("expected empty-choices error, got %v", err)
	}
}

func TestCompleteMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), Request{})
	if err == nil {
		t.Error("expected parse error")
	}
}

func TestCompleteAPILevelError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"model overloaded","type":"server_error"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), Request{})
	if err == nil || !strings.Contains(err.Error(), "model overloaded") {
		t.Errorf("expected API error, got %v", err)
	}
}

func TestCompleteContextCancellation(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	client := newTestClient(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, Request{})
	if err == nil {
		t.Error("expected error after context deadline")
	}
}

func TestRequestModelOverride(t *testing.T) {
	var captured openAIRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.Complete(context.Background(), Request{Model: "gpt-4o"}); err != nil {
		t.Fatal(err)
	}
	if captured.Model != "gpt-4o" {
		t.Errorf("per-request model ignored: %q", captured.Model)
	}
}

func TestDefaults(t *testing.T) {
	client := NewOpenAIClient("k")
	if client.GetModel() != "gpt-4o-mini" {
		t.Errorf("default model = %q", client.GetModel())
	}
	if client.baseURL != "https://api.openai.com/v1" {
		t.Errorf("default base URL = %q", client.baseURL)
	}
	if client.httpClient.Timeout != 10*time.Second {
		t.Errorf("default timeout = %v", client.httpClient.Timeout)
	}
}
