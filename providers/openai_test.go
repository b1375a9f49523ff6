package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIProvider_Complete(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"[{\"type\":\"Names\",\"value\":\"John\"}]"}}]}`))
	}))
	defer ts.Close()

	provider := NewOpenAIProvider(ts.URL, "test-key", "gpt-4o")
	content, err := provider.Complete(context.Background(), "find the PHI")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(content, `"value":"John"`) {
		t.Errorf("Unexpected content: %q", content)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Expected bearer auth, got %q", gotAuth)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("Expected /chat/completions, got %q", gotPath)
	}
	if gotBody["model"] != "gpt-4o" {
		t.Errorf("Expected model gpt-4o, got %v", gotBody["model"])
	}

	messages, ok := gotBody["messages"].([]interface{})
	if !ok || len(messages) != 1 {
		t.Fatalf("Expected a single message, got %v", gotBody["messages"])
	}
	msg := messages[0].(map[string]interface{})
	if msg["role"] != "user" || msg["content"] != "find the PHI" {
		t.Errorf("Unexpected message: %v", msg)
	}
}

func TestOpenAIProvider_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	}))
	defer ts.Close()

	_, err := NewOpenAIProvider(ts.URL, "test-key", "").Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Expected an error for a 429 response")
	}
	if !strings.Contains(err.Error(), "rate limit exceeded") {
		t.Errorf("Expected the service message in the error, got %v", err)
	}
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	_, err := NewOpenAIProvider(ts.URL, "test-key", "").Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Expected an error for an empty choices list")
	}
}

func TestOpenAIProvider_ValidateConfig(t *testing.T) {
	if err := NewOpenAIProvider("", "", "").ValidateConfig(); err == nil {
		t.Error("Expected an error without an API key")
	}
	if err := NewOpenAIProvider("", "key", "").ValidateConfig(); err != nil {
		t.Errorf("Expected no error with an API key, got %v", err)
	}
}

func TestOpenAIProvider_Defaults(t *testing.T) {
	p := NewOpenAIProvider("", "key", "")
	if p.baseURL != DefaultOpenAIBaseURL {
		t.Errorf("Expected default base URL, got %q", p.baseURL)
	}
	if p.model != DefaultOpenAIModel {
		t.Errorf("Expected default model, got %q", p.model)
	}
}
