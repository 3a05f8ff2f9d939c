package data

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anthropics/akashvani/internal/biz/domain"
	"github.com/anthropics/akashvani/internal/biz/repo"
)

// hostPort splits a httptest server URL into host and port
func hostPort(t *testing.T, rawURL string) (string, string) {
	t.Helper()
	host, port, err := net.SplitHostPort(strings.TrimPrefix(rawURL, "http://"))
	if err != nil {
		t.Fatalf("Bad test server URL %q: %v", rawURL, err)
	}
	return host, port
}

func TestOllamaGenerate(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"response": "Paris is the capital."})
	}))
	defer srv.Close()

	host, port := hostPort(t, srv.URL)
	llm := NewOllamaRepo(host, port, 5*time.Second)

	text, err := llm.Generate(context.Background(), repo.LLMRequest{
		Model:       "llama3",
		Prompt:      "capital of France?",
		Temperature: 0.5,
		MaxTokens:   150,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if text != "Paris is the capital." {
		t.Errorf("Unexpected text: %q", text)
	}

	if gotPath != "/api/generate" {
		t.Errorf("Expected /api/generate, got %s", gotPath)
	}
	if gotBody["model"] != "llama3" || gotBody["prompt"] != "capital of France?" {
		t.Errorf("Unexpected payload: %+v", gotBody)
	}
	if gotBody["stream"] != false {
		t.Error("Expected stream:false")
	}
	opts, ok := gotBody["options"].(map[string]any)
	if !ok {
		t.Fatalf("Expected options object, got %+v", gotBody["options"])
	}
	if opts["temperature"].(float64) != 0.5 || opts["num_predict"].(float64) != 150 {
		t.Errorf("Unexpected options: %+v", opts)
	}
}

func TestOllamaGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	host, port := hostPort(t, srv.URL)
	llm := NewOllamaRepo(host, port, 5*time.Second)

	_, err := llm.Generate(context.Background(), repo.LLMRequest{Model: "llama3", Prompt: "q"})
	if !errors.Is(err, domain.ErrExternalService) {
		t.Errorf("Expected ErrExternalService, got %v", err)
	}
}

func TestOllamaGenerateConnectionRefused(t *testing.T) {
	// Reserve a port then close it so nothing listens there.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	host, port := hostPort(t, srv.URL)
	srv.Close()

	llm := NewOllamaRepo(host, port, time.Second)
	_, err := llm.Generate(context.Background(), repo.LLMRequest{Model: "llama3", Prompt: "q"})
	if !errors.Is(err, domain.ErrExternalService) {
		t.Errorf("Expected ErrExternalService, got %v", err)
	}
}

func TestOllamaGenerateTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	host, port := hostPort(t, srv.URL)
	llm := NewOllamaRepo(host, port, 20*time.Millisecond)

	_, err := llm.Generate(context.Background(), repo.LLMRequest{Model: "llama3", Prompt: "q"})
	if !errors.Is(err, domain.ErrExternalService) {
		t.Errorf("Expected timeout to surface ErrExternalService, got %v", err)
	}
}

func TestOllamaGenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "model not found"})
	}))
	defer srv.Close()

	host, port := hostPort(t, srv.URL)
	llm := NewOllamaRepo(host, port, 5*time.Second)

	_, err := llm.Generate(context.Background(), repo.LLMRequest{Model: "missing", Prompt: "q"})
	if !errors.Is(err, domain.ErrExternalService) {
		t.Errorf("Expected ErrExternalService for API error, got %v", err)
	}
}

func TestOllamaGenerateBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	host, port := hostPort(t, srv.URL)
	llm := NewOllamaRepo(host, port, 5*time.Second)

	_, err := llm.Generate(context.Background(), repo.LLMRequest{Model: "llama3", Prompt: "q"})
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Errorf("Expected ErrMalformedResponse, got %v", err)
	}
}
