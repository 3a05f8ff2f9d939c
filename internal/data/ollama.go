package data

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/anthropics/akashvani/internal/biz/domain"
	"github.com/anthropics/akashvani/internal/biz/repo"
)

// ollamaRepo implements the LLM repository against Ollama's native
// /api/generate endpoint.
type ollamaRepo struct {
	baseURL    string
	httpClient *http.Client
}

// NewOllamaRepo creates an LLM repository for an Ollama endpoint
func NewOllamaRepo(host, port string, timeout time.Duration) repo.LLMRepo {
	return &ollamaRepo{
		baseURL: fmt.Sprintf("http://%s:%s", host, port),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float32 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

// Generate sends one prompt and returns the generated text. A single
// attempt, no retry; timeouts and non-2xx statuses surface
// domain.ErrExternalService.
func (r *ollamaRepo) Generate(ctx context.Context, req repo.LLMRequest) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  req.Model,
		Prompt: req.Prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call %s: %v: %w", r.baseURL, err, domain.ErrExternalService)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("call %s: status %d: %w", r.baseURL, resp.StatusCode, domain.ErrExternalService)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode generate response: %v: %w", err, domain.ErrMalformedResponse)
	}
	if result.Error != "" {
		return "", fmt.Errorf("generate: %s: %w", result.Error, domain.ErrExternalService)
	}

	return result.Response, nil
}
