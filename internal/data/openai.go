package data

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/anthropics/akashvani/internal/biz/domain"
	"github.com/anthropics/akashvani/internal/biz/repo"
)

// openaiRepo implements the LLM repository against any OpenAI-compatible
// chat completions endpoint (Ollama's /v1, LM Studio, vLLM, ...).
type openaiRepo struct {
	client *openai.Client
}

// NewOpenAIRepo creates an LLM repository for an OpenAI-compatible endpoint
func NewOpenAIRepo(host, port string, timeout time.Duration) repo.LLMRepo {
	config := openai.DefaultConfig("")
	config.BaseURL = fmt.Sprintf("http://%s:%s/v1", host, port)
	config.HTTPClient = &http.Client{Timeout: timeout}

	return &openaiRepo{client: openai.NewClientWithConfig(config)}
}

// Generate sends the prompt as a single user message and returns the first
// choice. A single attempt, no retry.
func (r *openaiRepo) Generate(ctx context.Context, req repo.LLMRequest) (string, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %v: %w", err, domain.ErrExternalService)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: no response choices: %w", domain.ErrMalformedResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
