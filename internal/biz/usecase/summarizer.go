package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/akashvani/internal/biz/domain"
	"github.com/anthropics/akashvani/internal/biz/repo"
)

// StageParams contains the per-role LLM call parameters
type StageParams struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// Summarizer condenses a history window into a context string relevant to
// the user's question.
type Summarizer struct {
	llm     repo.LLMRepo
	params  StageParams
	prompts PromptConfig
	botName string
}

// NewSummarizer creates a summarizer stage
func NewSummarizer(llm repo.LLMRepo, params StageParams, prompts PromptConfig, botName string) *Summarizer {
	prompts.fillDefaults()
	return &Summarizer{llm: llm, params: params, prompts: prompts, botName: botName}
}

// Summarize builds the summary prompt from the window and the query and
// calls the LLM. An empty window (or one containing only the bot's own
// messages) yields an empty summary without an LLM call; there is nothing
// to condense, and the answer stage covers general-knowledge questions.
func (s *Summarizer) Summarize(ctx context.Context, window []domain.ChatMessage, query string) (string, error) {
	history := formatHistory(window, s.botName)
	if history == "" {
		return "", nil
	}

	prompt := strings.ReplaceAll(s.prompts.SummarizerPrompt, "{{history}}", history)
	prompt = strings.ReplaceAll(prompt, "{{question}}", query)

	text, err := s.llm.Generate(ctx, repo.LLMRequest{
		Model:       s.params.Model,
		Prompt:      prompt,
		Temperature: s.params.Temperature,
		MaxTokens:   s.params.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("summarize history: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("summarize history: empty summary: %w", domain.ErrMalformedResponse)
	}
	return text, nil
}
