package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/akashvani/internal/biz/domain"
	"github.com/anthropics/akashvani/internal/biz/repo"
)

// Answerer produces the final reply from the user's query and the summary.
// It never sees the raw transcript.
type Answerer struct {
	llm     repo.LLMRepo
	params  StageParams
	prompts PromptConfig
	botName string
}

// NewAnswerer creates an answer stage
func NewAnswerer(llm repo.LLMRepo, params StageParams, prompts PromptConfig, botName string) *Answerer {
	prompts.fillDefaults()
	return &Answerer{llm: llm, params: params, prompts: prompts, botName: botName}
}

// Answer builds the answer prompt and calls the LLM. When summary is empty
// the call is still issued with a no-history marker, instructing the model
// to rely on general knowledge.
func (a *Answerer) Answer(ctx context.Context, query, summary string) (string, error) {
	contextText := summary
	if contextText == "" {
		contextText = a.prompts.EmptyHistoryMarker
	}

	prompt := strings.ReplaceAll(a.prompts.AnswerPrompt, "{{bot_name}}", a.botName)
	prompt = strings.ReplaceAll(prompt, "{{context}}", contextText)
	prompt = strings.ReplaceAll(prompt, "{{question}}", query)

	text, err := a.llm.Generate(ctx, repo.LLMRequest{
		Model:       a.params.Model,
		Prompt:      prompt,
		Temperature: a.params.Temperature,
		MaxTokens:   a.params.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("answer query: %w", err)
	}

	text = a.stripEchoes(strings.TrimSpace(text))
	if text == "" {
		return "", fmt.Errorf("answer query: empty answer: %w", domain.ErrMalformedResponse)
	}
	return text, nil
}

// stripEchoes removes prompt scaffolding the model sometimes parrots back,
// like "Akashvani:" or "Your concise answer:".
func (a *Answerer) stripEchoes(text string) string {
	for _, prefix := range []string{a.botName + ":", "Your concise answer:"} {
		if len(text) >= len(prefix) && strings.EqualFold(text[:len(prefix)], prefix) {
			text = strings.TrimSpace(text[len(prefix):])
		}
	}
	return text
}
