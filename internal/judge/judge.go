// Package judge provides an LLM-as-judge evaluator for grading the bot's
// non-deterministic replies against expected-content criteria. It is a test
// harness capability; the core pipeline never depends on it.
package judge

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/akashvani/internal/biz/domain"
	"github.com/anthropics/akashvani/internal/biz/repo"
)

// Verdict is the judge's grading of one reply
type Verdict struct {
	Pass   bool
	Reason string
}

// Judge grades an actual reply against expected-content criteria
type Judge interface {
	Evaluate(ctx context.Context, criteria, actual string) (Verdict, error)
}

// Params contains the judge role LLM parameters
type Params struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// DefaultPrompt is the default judge prompt. Supports {{criteria}} and
// {{reply}}.
const DefaultPrompt = `You are an impartial evaluator of chatbot replies.

Expected behavior:
{{criteria}}

Actual reply:
{{reply}}

Does the actual reply satisfy the expected behavior? Judge content, not exact wording.
Reply with exactly "PASS" if it does, or "FAIL: <one-sentence reason>" if it does not.`

// LLMJudge implements Judge over an LLM repository
type LLMJudge struct {
	llm    repo.LLMRepo
	params Params
	prompt string
}

// NewLLMJudge creates a judge. An empty prompt selects DefaultPrompt.
func NewLLMJudge(llm repo.LLMRepo, params Params, prompt string) *LLMJudge {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &LLMJudge{llm: llm, params: params, prompt: prompt}
}

// Evaluate asks the judge model to grade the reply and parses the verdict
func (j *LLMJudge) Evaluate(ctx context.Context, criteria, actual string) (Verdict, error) {
	prompt := strings.ReplaceAll(j.prompt, "{{criteria}}", criteria)
	prompt = strings.ReplaceAll(prompt, "{{reply}}", actual)

	text, err := j.llm.Generate(ctx, repo.LLMRequest{
		Model:       j.params.Model,
		Prompt:      prompt,
		Temperature: j.params.Temperature,
		MaxTokens:   j.params.MaxTokens,
	})
	if err != nil {
		return Verdict{}, fmt.Errorf("judge evaluation: %w", err)
	}

	return parseVerdict(text)
}

// parseVerdict reads the first PASS/FAIL token of the judge's response.
// Anything else is a malformed response.
func parseVerdict(text string) (Verdict, error) {
	trimmed := strings.TrimSpace(text)
	upper := strings.ToUpper(trimmed)

	switch {
	case strings.HasPrefix(upper, "PASS"):
		return Verdict{Pass: true}, nil
	case strings.HasPrefix(upper, "FAIL"):
		reason := strings.TrimPrefix(trimmed[4:], ":")
		return Verdict{Pass: false, Reason: strings.TrimSpace(reason)}, nil
	default:
		return Verdict{}, fmt.Errorf("judge verdict %q: %w", trimmed, domain.ErrMalformedResponse)
	}
}
