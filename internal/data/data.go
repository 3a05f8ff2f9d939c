package data

import (
	"fmt"

	"github.com/anthropics/akashvani/internal/biz/repo"
	"github.com/anthropics/akashvani/internal/conf"
)

// NewLLMRepo creates the LLM repository for the configured endpoint dialect
func NewLLMRepo(cfg conf.LLMConfig) (repo.LLMRepo, error) {
	switch cfg.API {
	case "ollama":
		return NewOllamaRepo(cfg.Host, cfg.Port, cfg.Timeout), nil
	case "openai":
		return NewOpenAIRepo(cfg.Host, cfg.Port, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown LLM_API %q", cfg.API)
	}
}
