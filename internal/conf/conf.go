package conf

import (
	"os"
	"strconv"
	"time"

	"github.com/anthropics/akashvani/internal/biz/usecase"
	"github.com/anthropics/akashvani/internal/judge"
)

// Config represents application configuration
type Config struct {
	// Bot identity configuration
	Bot BotConfig

	// LLM endpoint configuration
	LLM LLMConfig

	// Chat server configuration
	Chat ChatConfig

	// Prompts configuration (loaded from YAML, optional)
	Prompts *PromptsConfig

	// Debug mode
	Debug bool
}

// BotConfig contains the bot's invocation tokens
type BotConfig struct {
	Username  string // Full name token, mentioned as "@"+Username
	Shorthand string // Short token, e.g. "@av"
}

// RoleParams contains LLM call parameters for one role
type RoleParams struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// LLMConfig contains LLM endpoint configuration
type LLMConfig struct {
	Host        string
	Port        string
	API         string // Endpoint dialect: "ollama" or "openai"
	Timeout     time.Duration
	HistorySize int // Max messages handed to the summarizer

	Answerer   RoleParams
	Summarizer RoleParams
	Judge      RoleParams
}

// ChatConfig contains the demo chat server configuration
type ChatConfig struct {
	Addr      string
	StaticDir string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	base := RoleParams{
		Model:       envString("LLM_MODEL", "llama3"),
		Temperature: envFloat("LLM_TEMPERATURE", 0.5),
		MaxTokens:   envInt("LLM_MAX_TOKENS", 150),
	}

	promptsConfig, _ := LoadPromptsConfig(os.Getenv("PROMPTS_CONFIG_PATH"))

	return &Config{
		Bot: BotConfig{
			Username:  envString("AKASHVANI_USERNAME", "Akashvani"),
			Shorthand: envString("AKASHVANI_SHORTHAND", "@av"),
		},
		LLM: LLMConfig{
			Host:        envString("LLM_HOST", "localhost"),
			Port:        envString("LLM_PORT", "11434"),
			API:         envString("LLM_API", "ollama"),
			Timeout:     time.Duration(envInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
			HistorySize: envInt("LLM_CONTEXT_HISTORY_SIZE", 10),
			Answerer:    base,
			Summarizer:  roleParams("LLM_SUMMARIZER", base),
			Judge:       roleParams("LLM_JUDGE", base),
		},
		Chat: ChatConfig{
			Addr:      envString("CHAT_ADDR", ":8000"),
			StaticDir: envString("STATIC_DIR", "static"),
		},
		Prompts: promptsConfig,
		Debug:   os.Getenv("DEBUG") == "true",
	}
}

// roleParams reads a role-specific variant ("<prefix>_MODEL" etc.), falling
// back to the base role for unset values.
func roleParams(prefix string, base RoleParams) RoleParams {
	return RoleParams{
		Model:       envString(prefix+"_MODEL", base.Model),
		Temperature: envFloat(prefix+"_TEMPERATURE", base.Temperature),
		MaxTokens:   envInt(prefix+"_MAX_TOKENS", base.MaxTokens),
	}
}

func envString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func envFloat(key string, fallback float32) float32 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 32); err == nil {
			return float32(parsed)
		}
	}
	return fallback
}

// ToPipelineConfig converts to the pipeline configuration
func (c *Config) ToPipelineConfig() usecase.PipelineConfig {
	cfg := usecase.PipelineConfig{
		BotName:     c.Bot.Username,
		Shorthand:   c.Bot.Shorthand,
		HistorySize: c.LLM.HistorySize,
		Summarizer:  toStageParams(c.LLM.Summarizer),
		Answerer:    toStageParams(c.LLM.Answerer),
	}
	if c.Prompts != nil {
		cfg.Prompts = usecase.PromptConfig{
			SummarizerPrompt:   c.Prompts.Summarizer.Prompt,
			AnswerPrompt:       c.Prompts.Answer.Prompt,
			EmptyHistoryMarker: c.Prompts.Answer.EmptyHistoryMarker,
			DegradedReply:      c.Prompts.Answer.DegradedReply,
		}
	}
	return cfg
}

// ToJudgeParams converts the judge role configuration
func (c *Config) ToJudgeParams() judge.Params {
	return judge.Params{
		Model:       c.LLM.Judge.Model,
		Temperature: c.LLM.Judge.Temperature,
		MaxTokens:   c.LLM.Judge.MaxTokens,
	}
}

// JudgePrompt returns the judge prompt override, empty for the default
func (c *Config) JudgePrompt() string {
	if c.Prompts == nil {
		return ""
	}
	return c.Prompts.Judge.Prompt
}

func toStageParams(p RoleParams) usecase.StageParams {
	return usecase.StageParams{
		Model:       p.Model,
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Bot.Username == "" {
		return &ConfigError{Field: "AKASHVANI_USERNAME", Message: "required"}
	}
	if c.LLM.HistorySize < 0 {
		return &ConfigError{Field: "LLM_CONTEXT_HISTORY_SIZE", Message: "must not be negative"}
	}
	if c.LLM.API != "ollama" && c.LLM.API != "openai" {
		return &ConfigError{Field: "LLM_API", Message: "must be \"ollama\" or \"openai\""}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
