package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PromptsConfig contains prompt overrides loaded from YAML. Empty fields
// fall back to the compiled-in defaults.
type PromptsConfig struct {
	Summarizer SummarizerPrompts `yaml:"summarizer"`
	Answer     AnswerPrompts     `yaml:"answer"`
	Judge      JudgePrompts      `yaml:"judge"`
}

// SummarizerPrompts contains summarizer stage prompts
type SummarizerPrompts struct {
	Prompt string `yaml:"prompt"` // supports {{history}}, {{question}}
}

// AnswerPrompts contains answer stage prompts
type AnswerPrompts struct {
	Prompt             string `yaml:"prompt"` // supports {{bot_name}}, {{context}}, {{question}}
	EmptyHistoryMarker string `yaml:"empty_history_marker"`
	DegradedReply      string `yaml:"degraded_reply"`
}

// JudgePrompts contains the evaluation judge prompt
type JudgePrompts struct {
	Prompt string `yaml:"prompt"` // supports {{criteria}}, {{reply}}
}

// LoadPromptsConfig loads prompt overrides from a YAML file. A missing
// path or file yields an empty config, which means all defaults.
func LoadPromptsConfig(configPath string) (*PromptsConfig, error) {
	if configPath == "" {
		return &PromptsConfig{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		fmt.Printf("[Config] No prompts file at %s, using defaults\n", configPath)
		return &PromptsConfig{}, nil
	}

	var config PromptsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	fmt.Printf("[Config] Loaded prompts from: %s\n", configPath)
	return &config, nil
}
