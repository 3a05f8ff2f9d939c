package usecase

import (
	"fmt"
	"strings"

	"github.com/anthropics/akashvani/internal/biz/domain"
)

// PromptConfig contains the prompt templates used by the pipeline stages.
// Templates use {{placeholder}} substitution.
type PromptConfig struct {
	SummarizerPrompt   string // supports {{history}}, {{question}}
	AnswerPrompt       string // supports {{bot_name}}, {{context}}, {{question}}
	EmptyHistoryMarker string // injected as context when no summary is available
	DegradedReply      string // user-visible reply when an LLM call fails
}

// DefaultPromptConfig contains the default prompt configuration
var DefaultPromptConfig = PromptConfig{
	SummarizerPrompt: `You are a conversation summarizer for a group chat.
Condense the recent chat history below into a brief context description that is relevant to the question being asked.

Requirements:
- Keep key information: who said what, topics discussed, decisions made, unresolved questions.
- Use third-person description.
- Keep it under 200 words; shorter if the conversation is simple.
- Output the summary directly, with no prefix like "Summary:".

Recent chat history:
{{history}}

Question being asked: "{{question}}"

Your concise summary:`,

	AnswerPrompt: `You are {{bot_name}}, a helpful and concise AI assistant in a chat.
Your goal is to directly and accurately answer the user's *current, explicit question*.

**Important Instructions:**
- Always respond from the perspective of '{{bot_name}}'.
- Your answer should be concise and to the point. Aim for 1-3 sentences for direct questions, or a brief summary if requested.
- If the conversation context below says there is no recent chat history, rely on your general knowledge to answer.
- Do NOT introduce yourself or repeat the user's question.
- Your response should come directly from {{bot_name}}, without introductory phrases like "{{bot_name}} says:".

Conversation context (a summary of recent chat, crucial for referential questions):
{{context}}

User's explicit question to {{bot_name}}: "{{question}}"

Your concise answer:`,

	EmptyHistoryMarker: "[No recent chat history]",

	DegradedReply: "I apologize, but I'm having trouble reaching my knowledge base right now. Please try again in a moment.",
}

// fillDefaults fills in default values for empty fields
func (c *PromptConfig) fillDefaults() {
	if c.SummarizerPrompt == "" {
		c.SummarizerPrompt = DefaultPromptConfig.SummarizerPrompt
	}
	if c.AnswerPrompt == "" {
		c.AnswerPrompt = DefaultPromptConfig.AnswerPrompt
	}
	if c.EmptyHistoryMarker == "" {
		c.EmptyHistoryMarker = DefaultPromptConfig.EmptyHistoryMarker
	}
	if c.DegradedReply == "" {
		c.DegradedReply = DefaultPromptConfig.DegradedReply
	}
}

// formatHistory renders window messages as "sender: text" lines. The bot's
// own prior replies are excluded so the model never summarizes itself.
func formatHistory(window []domain.ChatMessage, botName string) string {
	var sb strings.Builder
	for _, m := range window {
		if m.IsFromBot(botName) {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", m.Sender, m.Text))
	}
	return strings.TrimRight(sb.String(), "\n")
}
