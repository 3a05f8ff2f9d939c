package domain

import "time"

// ChatMessage represents one message in a chat. Immutable once appended
// to a Transcript.
type ChatMessage struct {
	ID        string
	Sender    string
	Text      string
	Timestamp time.Time
	IsBot     bool // Whether the message was sent by the bot
}

// IsFromBot checks if the message was authored by the named bot
func (m *ChatMessage) IsFromBot(botName string) bool {
	return m.IsBot || m.Sender == botName
}

// Mention is the result of detecting an invocation token in a message.
// Derived transiently from one ChatMessage, never stored.
type Mention struct {
	Token string // The token that matched (full name or shorthand)
	Query string // Residual question text after the token, whitespace-trimmed
}

// Reply is the pipeline's answer to a mention, carried back to the chat
// surface by the transport.
type Reply struct {
	Text     string
	Degraded bool // True when the reply is a failure notice rather than an answer
}
