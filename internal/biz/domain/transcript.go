package domain

import "sync"

// Transcript is the append-only, ordered history of a chat session.
// Appends and reads may happen from concurrent connections; readers always
// see a stable snapshot, never a half-appended suffix.
type Transcript struct {
	mu       sync.RWMutex
	messages []ChatMessage
}

// NewTranscript creates an empty transcript
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds a message to the end of the transcript
func (t *Transcript) Append(msg ChatMessage) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, msg)
}

// Len returns the number of messages
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// Snapshot returns a stable copy of the messages in chronological order.
// Concurrent appends after the snapshot do not affect the returned slice.
func (t *Transcript) Snapshot() []ChatMessage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

// Clear removes all messages. Used by the test harness for isolation.
func (t *Transcript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = nil
}
