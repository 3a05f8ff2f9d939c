package usecase

import "github.com/anthropics/akashvani/internal/biz/domain"

// Window returns the last min(w, len(msgs)) messages in chronological
// order. The input is never mutated; the result is a subslice of msgs, so
// callers must pass a stable snapshot (see domain.Transcript.Snapshot).
func Window(msgs []domain.ChatMessage, w int) []domain.ChatMessage {
	if w <= 0 {
		return nil
	}
	if w >= len(msgs) {
		return msgs
	}
	return msgs[len(msgs)-w:]
}

// ExcludingMessage returns msgs without the message carrying the given ID.
// An empty ID excludes nothing. The input is never mutated.
func ExcludingMessage(msgs []domain.ChatMessage, id string) []domain.ChatMessage {
	if id == "" {
		return msgs
	}
	result := make([]domain.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		if m.ID != id {
			result = append(result, m)
		}
	}
	return result
}
