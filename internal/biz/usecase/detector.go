package usecase

import (
	"strings"

	"github.com/anthropics/akashvani/internal/biz/domain"
)

// MentionDetector scans chat messages for the bot's invocation tokens.
//
// Matching rule: case-sensitive prefix match on the trimmed message text.
// The full-name token ("@" + username) is tested before the shorthand, so a
// message matching both resolves to the full name. The residual query is
// everything after the token, whitespace-trimmed; a bare mention yields an
// empty query, which is still a valid invocation.
type MentionDetector struct {
	fullToken string
	shorthand string
}

// NewMentionDetector creates a detector for the given bot username and
// shorthand. The shorthand gains an "@" prefix when missing, matching how
// users actually type it.
func NewMentionDetector(username, shorthand string) *MentionDetector {
	if shorthand != "" && !strings.HasPrefix(shorthand, "@") {
		shorthand = "@" + shorthand
	}
	return &MentionDetector{
		fullToken: "@" + username,
		shorthand: shorthand,
	}
}

// Detect returns the mention found in text, if any. Absence of a mention is
// a normal negative result, not a failure.
func (d *MentionDetector) Detect(text string) (domain.Mention, bool) {
	trimmed := strings.TrimSpace(text)

	for _, token := range []string{d.fullToken, d.shorthand} {
		if token == "@" || token == "" {
			continue
		}
		if strings.HasPrefix(trimmed, token) {
			return domain.Mention{
				Token: token,
				Query: strings.TrimSpace(trimmed[len(token):]),
			}, true
		}
	}

	return domain.Mention{}, false
}
