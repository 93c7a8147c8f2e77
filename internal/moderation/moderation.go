package moderation

import (
	"regexp"
	"strings"
)

// Denylist applied to post and comment bodies. Process-wide and immutable
// after init, so concurrent reads need no locking.
var sensitiveWords = []string{
	"porn", "fuck", "shit", "bitch",
	"cunt", "damn", "cock", "pussy",
}

var patterns = compile(sensitiveWords)

func compile(words []string) []*regexp.Regexp {
	ps := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		// Word boundaries so "assess" or "classical" never match a
		// denylisted term embedded in a longer word.
		ps = append(ps, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return ps
}

// ContainsSensitiveWords reports whether content includes a denylisted term
// as a standalone word, case-insensitively.
func ContainsSensitiveWords(content string) bool {
	lower := strings.ToLower(content)
	for _, p := range patterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}
