package porter

import "strings"

// Tokenize lowercases text and splits it on every run of characters other
// than ASCII letters and the apostrophe. Empty tokens are dropped.
func Tokenize(text string) []string {
	var tokens []string
	var token []byte

	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		if (r >= 'a' && r <= 'z') || r == '\'' {
			token = append(token, byte(r))
		} else if len(token) > 0 {
			tokens = append(tokens, string(token))
			token = token[:0]
		}
	}

	if len(token) > 0 {
		tokens = append(tokens, string(token))
	}
	return tokens
}
