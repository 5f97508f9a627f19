package utils

var (
	stopwords = initStopwords()
)

func initStopwords() map[string]struct{} {
	return map[string]struct{}{
		"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
		"by": {}, "for": {}, "from": {}, "have": {}, "i": {}, "in": {}, "is": {},
		"it": {}, "of": {}, "on": {}, "or": {}, "that": {}, "the": {}, "to": {},
		"was": {}, "with": {},
	}
}

// IsStopword reports whether token is dropped by analyzers built with
// WithStopwords(true).
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// stopwordFilter drops stopwords in place.
func stopwordFilter(tokens []string) []string {
	n := 0
	for _, token := range tokens {
		if !IsStopword(token) {
			tokens[n] = token
			n++
		}
	}
	return tokens[:n]
}
