package porter

import "strings"

// yMark stands in for a "y" that behaves like a consonant-after-vowel, e.g. in
// "say" or "young". It never appears in normalized input.
const yMark = '\x01'

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// isConsonant is not the negation of isVowel: a plain 'y' is both.
func isConsonant(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	}
	return true
}

// classify drops a leading quote and marks every 'y' that opens the word or
// follows a vowel.
func classify(word string) string {
	word = strings.TrimPrefix(word, "'")
	if strings.IndexByte(word, 'y') < 0 {
		return word
	}
	b := []byte(word)
	for i := range b {
		if b[i] == 'y' && (i == 0 || isVowel(word[i-1])) {
			b[i] = yMark
		}
	}
	return string(b)
}

func restore(word string) string {
	return strings.ReplaceAll(word, string(rune(yMark)), "y")
}
