package porter

// transitionEnds returns the offsets just past the first limit
// vowel-consonant transitions of word, scanning left to right without overlap.
func transitionEnds(word string, limit int) []int {
	var ends []int
	for i := 0; i+1 < len(word) && len(ends) < limit; i++ {
		if isVowel(word[i]) && isConsonant(word[i+1]) {
			i++
			ends = append(ends, i+1)
		}
	}
	return ends
}

// regions returns the start offsets of R1 and R2. A missing region starts at
// len(word).
func regions(word string) (r1, r2 int) {
	r1, r2 = len(word), len(word)
	ends := transitionEnds(word, 2)
	if len(ends) > 0 {
		r1 = ends[0]
	}
	if len(ends) > 1 {
		r2 = ends[1]
	}
	return r1, r2
}

// measured reports whether word[:k] holds at least n transitions.
// k must be smaller than len(word).
func measured(word string, k, n int) bool {
	r1, r2 := regions(word)
	switch {
	case n <= 0:
		return true
	case n == 1:
		return r1 <= k
	default:
		return r2 <= k
	}
}

func hasTransitions(stem string, n int) bool {
	return len(transitionEnds(stem, n)) >= n
}

func containsVowel(s string) bool {
	for i := 0; i < len(s); i++ {
		if isVowel(s[i]) {
			return true
		}
	}
	return false
}

// closesSyllable reports whether c may end a short syllable.
func closesSyllable(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'w', 'x', yMark:
		return false
	}
	return true
}

func isCVC(s string) bool {
	return len(s) == 3 && isConsonant(s[0]) && isVowel(s[1]) && closesSyllable(s[2])
}

// isShortSyllable reports whether fragment is consonant-vowel-consonant, or a
// vowel-consonant pair standing at the start of the word.
func isShortSyllable(fragment string, atStart bool) bool {
	if isCVC(fragment) {
		return true
	}
	return atStart && len(fragment) == 2 && isVowel(fragment[0]) && isConsonant(fragment[1])
}

// endsShortSyllable reports whether the last three letters of stem are
// consonant-vowel-consonant.
func endsShortSyllable(stem string) bool {
	return len(stem) >= 3 && isShortSyllable(stem[len(stem)-3:], false)
}

// isShortWord reports whether word is a run of consonants closed by a short
// syllable, or a bare vowel-consonant pair.
func isShortWord(word string) bool {
	if len(word) == 2 {
		return isShortSyllable(word, true)
	}
	if len(word) < 3 || !isCVC(word[len(word)-3:]) {
		return false
	}
	for i := 0; i < len(word)-3; i++ {
		if !isConsonant(word[i]) {
			return false
		}
	}
	return true
}
