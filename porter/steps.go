package porter

import "strings"

var (
	step2Table = newSuffixTable([]rule{
		{"enci", "ence"},
		{"anci", "ance"},
		{"abli", "able"},
		{"entli", "ent"},
		{"izer", "ize"},
		{"ization", "ize"},
		{"ation", "ate"},
		{"ator", "ate"},
		{"alism", "al"},
		{"aliti", "al"},
		{"alli", "al"},
		{"fulness", "ful"},
		{"ousli", "ous"},
		{"ousness", "ous"},
		{"iveness", "ive"},
		{"iviti", "ive"},
		{"biliti", "ble"},
		{"bli", "ble"},
		{"logi", "log"},
		{"fulli", "ful"},
		{"lessli", "less"},
	})

	step3Table = newSuffixTable([]rule{
		{"tional", "tion"},
		{"ational", "ate"},
		{"alize", "al"},
		{"icate", "ic"},
		{"iciti", "ic"},
		{"ical", "ic"},
		{"ful", ""},
		{"ness", ""},
	})

	step4Table = newDeletionTable(
		"al", "ance", "ence", "er", "ic", "able", "ible", "ant", "ement", "ment",
		"ent", "ism", "ate", "iti", "ous", "ive", "ize", "sion", "tion",
	)
)

func hasAnySuffix(word string, suffixes ...string) string {
	for _, s := range suffixes {
		if strings.HasSuffix(word, s) {
			return s
		}
	}
	return ""
}

// step0 strips a possessive.
func step0(word string) string {
	if s := hasAnySuffix(word, "'s'", "'s", "'"); s != "" {
		return word[:len(word)-len(s)]
	}
	return word
}

func step1a(word string) string {
	if hasAnySuffix(word, "sses", "ies", "ied") != "" {
		return word[:len(word)-2]
	}
	n := len(word)
	if n >= 2 && word[n-1] == 's' && word[n-2] != 's' && word[n-2] != 'u' {
		return word[:n-1]
	}
	return word
}

func step1b(word string) string {
	if s := hasAnySuffix(word, "eedly", "eed"); s != "" {
		k := len(word) - len(s)
		if measured(word, k, 1) {
			return word[:k] + "ee"
		}
	}

	s := hasAnySuffix(word, "ingly", "edly", "ing", "ed")
	if s == "" {
		return word
	}
	stem := word[:len(word)-len(s)]
	if !containsVowel(stem) {
		return word
	}
	if hasAnySuffix(stem, "at", "bl", "iz") != "" {
		return stem + "e"
	}
	if collapsed, ok := collapseDouble(stem); ok {
		return collapsed
	}
	if isShortWord(stem) {
		return stem + "e"
	}
	return stem
}

// step1c turns a final y into i after a consonant that does not open the word.
func step1c(word string) string {
	n := len(word)
	if n < 3 || (word[n-1] != 'y' && word[n-1] != yMark) || !isConsonant(word[n-2]) {
		return word
	}
	return word[:n-1] + "i"
}

func step2(word string, li LiRule) string {
	if w, ok := step2Table.apply(word, nonEmptyStem); ok {
		return w
	}
	return li.fallback(word)
}

func step3(word string) string {
	if w, ok := step3Table.apply(word, inR1); ok {
		return w
	}
	if strings.HasSuffix(word, "ative") {
		if k := len(word) - len("ative"); inR2(word, k) {
			return word[:k]
		}
	}
	return word
}

func step4(word string) string {
	w, _ := step4Table.apply(word, inR2)
	return w
}

// step5 drops a final e, then one l of a final ll.
func step5(word string) string {
	if n := len(word); n > 0 && word[n-1] == 'e' {
		stem := word[:n-1]
		switch {
		case measured(word, n-1, 2):
			word = stem
		case endsShortSyllable(stem) && hasTransitions(stem[:len(stem)-3], 1):
			word = stem
		}
	}
	if n := len(word); n > 2 && strings.HasSuffix(word, "ll") && measured(word, n-1, 2) {
		word = word[:n-1]
	}
	return word
}
