package porter

import (
	"sort"
	"strings"
)

type rule struct {
	suffix, repl string
}

// suffixTable matches the longest qualifying suffix of a word. Keys are kept
// longest first; equal lengths keep declaration order.
type suffixTable struct {
	keys []string
	repl map[string]string
}

// guard decides whether a suffix starting at offset k of word may be replaced.
type guard func(word string, k int) bool

func newSuffixTable(rules []rule) *suffixTable {
	t := &suffixTable{
		keys: make([]string, 0, len(rules)),
		repl: make(map[string]string, len(rules)),
	}
	for _, r := range rules {
		if _, dup := t.repl[r.suffix]; dup {
			panic("porter: duplicate suffix " + r.suffix)
		}
		t.repl[r.suffix] = r.repl
		t.keys = append(t.keys, r.suffix)
	}
	sort.SliceStable(t.keys, func(i, j int) bool {
		return len(t.keys[i]) > len(t.keys[j])
	})
	return t
}

func newDeletionTable(suffixes ...string) *suffixTable {
	rules := make([]rule, len(suffixes))
	for i, s := range suffixes {
		rules[i] = rule{suffix: s}
	}
	return newSuffixTable(rules)
}

// apply replaces the longest key that ends word and satisfies g. A nil guard
// accepts every match.
func (t *suffixTable) apply(word string, g guard) (string, bool) {
	for _, key := range t.keys {
		if !strings.HasSuffix(word, key) {
			continue
		}
		k := len(word) - len(key)
		if g != nil && !g(word, k) {
			continue
		}
		return word[:k] + t.repl[key], true
	}
	return word, false
}

func nonEmptyStem(_ string, k int) bool { return k > 0 }

func inR1(word string, k int) bool { return measured(word, k, 1) }

func inR2(word string, k int) bool { return measured(word, k, 2) }

var doubles = []string{"bb", "dd", "ff", "gg", "mm", "nn", "pp", "rr", "tt"}

// collapseDouble drops the last letter of a word ending in a doubled
// consonant from the fixed set above.
func collapseDouble(word string) (string, bool) {
	for _, d := range doubles {
		if strings.HasSuffix(word, d) {
			return word[:len(word)-1], true
		}
	}
	return word, false
}
