package utils

import (
	"github.com/kljensen/snowball/english"

	"github.com/viranchils96/porter-search/porter"
)

// Divergence records a word the two stemmers disagree on.
type Divergence struct {
	Word     string
	Porter   string
	Snowball string
}

// Compare stems every word with s and with the Snowball English stemmer and
// returns the disagreements in input order.
func Compare(s *porter.Stemmer, words []string) []Divergence {
	var out []Divergence
	for _, w := range words {
		p := s.StemWord(w)
		sb := english.Stem(w, false)
		if p != sb {
			out = append(out, Divergence{Word: w, Porter: p, Snowball: sb})
		}
	}
	return out
}
