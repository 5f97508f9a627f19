// Package porter reduces lowercase English words to stems by stripping and
// rewriting suffixes in six fixed steps.
//
// Stemming is pure: the suffix tables are built once at init and only read
// afterwards, so a Stemmer may be shared between goroutines.
package porter

// Stemmer runs the step pipeline. The zero value uses LiRuleLiteral.
type Stemmer struct {
	li LiRule
}

type Option func(*Stemmer)

// WithLiRule picks the step 2 fallback.
func WithLiRule(r LiRule) Option {
	return func(s *Stemmer) {
		s.li = r
	}
}

func New(opts ...Option) *Stemmer {
	s := &Stemmer{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Stemmer) LiRule() LiRule {
	return s.li
}

// StemWord stems one lowercase token. Words of two bytes or fewer are
// returned as they are.
func (s *Stemmer) StemWord(word string) string {
	if len(word) <= 2 {
		return word
	}
	w := classify(word)
	w = step0(w)
	w = step1a(w)
	w = step1b(w)
	w = step1c(w)
	w = step2(w, s.li)
	w = step3(w)
	w = step4(w)
	w = step5(w)
	return restore(w)
}

// Stem tokenizes text and stems every token, keeping their order.
func (s *Stemmer) Stem(text string) []string {
	return s.StemTokens(Tokenize(text))
}

// StemTokens stems already normalized tokens. The result is never nil.
func (s *Stemmer) StemTokens(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = s.StemWord(t)
	}
	return out
}

var std = New()

func StemWord(word string) string { return std.StemWord(word) }

func Stem(text string) []string { return std.Stem(text) }

func StemTokens(tokens []string) []string { return std.StemTokens(tokens) }
