package utils

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kljensen/snowball"
	"go.uber.org/zap"

	"github.com/viranchils96/porter-search/porter"
)

type Backend string

const (
	PorterBackend   Backend = "porter"
	SnowballBackend Backend = "snowball"
)

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case PorterBackend, SnowballBackend:
		return b, nil
	case "":
		return PorterBackend, nil
	}
	return "", fmt.Errorf("unknown stemmer backend %q", s)
}

// Analyzer turns raw text into index terms: tokenize, optionally drop
// stopwords, then stem.
type Analyzer struct {
	backend   Backend
	stemmer   *porter.Stemmer
	stopwords bool
	logger    *zap.Logger
}

type AnalyzerOption func(*Analyzer)

func WithBackend(b Backend) AnalyzerOption {
	return func(a *Analyzer) { a.backend = b }
}

func WithStemmer(s *porter.Stemmer) AnalyzerOption {
	return func(a *Analyzer) { a.stemmer = s }
}

func WithStopwords(drop bool) AnalyzerOption {
	return func(a *Analyzer) { a.stopwords = drop }
}

func WithLogger(l *zap.Logger) AnalyzerOption {
	return func(a *Analyzer) { a.logger = l }
}

func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		backend: PorterBackend,
		stemmer: porter.New(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Analyzer) Backend() Backend { return a.backend }

func (a *Analyzer) Analyze(text string) []string {
	tokens := porter.Tokenize(text)
	if a.stopwords {
		tokens = stopwordFilter(tokens)
	}
	return a.stemmerFilter(tokens)
}

// AnalyzeAll analyzes texts with at most workers in flight. Result i belongs
// to texts[i].
func (a *Analyzer) AnalyzeAll(texts []string, workers int) [][]string {
	if workers < 1 {
		workers = 1
	}
	out := make([][]string, len(texts))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i, text := range texts {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int, text string) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = a.Analyze(text)
		}(i, text)
	}
	wg.Wait()
	return out
}

func (a *Analyzer) stemmerFilter(tokens []string) []string {
	if a.backend != SnowballBackend {
		return a.stemmer.StemTokens(tokens)
	}
	r := make([]string, len(tokens))
	for i, token := range tokens {
		stemmed, err := snowball.Stem(token, "english", false)
		if err != nil {
			a.logger.Warn("snowball stem failed", zap.String("token", token), zap.Error(err))
			stemmed = token
		}
		r[i] = stemmed
	}
	return r
}
