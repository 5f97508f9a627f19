package utils

import (
	"hash/fnv"
	"math"
	"sort"
	"sync"

	"go.uber.org/zap"
)

type IndexShard struct {
	sync.RWMutex
	data map[string][]int
	tf   map[string]map[int]float32
}

// Index is an in-memory inverted index of stemmed terms, split into shards by
// term hash.
type Index struct {
	analyzer *Analyzer
	logger   *zap.Logger
	shards   []*IndexShard
}

type SearchResult struct {
	ID    int
	Score float32
	Text  string
}

func NewIndex(analyzer *Analyzer, shardCount int, logger *zap.Logger) *Index {
	if shardCount < 1 {
		shardCount = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	shards := make([]*IndexShard, shardCount)
	for i := range shards {
		shards[i] = &IndexShard{
			data: make(map[string][]int),
			tf:   make(map[string]map[int]float32),
		}
	}
	return &Index{analyzer: analyzer, logger: logger, shards: shards}
}

func (idx *Index) getShard(term string) *IndexShard {
	h := fnv.New32a()
	h.Write([]byte(term))
	return idx.shards[h.Sum32()%uint32(len(idx.shards))]
}

func (idx *Index) Add(docs []Document) {
	var wg sync.WaitGroup
	sem := make(chan struct{}, 8)

	for _, doc := range docs {
		wg.Add(1)
		sem <- struct{}{}

		go func(d Document) {
			defer wg.Done()
			defer func() { <-sem }()

			tokens := idx.analyzer.Analyze(d.Text)
			if len(tokens) == 0 {
				idx.logger.Debug("document has no terms", zap.Int("id", d.ID))
				return
			}
			tf := make(map[string]float32)
			for _, t := range tokens {
				tf[t] += 1.0 / float32(len(tokens))
			}

			for term, freq := range tf {
				shard := idx.getShard(term)
				shard.Lock()
				shard.data[term] = append(shard.data[term], d.ID)
				if shard.tf[term] == nil {
					shard.tf[term] = make(map[int]float32)
				}
				shard.tf[term][d.ID] = freq
				shard.Unlock()
			}
		}(doc)
	}
	wg.Wait()
	idx.logger.Debug("indexed documents", zap.Int("count", len(docs)), zap.String("backend", string(idx.analyzer.Backend())))
}

// uniqueTerms drops repeated terms, keeping first occurrences in order.
func uniqueTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := terms[:0]
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Search ranks documents by the summed tf-idf of the query terms. docs must be
// indexed by Document.ID.
func (idx *Index) Search(query string, maxResults int, docs []Document) []SearchResult {
	terms := uniqueTerms(idx.analyzer.Analyze(query))
	results := make(chan SearchResult, 100)
	var wg sync.WaitGroup

	for _, term := range terms {
		wg.Add(1)
		go func(t string) {
			defer wg.Done()
			shard := idx.getShard(t)
			shard.RLock()
			defer shard.RUnlock()

			if ids, exists := shard.data[t]; exists {
				idf := math.Log(1 + float64(len(docs))/float64(len(ids)))
				for _, id := range ids {
					results <- SearchResult{
						ID:    id,
						Score: float32(idf) * shard.tf[t][id],
					}
				}
			}
		}(term)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	scores := make(map[int]float32)
	for res := range results {
		scores[res.ID] += res.Score
	}

	ranked := make([]SearchResult, 0, len(scores))
	for id, score := range scores {
		r := SearchResult{ID: id, Score: score}
		if id >= 0 && id < len(docs) {
			r.Text = docs[id].Text
		}
		ranked = append(ranked, r)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})

	idx.logger.Debug("search", zap.Strings("terms", terms), zap.Int("hits", len(ranked)))
	if maxResults > 0 && len(ranked) > maxResults {
		return ranked[:maxResults]
	}
	return ranked
}
