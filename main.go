package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/viranchils96/porter-search/porter"
	utils "github.com/viranchils96/porter-search/utils"
)

func main() {
	var mode, liFlag, backendFlag, path, query string
	var maxResults int
	var dropStopwords, verbose bool
	flag.StringVar(&mode, "mode", "stem", "stem, compare or search")
	flag.StringVar(&liFlag, "li", "literal", "step 2 li fallback: literal or anchored")
	flag.StringVar(&backendFlag, "backend", "porter", "search stemmer: porter or snowball")
	flag.StringVar(&path, "p", "enwiki-latest-abstract1.xml.gz", "wiki abstract path")
	flag.StringVar(&query, "q", "Small wild cat", "search query")
	flag.IntVar(&maxResults, "n", 10, "max search results")
	flag.BoolVar(&dropStopwords, "stopwords", false, "drop stopwords before stemming")
	flag.BoolVar(&verbose, "v", false, "development logging")
	flag.Parse()

	logger, err := newLogger(verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	li, err := porter.ParseLiRule(liFlag)
	if err != nil {
		logger.Fatal("bad -li", zap.Error(err))
	}
	backend, err := utils.ParseBackend(backendFlag)
	if err != nil {
		logger.Fatal("bad -backend", zap.Error(err))
	}
	stemmer := porter.New(porter.WithLiRule(li))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch mode {
	case "stem":
		err = forEachLine(flag.Args(), os.Stdin, func(line string) {
			fmt.Println(strings.Join(stemmer.Stem(line), " "))
		})
	case "compare":
		err = forEachLine(flag.Args(), os.Stdin, func(line string) {
			for _, d := range utils.Compare(stemmer, porter.Tokenize(line)) {
				fmt.Printf("%s\tporter=%s\tsnowball=%s\n", d.Word, d.Porter, d.Snowball)
			}
		})
	case "search":
		analyzer := utils.NewAnalyzer(
			utils.WithBackend(backend),
			utils.WithStemmer(stemmer),
			utils.WithStopwords(dropStopwords),
			utils.WithLogger(logger),
		)
		err = search(ctx, logger, analyzer, path, query, maxResults)
	default:
		logger.Fatal("unknown mode", zap.String("mode", mode))
	}
	if err != nil {
		logger.Fatal("failed", zap.String("mode", mode), zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// forEachLine feeds fn the command-line arguments, or stdin line by line when
// there are none.
func forEachLine(args []string, stdin io.Reader, fn func(string)) error {
	if len(args) > 0 {
		fn(strings.Join(args, " "))
		return nil
	}
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		fn(sc.Text())
	}
	return sc.Err()
}

func search(ctx context.Context, logger *zap.Logger, analyzer *utils.Analyzer, path, query string, maxResults int) error {
	logger.Info("search in progress", zap.String("path", path))
	start := time.Now()
	docs, err := utils.LoadDocuments(ctx, path)
	if err != nil && len(docs) == 0 {
		return err
	}
	if err != nil {
		logger.Warn("some documents were skipped", zap.Error(err))
	}
	logger.Info("loaded documents", zap.Int("count", len(docs)), zap.Duration("took", time.Since(start)))

	start = time.Now()
	idx := utils.NewIndex(analyzer, 16, logger)
	idx.Add(docs)
	logger.Info("indexed documents", zap.Int("count", len(docs)), zap.Duration("took", time.Since(start)))

	start = time.Now()
	matched := idx.Search(query, maxResults, docs)
	logger.Info("search finished", zap.Int("hits", len(matched)), zap.Duration("took", time.Since(start)))
	for _, r := range matched {
		fmt.Printf("%d\t%.4f\t%s\n", r.ID, r.Score, r.Text)
	}
	return nil
}
