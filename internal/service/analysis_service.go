package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"wordfreq/internal/counter"
	"wordfreq/internal/domain"
	"wordfreq/internal/linestore"
	"wordfreq/internal/logging"
	"wordfreq/internal/ranker"
	"wordfreq/internal/sentence"
	"wordfreq/internal/tokenizer"
)

var _ domain.Analyzer = (*AnalysisServiceImpl)(nil)

// ErrNotAnalyzed is returned by Lookup before a document has been analysed.
var ErrNotAnalyzed = errors.New("no document analysed")

// Options controls the contents of a report.
type Options struct {
	TopN         int
	Alphabetical bool
	// SkipStopwords leaves common function words out of the ranking. They
	// are still counted in the totals.
	SkipStopwords bool
}

// AnalysisServiceImpl buffers a document once and runs the counting and
// sentence passes over the buffered lines.
type AnalysisServiceImpl struct {
	store  linestore.Storage
	opts   Options
	logger *slog.Logger
	table  counter.Table
}

func NewAnalysisService(store linestore.Storage, opts Options, logger *slog.Logger) *AnalysisServiceImpl {
	if logger == nil {
		logger = logging.Discard()
	}
	return &AnalysisServiceImpl{store: store, opts: opts, logger: logger}
}

// Analyze reads the file at path and builds its report.
func (s *AnalysisServiceImpl) Analyze(path string) (domain.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Report{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return s.AnalyzeReader(path, f)
}

// AnalyzeReader builds the report for the document read from r. path is
// only used for labelling.
func (s *AnalysisServiceImpl) AnalyzeReader(path string, r io.Reader) (domain.Report, error) {
	if err := s.store.Load(r); err != nil {
		return domain.Report{}, fmt.Errorf("load %s: %w", path, err)
	}
	s.logger.Debug("document buffered", slog.String("path", path), slog.Int("lines", s.store.Len()))

	table, total, err := counter.CountWords(s.store)
	if err != nil {
		return domain.Report{}, err
	}
	s.table = table
	s.logger.Debug("words counted", slog.Int("total", total), slog.Int("unique", table.Len()))

	ranked := table
	if s.opts.SkipStopwords {
		ranked = ranker.Exclude(table, ranker.DefaultStopwords())
	}
	report := domain.Report{
		Path:        path,
		Top:         ranker.TopN(ranked, s.opts.TopN),
		TotalWords:  total,
		UniqueWords: table.Len(),
	}
	if s.opts.Alphabetical {
		report.Alphabetical = ranker.Alphabetical(report.Top)
	}
	// Taken separately so the top word exists even when TopN is 0.
	if first := ranker.TopN(ranked, 1); len(first) > 0 {
		report.TopWord = first[0].Word
		last, err := sentence.LastContaining(s.store, report.TopWord)
		if err != nil {
			return domain.Report{}, err
		}
		report.LastSentence = last
	}
	return report, nil
}

// Lookup reports the count of word in the analysed document and the last
// sentence that contains it.
func (s *AnalysisServiceImpl) Lookup(word string) (domain.WordLookup, error) {
	if s.table == nil {
		return domain.WordLookup{}, ErrNotAnalyzed
	}
	word = tokenizer.Lower(strings.TrimSpace(word))
	if word == "" {
		return domain.WordLookup{}, fmt.Errorf("%w: empty word", domain.ErrInvalidArgument)
	}
	last, err := sentence.LastContaining(s.store, word)
	if err != nil {
		return domain.WordLookup{}, err
	}
	return domain.WordLookup{Word: word, Count: s.table[word], LastSentence: last}, nil
}
