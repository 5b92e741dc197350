package domain

import (
	"errors"
	"iter"
)

var (
	// ErrInputUnavailable reports that a line source failed before reaching
	// the end of its input.
	ErrInputUnavailable = errors.New("input unavailable")
	// ErrInvalidArgument reports a violated precondition.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Entry is a word together with its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Report is the result of analysing a single document.
type Report struct {
	Path         string
	Top          []Entry
	Alphabetical []Entry
	TotalWords   int
	UniqueWords  int
	TopWord      string
	LastSentence string
}

// WordLookup describes a single word within an analysed document.
type WordLookup struct {
	Word         string
	Count        int
	LastSentence string
}

// LineSource yields the lines of a document in order. A non-nil error ends
// the sequence and means the source could not produce further lines.
// Buffered sources restart from the first line on every call to Lines.
type LineSource interface {
	Lines() iter.Seq2[string, error]
}

// Analyzer defines the operations exposed by the application core.
type Analyzer interface {
	Analyze(path string) (Report, error)
	Lookup(word string) (WordLookup, error)
}
