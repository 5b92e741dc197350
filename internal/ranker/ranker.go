// Package ranker orders frequency tables for reporting.
package ranker

import (
	"cmp"
	"slices"
	"strings"

	"wordfreq/internal/counter"
	"wordfreq/internal/domain"
	"wordfreq/internal/tokenizer"
)

// Rank returns every entry of table ordered by count descending, then by
// word ascending ignoring case. The table is not modified.
func Rank(table counter.Table) []domain.Entry {
	entries := make([]domain.Entry, 0, len(table))
	for word, count := range table {
		entries = append(entries, domain.Entry{Word: word, Count: count})
	}
	slices.SortFunc(entries, byCountDesc)
	return entries
}

// TopN returns the first min(n, len(table)) entries of Rank(table).
func TopN(table counter.Table, n int) []domain.Entry {
	if n <= 0 {
		return []domain.Entry{}
	}
	entries := Rank(table)
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n:n]
}

// Alphabetical returns a copy of entries ordered by word ignoring case.
func Alphabetical(entries []domain.Entry) []domain.Entry {
	out := slices.Clone(entries)
	slices.SortFunc(out, func(a, b domain.Entry) int { return compareWords(a.Word, b.Word) })
	return out
}

func byCountDesc(a, b domain.Entry) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return compareWords(a.Word, b.Word)
}

// compareWords orders case-insensitively, falling back to byte order so
// distinct words never compare equal.
func compareWords(a, b string) int {
	if c := strings.Compare(tokenizer.Lower(a), tokenizer.Lower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
