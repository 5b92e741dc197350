package ranker

import "wordfreq/internal/counter"

// Exclude returns a copy of table without the given words.
func Exclude(table counter.Table, words map[string]struct{}) counter.Table {
	out := make(counter.Table, len(table))
	for w, c := range table {
		if _, skip := words[w]; skip {
			continue
		}
		out[w] = c
	}
	return out
}

// DefaultStopwords returns common English function words.
func DefaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
