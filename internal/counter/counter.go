// Package counter builds case-insensitive word frequency tables.
package counter

import (
	"errors"
	"fmt"

	"wordfreq/internal/domain"
	"wordfreq/internal/tokenizer"
)

// Table maps a lowercased word to its number of occurrences.
type Table map[string]int

// Len returns the number of distinct words.
func (t Table) Len() int { return len(t) }

// CountWords tallies every word token produced by lines. It returns the
// frequency table and the total number of word occurrences. A read fault
// stops the count and is returned wrapping domain.ErrInputUnavailable.
func CountWords(lines domain.LineSource) (Table, int, error) {
	table := make(Table)
	total := 0
	for line, err := range lines.Lines() {
		if err != nil {
			if !errors.Is(err, domain.ErrInputUnavailable) {
				err = fmt.Errorf("%w: %w", domain.ErrInputUnavailable, err)
			}
			return nil, 0, fmt.Errorf("count words: %w", err)
		}
		for tok := range tokenizer.Tokens(line) {
			if !tokenizer.IsWord(tok) {
				continue
			}
			table[tokenizer.Lower(tok)]++
			total++
		}
	}
	return table, total, nil
}
