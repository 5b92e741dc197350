// Package sentence reassembles tokens into sentences and finds the last
// sentence that mentions a given word.
package sentence

import (
	"errors"
	"fmt"
	"strings"

	"wordfreq/internal/domain"
	"wordfreq/internal/tokenizer"
)

// LastContaining returns the last sentence of lines, in document order, that
// contains target as a whole word ignoring case. Sentences end at any token
// containing '.', '!' or '?'; trailing text without a terminator is never a
// candidate. It returns "" when nothing matches.
func LastContaining(lines domain.LineSource, target string) (string, error) {
	var acc strings.Builder
	best := ""
	for line, err := range lines.Lines() {
		if err != nil {
			if !errors.Is(err, domain.ErrInputUnavailable) {
				err = fmt.Errorf("%w: %w", domain.ErrInputUnavailable, err)
			}
			return "", fmt.Errorf("locate sentence: %w", err)
		}
		// Keep words on adjacent lines apart.
		if acc.Len() > 0 {
			acc.WriteByte('\n')
		}
		for tok := range tokenizer.Tokens(line) {
			acc.WriteString(tok)
			if !tokenizer.EndsSentence(tok) {
				continue
			}
			if s := acc.String(); ContainsWholeWord(s, target) {
				best = strings.TrimSpace(s)
			}
			acc.Reset()
		}
	}
	return best, nil
}

// ContainsWholeWord reports whether word occurs in text, ignoring case, with
// no word-constituent character directly before or after it. word is matched
// literally.
func ContainsWholeWord(text, word string) bool {
	return len(WholeWordSpans(text, word)) > 0
}

// WholeWordSpans returns the [start, end) byte offsets of every whole-word
// occurrence of word in the lowercased text. The offsets index text itself
// whenever lowercasing does not change its length.
func WholeWordSpans(text, word string) [][2]int {
	if word == "" {
		return nil
	}
	lt, lw := tokenizer.Lower(text), tokenizer.Lower(word)
	var spans [][2]int
	for from := 0; from <= len(lt)-len(lw); {
		i := strings.Index(lt[from:], lw)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(lw)
		if boundaryBefore(lt, start) && boundaryAfter(lt, end) {
			spans = append(spans, [2]int{start, end})
			from = end
			continue
		}
		from = start + 1
	}
	return spans
}

func boundaryBefore(s string, i int) bool {
	return i == 0 || tokenizer.IsSeparator(s[i-1])
}

func boundaryAfter(s string, i int) bool {
	return i == len(s) || tokenizer.IsSeparator(s[i])
}
