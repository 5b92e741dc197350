// Package tokenizer splits lines into maximal runs of word or separator
// characters.
//
// Classification is byte-wise against a fixed ASCII separator set, so the
// bytes of a multi-byte UTF-8 sequence are always word-constituent and a
// token never splits a rune.
package tokenizer

import (
	"fmt"
	"iter"
	"strings"

	"wordfreq/internal/domain"
)

// Separators lists every character that is not part of a word.
const Separators = " \t\n\r,.!?[]';:/()<>"

// sentenceEnds are the separators that terminate a sentence.
const sentenceEnds = ".!?"

var separatorTable = func() (t [256]bool) {
	for i := 0; i < len(Separators); i++ {
		t[Separators[i]] = true
	}
	return t
}()

// IsSeparator reports whether b belongs to the separator set.
func IsSeparator(b byte) bool { return separatorTable[b] }

// NextToken returns the maximal run of characters starting at position that
// share the classification of text[position]. It panics with an error
// wrapping domain.ErrInvalidArgument if position is outside text.
func NextToken(text string, position int) string {
	if position < 0 || position >= len(text) {
		panic(fmt.Errorf("%w: position %d outside text of length %d", domain.ErrInvalidArgument, position, len(text)))
	}
	sep := IsSeparator(text[position])
	i := position + 1
	for i < len(text) && IsSeparator(text[i]) == sep {
		i++
	}
	return text[position:i]
}

// Tokens yields the tokens of line from left to right. Concatenating them
// reproduces line.
func Tokens(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < len(line); {
			tok := NextToken(line, i)
			i += len(tok)
			if !yield(tok) {
				return
			}
		}
	}
}

// IsWord reports whether token is a word rather than a separator run.
func IsWord(token string) bool {
	return token != "" && !IsSeparator(token[0])
}

// EndsSentence reports whether token contains a sentence terminator.
func EndsSentence(token string) bool {
	return strings.ContainsAny(token, sentenceEnds)
}
