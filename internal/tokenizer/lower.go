package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lower lowercases every valid rune of s and copies bytes that are not valid
// UTF-8 through unchanged, so text in other ASCII-compatible encodings keeps
// distinct words distinct.
func Lower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		i += size
	}
	return b.String()
}
