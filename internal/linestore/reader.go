package linestore

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"wordfreq/internal/domain"
)

// MaxLineBytes bounds the length of a single input line.
const MaxLineBytes = 16 << 20

// ReaderSource streams lines straight from an io.Reader. It can be iterated
// only once.
type ReaderSource struct {
	r io.Reader
}

// NewReaderSource wraps r as a single-pass line source.
func NewReaderSource(r io.Reader) *ReaderSource { return &ReaderSource{r: r} }

// Lines yields each line of the underlying reader without its line ending.
func (s *ReaderSource) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		sc := newScanner(s.r)
		for sc.Scan() {
			if !yield(sc.Text(), nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", fmt.Errorf("%w: read line: %w", domain.ErrInputUnavailable, err))
		}
	}
}

// newScanner returns a line scanner that accepts lines up to MaxLineBytes.
func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	return sc
}
