package memory

import (
	"fmt"
	"io"
	"iter"
	"sync"

	"wordfreq/internal/linestore"
)

// Storage is an in-memory line buffer. Every call to Lines replays the
// buffered document from its first line.
type Storage struct {
	mu    sync.RWMutex
	lines []string
}

func NewStorage() *Storage { return &Storage{} }

// NewStorageFromLines returns a storage preloaded with lines.
func NewStorageFromLines(lines ...string) *Storage {
	cp := make([]string, len(lines))
	copy(cp, lines)
	return &Storage{lines: cp}
}

// Load replaces the buffered lines with the contents of r. On a read fault
// the previous contents are kept and the error wraps
// domain.ErrInputUnavailable.
func (s *Storage) Load(r io.Reader) error {
	var lines []string
	for line, err := range linestore.NewReaderSource(r).Lines() {
		if err != nil {
			return fmt.Errorf("load line %d: %w", len(lines)+1, err)
		}
		lines = append(lines, line)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = lines
	return nil
}

func (s *Storage) Lines() iter.Seq2[string, error] {
	s.mu.RLock()
	snapshot := s.lines
	s.mu.RUnlock()
	return func(yield func(string, error) bool) {
		for _, line := range snapshot {
			if !yield(line, nil) {
				return
			}
		}
	}
}

func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	return nil
}
