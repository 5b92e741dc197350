package memory

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"wordfreq/internal/domain"
	"wordfreq/internal/linestore"
)

var _ linestore.Storage = (*Storage)(nil)

func collect(t *testing.T, s *Storage) []string {
	t.Helper()
	var out []string
	for line, err := range s.Lines() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out = append(out, line)
	}
	return out
}

func TestLoadAndReplay(t *testing.T) {
	s := NewStorage()
	if err := s.Load(strings.NewReader("first line\r\nsecond\n\nfourth")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"first line", "second", "", "fourth"}
	if s.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(want))
	}
	for pass := 0; pass < 2; pass++ {
		got := collect(t, s)
		if strings.Join(got, "|") != strings.Join(want, "|") {
			t.Errorf("pass %d: got %q, want %q", pass, got, want)
		}
	}
}

func TestLoadReadFault(t *testing.T) {
	s := NewStorageFromLines("kept")
	fault := errors.New("disk gone")
	r := io.MultiReader(strings.NewReader("partial\n"), iotest.ErrReader(fault))

	err := s.Load(r)
	if !errors.Is(err, domain.ErrInputUnavailable) {
		t.Fatalf("Load error = %v, want ErrInputUnavailable", err)
	}
	if !errors.Is(err, fault) {
		t.Fatalf("Load error = %v, want wrapped fault", err)
	}
	if got := collect(t, s); len(got) != 1 || got[0] != "kept" {
		t.Errorf("contents after failed load = %q", got)
	}
}

func TestClear(t *testing.T) {
	s := NewStorageFromLines("a", "b")
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.Len() != 0 || len(collect(t, s)) != 0 {
		t.Error("storage not empty after Clear")
	}
}

func TestLoadLongLine(t *testing.T) {
	long := strings.Repeat("word ", 40000)
	s := NewStorage()
	if err := s.Load(strings.NewReader("short\n" + long + "\nlast")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := collect(t, s)
	if len(got) != 3 || got[1] != long || got[2] != "last" {
		t.Errorf("got %d lines", len(got))
	}
}

func TestLoadFaultReportsLine(t *testing.T) {
	fault := errors.New("unplugged")
	r := io.MultiReader(strings.NewReader("one\ntwo\n"), iotest.ErrReader(fault))
	err := NewStorage().Load(r)
	if err == nil || !strings.Contains(err.Error(), "load line 3") {
		t.Errorf("Load error = %v, want line 3 context", err)
	}
}
