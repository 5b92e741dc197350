package linestore

import (
	"io"

	"wordfreq/internal/domain"
)

// Storage buffers the lines of a document so they can be replayed.
type Storage interface {
	domain.LineSource
	Load(r io.Reader) error
	Len() int
	Clear() error
}
