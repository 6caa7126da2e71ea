// Package document provides the buffer facade consumed by editor
// front-ends and other external collaborators.
//
// A front-end never touches the rope tree directly; it works against
// the small Document surface (length, content, insert, remove) and
// tracks buffers by their stable IDs.
package document

import (
	"github.com/google/uuid"

	"github.com/coreseekdev/restis/pkg/rope"
)

// Document is the editing surface exposed to external collaborators.
type Document interface {
	// Length returns the document length in bytes.
	Length() int

	// String returns the complete document content.
	String() string

	// Bytes returns the complete document content as a byte slice.
	Bytes() []byte

	// Insert places data at the given byte offset.
	Insert(pos int, data []byte) error

	// Remove deletes n bytes starting at start.
	Remove(start, n int) error
}

// Buffer is a rope-backed Document with a stable identity and an
// optional backing file.
//
// A Buffer must not be mutated concurrently; distinct buffers are
// independent.
type Buffer struct {
	id   string
	path string
	rope *rope.Rope
}

// NewBuffer creates an empty buffer with a fresh ID.
func NewBuffer() *Buffer {
	return &Buffer{
		id:   uuid.New().String(),
		rope: rope.Empty(),
	}
}

// NewBufferFromString creates a buffer holding the given text.
func NewBufferFromString(text string) *Buffer {
	return &Buffer{
		id:   uuid.New().String(),
		rope: rope.New(text),
	}
}

// Open creates a buffer backed by the named file and loads its content.
func Open(path string) (*Buffer, error) {
	r, err := rope.NewFromFile(path)
	if err != nil {
		return nil, err
	}
	return &Buffer{
		id:   uuid.New().String(),
		path: path,
		rope: r,
	}, nil
}

// ID returns the buffer's stable identity.
func (b *Buffer) ID() string {
	return b.id
}

// Path returns the backing file path, or "" for an unsaved buffer.
func (b *Buffer) Path() string {
	return b.path
}

// Rope exposes the underlying rope for callers that need the full
// engine API (cut, paste, iteration).
func (b *Buffer) Rope() *rope.Rope {
	return b.rope
}

// Length returns the buffer length in bytes.
func (b *Buffer) Length() int {
	return b.rope.Len()
}

// String returns the complete buffer content.
func (b *Buffer) String() string {
	return b.rope.String()
}

// Bytes returns the complete buffer content as a byte slice.
func (b *Buffer) Bytes() []byte {
	return b.rope.Bytes()
}

// Insert places data at the given byte offset.
func (b *Buffer) Insert(pos int, data []byte) error {
	return b.rope.Insert(pos, data)
}

// Remove deletes n bytes starting at start.
func (b *Buffer) Remove(start, n int) error {
	return b.rope.Remove(start, n)
}

// Save writes the buffer to its backing file.
func (b *Buffer) Save() error {
	return b.rope.Save(b.path)
}

// SaveAs writes the buffer to the named file and adopts it as the
// backing file.
func (b *Buffer) SaveAs(path string) error {
	if err := b.rope.Save(path); err != nil {
		return err
	}
	b.path = path
	return nil
}

// Reload discards the buffer content and re-reads the backing file.
// On a read failure the buffer content is left unchanged.
func (b *Buffer) Reload() error {
	return b.rope.Load(b.path)
}
