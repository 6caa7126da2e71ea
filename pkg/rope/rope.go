// Package rope implements a balanced rope over raw bytes, the buffer
// model behind a text editor.
//
// A rope is a binary tree whose leaves hold immutable byte chunks and
// whose internal nodes carry the byte total of their left subtree.
// Concatenation, split, insertion, deletion and substring extraction
// work along root-to-leaf paths, so their cost follows the tree height
// (plus the bytes copied) rather than the buffer size, which makes the structure
// practical for arbitrarily large buffers.
//
// # Indexing
//
// All positions are byte offsets. The rope is encoding-agnostic: it
// stores and reproduces bytes verbatim and never inspects them beyond
// the newline scan in the chunker.
//
// # Balancing
//
// The tree is AVL-shaped but lazily balanced: rotations fire only when
// the height skew at a node exceeds one, so cheap mutations pay no
// balancing cost. Between a merge and the rebalance pass the balance
// factor may transiently reach two.
//
// # Ownership and Thread Safety
//
// A Rope exclusively owns its tree; no node is shared between live
// ropes. Mutating methods update the rope in place by atomic root
// replacement: the root either moves to a fully consistent new tree or
// stays untouched.
//
// A single Rope must NOT be mutated from two goroutines. Distinct
// ropes are fully independent and can be used on separate goroutines
// without coordination.
//
// # Basic Usage
//
//	r := rope.New("Hello")
//	r.AppendString(" World")
//	r.InsertString(5, ",")
//	fmt.Println(r.String()) // "Hello, World"
package rope

import "bytes"

// Rope represents a mutable byte sequence as a balanced binary tree.
//
// The zero value is not usable; construct ropes with New, NewFromBytes,
// Empty, NewFromFile or FromReader.
type Rope struct {
	root node
	// Cached byte total, kept in sync with the tree on every mutation.
	size int
	// Per-rope leaf sizing hint, chosen from the initial payload.
	// Chunk boundaries prefer newlines and are not capped by it.
	chunkSize int
}

// ========== Constructors ==========

// New creates a Rope from the given string.
//
// The chunk size is tuned to the payload length before the text is
// carved into newline-aligned leaves.
func New(text string) *Rope {
	return NewFromBytes([]byte(text))
}

// NewFromBytes creates a Rope holding a copy of data.
func NewFromBytes(data []byte) *Rope {
	r := &Rope{chunkSize: chunkSizeFor(len(data))}
	r.root = chunkTree(data)
	r.size = len(data)
	return r
}

// Empty returns an empty Rope.
//
// The empty rope is represented by a nil root, never by a zero-length
// leaf.
func Empty() *Rope {
	return &Rope{chunkSize: DefaultChunkSize}
}

// ========== Queries ==========

// Len returns the number of bytes in the rope. O(1).
func (r *Rope) Len() int {
	if r == nil {
		return 0
	}
	return r.size
}

// String returns the complete content: the left-to-right concatenation
// of all leaf chunks. O(n).
func (r *Rope) String() string {
	if r == nil || r.root == nil {
		return ""
	}

	buf := make([]byte, 0, r.size)
	it := r.Chunks()
	for it.Next() {
		buf = append(buf, it.Current()...)
	}
	return string(buf)
}

// Bytes returns the complete content as a fresh byte slice. O(n).
func (r *Rope) Bytes() []byte {
	if r == nil || r.root == nil {
		return nil
	}
	return r.root.appendTo(make([]byte, 0, r.size))
}

// ByteAt returns the byte at the given offset.
func (r *Rope) ByteAt(pos int) (byte, error) {
	if r == nil || pos < 0 || pos >= r.Len() {
		return 0, errByteOutOfBounds(pos, r.Len())
	}
	return r.root.byteAt(pos), nil
}

// Slice returns a copy of the bytes in [start, end).
func (r *Rope) Slice(start, end int) ([]byte, error) {
	if r == nil {
		if start == 0 && end == 0 {
			return nil, nil
		}
		return nil, errSliceOutOfBounds(start, end, 0)
	}
	if start < 0 || end > r.size || start > end {
		return nil, errSliceOutOfBounds(start, end, r.size)
	}
	if start == end {
		return nil, nil
	}
	return r.root.extract(start, end, make([]byte, 0, end-start)), nil
}

// Equals reports whether two ropes hold identical bytes.
func (r *Rope) Equals(other *Rope) bool {
	return bytes.Equal(r.Bytes(), other.Bytes())
}

// Compare compares two ropes lexicographically, like bytes.Compare.
func (r *Rope) Compare(other *Rope) int {
	return bytes.Compare(r.Bytes(), other.Bytes())
}

// ChunkSize returns the rope's current leaf sizing hint.
func (r *Rope) ChunkSize() int {
	return r.chunkSize
}

// SetChunkSize overrides the leaf sizing hint for subsequent payloads.
func (r *Rope) SetChunkSize(size int) {
	if size > 0 {
		r.chunkSize = size
	}
}

// AdjustParameters retunes the chunk size for a payload of the given
// byte length, using the same table as construction.
func (r *Rope) AdjustParameters(payload int) {
	r.chunkSize = chunkSizeFor(payload)
}

// ========== Mutations ==========
//
// Every mutation completes by replacing the root with a fully built
// replacement tree; a caller never observes a partial tree.

// Append adds data at the end of the rope.
func (r *Rope) Append(data []byte) {
	if len(data) == 0 {
		return
	}
	r.root = merge(r.root, chunkTree(data))
	r.size += len(data)
}

// AppendString adds text at the end of the rope.
func (r *Rope) AppendString(text string) {
	r.Append([]byte(text))
}

// AppendRope adds the content of other at the end of the rope.
// other is read, not consumed; both ropes stay independently owned.
func (r *Rope) AppendRope(other *Rope) {
	r.Append(other.Bytes())
}

// Prepend adds data at the beginning of the rope.
func (r *Rope) Prepend(data []byte) {
	if len(data) == 0 {
		return
	}
	r.root = merge(chunkTree(data), r.root)
	r.size += len(data)
}

// PrependString adds text at the beginning of the rope.
func (r *Rope) PrependString(text string) {
	r.Prepend([]byte(text))
}

// PrependRope adds the content of other at the beginning of the rope.
func (r *Rope) PrependRope(other *Rope) {
	r.Prepend(other.Bytes())
}

// Insert places data at the given byte offset. Position 0 prepends and
// any position at or past the end appends, so the only rejected
// positions are negative ones.
//
// The payload is chunked first; each chunk is inserted at a running
// offset so consecutive chunks land contiguously.
func (r *Rope) Insert(pos int, data []byte) error {
	if pos < 0 {
		return errInsertOutOfBounds(pos, r.Len())
	}
	if len(data) == 0 {
		return nil
	}

	currentPos := 0
	for _, chunk := range splitIntoChunks(data) {
		adjustedPos := pos + currentPos

		switch {
		case adjustedPos == 0:
			r.Prepend(chunk)
		case adjustedPos >= r.size:
			r.Append(chunk)
		default:
			left, right := splitNode(r.root, adjustedPos)
			r.root = merge(merge(left, newLeaf(chunk)), right)
			r.size += len(chunk)
		}

		currentPos += len(chunk)
	}
	return nil
}

// InsertString places text at the given byte offset.
func (r *Rope) InsertString(pos int, text string) error {
	return r.Insert(pos, []byte(text))
}

// InsertRope places the content of other at the given byte offset.
//
// The content is copied in: other is left untouched and no node is
// ever shared between the two ropes, so the same source rope can be
// inserted any number of times.
func (r *Rope) InsertRope(pos int, other *Rope) error {
	if pos < 0 {
		return errInsertOutOfBounds(pos, r.Len())
	}
	if other == nil || other.Len() == 0 {
		return nil
	}

	switch {
	case pos == 0:
		r.Prepend(other.Bytes())
	case pos >= r.size:
		r.Append(other.Bytes())
	default:
		left, right := splitNode(r.root, pos)
		middle := chunkTree(other.Bytes())
		r.root = merge(merge(left, middle), right)
		r.size += other.Len()
	}
	return nil
}

// Remove deletes n bytes starting at start. A range running past the
// end is clamped to the end of the rope.
func (r *Rope) Remove(start, n int) error {
	if start < 0 || start > r.Len() {
		return errRemoveOutOfBounds(start, n, r.Len())
	}
	if n < 0 {
		return errRemoveOutOfBounds(start, n, r.Len())
	}
	if n == 0 {
		return nil
	}
	if start+n > r.size {
		n = r.size - start
	}

	head, tail := splitNode(r.root, start)
	_, keep := splitNode(tail, n)
	r.root = merge(head, keep)
	r.size -= n
	return nil
}

// RemoveAt deletes the single byte at pos.
func (r *Rope) RemoveAt(pos int) error {
	if pos < 0 || pos >= r.Len() {
		return errRemoveAtOutOfBounds(pos, r.Len())
	}
	return r.Remove(pos, 1)
}

// Cut returns a new rope holding the bytes in [start, end). The source
// rope is not modified: the range is extracted by read-only traversal
// and the result owns a freshly built tree.
func (r *Rope) Cut(start, end int) (*Rope, error) {
	if start < 0 || end > r.Len() || start > end {
		return nil, errCutOutOfBounds(start, end, r.Len())
	}
	if start == end {
		return Empty(), nil
	}
	return NewFromBytes(r.root.extract(start, end, make([]byte, 0, end-start))), nil
}

// Paste places the content of other at the given byte offset.
// Equivalent to InsertRope.
func (r *Rope) Paste(pos int, other *Rope) error {
	return r.InsertRope(pos, other)
}
