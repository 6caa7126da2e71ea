package rope

import (
	"bufio"
	"io"
	"os"
)

// FromReader reads reader to EOF and creates a new Rope from the bytes.
//
// Example:
//
//	file, _ := os.Open("large_file.txt")
//	defer file.Close()
//	r, err := rope.FromReader(file)
func FromReader(reader io.Reader) (*Rope, error) {
	b := NewBuilder()
	bufReader := bufio.NewReader(reader)
	buf := make([]byte, 4096)

	for {
		n, err := bufReader.Read(buf)
		if n > 0 {
			b.Append(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				return b.Build(), nil
			}
			return nil, err
		}
	}
}

// NewFromFile creates a Rope from the contents of the named file, read
// verbatim as raw bytes. Every byte is preserved, including any final
// line terminator.
func NewFromFile(path string) (*Rope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewFromBytes(data), nil
}

// Load replaces the rope's content with the contents of the named
// file: the rope is cleared first, then the file bytes are appended
// verbatim through the chunker with the chunk size retuned to the file
// length.
//
// On a read failure the rope is left at its previous content.
func (r *Rope) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	r.AdjustParameters(len(data))
	r.root = chunkTree(data)
	r.size = len(data)
	return nil
}

// Save writes the rope's full content to the named file, creating or
// truncating it.
func (r *Rope) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if _, err := r.WriteTo(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTo writes the rope's content to writer, draining the chunk
// iterator so the content is never materialised in one allocation.
// Implements io.WriterTo.
func (r *Rope) WriteTo(writer io.Writer) (int64, error) {
	var written int64

	it := r.Chunks()
	for it.Next() {
		n, err := writer.Write(it.Current())
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Reader returns an io.Reader over the rope's content.
//
// The reader walks leaf chunks lazily; the rope must not be mutated
// while the reader is in use.
func (r *Rope) Reader() io.Reader {
	return &ropeReader{it: r.Chunks()}
}

// ropeReader adapts a ChunkIterator to io.Reader.
type ropeReader struct {
	it  *ChunkIterator
	rem []byte
}

func (rr *ropeReader) Read(p []byte) (int, error) {
	if len(rr.rem) == 0 {
		if !rr.it.Next() {
			return 0, io.EOF
		}
		rr.rem = rr.it.Current()
	}

	n := copy(p, rr.rem)
	rr.rem = rr.rem[n:]
	return n, nil
}
