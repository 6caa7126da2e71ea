package rope

// Builder accumulates byte payloads and produces a Rope in one shot.
//
// Building once from the full payload lets the chunk size be tuned to
// the total length before any leaf is cut, which a sequence of Append
// calls on a live rope cannot do.
//
// Example:
//
//	b := rope.NewBuilder()
//	b.AppendString("Hello")
//	b.AppendString(" World")
//	r := b.Build()
type Builder struct {
	chunks [][]byte
	size   int
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds a copy of data to the pending payload.
func (b *Builder) Append(data []byte) *Builder {
	if len(data) == 0 {
		return b
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	b.chunks = append(b.chunks, owned)
	b.size += len(owned)
	return b
}

// AppendString adds text to the pending payload.
func (b *Builder) AppendString(text string) *Builder {
	if text == "" {
		return b
	}
	b.chunks = append(b.chunks, []byte(text))
	b.size += len(text)
	return b
}

// AppendLine adds a line followed by a newline.
func (b *Builder) AppendLine(line string) *Builder {
	return b.AppendString(line + "\n")
}

// Len returns the number of bytes accumulated so far.
func (b *Builder) Len() int {
	return b.size
}

// Build constructs a Rope from the accumulated payload. The builder
// keeps its state, so further appends extend a subsequent Build.
func (b *Builder) Build() *Rope {
	buf := make([]byte, 0, b.size)
	for _, chunk := range b.chunks {
		buf = append(buf, chunk...)
	}
	return NewFromBytes(buf)
}

// Reset discards the accumulated payload.
func (b *Builder) Reset() *Builder {
	b.chunks = nil
	b.size = 0
	return b
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	b.Append(p)
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (b *Builder) WriteString(s string) (int, error) {
	b.AppendString(s)
	return len(s), nil
}
