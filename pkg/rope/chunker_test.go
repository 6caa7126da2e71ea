package rope

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitIntoChunks_Empty(t *testing.T) {
	assert.Nil(t, splitIntoChunks(nil))
	assert.Nil(t, splitIntoChunks([]byte{}))
}

func TestSplitIntoChunks_NewlineAligned(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "no newline is a single chunk",
			input: "Hello World",
			want:  []string{"Hello World"},
		},
		{
			name:  "newline terminates each chunk inclusively",
			input: "one\ntwo\nthree\n",
			want:  []string{"one\n", "two\n", "three\n"},
		},
		{
			name:  "trailing bytes after last newline form the final chunk",
			input: "one\ntwo",
			want:  []string{"one\n", "two"},
		},
		{
			name:  "consecutive newlines become single-byte chunks",
			input: "\n\n\n",
			want:  []string{"\n", "\n", "\n"},
		},
		{
			name:  "leading newline",
			input: "\nrest",
			want:  []string{"\n", "rest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := splitIntoChunks([]byte(tt.input))

			got := make([]string, len(chunks))
			for i, c := range chunks {
				got[i] = string(c)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitIntoChunks_UnboundedByChunkSize(t *testing.T) {
	// A line far longer than any configured chunk size still becomes a
	// single chunk; the size is a tuning hint, not a clamp.
	line := strings.Repeat("x", 100000) + "\n"
	chunks := splitIntoChunks([]byte(line))

	require.Len(t, chunks, 1)
	assert.Equal(t, line, string(chunks[0]))
}

func TestSplitIntoChunks_Concatenation(t *testing.T) {
	input := []byte("alpha\nbeta\n\ngamma tail")
	chunks := splitIntoChunks(input)

	var rejoined []byte
	for _, c := range chunks {
		rejoined = append(rejoined, c...)
	}
	assert.Equal(t, input, rejoined)
}

func TestChunkTree(t *testing.T) {
	t.Run("empty input is a nil tree", func(t *testing.T) {
		assert.Nil(t, chunkTree(nil))
	})

	t.Run("reproduces input bytes", func(t *testing.T) {
		data := []byte("line one\nline two\nline three\n")
		root := chunkTree(data)

		require.NotNil(t, root)
		assert.Equal(t, string(data), nodeString(root))
		assert.Equal(t, len(data), root.totalWeight())
	})

	t.Run("one leaf per line", func(t *testing.T) {
		root := chunkTree([]byte("a\nb\nc\nd\ne\n"))

		r := &Rope{root: root, size: 10}
		assert.Equal(t, 5, r.LeafCount())
		assert.NoError(t, r.Validate())
	})

	t.Run("leaves own their bytes", func(t *testing.T) {
		data := []byte("mutable\nsource")
		root := chunkTree(data)

		copy(data, bytes.Repeat([]byte{'#'}, len(data)))
		assert.Equal(t, "mutable\nsource", nodeString(root))
	})
}
