package rope

import "bytes"

// Chunking policy: incoming byte payloads are carved into leaf-sized
// chunks before they enter the tree. Chunk boundaries prefer newlines
// so that visually adjacent lines land in single leaves, which keeps
// typical text from fragmenting.

// DefaultChunkSize is the chunk size used before any payload-based
// adjustment has happened.
const DefaultChunkSize = 100

// chunkSizeFor returns the chunk size tuned for a payload of the given
// byte length. Larger payloads get coarser chunks.
func chunkSizeFor(payload int) int {
	switch {
	case payload <= 1000:
		return 10
	case payload <= 1000000:
		return 100
	case payload <= 10000000:
		return 1000
	case payload <= 100000000:
		return 10000
	default:
		return 100000
	}
}

// splitIntoChunks carves data into an ordered sequence of chunks whose
// concatenation is data. Starting from each offset, the chunk runs to
// just past the next newline, or to the end of input when no newline
// remains. Chunk length is NOT capped at the configured chunk size;
// the size is a tuning parameter, not a clamp.
//
// The returned slices alias data; leaf construction copies them.
func splitIntoChunks(data []byte) [][]byte {
	if len(data) == 0 {
		return nil
	}

	chunks := make([][]byte, 0, bytes.Count(data, []byte{'\n'})+1)
	start := 0
	for start < len(data) {
		end := len(data)
		if k := bytes.IndexByte(data[start:], '\n'); k >= 0 {
			end = start + k + 1 // newline inclusive
		}
		chunks = append(chunks, data[start:end])
		start = end
	}
	return chunks
}

// chunkTree builds a subtree from data by chunking it and merging the
// resulting leaves left to right. Returns nil for empty data.
func chunkTree(data []byte) node {
	var root node
	for _, chunk := range splitIntoChunks(data) {
		root = merge(root, newLeaf(chunk))
	}
	return root
}
