package rope

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Property-based tests: each drives the rope with random operations
// while checking the structural invariants and a plain string shadow
// copy of the expected content.

var propertyPayloads = []string{
	"Hello ",
	"world! ",
	"How are ",
	"you ",
	"doing?\n",
	"Let's ",
	"keep ",
	"inserting ",
	"more ",
	"items.\n",
	"\n",
	"a",
	"multi\nline\npayload\n",
	"Test",
}

// checkIntegrity asserts what must hold after every operation: the
// structure is valid, the cached length matches the content, and no
// node's balance factor exceeds the transient cap of two.
func checkIntegrity(t *testing.T, r *Rope, want string) {
	t.Helper()
	require.NoError(t, r.Validate())
	require.Equal(t, want, r.String())
	require.Equal(t, len(want), r.Len())
	require.LessOrEqual(t, maxAbsBalance(r.root), 2)
}

func TestProperty_RandomMutations(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property test in short mode")
	}

	rng := rand.New(rand.NewSource(42))
	r := Empty()
	shadow := ""

	for i := 0; i < 2000; i++ {
		switch rng.Intn(5) {
		case 0: // Append
			s := propertyPayloads[rng.Intn(len(propertyPayloads))]
			r.AppendString(s)
			shadow += s

		case 1: // Prepend
			s := propertyPayloads[rng.Intn(len(propertyPayloads))]
			r.PrependString(s)
			shadow = s + shadow

		case 2: // Insert
			s := propertyPayloads[rng.Intn(len(propertyPayloads))]
			pos := rng.Intn(len(shadow) + 1)
			require.NoError(t, r.InsertString(pos, s))
			shadow = shadow[:pos] + s + shadow[pos:]

		case 3: // Remove
			if len(shadow) > 0 {
				start := rng.Intn(len(shadow))
				n := rng.Intn(len(shadow) - start + 1)
				require.NoError(t, r.Remove(start, n))
				shadow = shadow[:start] + shadow[start+n:]
			}

		case 4: // Cut (must not mutate)
			if len(shadow) > 0 {
				start := rng.Intn(len(shadow))
				end := start + rng.Intn(len(shadow)-start+1)
				cut, err := r.Cut(start, end)
				require.NoError(t, err)
				require.Equal(t, shadow[start:end], cut.String())
			}
		}

		if i%50 == 0 {
			checkIntegrity(t, r, shadow)
		}
	}

	checkIntegrity(t, r, shadow)
}

func TestProperty_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		r := Empty()
		for j := 0; j < rng.Intn(40); j++ {
			r.AppendString(propertyPayloads[rng.Intn(len(propertyPayloads))])
		}

		rebuilt := New(r.String())
		assert.Equal(t, r.String(), rebuilt.String())
		assert.Equal(t, r.Len(), rebuilt.Len())
	}
}

func TestProperty_LengthConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	r := Empty()

	for i := 0; i < 500; i++ {
		s := propertyPayloads[rng.Intn(len(propertyPayloads))]
		pos := 0
		if r.Len() > 0 {
			pos = rng.Intn(r.Len() + 1)
		}
		require.NoError(t, r.InsertString(pos, s))
		require.Equal(t, len(r.String()), r.Len())
	}
}

func TestProperty_SplitInverse(t *testing.T) {
	texts := []string{
		"Hello World",
		"line 1\nline 2\nline 3\n",
		"a",
		"\n",
		strings.Repeat("chunk\n", 300),
	}

	for _, text := range texts {
		for pos := 0; pos <= len(text); pos += 1 + len(text)/37 {
			r := New(text)
			left, right := splitNode(r.root, pos)

			rejoined := merge(left, right)
			require.Equal(t, text, nodeString(rejoined), "split %q at %d", text, pos)
		}
	}
}

func TestProperty_InsertEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	base := "The quick brown fox\njumps over the lazy dog\n"

	for i := 0; i < 200; i++ {
		r := New(base)
		s := propertyPayloads[rng.Intn(len(propertyPayloads))]
		pos := rng.Intn(len(base) + 1)

		require.NoError(t, r.InsertString(pos, s))
		assert.Equal(t, base[:pos]+s+base[pos:], r.String())
	}
}

func TestProperty_RemoveEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	base := "The quick brown fox\njumps over the lazy dog\n"

	for i := 0; i < 200; i++ {
		r := New(base)
		start := rng.Intn(len(base))
		n := rng.Intn(len(base) - start + 1)

		require.NoError(t, r.Remove(start, n))
		assert.Equal(t, base[:start]+base[start+n:], r.String())
	}
}

func TestProperty_CutPurity(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	base := "alpha\nbeta\ngamma\ndelta\nepsilon\n"
	r := New(base)

	for i := 0; i < 200; i++ {
		start := rng.Intn(len(base) + 1)
		end := start + rng.Intn(len(base)-start+1)

		cut, err := r.Cut(start, end)
		require.NoError(t, err)
		assert.Equal(t, base[start:end], cut.String())
		assert.Equal(t, base, r.String(), "cut must not modify the source")
	}
}

func TestProperty_PasteEqualsInsert(t *testing.T) {
	rng := rand.New(rand.NewSource(37))
	base := "paste target content\nwith two lines\n"

	for i := 0; i < 100; i++ {
		payload := propertyPayloads[rng.Intn(len(propertyPayloads))]
		pos := rng.Intn(len(base) + 1)

		pasted := New(base)
		require.NoError(t, pasted.Paste(pos, New(payload)))

		inserted := New(base)
		require.NoError(t, inserted.InsertString(pos, payload))

		assert.Equal(t, inserted.String(), pasted.String())
	}
}

func TestProperty_DeepAppendIntegrity(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property test in short mode")
	}

	r := Empty()
	for i := 0; i < 4096; i++ {
		r.AppendString("x")
	}

	assert.Equal(t, strings.Repeat("x", 4096), r.String())
	assert.NoError(t, r.Validate())
	assert.LessOrEqual(t, maxAbsBalance(r.root), 2)
}
