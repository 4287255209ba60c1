package compression

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Streams below are hand-assembled against the reference lzjb.c layout:
// a copymap byte precedes each run of eight items; a set bit means a
// two-byte back reference where the top 6 bits of the first byte hold
// length-3 and the remaining 10 bits hold the offset.

func TestLZJBLiterals(t *testing.T) {
	src := []byte{0x00, 'a', 'b', 'c'}
	out, err := NewLZJB().Decompress(src, 3)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), out)
}

func TestLZJBBackReference(t *testing.T) {
	// Three literals, then a copy of length 6 at offset 3: the fourth
	// item's copymap bit is 0x08, b0 = 3<<2 (length 6), b1 = 3.
	src := []byte{0x08, 'a', 'b', 'c', 0x0C, 0x03}
	out, err := NewLZJB().Decompress(src, 9)
	require.NoError(t, err)
	require.Equal(t, []byte("abcabcabc"), out)
}

func TestLZJBOverlappingRun(t *testing.T) {
	// A reference with offset 1 reads the output as it grows,
	// producing a run of the previous byte.
	src := []byte{0x02, 'x', 0x04, 0x01}
	out, err := NewLZJB().Decompress(src, 5)
	require.NoError(t, err)
	require.Equal(t, []byte("xxxxx"), out)
}

func TestLZJBStopsAtOutputSize(t *testing.T) {
	// Copy of length 6 but only 2 bytes of output still wanted: the
	// copy is cut short at the declared size.
	src := []byte{0x08, 'a', 'b', 'c', 0x0C, 0x03}
	out, err := NewLZJB().Decompress(src, 5)
	require.NoError(t, err)
	require.Equal(t, []byte("abcab"), out)
}

func TestLZJBTruncatedInput(t *testing.T) {
	l := NewLZJB()

	_, err := l.Decompress([]byte{0x00, 'a'}, 3)
	require.ErrorIs(t, err, errLZJBTruncated)

	_, err = l.Decompress([]byte{}, 1)
	require.ErrorIs(t, err, errLZJBTruncated)

	// A copy item needs two bytes; only one remains.
	_, err = l.Decompress([]byte{0x01, 0x0C}, 4)
	require.ErrorIs(t, err, errLZJBTruncated)
}

func TestLZJBInvalidBackReference(t *testing.T) {
	// First item is a copy but no output exists yet to reference.
	_, err := NewLZJB().Decompress([]byte{0x01, 0x04, 0x02}, 4)
	require.Error(t, err)
}

func TestLZJBZeroOutput(t *testing.T) {
	out, err := NewLZJB().Decompress(nil, 0)
	require.NoError(t, err)
	require.Empty(t, out)
}
