package compression

import (
	"errors"
	"fmt"
)

// Constants from the reference lzjb.c.
const (
	lzjbMatchBits  = 6
	lzjbMatchMin   = 3
	lzjbOffsetMask = (1 << (16 - lzjbMatchBits)) - 1
)

var errLZJBTruncated = errors.New("lzjb decompress: truncated input")

type lzjb struct {
	name string
}

func NewLZJB() *lzjb {
	return &lzjb{name: string(LZJB)}
}

// Decompress expands an lzjb block payload into exactly outputSize
// bytes. The stream is a repeating copymap byte whose bits select, per
// item, either a literal byte or a two-byte (length, offset) back
// reference into the output produced so far. Production stops once
// outputSize bytes exist, so a copy item may be cut short at the end.
func (l *lzjb) Decompress(src []byte, outputSize uint32) ([]byte, error) {
	dst := make([]byte, 0, outputSize)

	var copymap byte
	copymask := 1 << 7
	pos := 0

	for uint32(len(dst)) < outputSize {
		copymask <<= 1
		if copymask == 1<<8 {
			copymask = 1
			if pos >= len(src) {
				return nil, errLZJBTruncated
			}
			copymap = src[pos]
			pos++
		}

		if copymap&byte(copymask) != 0 {
			if pos+1 >= len(src) {
				return nil, errLZJBTruncated
			}
			b0, b1 := src[pos], src[pos+1]
			pos += 2

			mlen := int(b0>>(8-lzjbMatchBits)) + lzjbMatchMin
			offset := (int(b0)<<8 | int(b1)) & lzjbOffsetMask
			if offset == 0 || offset > len(dst) {
				return nil, fmt.Errorf("lzjb decompress: invalid back reference %d at output offset %d", offset, len(dst))
			}

			// The reference may run past its own start: the output grows
			// while it is being read, which is how runs are encoded.
			from := len(dst) - offset
			for i := 0; i < mlen && uint32(len(dst)) < outputSize; i++ {
				dst = append(dst, dst[from])
				from++
			}
		} else {
			if pos >= len(src) {
				return nil, errLZJBTruncated
			}
			dst = append(dst, src[pos])
			pos++
		}
	}

	return dst, nil
}

func (l *lzjb) Close() error {
	return nil
}

func (l *lzjb) Name() string {
	return l.name
}
