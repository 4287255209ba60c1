package checksum

import (
	"encoding/binary"

	"github.com/iamNilotpal/zblock/internal/core/ports"
)

type fletcher2 struct {
	name string
}

func NewFletcher2() *fletcher2 {
	return &fletcher2{name: string(Fletcher2)}
}

// Calculate computes the fletcher2 checksum of data. Unlike fletcher4 it
// consumes 64-bit little-endian words in pairs:
//
//	a += n0; b += n1; c += a; d += b
//
// A trailing group of fewer than 16 bytes is discarded, same flooring
// behavior as fletcher4.
func (f *fletcher2) Calculate(data []byte) [4]uint64 {
	var a, b, c, d uint64
	n := len(data) - len(data)%16
	for i := 0; i < n; i += 16 {
		n0 := binary.LittleEndian.Uint64(data[i:])
		n1 := binary.LittleEndian.Uint64(data[i+8:])
		a += n0
		b += n1
		c += a
		d += b
	}
	return [4]uint64{a, b, c, d}
}

func (f *fletcher2) Verify(data []byte, expected [4]uint64) bool {
	return f.Calculate(data) == expected
}

func (f *fletcher2) NewHasher() ports.ChecksumHasher {
	return &fletcher2Hasher{}
}

func (f *fletcher2) Size() uint8 {
	return 32
}

func (f *fletcher2) Name() string {
	return f.name
}

// fletcher2Hasher carries the accumulator across writes. The spill
// buffer holds up to one incomplete 16-byte group.
type fletcher2Hasher struct {
	a, b, c, d uint64
	spill      [16]byte
	spillN     int
}

func (h *fletcher2Hasher) Write(p []byte) (int, error) {
	written := len(p)

	if h.spillN > 0 {
		n := copy(h.spill[h.spillN:], p)
		h.spillN += n
		p = p[n:]
		if h.spillN < len(h.spill) {
			return written, nil
		}
		h.consume(h.spill[:])
		h.spillN = 0
	}

	n := len(p) - len(p)%16
	for i := 0; i < n; i += 16 {
		h.consume(p[i:])
	}

	h.spillN = copy(h.spill[:], p[n:])
	return written, nil
}

func (h *fletcher2Hasher) Sum() [4]uint64 {
	return [4]uint64{h.a, h.b, h.c, h.d}
}

func (h *fletcher2Hasher) Reset() {
	*h = fletcher2Hasher{}
}

func (h *fletcher2Hasher) consume(group []byte) {
	n0 := binary.LittleEndian.Uint64(group)
	n1 := binary.LittleEndian.Uint64(group[8:])
	h.a += n0
	h.b += n1
	h.c += h.a
	h.d += h.b
}
