package checksum

import (
	sha256_lib "crypto/sha256"
	"encoding/binary"
	"hash"

	"github.com/iamNilotpal/zblock/internal/core/ports"
)

type sha256 struct {
	name string
}

func NewSHA256() *sha256 {
	return &sha256{name: string(SHA256)}
}

// Calculate returns the SHA-256 digest of data viewed as four big-endian
// 64-bit words, which is how the I/O layer stores cryptographic block
// checksums alongside the fletcher ones.
func (s *sha256) Calculate(data []byte) [4]uint64 {
	sum := sha256_lib.Sum256(data)
	return [4]uint64{
		binary.BigEndian.Uint64(sum[0:8]),
		binary.BigEndian.Uint64(sum[8:16]),
		binary.BigEndian.Uint64(sum[16:24]),
		binary.BigEndian.Uint64(sum[24:32]),
	}
}

func (s *sha256) Verify(data []byte, expected [4]uint64) bool {
	return s.Calculate(data) == expected
}

func (s *sha256) NewHasher() ports.ChecksumHasher {
	return &sha256Hasher{h: sha256_lib.New()}
}

func (s *sha256) Size() uint8 {
	return sha256_lib.Size
}

func (s *sha256) Name() string {
	return s.name
}

type sha256Hasher struct {
	h hash.Hash
}

func (h *sha256Hasher) Write(p []byte) (int, error) {
	return h.h.Write(p)
}

func (h *sha256Hasher) Sum() [4]uint64 {
	sum := h.h.Sum(nil)
	return [4]uint64{
		binary.BigEndian.Uint64(sum[0:8]),
		binary.BigEndian.Uint64(sum[8:16]),
		binary.BigEndian.Uint64(sum[16:24]),
		binary.BigEndian.Uint64(sum[24:32]),
	}
}

func (h *sha256Hasher) Reset() {
	h.h.Reset()
}
