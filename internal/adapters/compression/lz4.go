package compression

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

type lz4Block struct {
	name string
}

func NewLZ4() *lz4Block {
	return &lz4Block{name: string(LZ4)}
}

// Decompress expands a raw lz4 block payload into exactly outputSize
// bytes. The lz4 block format cannot always detect its own end (00 00 00
// is a valid sequence), so the declared size is the only reliable bound;
// a decode that yields any other length is rejected.
func (l *lz4Block) Decompress(src []byte, outputSize uint32) ([]byte, error) {
	dst := make([]byte, outputSize)

	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}

	if uint32(n) != outputSize {
		return nil, fmt.Errorf("lz4 decompress: expected %d bytes, got %d", outputSize, n)
	}

	return dst, nil
}

func (l *lz4Block) Close() error {
	return nil
}

func (l *lz4Block) Name() string {
	return l.name
}
