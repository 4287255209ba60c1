package compression

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// zstdBlock implements DecompressorPort for zstd-compressed block
// payloads. The decoder instance is thread-safe and reused across calls.
type zstdBlock struct {
	name    string
	decoder *zstd.Decoder
}

// NewZstd creates a zstd block decompressor.
//
// Returns an error if the decoder initialization fails.
func NewZstd() (*zstdBlock, error) {
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return &zstdBlock{name: string(Zstd), decoder: decoder}, nil
}

// Decompress restores the original block from its compressed form and
// enforces the declared output size.
//
// Returns an error if:
// - The input data is not valid zstd compressed data
// - The decompressed length does not match outputSize
func (z *zstdBlock) Decompress(src []byte, outputSize uint32) ([]byte, error) {
	decompressed, err := z.decoder.DecodeAll(src, make([]byte, 0, outputSize))
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}

	if uint32(len(decompressed)) != outputSize {
		return nil, fmt.Errorf("zstd decompress: expected %d bytes, got %d", outputSize, len(decompressed))
	}

	return decompressed, nil
}

// Close releases the decoder. After closing, the instance cannot be used
// for decompression.
func (z *zstdBlock) Close() error {
	z.decoder.Close()
	return nil
}

func (z *zstdBlock) Name() string {
	return z.name
}
