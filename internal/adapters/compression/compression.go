// Package compression provides the block decompressors. Compressed
// blocks carry no self-describing length, so every decompressor takes
// the expected output size and fails when the payload does not expand to
// exactly that many bytes.
package compression

import (
	"fmt"

	"github.com/iamNilotpal/zblock/internal/core/domain"
	"github.com/iamNilotpal/zblock/internal/core/ports"
)

const (
	// LZ4 decompresses raw lz4 block payloads. The default algorithm.
	LZ4 domain.CompressionAlgorithm = "lz4"

	// LZJB decompresses the legacy lzjb block payloads.
	LZJB domain.CompressionAlgorithm = "lzjb"

	// Zstd decompresses zstd block payloads.
	Zstd domain.CompressionAlgorithm = "zstd"
)

// MaxOutputSize is the largest uncompressed block size accepted by
// default: 16 MiB, the filesystem's maximum recordsize.
const MaxOutputSize uint32 = 16 * 1024 * 1024

// Returns recommended decompression settings.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Algorithm:     LZ4,
		MaxOutputSize: MaxOutputSize,
	}
}

func Validate(input *domain.CompressionOptions) error {
	if input.Custom == nil {
		switch input.Algorithm {
		case LZ4, LZJB, Zstd:
		default:
			return fmt.Errorf("unsupported compression algorithm: %s", input.Algorithm)
		}
	}

	if input.MaxOutputSize > MaxOutputSize {
		return fmt.Errorf(
			"max output size must be between 1 and %d, got %d", MaxOutputSize, input.MaxOutputSize,
		)
	}

	return nil
}

// New returns the decompressor selected by opts.
// A Custom port takes precedence over the named algorithm.
func New(opts *domain.CompressionOptions) (ports.DecompressorPort, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if opts.Custom != nil {
		return opts.Custom, nil
	}

	if err := Validate(opts); err != nil {
		return nil, err
	}

	switch opts.Algorithm {
	case LZJB:
		return NewLZJB(), nil
	case Zstd:
		return NewZstd()
	default:
		return NewLZ4(), nil
	}
}
