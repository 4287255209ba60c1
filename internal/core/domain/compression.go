package domain

import (
	"github.com/iamNilotpal/zblock/internal/core/ports"
)

// CompressionAlgorithm represents supported block compression algorithms.
type CompressionAlgorithm string

// CompressionOptions configures how compressed block payloads are
// decompressed. The decompression routine itself is an injected
// collaborator; these options only select and bound it.
type CompressionOptions struct {
	// Algorithm specifies which decompressor to use for block payloads.
	// Defaults to LZ4 if not specified.
	Algorithm CompressionAlgorithm

	// Custom allows using a custom DecompressorPort implementation.
	// If provided, it takes precedence over Algorithm.
	Custom ports.DecompressorPort

	// MaxOutputSize bounds the caller-declared uncompressed size.
	// Guards against allocating absurd output buffers from a corrupt
	// or hostile size argument. Zero applies the default bound.
	MaxOutputSize uint32
}
