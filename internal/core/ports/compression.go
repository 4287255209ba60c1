package ports

// Defines the interface for block decompression operations.
// This allows us to swap decompression algorithms without changing core logic.
//
// Decompression of a block requires the expected output size up front:
// the on-disk block formats carry no terminator, so the routine cannot
// discover the uncompressed length on its own.
type DecompressorPort interface {
	// Decompress expands src into exactly outputSize bytes.
	// Returns an error if src is not valid for the algorithm or if the
	// actual decompressed length does not match outputSize.
	Decompress(src []byte, outputSize uint32) ([]byte, error)

	// Close cleans up decompressor resources.
	Close() error

	// Name returns the algorithm name.
	Name() string
}
