package domain

// DefaultBlockSize is the usual uncompressed size of a data block:
// 128 KiB, the filesystem's default recordsize. Callers decompressing a
// block from a pool with default settings pass this as the expected
// output size.
const DefaultBlockSize uint32 = 128 * 1024

// BlockFrame is a parsed on-disk compressed block: a 4-byte big-endian
// length prefix followed by exactly that many bytes of compressed
// payload. Bytes past the declared length are slack (blocks are stored
// padded to fixed sizes) and carry no meaning.
type BlockFrame struct {
	// CompressedSize is the payload length declared by the prefix.
	CompressedSize uint32

	// Payload is the compressed bytes, sliced from the caller's buffer.
	// It is exactly CompressedSize bytes long and is not copied; the
	// frame is only valid as long as the backing buffer is.
	Payload []byte
}
