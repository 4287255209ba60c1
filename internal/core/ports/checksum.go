package ports

// Defines an interface for calculating and verifying block checksums.
type ChecksumPort interface {
	// Calculates the four 64-bit running sums for the provided data.
	// The specific checksum algorithm used depends on the implementation.
	// Returns the calculated (A, B, C, D) tuple.
	Calculate(data []byte) [4]uint64

	// Validates whether the provided data matches the expected checksum.
	// Returns true if the calculated checksum of the data matches the
	// provided tuple, false otherwise.
	Verify(data []byte, expected [4]uint64) bool

	// NewHasher returns a fresh streaming accumulator for this algorithm.
	NewHasher() ChecksumHasher

	// Size returns the checksum size in bytes.
	Size() uint8

	// Name returns the algorithm name.
	Name() string
}

// ChecksumHasher accumulates a checksum incrementally. Feeding a buffer
// through Write in arbitrary chunk sizes must yield the same result as a
// single Calculate over the concatenation: each chunk starts from the
// previous chunk's final accumulator state (carry-forward), which is the
// only sound way to split these checksums since the later sums depend on
// cumulative history, not local sums.
type ChecksumHasher interface {
	// Write feeds more bytes into the accumulator. Never fails; the
	// error return exists to satisfy io.Writer.
	Write(p []byte) (int, error)

	// Sum returns the current (A, B, C, D) tuple. Buffered bytes that do
	// not form a complete word are discarded, matching the one-shot
	// truncation rule. Sum does not consume the accumulator state.
	Sum() [4]uint64

	// Reset returns the accumulator to its initial zero state.
	Reset()
}
