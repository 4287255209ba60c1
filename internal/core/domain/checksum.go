package domain

import (
	"fmt"

	"github.com/iamNilotpal/zblock/internal/core/ports"
)

// ChecksumAlgorithm represents supported block checksum algorithms.
type ChecksumAlgorithm string

// Checksum is the 256-bit result of a block checksum: four independent
// 64-bit running sums named A, B, C and D. For fletcher checksums each
// sum is held modulo 2^64 and wraps silently on overflow; that wraparound
// is part of the on-disk format, not an error condition. A Checksum is
// immutable once produced.
type Checksum [4]uint64

// String renders the checksum the way the recovery tooling prints it:
// ordered, parenthesized decimal sums.
func (c Checksum) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", c[0], c[1], c[2], c[3])
}

// ChecksumOptions defines configuration for block checksum computation.
type ChecksumOptions struct {
	// Algorithm specifies which checksum algorithm to use.
	// Defaults to Fletcher4 if not specified.
	Algorithm ChecksumAlgorithm

	// Custom allows using a custom ChecksumPort implementation.
	// If provided, it takes precedence over Algorithm.
	Custom ports.ChecksumPort
}
