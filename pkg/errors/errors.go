package errors

import (
	"fmt"
	"time"
)

// ErrorCategory classifies different types of errors that can occur
// while reading and decoding blocks. This helps in proper error
// handling, monitoring, and debugging of the tooling.
type ErrorCategory int

const (
	// ErrorStorage indicates errors related to underlying storage operations
	// such as file I/O, permissions, or filesystem issues.
	ErrorStorage ErrorCategory = iota + 1

	// ErrorFraming indicates a malformed block frame, such as a length
	// prefix that declares more payload than the buffer holds.
	ErrorFraming

	// ErrorCompression indicates errors during block decompression,
	// such as corrupt compressed data or a decompressed length that does
	// not match the declared block size.
	ErrorCompression

	// ErrorChecksum indicates errors while computing block checksums.
	ErrorChecksum
)

// String returns the string representation of the error category.
// This is useful for logging, metrics, and error reporting.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorStorage:
		return "storage"
	case ErrorFraming:
		return "framing"
	case ErrorCompression:
		return "compression"
	case ErrorChecksum:
		return "checksum"
	default:
		return "unknown"
	}
}

// BlockError is the operational error type for block operations. Every
// failure is fatal to the invoking run: there is no retry or
// partial-result path, so the error exists to carry diagnostics, not to
// drive recovery.
type BlockError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

func NewBlockError(category ErrorCategory, operation string, err error) *BlockError {
	return &BlockError{
		Err:       err,
		Operation: operation,
		Category:  category,
		Timestamp: time.Now(),
	}
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}
