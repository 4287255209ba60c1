package checksum

import (
	"fmt"

	"github.com/iamNilotpal/zblock/internal/core/domain"
	"github.com/iamNilotpal/zblock/internal/core/ports"
)

const (
	// Fletcher4 is the streaming checksum over 32-bit little-endian words
	// with four nested 64-bit running sums. The default block checksum.
	Fletcher4 domain.ChecksumAlgorithm = "fletcher4"

	// Fletcher2 is the older variant over pairs of 64-bit little-endian words.
	Fletcher2 domain.ChecksumAlgorithm = "fletcher2"

	// SHA256 provides cryptographic block checksums (256-bit).
	SHA256 domain.ChecksumAlgorithm = "sha256"
)

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{
		Algorithm: Fletcher4,
	}
}

func Validate(input *domain.ChecksumOptions) error {
	if input.Custom == nil {
		switch input.Algorithm {
		case Fletcher4, Fletcher2, SHA256:
		default:
			return fmt.Errorf("unsupported checksum algorithm: %s", input.Algorithm)
		}
	}
	return nil
}

// New returns the checksum implementation selected by opts.
// A Custom port takes precedence over the named algorithm.
func New(opts *domain.ChecksumOptions) (ports.ChecksumPort, error) {
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
	case Fletcher2:
		return NewFletcher2(), nil
	case SHA256:
		return NewSHA256(), nil
	default:
		return NewFletcher4(), nil
	}
}
