package block

import (
	"fmt"

	"github.com/iamNilotpal/zblock/internal/adapters/checksum"
	"github.com/iamNilotpal/zblock/internal/adapters/compression"
	"github.com/iamNilotpal/zblock/pkg/errors"
)

func Validate(opts *Options) error {
	if opts.ChunkSize != 0 {
		if opts.ChunkSize < MinChunkSize || opts.ChunkSize%MinChunkSize != 0 {
			return errors.NewValidationError(
				"chunkSize", opts.ChunkSize,
				fmt.Errorf("chunk size must be a multiple of %d", MinChunkSize),
			)
		}
	}

	if opts.Checksum != nil {
		if err := checksum.Validate(opts.Checksum); err != nil {
			return errors.NewValidationError("checksum", opts.Checksum.Algorithm, err)
		}
	}

	if opts.Compression != nil {
		if err := compression.Validate(opts.Compression); err != nil {
			return errors.NewValidationError("compression", opts.Compression.Algorithm, err)
		}
	}

	return nil
}
