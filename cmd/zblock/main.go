// Command zblock operates on single blocks carved out of a storage pool.
//
// With one argument it prints the block's checksum:
//
//	zblock <file-path>
//
// With two it expands a framed compressed block to stdout:
//
//	zblock <file-path> <uncompressed-size>
//
// The uncompressed size is usually the pool's block size (131072 by
// default); decompression fails if the payload does not expand to
// exactly that many bytes. Every failure is fatal: a diagnostic goes to
// stderr and the process exits non-zero.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/iamNilotpal/zblock/config"
	"github.com/iamNilotpal/zblock/internal/core/domain"
	"github.com/iamNilotpal/zblock/internal/core/services/block"
	"github.com/iamNilotpal/zblock/pkg/errors"
	"github.com/iamNilotpal/zblock/pkg/logger"
)

func main() {
	cfg := config.DefaultConfig()
	if path := os.Getenv("ZBLOCK_CONFIG"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "zblock: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := logger.New("zblock", cfg.Debug)
	defer logger.Sync()

	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <file-path> [uncompressed-size]\n", os.Args[0])
		os.Exit(2)
	}

	service, err := block.New(
		&block.Options{
			ChunkSize: cfg.ChunkSize,
			Checksum: &domain.ChecksumOptions{
				Algorithm: domain.ChecksumAlgorithm(cfg.Checksum.Algorithm),
			},
			Compression: &domain.CompressionOptions{
				Algorithm:     domain.CompressionAlgorithm(cfg.Compression.Algorithm),
				MaxOutputSize: cfg.Compression.MaxOutputSize,
			},
		},
		logger,
	)
	if err != nil {
		if errors.IsValidationError(err) {
			err := errors.AsValidationError(err)
			logger.Errorw("create block service error", "field", err.Field, "value", err.Value, "error", err.Err)
		} else {
			logger.Errorw("create block service error", "error", err)
		}
		os.Exit(1)
	}
	defer service.Close()

	filePath := os.Args[1]

	if len(os.Args) == 2 {
		sum, err := service.ChecksumFile(filePath)
		if err != nil {
			logger.Errorw("checksum error", "file", filePath, "error", err)
			os.Exit(1)
		}
		fmt.Println(sum)
		return
	}

	size, err := strconv.ParseUint(os.Args[2], 10, 32)
	if err != nil || size == 0 {
		logger.Errorw("uncompressed size must be a positive integer", "value", os.Args[2])
		os.Exit(2)
	}

	out, err := service.DecompressFile(filePath, uint32(size))
	if err != nil {
		if errors.IsValidationError(err) {
			err := errors.AsValidationError(err)
			logger.Errorw("decompress error", "field", err.Field, "value", err.Value, "error", err.Err)
		} else {
			logger.Errorw("decompress error", "file", filePath, "error", err)
		}
		os.Exit(1)
	}

	// Raw bytes only: no framing, no trailing newline.
	if _, err := os.Stdout.Write(out); err != nil {
		logger.Errorw("write output error", "error", err)
		os.Exit(1)
	}
}
