// Package block is the service layer over the checksum and compression
// adapters: it reads block files, computes their checksums, and expands
// framed compressed payloads.
package block

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/iamNilotpal/zblock/internal/adapters/checksum"
	"github.com/iamNilotpal/zblock/internal/adapters/compression"
	"github.com/iamNilotpal/zblock/internal/core/domain"
	"github.com/iamNilotpal/zblock/internal/core/ports"
	"github.com/iamNilotpal/zblock/pkg/errors"
	"github.com/iamNilotpal/zblock/pkg/fs"
	"github.com/iamNilotpal/zblock/pkg/pool"
	"go.uber.org/zap"
)

// Options holds the configuration parameters for creating a Service.
type Options struct {
	// Checksum selects and configures the checksum algorithm.
	// Nil applies the defaults (fletcher4).
	Checksum *domain.ChecksumOptions

	// Compression selects and configures the block decompressor.
	// Nil applies the defaults (lz4).
	Compression *domain.CompressionOptions

	// ChunkSize is the read size for streaming checksums. Must be a
	// multiple of 16 so every chunk holds whole words. Zero applies
	// DefaultChunkSize.
	ChunkSize uint32
}

// Service wires the filesystem, checksum and decompression ports
// together. It holds no per-call state: every operation reads its input,
// produces its result and leaves nothing behind, so a single Service can
// be shared freely.
type Service struct {
	options *Options

	fs           ports.FileSystemPort   // Handles file system operations.
	checksum     ports.ChecksumPort     // Computes block checksums.
	decompressor ports.DecompressorPort // Expands compressed payloads.

	bufferPool *pool.BufferPool   // Read buffers for the streaming checksum path.
	logger     *zap.SugaredLogger // Diagnostics; writes to stderr only.
}

// New creates a Service from opts. Nil opts and nil sub-options apply
// the documented defaults.
func New(opts *Options, logger *zap.SugaredLogger) (*Service, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if err := Validate(opts); err != nil {
		return nil, err
	}
	opts = prepareDefaults(opts)

	ck, err := checksum.New(opts.Checksum)
	if err != nil {
		return nil, err
	}

	dc, err := compression.New(opts.Compression)
	if err != nil {
		return nil, err
	}

	return &Service{
		fs:           fs.NewLocalFileSystem(),
		checksum:     ck,
		decompressor: dc,
		options:      opts,
		logger:       logger,
		bufferPool:   pool.NewBufferPool(int(opts.ChunkSize)),
	}, nil
}

// Checksum computes the configured checksum over data. Purely
// functional: data is never mutated or retained, identical input always
// yields an identical tuple, and every byte sequence (including empty)
// has a result.
func (s *Service) Checksum(data []byte) domain.Checksum {
	return domain.Checksum(s.checksum.Calculate(data))
}

// ChecksumFile streams the file at path through the checksum
// accumulator in pooled chunks. Because each chunk starts from the
// previous chunk's final sums, the result is identical to a one-shot
// Checksum over the whole file.
func (s *Service) ChecksumFile(path string) (domain.Checksum, error) {
	file, err := s.fs.Open(path)
	if err != nil {
		return domain.Checksum{}, errors.NewBlockError(errors.ErrorStorage, "open block file", err)
	}
	defer file.Close()

	hasher := s.checksum.NewHasher()
	buf := s.bufferPool.Get()
	defer s.bufferPool.Put(buf)

	for {
		n, err := file.Read(*buf)
		if n > 0 {
			hasher.Write((*buf)[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.Checksum{}, errors.NewBlockError(errors.ErrorStorage, "read block file", err)
		}
	}

	return domain.Checksum(hasher.Sum()), nil
}

// ParseFrame decodes a framed compressed block: a 4-byte big-endian
// length prefix followed by that many payload bytes. Bytes past the
// declared length are slack from the fixed block size and are ignored.
// The payload aliases raw; nothing is copied.
func (s *Service) ParseFrame(raw []byte) (*domain.BlockFrame, error) {
	if len(raw) < 4 {
		return nil, errors.NewBlockError(
			errors.ErrorFraming, "parse frame",
			fmt.Errorf("buffer holds %d bytes, need at least 4 for the length prefix", len(raw)),
		)
	}

	size := binary.BigEndian.Uint32(raw)
	if uint64(size) > uint64(len(raw)-4) {
		return nil, errors.NewBlockError(
			errors.ErrorFraming, "parse frame",
			fmt.Errorf("declared payload of %d bytes exceeds the %d remaining", size, len(raw)-4),
		)
	}

	return &domain.BlockFrame{
		CompressedSize: size,
		Payload:        raw[4 : 4+size],
	}, nil
}

// Decompress parses the frame in raw and expands its payload to exactly
// outputSize bytes through the configured decompressor.
func (s *Service) Decompress(raw []byte, outputSize uint32) ([]byte, error) {
	if err := s.validateOutputSize(outputSize); err != nil {
		return nil, err
	}

	frame, err := s.ParseFrame(raw)
	if err != nil {
		return nil, err
	}

	s.logger.Debugw(
		"decompressing block",
		"algorithm", s.decompressor.Name(),
		"compressedSize", frame.CompressedSize,
		"outputSize", outputSize,
	)

	out, err := s.decompressor.Decompress(frame.Payload, outputSize)
	if err != nil {
		return nil, errors.NewBlockError(errors.ErrorCompression, "decompress block", err)
	}

	return out, nil
}

// DecompressFile reads the framed block at path and expands it.
func (s *Service) DecompressFile(path string, outputSize uint32) ([]byte, error) {
	raw, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, errors.NewBlockError(errors.ErrorStorage, "read block file", err)
	}
	return s.Decompress(raw, outputSize)
}

// Close releases decompressor resources. The service must not be used
// after Close.
func (s *Service) Close() error {
	return s.decompressor.Close()
}

func (s *Service) validateOutputSize(outputSize uint32) error {
	maxOutput := compression.MaxOutputSize
	if s.options.Compression != nil && s.options.Compression.MaxOutputSize != 0 {
		maxOutput = s.options.Compression.MaxOutputSize
	}

	if outputSize == 0 || outputSize > maxOutput {
		return errors.NewValidationError(
			"outputSize", outputSize,
			fmt.Errorf("uncompressed size must be between 1 and %d", maxOutput),
		)
	}
	return nil
}
