package block

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/iamNilotpal/zblock/internal/core/domain"
	"github.com/iamNilotpal/zblock/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubDecompressor records what the service hands it, so tests can
// assert the framing layer in isolation.
type stubDecompressor struct {
	gotSrc  []byte
	gotSize uint32
}

func (s *stubDecompressor) Decompress(src []byte, outputSize uint32) ([]byte, error) {
	s.gotSrc = append([]byte(nil), src...)
	s.gotSize = outputSize
	return make([]byte, outputSize), nil
}

func (s *stubDecompressor) Close() error { return nil }

func (s *stubDecompressor) Name() string { return "stub" }

func newTestService(t *testing.T, opts *Options) *Service {
	t.Helper()

	svc, err := New(opts, zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestParseFrameExtractsDeclaredPayload(t *testing.T) {
	svc := newTestService(t, nil)

	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x42}
	raw := append([]byte{0x00, 0x00, 0x00, 0x05}, payload...)
	raw = append(raw, 0x99, 0x99, 0x99) // slack past the declared length

	frame, err := svc.ParseFrame(raw)
	require.NoError(t, err)
	require.Equal(t, uint32(5), frame.CompressedSize)
	require.Equal(t, payload, frame.Payload)
}

func TestParseFrameBigEndianPrefix(t *testing.T) {
	svc := newTestService(t, nil)

	raw := make([]byte, 4+256)
	binary.BigEndian.PutUint32(raw, 256)
	frame, err := svc.ParseFrame(raw)
	require.NoError(t, err)
	require.Equal(t, uint32(256), frame.CompressedSize)
}

func TestParseFrameErrors(t *testing.T) {
	svc := newTestService(t, nil)

	// Shorter than the length prefix itself.
	_, err := svc.ParseFrame([]byte{0x00, 0x00, 0x05})
	require.Error(t, err)

	// Prefix declares more payload than the buffer holds.
	_, err = svc.ParseFrame([]byte{0x00, 0x00, 0x00, 0x10, 0x01, 0x02})
	require.Error(t, err)

	var be *errors.BlockError
	require.ErrorAs(t, err, &be)
	require.Equal(t, errors.ErrorFraming, be.Category)
}

// The framing layer must hand the decompressor exactly the declared
// payload and the caller's expected size, nothing else.
func TestDecompressRoutesPayloadToCollaborator(t *testing.T) {
	stub := &stubDecompressor{}
	svc := newTestService(t, &Options{
		Compression: &domain.CompressionOptions{Custom: stub},
	})

	payload := []byte{1, 2, 3, 4, 5}
	raw := append([]byte{0x00, 0x00, 0x00, 0x05}, payload...)
	raw = append(raw, 0xAA, 0xBB) // ignored

	out, err := svc.Decompress(raw, 128)
	require.NoError(t, err)
	require.Len(t, out, 128)
	require.Equal(t, payload, stub.gotSrc)
	require.Equal(t, uint32(128), stub.gotSize)
}

func TestDecompressRejectsBadOutputSize(t *testing.T) {
	svc := newTestService(t, &Options{
		Compression: &domain.CompressionOptions{Custom: &stubDecompressor{}},
	})

	_, err := svc.Decompress([]byte{0, 0, 0, 0}, 0)
	require.True(t, errors.IsValidationError(err))

	_, err = svc.Decompress([]byte{0, 0, 0, 0}, 64*1024*1024)
	require.True(t, errors.IsValidationError(err))
}

func TestDecompressFileRoundTrip(t *testing.T) {
	stub := &stubDecompressor{}
	svc := newTestService(t, &Options{
		Compression: &domain.CompressionOptions{Custom: stub},
	})

	payload := []byte("compressed bytes")
	raw := make([]byte, 4, 4+len(payload))
	binary.BigEndian.PutUint32(raw, uint32(len(payload)))
	raw = append(raw, payload...)

	path := filepath.Join(t.TempDir(), "block.bin")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	out, err := svc.DecompressFile(path, domain.DefaultBlockSize)
	require.NoError(t, err)
	require.Len(t, out, int(domain.DefaultBlockSize))
	require.Equal(t, payload, stub.gotSrc)
}

func TestDecompressFileMissing(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.DecompressFile(filepath.Join(t.TempDir(), "absent"), 128)
	var be *errors.BlockError
	require.ErrorAs(t, err, &be)
	require.Equal(t, errors.ErrorStorage, be.Category)
}

func TestChecksumMatchesReferenceTuple(t *testing.T) {
	svc := newTestService(t, nil)

	sum := svc.Checksum([]byte{
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
	})
	require.Equal(t, domain.Checksum{3, 4, 5, 6}, sum)
	require.Equal(t, "(3, 4, 5, 6)", sum.String())
}

// Streaming a file through small pooled chunks must equal the one-shot
// checksum of its contents, including when the file length is not a
// multiple of the chunk or word size.
func TestChecksumFileMatchesOneShot(t *testing.T) {
	svc := newTestService(t, &Options{ChunkSize: MinChunkSize})

	data := make([]byte, 1003)
	for i := range data {
		data[i] = byte(i * 13)
	}

	path := filepath.Join(t.TempDir(), "block.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	fromFile, err := svc.ChecksumFile(path)
	require.NoError(t, err)
	require.Equal(t, svc.Checksum(data), fromFile)
}

func TestChecksumFileMissing(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.ChecksumFile(filepath.Join(t.TempDir(), "absent"))
	var be *errors.BlockError
	require.ErrorAs(t, err, &be)
	require.Equal(t, errors.ErrorStorage, be.Category)
}

func TestValidateRejectsBadOptions(t *testing.T) {
	_, err := New(&Options{ChunkSize: 10}, zap.NewNop().Sugar())
	require.True(t, errors.IsValidationError(err))

	_, err = New(&Options{
		Checksum: &domain.ChecksumOptions{Algorithm: "md5"},
	}, zap.NewNop().Sugar())
	require.True(t, errors.IsValidationError(err))

	_, err = New(&Options{
		Compression: &domain.CompressionOptions{Algorithm: "gzip"},
	}, zap.NewNop().Sugar())
	require.True(t, errors.IsValidationError(err))
}
