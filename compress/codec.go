package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/nbt/errs"
	"github.com/arloliu/nbt/format"
	"github.com/arloliu/nbt/internal/pool"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// MaxDecompressedSize is the largest output any decompressor in this package
// will produce. Larger outputs fail with errs.ErrDecompressedTooLarge.
const MaxDecompressedSize = 256 * 1024 * 1024

// maxDecompressedSize is the limit in effect; tests lower it.
var maxDecompressedSize = MaxDecompressedSize

// Compressor compresses a complete NBT document.
type Compressor interface {
	// Compress compresses data and returns a newly allocated result.
	// The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a complete NBT document from its compressed form.
//
// Example:
//
//	d, err := compress.CreateDecompressor(format.CompressionGzip)
//	raw, err := d.Decompress(levelDat)
//
// Implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data and returns the original bytes.
	//
	// Returns an error if data is corrupted, was produced by a different
	// algorithm, or would expand past MaxDecompressedSize. The returned slice
	// is owned by the caller, except for the no-op decompressor which returns
	// data itself.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the given compression type.
//
// Returns errs.ErrUnknownCompression for an unsupported type.
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(), nil
	case format.CompressionZlib:
		return NewZlibCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
	}
}

// CreateDecompressor creates a Decompressor for the given compression type.
func CreateDecompressor(compressionType format.CompressionType) (Decompressor, error) {
	return CreateCodec(compressionType)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionGzip: NewGzipCompressor(),
	format.CompressionZlib: NewZlibCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a shared built-in Codec for the given compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
}

// Decompress detects the compression of data with Detect and decompresses it.
// Data that is not recognized as compressed is returned unchanged.
func Decompress(data []byte) ([]byte, error) {
	codec, err := GetCodec(Detect(data))
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}

// NewReader wraps r in a streaming decompressor for the given compression type.
//
// Gzip, zlib, zstd and s2 are decompressed incrementally, and reading more
// than MaxDecompressedSize bytes from them fails with
// errs.ErrDecompressedTooLarge. LZ4 blocks carry no framing, so r is read to
// the end and decompressed in one go under the same limit.
//
// S2 input must use the framed stream format written by s2.NewWriter. The
// blocks produced by S2Compressor.Compress are not accepted here; decode them
// with S2Compressor.Decompress.
func NewReader(r io.Reader, compressionType format.CompressionType) (io.ReadCloser, error) {
	switch compressionType {
	case format.CompressionNone:
		return io.NopCloser(r), nil
	case format.CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}

		return newLimitedReadCloser(zr, "gzip", maxDecompressedSize), nil
	case format.CompressionZlib:
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, err
		}

		return newLimitedReadCloser(zr, "zlib", maxDecompressedSize), nil
	case format.CompressionZstd:
		dec, err := zstd.NewReader(r,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(MaxDecompressedSize),
		)
		if err != nil {
			return nil, err
		}

		return newLimitedReadCloser(dec.IOReadCloser(), "zstd", maxDecompressedSize), nil
	case format.CompressionS2:
		return newLimitedReadCloser(io.NopCloser(s2.NewReader(r)), "s2", maxDecompressedSize), nil
	case format.CompressionLZ4:
		buf := pool.GetDocumentBuffer()
		defer pool.PutDocumentBuffer(buf)

		if _, err := buf.ReadFromLimit(r, maxDecompressedSize); err != nil {
			return nil, limitError("lz4", err)
		}

		out, err := NewLZ4Compressor().Decompress(buf.Bytes())
		if err != nil {
			return nil, err
		}

		return io.NopCloser(bytes.NewReader(out)), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
	}
}

// inflate drains a streaming decompressor into a pooled buffer and returns a
// caller-owned copy of the result.
func inflate(r io.Reader, name string) ([]byte, error) {
	buf := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(buf)

	if _, err := buf.ReadFromLimit(r, maxDecompressedSize); err != nil {
		return nil, limitError(name, err)
	}

	return bytes.Clone(buf.Bytes()), nil
}

func limitError(name string, err error) error {
	if errors.Is(err, pool.ErrSizeLimit) {
		return fmt.Errorf("%s: %w", name, errs.ErrDecompressedTooLarge)
	}

	return fmt.Errorf("%s decompression failed: %w", name, err)
}
