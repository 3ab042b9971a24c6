//go:build gozstd && cgo

package compress

import (
	"fmt"

	"github.com/arloliu/nbt/errs"
	"github.com/valyala/gozstd"
)

// Compress compresses data using libzstd at level 3.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses Zstandard data using libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(decompressed) > maxDecompressedSize {
		return nil, fmt.Errorf("zstd: %w", errs.ErrDecompressedTooLarge)
	}

	return decompressed, nil
}
