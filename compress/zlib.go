package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/arloliu/nbt/internal/pool"
	"github.com/klauspost/compress/zlib"
)

var zlibWriterPool = sync.Pool{
	New: func() any {
		return zlib.NewWriter(nil)
	},
}

// zlibReaderPool holds readers returned by zlib.NewReader, which implement zlib.Resetter.
var zlibReaderPool sync.Pool

// ZlibCompressor handles zlib (RFC 1950), the compression of region file chunks.
type ZlibCompressor struct{}

var _ Codec = (*ZlibCompressor)(nil)

// NewZlibCompressor creates a new zlib compressor.
func NewZlibCompressor() ZlibCompressor {
	return ZlibCompressor{}
}

// Compress compresses data as a zlib stream.
func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	out := pool.NewByteBuffer(len(data)/2 + 64)

	w, _ := zlibWriterPool.Get().(*zlib.Writer)
	defer zlibWriterPool.Put(w)
	w.Reset(out)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	return out.Bytes(), nil
}

// Decompress decompresses a zlib stream and verifies its Adler-32 checksum.
func (c ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	src := bytes.NewReader(data)

	r, ok := zlibReaderPool.Get().(io.ReadCloser)
	if ok {
		if err := r.(zlib.Resetter).Reset(src, nil); err != nil { //nolint:forcetypeassert
			return nil, fmt.Errorf("zlib decompression failed: %w", err)
		}
	} else {
		var err error
		if r, err = zlib.NewReader(src); err != nil {
			return nil, fmt.Errorf("zlib decompression failed: %w", err)
		}
	}
	defer zlibReaderPool.Put(r)

	return inflate(r, "zlib")
}
