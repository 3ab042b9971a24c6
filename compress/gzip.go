package compress

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/arloliu/nbt/internal/pool"
	"github.com/klauspost/compress/gzip"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

// gzipReaderPool holds *gzip.Reader values. It has no New func because a
// gzip reader can only be created from a valid header.
var gzipReaderPool sync.Pool

// GzipCompressor handles gzip (RFC 1952), the compression of Java level.dat,
// player data and structure files.
type GzipCompressor struct{}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a new gzip compressor.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{}
}

// Compress compresses data as a single gzip member.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	out := pool.NewByteBuffer(len(data)/2 + 64)

	w, _ := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(w)
	w.Reset(out)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	return out.Bytes(), nil
}

// Decompress decompresses gzip data. Concatenated members are read as one stream.
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	src := bytes.NewReader(data)

	r, ok := gzipReaderPool.Get().(*gzip.Reader)
	if ok {
		if err := r.Reset(src); err != nil {
			return nil, fmt.Errorf("gzip decompression failed: %w", err)
		}
	} else {
		var err error
		if r, err = gzip.NewReader(src); err != nil {
			return nil, fmt.Errorf("gzip decompression failed: %w", err)
		}
	}
	defer gzipReaderPool.Put(r)

	return inflate(r, "gzip")
}
