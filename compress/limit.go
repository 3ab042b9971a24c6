package compress

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/nbt/errs"
	"github.com/klauspost/compress/zstd"
)

// limitedReadCloser caps the output of a streaming decompressor. Reading past
// limit bytes fails with errs.ErrDecompressedTooLarge instead of truncating.
type limitedReadCloser struct {
	rc    io.ReadCloser
	name  string
	left  int
	probe [1]byte
}

func newLimitedReadCloser(rc io.ReadCloser, name string, limit int) *limitedReadCloser {
	return &limitedReadCloser{rc: rc, name: name, left: limit}
}

func (l *limitedReadCloser) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if l.left <= 0 {
		// The limit is reached; any further output means the stream is too large.
		n, err := l.rc.Read(l.probe[:])
		if n > 0 {
			return 0, fmt.Errorf("%s: %w", l.name, errs.ErrDecompressedTooLarge)
		}

		return 0, l.mapError(err)
	}

	if len(p) > l.left {
		p = p[:l.left]
	}
	n, err := l.rc.Read(p)
	l.left -= n

	return n, l.mapError(err)
}

func (l *limitedReadCloser) Close() error {
	return l.rc.Close()
}

func (l *limitedReadCloser) mapError(err error) error {
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
		return fmt.Errorf("%s: %w", l.name, errs.ErrDecompressedTooLarge)
	}

	return err
}
