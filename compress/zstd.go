package compress

// ZstdCompressor handles Zstandard frames.
//
// The default build uses the pure Go decoder from klauspost/compress. Building
// with the gozstd tag and cgo enabled switches to the libzstd binding from
// valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
