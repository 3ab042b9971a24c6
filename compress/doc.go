// Package compress decompresses the containers NBT documents are stored in.
//
// NBT itself has no compression. Java edition wraps level.dat, player data
// and structure files in gzip, and stores region file chunks as zlib. Tooling
// around both editions also ships NBT in zstd, S2 or raw LZ4 blocks. This
// package provides one Codec per algorithm:
//
//   - None: data passes through unchanged.
//   - Gzip: klauspost/compress/gzip.
//   - Zlib: klauspost/compress/zlib.
//   - Zstd: klauspost/compress/zstd, or valyala/gozstd with the gozstd build tag.
//   - S2: klauspost/compress/s2.
//   - LZ4: pierrec/lz4 block format.
//
// # Detection
//
// Gzip, zlib and zstd carry a recognizable header, so Decompress can pick the
// algorithm by itself:
//
//	raw, err := compress.Decompress(fileBytes)
//
// S2 and LZ4 blocks have no header; select them explicitly:
//
//	d, err := compress.CreateDecompressor(format.CompressionLZ4)
//	raw, err := d.Decompress(chunk)
//
// # Streaming
//
// NewReader wraps an io.Reader, for example an open file or a network
// connection, in the matching decompressor.
//
// # Limits
//
// Every decompressor stops at MaxDecompressedSize and reports
// errs.ErrDecompressedTooLarge, so a small malicious input cannot expand into
// an unbounded allocation.
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool and are safe for
// concurrent use.
package compress
