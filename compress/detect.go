package compress

import "github.com/arloliu/nbt/format"

var zstdMagic = [4]byte{0x28, 0xB5, 0x2F, 0xFD}

// Detect identifies the compression of data from its leading bytes.
//
// Gzip is recognized by its 1f 8b magic, zlib by a deflate CMF byte of 0x78
// with a valid FCHECK, and zstd by its frame magic. S2 and LZ4 blocks have no
// magic and anything else is reported as format.CompressionNone. A raw NBT
// document never matches: its first byte is a tag discriminant of at most 12.
func Detect(data []byte) format.CompressionType {
	if len(data) < 2 {
		return format.CompressionNone
	}

	switch {
	case data[0] == 0x1F && data[1] == 0x8B:
		return format.CompressionGzip
	case data[0] == 0x78 && (uint16(data[0])<<8|uint16(data[1]))%31 == 0:
		return format.CompressionZlib
	case len(data) >= 4 && [4]byte(data[:4]) == zstdMagic:
		return format.CompressionZstd
	default:
		return format.CompressionNone
	}
}
