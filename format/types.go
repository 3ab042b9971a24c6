package format

import "github.com/arloliu/nbt/errs"

type (
	Tag             uint8
	CompressionType uint8
)

const (
	TagEnd       Tag = 0x0 // TagEnd terminates a compound and marks an untyped empty list.
	TagByte      Tag = 0x1 // TagByte is a signed 8-bit integer.
	TagShort     Tag = 0x2 // TagShort is a signed 16-bit integer.
	TagInt       Tag = 0x3 // TagInt is a signed 32-bit integer.
	TagLong      Tag = 0x4 // TagLong is a signed 64-bit integer.
	TagFloat     Tag = 0x5 // TagFloat is an IEEE 754 single precision float.
	TagDouble    Tag = 0x6 // TagDouble is an IEEE 754 double precision float.
	TagByteArray Tag = 0x7 // TagByteArray is a length-prefixed array of signed bytes.
	TagString    Tag = 0x8 // TagString is a u16 length-prefixed byte string.
	TagList      Tag = 0x9 // TagList is a homogeneous list of unnamed payloads.
	TagCompound  Tag = 0xA // TagCompound is a set of named payloads terminated by TagEnd.
	TagIntArray  Tag = 0xB // TagIntArray is a length-prefixed array of signed 32-bit integers.
	TagLongArray Tag = 0xC // TagLongArray is a length-prefixed array of signed 64-bit integers.

	// MaxTag is the largest valid tag discriminant.
	MaxTag = TagLongArray
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents uncompressed NBT.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip (RFC 1952), used by Java level and structure files.
	CompressionZlib CompressionType = 0x3 // CompressionZlib represents zlib (RFC 1950), used by region file chunks.
	CompressionZstd CompressionType = 0x4 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x5 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x6 // CompressionLZ4 represents LZ4 block compression.
)

// ParseTag maps a discriminant byte to its Tag.
//
// Returns errs.ErrInvalidDiscriminant for any byte greater than MaxTag; the
// value is never clamped.
func ParseTag(b byte) (Tag, error) {
	if b > byte(MaxTag) {
		return TagEnd, errs.ErrInvalidDiscriminant
	}

	return Tag(b), nil
}

// Valid reports whether t is one of the 13 defined discriminants.
func (t Tag) Valid() bool {
	return t <= MaxTag
}

// HasPayload reports whether a value of this tag carries a payload.
// Only TagEnd and invalid tags do not.
func (t Tag) HasPayload() bool {
	return t != TagEnd && t.Valid()
}

func (t Tag) String() string {
	switch t {
	case TagEnd:
		return "End"
	case TagByte:
		return "Byte"
	case TagShort:
		return "Short"
	case TagInt:
		return "Int"
	case TagLong:
		return "Long"
	case TagFloat:
		return "Float"
	case TagDouble:
		return "Double"
	case TagByteArray:
		return "ByteArray"
	case TagString:
		return "String"
	case TagList:
		return "List"
	case TagCompound:
		return "Compound"
	case TagIntArray:
		return "IntArray"
	case TagLongArray:
		return "LongArray"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZlib:
		return "Zlib"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
