package edition

import "github.com/arloliu/nbt/cursor"

const (
	// MaxVarint32Len is the maximum number of bytes read for a 32-bit varint.
	MaxVarint32Len = 5
	// MaxVarint64Len is the maximum number of bytes read for a 64-bit varint.
	MaxVarint64Len = 10
)

// ReadUvarint32 reads an unsigned LEB128 value of at most MaxVarint32Len bytes.
//
// Each byte contributes its low 7 bits, least significant group first; a clear
// high bit ends the value. Reading stops after MaxVarint32Len bytes even if the
// last byte still has its continuation bit set: the accumulated value is
// returned and no further byte is consumed. Bits shifted past 32 are dropped.
func ReadUvarint32(src cursor.Source) (uint32, error) {
	var v uint32
	for i := range MaxVarint32Len {
		b, err := src.ReadByte()
		if err != nil {
			return 0, err
		}

		v |= uint32(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			break
		}
	}

	return v, nil
}

// ReadUvarint64 reads an unsigned LEB128 value of at most MaxVarint64Len bytes.
// It follows the same termination rule as ReadUvarint32.
func ReadUvarint64(src cursor.Source) (uint64, error) {
	var v uint64
	for i := range MaxVarint64Len {
		b, err := src.ReadByte()
		if err != nil {
			return 0, err
		}

		v |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			break
		}
	}

	return v, nil
}

// DecodeZigZag32 maps a zig-zag encoded value back to its signed form:
// 0 → 0, 1 → -1, 2 → 1, 3 → -2, ...
func DecodeZigZag32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1) //nolint:gosec
}

// DecodeZigZag64 is the 64-bit form of DecodeZigZag32.
func DecodeZigZag64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}
