package edition

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.BigEndian and binary.LittleEndian. The decoder
// only needs the ByteOrder half; the append half is what test tooling uses to
// produce wire bytes for an edition.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine used by Java editions.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine used by Bedrock editions.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// nativeEngine reports the host byte order.
func nativeEngine() EndianEngine {
	// 0x0100: a big-endian host stores the 0x01 byte first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNative reports whether the edition's fixed-width byte order matches the host.
func (e Edition) IsNative() bool {
	return e.engine == nativeEngine()
}
