// Package edition implements the per-edition primitive encoding rules of NBT.
//
// NBT exists in several wire editions that differ only in how primitive numbers
// are laid out. Two independent axes select the rules:
//
//   - Byte order: Java uses big-endian, Bedrock uses little-endian.
//   - Integer width: Bedrock's network protocol encodes Int and Long (and the
//     lengths of arrays and lists) as zig-zag variable-length integers.
//
// An Edition is an immutable value selected once and passed to the decoder:
//
//	ed := edition.BedrockNetwork
//	v, err := ed.ReadInt32(cursor.New(data))
//
// # Wire Rules
//
//   - Byte (i8): one byte, no byte order.
//   - Short (i16) and string length (u16): two bytes in the edition byte order.
//     The u16 string length is never variable-length, in any edition.
//   - Int (i32) and Long (i64): 4/8 bytes in the edition byte order, or a
//     zig-zag varint of at most 5/10 bytes when VarInt is set.
//   - Float (f32) and Double (f64): always 4/8 bytes in the edition byte order.
//
// # Thread Safety
//
// Edition values are stateless and safe for concurrent use.
package edition

import (
	"math"
	"unsafe"

	"github.com/arloliu/nbt/cursor"
)

// MaxPrealloc caps slice preallocation for element counts read from the wire,
// so a forged count cannot force a large allocation before the data is seen.
const MaxPrealloc = 4096

// Edition selects the byte order and integer width mode for primitive decoding.
//
// The zero value is not a valid edition; use one of the presets or New.
type Edition struct {
	engine    EndianEngine
	bigEndian bool
	varInt    bool
}

var (
	// Java is the big-endian, fixed-width edition used by Java files.
	Java = New(true, false)
	// JavaNetwork is the edition used by the Java network protocol. Its
	// primitives are identical to Java; the protocol differs only in sending
	// the root compound without a name (see decoder.WithUnnamedRoot).
	JavaNetwork = New(true, false)
	// Bedrock is the little-endian, fixed-width edition used by Bedrock files.
	Bedrock = New(false, false)
	// BedrockNetwork is the little-endian edition with zig-zag varint Int and Long,
	// used by the Bedrock network protocol.
	BedrockNetwork = New(false, true)
)

// New creates an edition from its two axes.
//
// All four combinations are valid. Varints carry no byte order, so a
// big-endian varint edition differs from BedrockNetwork only in Short, Float,
// Double and string length fields.
func New(bigEndian, varInt bool) Edition {
	engine := GetLittleEndianEngine()
	if bigEndian {
		engine = GetBigEndianEngine()
	}

	return Edition{
		engine:    engine,
		bigEndian: bigEndian,
		varInt:    varInt,
	}
}

// BigEndian reports whether fixed-width fields are big-endian.
func (e Edition) BigEndian() bool {
	return e.bigEndian
}

// VarInt reports whether Int and Long fields are zig-zag varints.
func (e Edition) VarInt() bool {
	return e.varInt
}

// Engine returns the byte order engine for fixed-width fields.
func (e Edition) Engine() EndianEngine {
	return e.engine
}

func (e Edition) String() string {
	switch {
	case e.bigEndian && e.varInt:
		return "BigEndianVarInt"
	case e.bigEndian:
		return "Java"
	case e.varInt:
		return "BedrockNetwork"
	default:
		return "Bedrock"
	}
}

// ReadInt8 decodes a Byte.
func (e Edition) ReadInt8(src cursor.Source) (int8, error) {
	b, err := src.ReadByte()
	if err != nil {
		return 0, err
	}

	return int8(b), nil //nolint:gosec
}

// ReadUint16 decodes a fixed-width u16 in the edition byte order.
// It is never variable-length; NBT reserves it for string length prefixes.
func (e Edition) ReadUint16(src cursor.Source) (uint16, error) {
	b, err := src.ReadN(2)
	if err != nil {
		return 0, err
	}

	return e.engine.Uint16(b), nil
}

// ReadInt16 decodes a Short.
func (e Edition) ReadInt16(src cursor.Source) (int16, error) {
	v, err := e.ReadUint16(src)

	return int16(v), err //nolint:gosec
}

// ReadInt32 decodes an Int, or any i32 length field.
func (e Edition) ReadInt32(src cursor.Source) (int32, error) {
	if e.varInt {
		u, err := ReadUvarint32(src)
		if err != nil {
			return 0, err
		}

		return DecodeZigZag32(u), nil
	}

	b, err := src.ReadN(4)
	if err != nil {
		return 0, err
	}

	return int32(e.engine.Uint32(b)), nil //nolint:gosec
}

// ReadInt64 decodes a Long.
func (e Edition) ReadInt64(src cursor.Source) (int64, error) {
	if e.varInt {
		u, err := ReadUvarint64(src)
		if err != nil {
			return 0, err
		}

		return DecodeZigZag64(u), nil
	}

	b, err := src.ReadN(8)
	if err != nil {
		return 0, err
	}

	return int64(e.engine.Uint64(b)), nil //nolint:gosec
}

// ReadFloat32 decodes a Float. Floats are fixed-width in every edition.
func (e Edition) ReadFloat32(src cursor.Source) (float32, error) {
	b, err := src.ReadN(4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(e.engine.Uint32(b)), nil
}

// ReadFloat64 decodes a Double. Doubles are fixed-width in every edition.
func (e Edition) ReadFloat64(src cursor.Source) (float64, error) {
	b, err := src.ReadN(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(e.engine.Uint64(b)), nil
}

// ReadString decodes a length-prefixed string: a fixed-width u16 length
// followed by that many raw bytes.
//
// The bytes are copied into the returned string and are not validated; NBT
// strings use a modified UTF-8 that the decoder treats as opaque.
func (e Edition) ReadString(src cursor.Source) (string, error) {
	b, err := e.ReadStringBytes(src)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// ReadStringBytes decodes a length-prefixed string without copying it.
// The returned slice may alias the source buffer; see cursor.Source.ReadN.
func (e Edition) ReadStringBytes(src cursor.Source) ([]byte, error) {
	n, err := e.ReadUint16(src)
	if err != nil {
		return nil, err
	}

	return src.ReadN(int(n))
}

// ReadInt8s decodes n consecutive Bytes into a new slice.
func (e Edition) ReadInt8s(src cursor.Source, n int) ([]int8, error) {
	b, err := src.ReadN(n)
	if err != nil {
		return nil, err
	}

	out := make([]int8, n)
	for i, v := range b {
		out[i] = int8(v) //nolint:gosec
	}

	return out, nil
}

// ReadInt32s decodes n consecutive Ints into a new slice.
//
// Fixed-width editions read the whole block before allocating; when the
// edition byte order matches the host the block is copied without swapping.
func (e Edition) ReadInt32s(src cursor.Source, n int) ([]int32, error) {
	if e.varInt {
		out := make([]int32, 0, min(n, MaxPrealloc))
		for range n {
			v, err := e.ReadInt32(src)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}

		return out, nil
	}

	b, err := src.ReadN(n * 4)
	if err != nil {
		return nil, err
	}

	out := make([]int32, n)
	if n == 0 {
		return out, nil
	}

	if e.IsNative() {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), n*4), b)
		return out, nil
	}

	for i := range out {
		out[i] = int32(e.engine.Uint32(b[i*4:])) //nolint:gosec
	}

	return out, nil
}

// ReadInt64s decodes n consecutive Longs into a new slice.
func (e Edition) ReadInt64s(src cursor.Source, n int) ([]int64, error) {
	if e.varInt {
		out := make([]int64, 0, min(n, MaxPrealloc))
		for range n {
			v, err := e.ReadInt64(src)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}

		return out, nil
	}

	b, err := src.ReadN(n * 8)
	if err != nil {
		return nil, err
	}

	out := make([]int64, n)
	if n == 0 {
		return out, nil
	}

	if e.IsNative() {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), n*8), b)
		return out, nil
	}

	for i := range out {
		out[i] = int64(e.engine.Uint64(b[i*8:])) //nolint:gosec
	}

	return out, nil
}
