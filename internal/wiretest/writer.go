// Package wiretest builds NBT wire bytes for tests.
//
// The library only decodes; Writer is the encoder the tests use to produce
// inputs for every edition and to round-trip decoded trees.
package wiretest

import (
	"math"

	"github.com/arloliu/nbt/edition"
	"github.com/arloliu/nbt/format"
	"github.com/arloliu/nbt/internal/pool"
	"github.com/arloliu/nbt/payload"
)

// Writer appends edition-encoded fields to an internal buffer.
// Methods return the Writer so fields can be chained.
type Writer struct {
	ed  edition.Edition
	buf *pool.ByteBuffer
}

// NewWriter creates a writer for the given edition.
func NewWriter(ed edition.Edition) *Writer {
	return &Writer{ed: ed, buf: pool.NewByteBuffer(256)}
}

// Bytes returns a copy of everything written so far.
func (w *Writer) Bytes() []byte {
	return append([]byte(nil), w.buf.Bytes()...)
}

// Raw appends bytes verbatim.
func (w *Writer) Raw(b ...byte) *Writer {
	_, _ = w.buf.Write(b)
	return w
}

// Tag appends a discriminant byte.
func (w *Writer) Tag(t format.Tag) *Writer {
	return w.Raw(byte(t))
}

// Byte appends an i8.
func (w *Writer) Byte(v int8) *Writer {
	return w.Raw(byte(v))
}

// Uint16 appends a fixed-width u16.
func (w *Writer) Uint16(v uint16) *Writer {
	w.buf.B = w.ed.Engine().AppendUint16(w.buf.B, v)
	return w
}

// Short appends an i16.
func (w *Writer) Short(v int16) *Writer {
	return w.Uint16(uint16(v))
}

// Int appends an i32, as a zig-zag varint for varint editions.
func (w *Writer) Int(v int32) *Writer {
	if w.ed.VarInt() {
		w.buf.B = AppendZigZag32(w.buf.B, v)
		return w
	}
	w.buf.B = w.ed.Engine().AppendUint32(w.buf.B, uint32(v))

	return w
}

// Long appends an i64, as a zig-zag varint for varint editions.
func (w *Writer) Long(v int64) *Writer {
	if w.ed.VarInt() {
		w.buf.B = AppendZigZag64(w.buf.B, v)
		return w
	}
	w.buf.B = w.ed.Engine().AppendUint64(w.buf.B, uint64(v))

	return w
}

// Float appends a fixed-width f32.
func (w *Writer) Float(v float32) *Writer {
	w.buf.B = w.ed.Engine().AppendUint32(w.buf.B, math.Float32bits(v))
	return w
}

// Double appends a fixed-width f64.
func (w *Writer) Double(v float64) *Writer {
	w.buf.B = w.ed.Engine().AppendUint64(w.buf.B, math.Float64bits(v))
	return w
}

// String appends a u16 length-prefixed string.
func (w *Writer) String(s string) *Writer {
	return w.Uint16(uint16(len(s))).Raw([]byte(s)...)
}

// Named appends a tag, a name and the payload: one compound entry or a root document.
func (w *Writer) Named(name string, p payload.Payload) *Writer {
	return w.Tag(p.Tag()).String(name).Payload(p)
}

// Payload appends the payload body of p, without tag or name.
func (w *Writer) Payload(p payload.Payload) *Writer {
	switch v := p.(type) {
	case payload.Byte:
		w.Byte(int8(v))
	case payload.Short:
		w.Short(int16(v))
	case payload.Int:
		w.Int(int32(v))
	case payload.Long:
		w.Long(int64(v))
	case payload.Float:
		w.Float(float32(v))
	case payload.Double:
		w.Double(float64(v))
	case payload.String:
		w.String(string(v))
	case payload.ByteArray:
		w.Int(int32(len(v)))
		for _, b := range v {
			w.Byte(b)
		}
	case payload.IntArray:
		w.Int(int32(len(v)))
		for _, x := range v {
			w.Int(x)
		}
	case payload.LongArray:
		w.Int(int32(len(v)))
		for _, x := range v {
			w.Long(x)
		}
	case payload.Compound:
		for _, k := range v.Keys() {
			w.Named(k, v[k])
		}
		w.Tag(format.TagEnd)
	case payload.EmptyList:
		w.Tag(format.TagEnd)
	case payload.List:
		w.Tag(v.ElemTag()).Int(int32(v.Len()))
		for _, elem := range payload.Elements(v) {
			w.Payload(elem)
		}
	default:
		panic("wiretest: unsupported payload type")
	}

	return w
}

// Encode returns the wire bytes of a root document.
func Encode(ed edition.Edition, root payload.NamedTag) []byte {
	return NewWriter(ed).Named(root.Name, root.Payload).Bytes()
}

// AppendUvarint appends v as an unsigned LEB128 varint.
func AppendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// AppendZigZag32 appends v zig-zag encoded as a varint.
func AppendZigZag32(dst []byte, v int32) []byte {
	return AppendUvarint(dst, uint64(uint32((v<<1)^(v>>31))))
}

// AppendZigZag64 appends v zig-zag encoded as a varint.
func AppendZigZag64(dst []byte, v int64) []byte {
	return AppendUvarint(dst, uint64(v<<1)^uint64(v>>63))
}
