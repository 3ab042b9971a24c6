// Package payload defines the in-memory tree produced by NBT decoding.
//
// Every NBT value is a Payload, a sealed interface implemented by one concrete
// type per tag:
//
//	Byte, Short, Int, Long, Float, Double  scalar values
//	ByteArray, IntArray, LongArray         fixed-element arrays
//	String                                 opaque byte string
//	Compound                               name → Payload map
//	List                                   homogeneous list, see below
//
// List is itself a sealed interface keyed by the element tag: ByteList,
// ShortList, ..., ListList and CompoundList hold typed slices, and EmptyList
// represents a list whose element tag was End. EmptyList is distinct from a
// typed list with zero elements; use IsUntyped to tell them apart.
//
// The tree is a strict ownership tree: decoded values never alias the input
// buffer and no node is shared between parents.
package payload

import "github.com/arloliu/nbt/format"

// Payload is a decoded NBT value.
type Payload interface {
	// Tag returns the discriminant that introduces this payload on the wire.
	Tag() format.Tag
	// String renders the payload in SNBT-like notation.
	String() string

	payload()
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []int8
	String    string
	IntArray  []int32
	LongArray []int64
)

var (
	_ Payload = Byte(0)
	_ Payload = Short(0)
	_ Payload = Int(0)
	_ Payload = Long(0)
	_ Payload = Float(0)
	_ Payload = Double(0)
	_ Payload = ByteArray(nil)
	_ Payload = String("")
	_ Payload = Compound(nil)
	_ Payload = IntArray(nil)
	_ Payload = LongArray(nil)
)

func (Byte) Tag() format.Tag      { return format.TagByte }
func (Short) Tag() format.Tag     { return format.TagShort }
func (Int) Tag() format.Tag       { return format.TagInt }
func (Long) Tag() format.Tag      { return format.TagLong }
func (Float) Tag() format.Tag     { return format.TagFloat }
func (Double) Tag() format.Tag    { return format.TagDouble }
func (ByteArray) Tag() format.Tag { return format.TagByteArray }
func (String) Tag() format.Tag    { return format.TagString }
func (IntArray) Tag() format.Tag  { return format.TagIntArray }
func (LongArray) Tag() format.Tag { return format.TagLongArray }

func (Byte) payload()      {}
func (Short) payload()     {}
func (Int) payload()       {}
func (Long) payload()      {}
func (Float) payload()     {}
func (Double) payload()    {}
func (ByteArray) payload() {}
func (String) payload()    {}
func (IntArray) payload()  {}
func (LongArray) payload() {}

// NamedTag is the result of decoding a root document: the root name and its payload.
type NamedTag struct {
	Name    string
	Payload Payload
}

// Tag returns the root payload's tag, or TagEnd if the payload is nil.
func (n NamedTag) Tag() format.Tag {
	if n.Payload == nil {
		return format.TagEnd
	}

	return n.Payload.Tag()
}

// Compound returns the root payload as a Compound.
func (n NamedTag) Compound() (Compound, bool) {
	c, ok := n.Payload.(Compound)

	return c, ok
}
