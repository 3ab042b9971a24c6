package payload

import (
	"iter"

	"github.com/arloliu/nbt/format"
)

// List is a homogeneous NBT list. Every List is also a Payload with tag TagList.
//
// The concrete type identifies the element tag. A list whose element tag was
// End decodes to EmptyList, which has no element type at all.
type List interface {
	Payload
	// ElemTag returns the tag shared by all elements, TagEnd for EmptyList.
	ElemTag() format.Tag
	// Len returns the number of elements.
	Len() int
	// At returns element i as a Payload. It panics if i is out of range.
	At(i int) Payload
}

type (
	EmptyList     struct{}
	ByteList      []int8
	ShortList     []int16
	IntList       []int32
	LongList      []int64
	FloatList     []float32
	DoubleList    []float64
	ByteArrayList []ByteArray
	StringList    []string
	ListList      []List
	CompoundList  []Compound
	IntArrayList  []IntArray
	LongArrayList []LongArray
)

var (
	_ List = EmptyList{}
	_ List = ByteList(nil)
	_ List = ShortList(nil)
	_ List = IntList(nil)
	_ List = LongList(nil)
	_ List = FloatList(nil)
	_ List = DoubleList(nil)
	_ List = ByteArrayList(nil)
	_ List = StringList(nil)
	_ List = ListList(nil)
	_ List = CompoundList(nil)
	_ List = IntArrayList(nil)
	_ List = LongArrayList(nil)
)

// IsUntyped reports whether l is the untyped empty list, i.e. its element
// tag was End. A typed list with zero elements is not untyped.
func IsUntyped(l List) bool {
	_, ok := l.(EmptyList)

	return ok
}

// Elements returns an iterator over the elements of l as Payloads.
func Elements(l List) iter.Seq2[int, Payload] {
	return func(yield func(int, Payload) bool) {
		for i := range l.Len() {
			if !yield(i, l.At(i)) {
				return
			}
		}
	}
}

func (EmptyList) Tag() format.Tag     { return format.TagList }
func (ByteList) Tag() format.Tag      { return format.TagList }
func (ShortList) Tag() format.Tag     { return format.TagList }
func (IntList) Tag() format.Tag       { return format.TagList }
func (LongList) Tag() format.Tag      { return format.TagList }
func (FloatList) Tag() format.Tag     { return format.TagList }
func (DoubleList) Tag() format.Tag    { return format.TagList }
func (ByteArrayList) Tag() format.Tag { return format.TagList }
func (StringList) Tag() format.Tag    { return format.TagList }
func (ListList) Tag() format.Tag      { return format.TagList }
func (CompoundList) Tag() format.Tag  { return format.TagList }
func (IntArrayList) Tag() format.Tag  { return format.TagList }
func (LongArrayList) Tag() format.Tag { return format.TagList }

func (EmptyList) ElemTag() format.Tag     { return format.TagEnd }
func (ByteList) ElemTag() format.Tag      { return format.TagByte }
func (ShortList) ElemTag() format.Tag     { return format.TagShort }
func (IntList) ElemTag() format.Tag       { return format.TagInt }
func (LongList) ElemTag() format.Tag      { return format.TagLong }
func (FloatList) ElemTag() format.Tag     { return format.TagFloat }
func (DoubleList) ElemTag() format.Tag    { return format.TagDouble }
func (ByteArrayList) ElemTag() format.Tag { return format.TagByteArray }
func (StringList) ElemTag() format.Tag    { return format.TagString }
func (ListList) ElemTag() format.Tag      { return format.TagList }
func (CompoundList) ElemTag() format.Tag  { return format.TagCompound }
func (IntArrayList) ElemTag() format.Tag  { return format.TagIntArray }
func (LongArrayList) ElemTag() format.Tag { return format.TagLongArray }

func (EmptyList) Len() int       { return 0 }
func (l ByteList) Len() int      { return len(l) }
func (l ShortList) Len() int     { return len(l) }
func (l IntList) Len() int       { return len(l) }
func (l LongList) Len() int      { return len(l) }
func (l FloatList) Len() int     { return len(l) }
func (l DoubleList) Len() int    { return len(l) }
func (l ByteArrayList) Len() int { return len(l) }
func (l StringList) Len() int    { return len(l) }
func (l ListList) Len() int      { return len(l) }
func (l CompoundList) Len() int  { return len(l) }
func (l IntArrayList) Len() int  { return len(l) }
func (l LongArrayList) Len() int { return len(l) }

func (EmptyList) At(i int) Payload {
	panic("payload: index out of range on empty list")
}
func (l ByteList) At(i int) Payload      { return Byte(l[i]) }
func (l ShortList) At(i int) Payload     { return Short(l[i]) }
func (l IntList) At(i int) Payload       { return Int(l[i]) }
func (l LongList) At(i int) Payload      { return Long(l[i]) }
func (l FloatList) At(i int) Payload     { return Float(l[i]) }
func (l DoubleList) At(i int) Payload    { return Double(l[i]) }
func (l ByteArrayList) At(i int) Payload { return l[i] }
func (l StringList) At(i int) Payload    { return String(l[i]) }
func (l ListList) At(i int) Payload      { return l[i] }
func (l CompoundList) At(i int) Payload  { return l[i] }
func (l IntArrayList) At(i int) Payload  { return l[i] }
func (l LongArrayList) At(i int) Payload { return l[i] }

func (EmptyList) payload()     {}
func (ByteList) payload()      {}
func (ShortList) payload()     {}
func (IntList) payload()       {}
func (LongList) payload()      {}
func (FloatList) payload()     {}
func (DoubleList) payload()    {}
func (ByteArrayList) payload() {}
func (StringList) payload()    {}
func (ListList) payload()      {}
func (CompoundList) payload()  {}
func (IntArrayList) payload()  {}
func (LongArrayList) payload() {}
