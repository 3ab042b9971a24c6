package payload

import (
	"maps"
	"slices"

	"github.com/arloliu/nbt/format"
)

// Compound maps entry names to payloads. Names are opaque byte strings.
//
// Decoding inserts entries in wire order, so a name that appears twice keeps
// the later payload. Map iteration order is unspecified; use Keys for a
// deterministic order.
type Compound map[string]Payload

var _ Payload = Compound(nil)

func (Compound) Tag() format.Tag { return format.TagCompound }
func (Compound) payload()        {}

// Keys returns the entry names in sorted order.
func (c Compound) Keys() []string {
	return slices.Sorted(maps.Keys(c))
}

// Get returns the payload stored under name.
func (c Compound) Get(name string) (Payload, bool) {
	p, ok := c[name]

	return p, ok
}

// Byte returns the Byte stored under name.
func (c Compound) Byte(name string) (int8, bool) {
	v, ok := c[name].(Byte)

	return int8(v), ok
}

// Short returns the Short stored under name.
func (c Compound) Short(name string) (int16, bool) {
	v, ok := c[name].(Short)

	return int16(v), ok
}

// Int returns the Int stored under name.
func (c Compound) Int(name string) (int32, bool) {
	v, ok := c[name].(Int)

	return int32(v), ok
}

// Long returns the Long stored under name.
func (c Compound) Long(name string) (int64, bool) {
	v, ok := c[name].(Long)

	return int64(v), ok
}

// Float returns the Float stored under name.
func (c Compound) Float(name string) (float32, bool) {
	v, ok := c[name].(Float)

	return float32(v), ok
}

// Double returns the Double stored under name.
func (c Compound) Double(name string) (float64, bool) {
	v, ok := c[name].(Double)

	return float64(v), ok
}

// Str returns the String stored under name.
func (c Compound) Str(name string) (string, bool) {
	v, ok := c[name].(String)

	return string(v), ok
}

// ByteArray returns the ByteArray stored under name.
func (c Compound) ByteArray(name string) (ByteArray, bool) {
	v, ok := c[name].(ByteArray)

	return v, ok
}

// IntArray returns the IntArray stored under name.
func (c Compound) IntArray(name string) (IntArray, bool) {
	v, ok := c[name].(IntArray)

	return v, ok
}

// LongArray returns the LongArray stored under name.
func (c Compound) LongArray(name string) (LongArray, bool) {
	v, ok := c[name].(LongArray)

	return v, ok
}

// Compound returns the nested Compound stored under name.
func (c Compound) Compound(name string) (Compound, bool) {
	v, ok := c[name].(Compound)

	return v, ok
}

// List returns the List stored under name.
func (c Compound) List(name string) (List, bool) {
	v, ok := c[name].(List)

	return v, ok
}

// Path walks nested compounds by name and returns the payload at the end of the path.
func (c Compound) Path(names ...string) (Payload, bool) {
	var cur Payload = c
	for _, name := range names {
		comp, ok := cur.(Compound)
		if !ok {
			return nil, false
		}

		if cur, ok = comp[name]; !ok {
			return nil, false
		}
	}

	return cur, true
}
