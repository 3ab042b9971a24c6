// Package export converts decoded NBT trees into plain Go values and into
// CBOR, MessagePack and YAML documents.
//
// ToNative maps every payload to the closest Go type: numeric payloads keep
// their width (Byte becomes int8, Long becomes int64), arrays and lists of
// scalars become typed slices, and compounds become map[string]any. The
// untyped empty list becomes an empty []any.
package export

import "github.com/arloliu/nbt/payload"

// ToNative converts p into plain Go values. A nil payload yields nil.
func ToNative(p payload.Payload) any {
	switch v := p.(type) {
	case nil:
		return nil
	case payload.Byte:
		return int8(v)
	case payload.Short:
		return int16(v)
	case payload.Int:
		return int32(v)
	case payload.Long:
		return int64(v)
	case payload.Float:
		return float32(v)
	case payload.Double:
		return float64(v)
	case payload.String:
		return string(v)
	case payload.ByteArray:
		return []int8(v)
	case payload.IntArray:
		return []int32(v)
	case payload.LongArray:
		return []int64(v)
	case payload.Compound:
		return compoundToNative(v)
	case payload.List:
		return listToNative(v)
	default:
		return nil
	}
}

func compoundToNative(c payload.Compound) map[string]any {
	out := make(map[string]any, len(c))
	for k, v := range c {
		out[k] = ToNative(v)
	}

	return out
}

func listToNative(l payload.List) any {
	switch v := l.(type) {
	case payload.ByteList:
		return []int8(v)
	case payload.ShortList:
		return []int16(v)
	case payload.IntList:
		return []int32(v)
	case payload.LongList:
		return []int64(v)
	case payload.FloatList:
		return []float32(v)
	case payload.DoubleList:
		return []float64(v)
	case payload.StringList:
		return []string(v)
	case payload.CompoundList:
		out := make([]map[string]any, len(v))
		for i, c := range v {
			out[i] = compoundToNative(c)
		}

		return out
	default:
		out := make([]any, 0, l.Len())
		for _, elem := range payload.Elements(l) {
			out = append(out, ToNative(elem))
		}

		return out
	}
}
