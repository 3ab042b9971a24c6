package edition

import "github.com/arloliu/nbt/format"

// MinSize returns the fewest bytes one payload of tag t can occupy in this edition.
//
// The decoder multiplies it by a declared element count to reject counts the
// remaining input cannot hold, before allocating anything for them.
func (e Edition) MinSize(t format.Tag) int {
	intSize, longSize := 4, 8
	if e.varInt {
		intSize, longSize = 1, 1
	}

	switch t {
	case format.TagByte, format.TagCompound, format.TagList:
		return 1
	case format.TagShort, format.TagString:
		return 2
	case format.TagInt:
		return intSize
	case format.TagLong:
		return longSize
	case format.TagFloat:
		return 4
	case format.TagDouble:
		return 8
	case format.TagByteArray, format.TagIntArray, format.TagLongArray:
		return intSize
	default:
		return 0
	}
}
