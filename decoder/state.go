package decoder

import (
	"fmt"

	"github.com/arloliu/nbt/cursor"
	"github.com/arloliu/nbt/edition"
	"github.com/arloliu/nbt/errs"
	"github.com/arloliu/nbt/format"
	"github.com/arloliu/nbt/internal/intern"
	"github.com/arloliu/nbt/payload"
)

// state is the per-call decoding context. It is created by each Decode call
// and never shared.
type state struct {
	ed    edition.Edition
	src   cursor.Source
	sized cursor.Sized      // nil when src cannot report its remaining length
	pos   cursor.Positioned // nil when src cannot report its offset
	names *intern.Interner  // nil when interning is disabled

	depth    int
	maxDepth int
	unnamed  bool
}

func (s *state) release() {
	if s.names != nil {
		intern.Put(s.names)
		s.names = nil
	}
}

func (s *state) offset() int {
	if s.pos == nil {
		return -1
	}

	return s.pos.Offset()
}

func (s *state) wrap(err error, op string, tag format.Tag) error {
	return errs.Wrap(err, op, tag.String(), s.offset())
}

func (s *state) root() (payload.NamedTag, error) {
	tag, err := s.tag()
	if err != nil {
		return payload.NamedTag{}, errs.Wrap(err, "root tag", "", s.offset())
	}
	if tag == format.TagEnd {
		return payload.NamedTag{}, s.wrap(errs.ErrInvalidDiscriminant, "root tag", tag)
	}

	var name string
	if !s.unnamed {
		name, err = s.name()
		if err != nil {
			return payload.NamedTag{}, s.wrap(err, "root name", tag)
		}
	}

	p, err := s.payload(tag)
	if err != nil {
		return payload.NamedTag{}, err
	}

	return payload.NamedTag{Name: name, Payload: p}, nil
}

func (s *state) tag() (format.Tag, error) {
	b, err := s.src.ReadByte()
	if err != nil {
		return format.TagEnd, err
	}

	return format.ParseTag(b)
}

func (s *state) name() (string, error) {
	if s.names == nil {
		return s.ed.ReadString(s.src)
	}

	b, err := s.ed.ReadStringBytes(s.src)
	if err != nil {
		return "", err
	}

	return s.names.Intern(b), nil
}

// length reads an i32 count field and rejects negative values.
func (s *state) length(op string, tag format.Tag) (int, error) {
	n, err := s.ed.ReadInt32(s.src)
	if err != nil {
		return 0, s.wrap(err, op, tag)
	}
	if n < 0 {
		return 0, s.wrap(fmt.Errorf("%w: %d", errs.ErrInvalidLength, n), op, tag)
	}

	return int(n), nil
}

// checkCount fails fast when n elements of elem cannot fit in the bytes left,
// before anything is allocated for them.
func (s *state) checkCount(n int, elem, tag format.Tag) error {
	if s.sized == nil {
		return nil
	}

	size := s.ed.MinSize(elem)
	if size == 0 || n <= s.sized.Remaining()/size {
		return nil
	}

	return s.wrap(fmt.Errorf("%w: %d %s elements need at least %d bytes, %d left",
		errs.ErrInsufficientData, n, elem, n*size, s.sized.Remaining()), "count", tag)
}

func (s *state) enter(tag format.Tag) error {
	s.depth++
	if s.depth > s.maxDepth {
		return s.wrap(fmt.Errorf("%w: limit %d", errs.ErrMaxDepthExceeded, s.maxDepth), "nesting", tag)
	}

	return nil
}

func (s *state) leave() {
	s.depth--
}

// payload decodes the payload of a tag whose discriminant was already read.
func (s *state) payload(tag format.Tag) (payload.Payload, error) {
	switch tag {
	case format.TagByte:
		v, err := s.ed.ReadInt8(s.src)
		if err != nil {
			return nil, s.wrap(err, "value", tag)
		}

		return payload.Byte(v), nil
	case format.TagShort:
		v, err := s.ed.ReadInt16(s.src)
		if err != nil {
			return nil, s.wrap(err, "value", tag)
		}

		return payload.Short(v), nil
	case format.TagInt:
		v, err := s.ed.ReadInt32(s.src)
		if err != nil {
			return nil, s.wrap(err, "value", tag)
		}

		return payload.Int(v), nil
	case format.TagLong:
		v, err := s.ed.ReadInt64(s.src)
		if err != nil {
			return nil, s.wrap(err, "value", tag)
		}

		return payload.Long(v), nil
	case format.TagFloat:
		v, err := s.ed.ReadFloat32(s.src)
		if err != nil {
			return nil, s.wrap(err, "value", tag)
		}

		return payload.Float(v), nil
	case format.TagDouble:
		v, err := s.ed.ReadFloat64(s.src)
		if err != nil {
			return nil, s.wrap(err, "value", tag)
		}

		return payload.Double(v), nil
	case format.TagString:
		v, err := s.ed.ReadString(s.src)
		if err != nil {
			return nil, s.wrap(err, "value", tag)
		}

		return payload.String(v), nil
	case format.TagByteArray:
		return s.byteArray()
	case format.TagIntArray:
		return s.intArray()
	case format.TagLongArray:
		return s.longArray()
	case format.TagList:
		return s.nestedList()
	case format.TagCompound:
		return s.nestedCompound()
	default:
		return nil, s.wrap(errs.ErrInvalidDiscriminant, "payload", tag)
	}
}

func (s *state) byteArray() (payload.ByteArray, error) {
	n, err := s.length("array length", format.TagByteArray)
	if err != nil {
		return nil, err
	}
	if err := s.checkCount(n, format.TagByte, format.TagByteArray); err != nil {
		return nil, err
	}

	v, err := s.ed.ReadInt8s(s.src, n)
	if err != nil {
		return nil, s.wrap(err, "array elements", format.TagByteArray)
	}

	return payload.ByteArray(v), nil
}

func (s *state) intArray() (payload.IntArray, error) {
	n, err := s.length("array length", format.TagIntArray)
	if err != nil {
		return nil, err
	}
	if err := s.checkCount(n, format.TagInt, format.TagIntArray); err != nil {
		return nil, err
	}

	v, err := s.ed.ReadInt32s(s.src, n)
	if err != nil {
		return nil, s.wrap(err, "array elements", format.TagIntArray)
	}

	return payload.IntArray(v), nil
}

func (s *state) longArray() (payload.LongArray, error) {
	n, err := s.length("array length", format.TagLongArray)
	if err != nil {
		return nil, err
	}
	if err := s.checkCount(n, format.TagLong, format.TagLongArray); err != nil {
		return nil, err
	}

	v, err := s.ed.ReadInt64s(s.src, n)
	if err != nil {
		return nil, s.wrap(err, "array elements", format.TagLongArray)
	}

	return payload.LongArray(v), nil
}

func (s *state) nestedList() (payload.List, error) {
	if err := s.enter(format.TagList); err != nil {
		return nil, err
	}
	defer s.leave()

	return s.list()
}

func (s *state) nestedCompound() (payload.Compound, error) {
	if err := s.enter(format.TagCompound); err != nil {
		return nil, err
	}
	defer s.leave()

	return s.compound()
}

func (s *state) list() (payload.List, error) {
	elem, err := s.tag()
	if err != nil {
		return nil, s.wrap(err, "list element tag", format.TagList)
	}

	// An End element type marks the untyped empty list and carries no length.
	if elem == format.TagEnd {
		return payload.EmptyList{}, nil
	}

	n, err := s.length("list length", format.TagList)
	if err != nil {
		return nil, err
	}

	if err := s.checkCount(n, elem, format.TagList); err != nil {
		return nil, err
	}

	switch elem {
	case format.TagByte:
		v, err := s.ed.ReadInt8s(s.src, n)
		if err != nil {
			return nil, s.wrap(err, "list elements", format.TagList)
		}

		return payload.ByteList(v), nil
	case format.TagShort:
		v, err := readN(s, n, func() (int16, error) { return s.ed.ReadInt16(s.src) })
		return payload.ShortList(v), err
	case format.TagInt:
		v, err := s.ed.ReadInt32s(s.src, n)
		if err != nil {
			return nil, s.wrap(err, "list elements", format.TagList)
		}

		return payload.IntList(v), nil
	case format.TagLong:
		v, err := s.ed.ReadInt64s(s.src, n)
		if err != nil {
			return nil, s.wrap(err, "list elements", format.TagList)
		}

		return payload.LongList(v), nil
	case format.TagFloat:
		v, err := readN(s, n, func() (float32, error) { return s.ed.ReadFloat32(s.src) })
		return payload.FloatList(v), err
	case format.TagDouble:
		v, err := readN(s, n, func() (float64, error) { return s.ed.ReadFloat64(s.src) })
		return payload.DoubleList(v), err
	case format.TagString:
		v, err := readN(s, n, func() (string, error) { return s.ed.ReadString(s.src) })
		return payload.StringList(v), err
	case format.TagByteArray:
		v, err := readN(s, n, s.byteArray)
		return payload.ByteArrayList(v), err
	case format.TagIntArray:
		v, err := readN(s, n, s.intArray)
		return payload.IntArrayList(v), err
	case format.TagLongArray:
		v, err := readN(s, n, s.longArray)
		return payload.LongArrayList(v), err
	case format.TagList:
		v, err := readN(s, n, s.nestedList)
		return payload.ListList(v), err
	case format.TagCompound:
		v, err := readN(s, n, s.nestedCompound)
		return payload.CompoundList(v), err
	default:
		return nil, s.wrap(errs.ErrInvalidDiscriminant, "list element tag", format.TagList)
	}
}

// readN collects n list elements. On failure it returns a nil slice so no
// partially decoded list escapes.
func readN[T any](s *state, n int, read func() (T, error)) ([]T, error) {
	out := make([]T, 0, min(n, edition.MaxPrealloc))
	for range n {
		v, err := read()
		if err != nil {
			return nil, s.wrap(err, "list elements", format.TagList)
		}
		out = append(out, v)
	}

	return out, nil
}

func (s *state) compound() (payload.Compound, error) {
	c := make(payload.Compound)
	for {
		tag, err := s.tag()
		if err != nil {
			return nil, s.wrap(err, "compound entry tag", format.TagCompound)
		}
		if tag == format.TagEnd {
			return c, nil
		}

		name, err := s.name()
		if err != nil {
			return nil, s.wrap(err, "compound entry name", format.TagCompound)
		}

		p, err := s.payload(tag)
		if err != nil {
			return nil, err
		}

		// Repeated names keep the last value.
		c[name] = p
	}
}
