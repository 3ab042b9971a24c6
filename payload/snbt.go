package payload

import (
	"math"
	"strconv"
	"strings"
)

// String renderings follow SNBT, the textual notation used by the game's
// commands: type suffixes on numbers, typed array prefixes, quoted strings and
// compounds with their keys sorted for stable output.

func (v Byte) String() string   { return strconv.Itoa(int(v)) + "b" }
func (v Short) String() string  { return strconv.Itoa(int(v)) + "s" }
func (v Int) String() string    { return strconv.Itoa(int(v)) }
func (v Long) String() string   { return strconv.FormatInt(int64(v), 10) + "L" }
func (v Float) String() string  { return formatFloat(float64(v), 32) + "f" }
func (v Double) String() string { return formatFloat(float64(v), 64) + "d" }
func (v String) String() string { return quote(string(v)) }

func (v ByteArray) String() string {
	return writeArray("B;", len(v), func(sb *strings.Builder, i int) {
		sb.WriteString(Byte(v[i]).String())
	})
}

func (v IntArray) String() string {
	return writeArray("I;", len(v), func(sb *strings.Builder, i int) {
		sb.WriteString(strconv.Itoa(int(v[i])))
	})
}

func (v LongArray) String() string {
	return writeArray("L;", len(v), func(sb *strings.Builder, i int) {
		sb.WriteString(Long(v[i]).String())
	})
}

func (v Compound) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range v.Keys() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(key(k))
		sb.WriteByte(':')
		sb.WriteString(v[k].String())
	}
	sb.WriteByte('}')

	return sb.String()
}

func (EmptyList) String() string       { return "[]" }
func (l ByteList) String() string      { return listString(l) }
func (l ShortList) String() string     { return listString(l) }
func (l IntList) String() string       { return listString(l) }
func (l LongList) String() string      { return listString(l) }
func (l FloatList) String() string     { return listString(l) }
func (l DoubleList) String() string    { return listString(l) }
func (l ByteArrayList) String() string { return listString(l) }
func (l StringList) String() string    { return listString(l) }
func (l ListList) String() string      { return listString(l) }
func (l CompoundList) String() string  { return listString(l) }
func (l IntArrayList) String() string  { return listString(l) }
func (l LongArrayList) String() string { return listString(l) }

func listString(l List) string {
	return writeArray("", l.Len(), func(sb *strings.Builder, i int) {
		sb.WriteString(l.At(i).String())
	})
}

func writeArray(prefix string, n int, elem func(sb *strings.Builder, i int)) string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(prefix)
	for i := range n {
		if i > 0 {
			sb.WriteByte(',')
		}
		elem(&sb, i)
	}
	sb.WriteByte(']')

	return sb.String()
}

// formatFloat renders non-finite values with the game's own spelling (NaN,
// Infinity, -Infinity). The game prints them but its SNBT parser does not read
// them back.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
}

// key renders a compound key bare when it only uses characters SNBT allows
// unquoted, and quoted otherwise.
func key(k string) string {
	if k == "" {
		return `""`
	}

	for i := 0; i < len(k); i++ {
		c := k[i]
		isAlnum := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if !isAlnum && c != '_' && c != '-' && c != '.' && c != '+' {
			return quote(k)
		}
	}

	return k
}

// quote wraps s in double quotes. Backslashes, double quotes and control
// bytes below 0x20 are escaped; other bytes are written as is.
func quote(s string) string {
	const hex = "0123456789abcdef"

	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if c < 0x20 {
				sb.WriteString(`\x`)
				sb.WriteByte(hex[c>>4])
				sb.WriteByte(hex[c&0xF])
			} else {
				sb.WriteByte(c)
			}
		}
	}
	sb.WriteByte('"')

	return sb.String()
}
