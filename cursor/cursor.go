// Package cursor provides the bounded byte source that NBT decoding reads from.
//
// The decoder only depends on the Source interface: read one byte, or read
// exactly n bytes, failing with errs.ErrInsufficientData when the input is
// exhausted. Cursor is the in-memory implementation over a byte slice.
//
// # Thread Safety
//
// A Cursor holds a read position and is NOT safe for concurrent use. Use one
// cursor per decode call; distinct cursors over the same slice are independent.
package cursor

import "github.com/arloliu/nbt/errs"

// Source is the byte supply contract required by the decoder.
//
// Implementations must consume bytes strictly forward and must not return
// a partial result: ReadN either returns exactly n bytes or an error.
type Source interface {
	// ReadByte returns the next byte, or errs.ErrInsufficientData if none remain.
	ReadByte() (byte, error)
	// ReadN returns the next n bytes as a contiguous slice, or
	// errs.ErrInsufficientData if fewer than n remain. The returned slice may
	// alias the source's buffer and is only valid until the next read.
	ReadN(n int) ([]byte, error)
}

// Sized is implemented by sources that know how many bytes remain.
// The decoder uses it to reject impossible element counts before allocating.
type Sized interface {
	Remaining() int
}

// Positioned is implemented by sources that can report their read offset.
// The decoder uses it to annotate errors.
type Positioned interface {
	Offset() int
}

// Cursor reads sequentially from an in-memory byte slice.
type Cursor struct {
	data []byte
	pos  int
}

var (
	_ Source     = (*Cursor)(nil)
	_ Sized      = (*Cursor)(nil)
	_ Positioned = (*Cursor)(nil)
)

// New creates a cursor positioned at the start of data.
// The cursor does not copy data; the caller must not modify it while decoding.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// ReadByte returns the next byte and advances the cursor by one.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, errs.ErrInsufficientData
	}

	b := c.data[c.pos]
	c.pos++

	return b, nil
}

// ReadN returns the next n bytes and advances the cursor by n.
//
// The returned slice aliases the cursor's underlying buffer with its capacity
// clipped to n, so appending to it never overwrites later input.
// A negative n is treated as a request that can never be satisfied.
func (c *Cursor) ReadN(n int) ([]byte, error) {
	if n < 0 || n > len(c.data)-c.pos {
		return nil, errs.ErrInsufficientData
	}

	start := c.pos
	c.pos += n

	return c.data[start:c.pos:c.pos], nil
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.pos
}

// Rest returns the unread portion of the input without consuming it.
func (c *Cursor) Rest() []byte {
	return c.data[c.pos:]
}

// Reset repositions the cursor at the start of data, allowing reuse.
func (c *Cursor) Reset(data []byte) {
	c.data = data
	c.pos = 0
}
