package cursor

import (
	"testing"

	"github.com/arloliu/nbt/errs"
	"github.com/stretchr/testify/require"
)

func TestCursor_ReadByte(t *testing.T) {
	require := require.New(t)

	c := New([]byte{0x01, 0x02})

	b, err := c.ReadByte()
	require.NoError(err)
	require.Equal(byte(0x01), b)

	b, err = c.ReadByte()
	require.NoError(err)
	require.Equal(byte(0x02), b)
	require.Equal(2, c.Offset())
	require.Equal(0, c.Remaining())

	_, err = c.ReadByte()
	require.ErrorIs(err, errs.ErrInsufficientData)
	require.Equal(2, c.Offset(), "failed read must not advance")
}

func TestCursor_ReadN(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		c := New([]byte{1, 2, 3, 4})
		got, err := c.ReadN(3)
		require.NoError(t, err)
		require.Equal(t, []byte{1, 2, 3}, got)
		require.Equal(t, 1, c.Remaining())
		require.Equal(t, []byte{4}, c.Rest())
	})

	t.Run("zero length", func(t *testing.T) {
		c := New(nil)
		got, err := c.ReadN(0)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("too many", func(t *testing.T) {
		c := New([]byte{1, 2})
		_, err := c.ReadN(3)
		require.ErrorIs(t, err, errs.ErrInsufficientData)
		require.Equal(t, 0, c.Offset(), "no partial consumption")
	})

	t.Run("negative", func(t *testing.T) {
		c := New([]byte{1, 2})
		_, err := c.ReadN(-1)
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})

	t.Run("capacity is clipped", func(t *testing.T) {
		data := []byte{1, 2, 3}
		c := New(data)
		got, err := c.ReadN(1)
		require.NoError(t, err)
		require.Equal(t, 1, cap(got))

		_ = append(got, 9)
		require.Equal(t, byte(2), data[1], "append must not clobber unread input")
	})
}

func TestCursor_Reset(t *testing.T) {
	c := New([]byte{1})
	_, err := c.ReadByte()
	require.NoError(t, err)

	c.Reset([]byte{7, 8})
	require.Equal(t, 0, c.Offset())
	require.Equal(t, 2, c.Remaining())

	b, err := c.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(7), b)
}
