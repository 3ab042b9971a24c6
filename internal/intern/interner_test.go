package intern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, ID([]byte(tt.data)))
		})
	}
}

func TestInterner_Intern(t *testing.T) {
	in := New(0)

	first := in.Intern([]byte("Count"))
	second := in.Intern([]byte("Count"))

	require.Equal(t, "Count", first)
	require.Equal(t, first, second)
	require.Equal(t, 1, in.Len())
	require.Equal(t, 1, in.Hits())
	require.Zero(t, in.Collisions())

	require.Equal(t, "id", in.Intern([]byte("id")))
	require.Equal(t, 2, in.Len())
}

func TestInterner_ResultDoesNotAliasInput(t *testing.T) {
	in := New(0)

	buf := []byte("Name")
	s := in.Intern(buf)
	buf[0] = 'X'

	require.Equal(t, "Name", s)
	require.Equal(t, "Xame", in.Intern(buf))
}

func TestInterner_Collision(t *testing.T) {
	in := New(0)

	// Plant a foreign name under the hash of "id" to simulate a collision.
	in.names[ID([]byte("id"))] = "other"

	require.Equal(t, "id", in.Intern([]byte("id")))
	require.Equal(t, 1, in.Collisions())
	require.Equal(t, "other", in.names[ID([]byte("id"))], "first owner keeps the slot")
}

func TestInterner_MaxEntries(t *testing.T) {
	in := New(2)

	in.Intern([]byte("a"))
	in.Intern([]byte("b"))
	require.Equal(t, "c", in.Intern([]byte("c")))
	require.Equal(t, 2, in.Len(), "table stops growing at the limit")
}

func TestInterner_Reset(t *testing.T) {
	in := New(0)
	in.Intern([]byte("a"))
	in.Intern([]byte("a"))

	in.Reset()

	require.Zero(t, in.Len())
	require.Zero(t, in.Hits())
	require.Zero(t, in.Collisions())
}

func TestPool(t *testing.T) {
	in := Get()
	require.NotNil(t, in)
	in.Intern([]byte("x"))
	Put(in)
	Put(nil)

	again := Get()
	require.Zero(t, again.Len(), "pooled interners come back empty")
	Put(again)
}

func BenchmarkIntern(b *testing.B) {
	in := New(0)
	name := []byte("minecraft:stone")
	for b.Loop() {
		in.Intern(name)
	}
}
