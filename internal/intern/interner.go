// Package intern deduplicates compound entry names during decoding.
//
// NBT documents repeat the same small set of names many times, for example
// every element of a list of compounds carries "id" and "Count". The Interner
// keys names by their xxHash64 so that a repeated name resolves to the string
// allocated the first time it was seen.
package intern

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// DefaultMaxEntries bounds the number of distinct names an Interner retains.
// Names seen after the table is full are still returned correctly, just not cached.
const DefaultMaxEntries = 4096

// ID computes the xxHash64 of a name.
func ID(name []byte) uint64 {
	return xxhash.Sum64(name)
}

// Interner maps name hashes to previously allocated strings and tracks hash collisions.
//
// Note: an Interner is NOT safe for concurrent use. Use Get/Put to borrow one per decode.
type Interner struct {
	names      map[uint64]string // hash → first name seen with that hash
	maxEntries int
	hits       int
	collisions int
}

// New creates an interner retaining at most maxEntries names.
// A non-positive maxEntries selects DefaultMaxEntries.
func New(maxEntries int) *Interner {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &Interner{
		names:      make(map[uint64]string),
		maxEntries: maxEntries,
	}
}

// Intern returns a string equal to name, reusing a cached string when one exists.
//
// A hash collision (different name, same hash) is never an error: the new name
// is returned as a fresh string and the collision is counted.
func (in *Interner) Intern(name []byte) string {
	h := ID(name)
	if cached, ok := in.names[h]; ok {
		if cached == string(name) {
			in.hits++
			return cached
		}
		in.collisions++

		return string(name)
	}

	s := string(name)
	if len(in.names) < in.maxEntries {
		in.names[h] = s
	}

	return s
}

// Len returns the number of cached names.
func (in *Interner) Len() int {
	return len(in.names)
}

// Hits returns how many Intern calls were served from the cache.
func (in *Interner) Hits() int {
	return in.hits
}

// Collisions returns how many Intern calls hit a hash owned by a different name.
func (in *Interner) Collisions() int {
	return in.collisions
}

// Reset clears all cached names and counters, keeping the map's capacity.
func (in *Interner) Reset() {
	clear(in.names)
	in.hits = 0
	in.collisions = 0
}

var internerPool = sync.Pool{
	New: func() any {
		return New(DefaultMaxEntries)
	},
}

// Get borrows an empty interner from the shared pool.
func Get() *Interner {
	in, _ := internerPool.Get().(*Interner)

	return in
}

// Put resets in and returns it to the shared pool.
func Put(in *Interner) {
	if in == nil {
		return
	}

	in.Reset()
	internerPool.Put(in)
}
