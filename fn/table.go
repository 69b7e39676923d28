package fn

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// memoTable is a size-bounded concurrent memo cache holding two generations of
// entries. When the live generation reaches maxSize, generations rotate and
// the retiring one is dropped, so the table holds at most 2*maxSize entries.
// Reads check the live generation first and fall back to the previous one.
type memoTable[O any] struct {
	gens    [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func newMemoTable[O any](maxSize uint32) *memoTable[O] {
	if maxSize == 0 {
		panic("memoTable: maxSize should be greater than 0")
	}
	t := &memoTable[O]{maxSize: maxSize}
	t.gens[0].Store(&sync.Map{})
	t.gens[1].Store(&sync.Map{})
	return t
}

func (t *memoTable[O]) load(key any) (O, bool) {
	headIdx := t.headIdx.Load()
	v, ok := t.gens[headIdx].Load().Load(key)
	if !ok {
		v, ok = t.gens[1-headIdx].Load().Load(key)
		if !ok {
			var zero O
			return zero, false
		}
	}
	return v.(O), true
}

func (t *memoTable[O]) store(key any, value O) {
	if swapped := t.size.CompareAndSwap(t.maxSize, 0); swapped {
		next := 1 - t.headIdx.Load()
		t.gens[next].Store(&sync.Map{})
		t.headIdx.Store(next)
	}
	t.gens[t.headIdx.Load()].Load().Store(key, value)
	t.size.Add(1)
}

// memoKey normalizes one argument into a map key. Comparable values key
// themselves; Stringers and strings are keyed by the xxhash of their text.
func memoKey(arg any) any {
	switch v := arg.(type) {
	case fmt.Stringer:
		return xxhash.Sum64String(v.String())
	case string:
		return xxhash.Sum64String(v)
	default:
		return v
	}
}

type key2 struct {
	k1, k2 any
}
