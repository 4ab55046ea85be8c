// Package vm implements Strachey's General Purpose Macrogenerator as an
// abstract machine: a resumable, text-in/text-out macro processor driven by
// a labelled state machine over a single fixed-size integer store.
package vm

import (
	"fmt"
)

// Marker is the sentinel cell value terminating items and flagging
// "end of arguments" in a call frame. It is chosen well outside the
// range of legitimate character code points and more negative than
// any machine-macro tag (-1..-6), so it can never be confused with
// either.
const Marker = -(1 << 20)

// minStoreSize is the number of cells the initial symbol table (MST)
// occupies; a store smaller than this can't even hold the six
// built-in machine macros.
const minStoreSize = 39

// store is the single fixed-length array of signed integer cells
// that holds all structural and textual state: characters, item
// lengths, frame pointers, and E-chain links. It is deliberately not
// split into typed sub-arrays -- frame relocation during EndFn
// depends on every link being a plain cell alongside the data it
// threads through.
type store struct {
	cells []int64
}

// overflowError reports that a read or write fell outside the store.
// Encountering one always promotes the machine to Monitor(11); it is
// never returned across the package boundary.
type overflowError struct {
	idx, size int64
}

func (e *overflowError) Error() string {
	return fmt.Sprintf("store index %d out of range [0,%d)", e.idx, e.size)
}

func newStore(size int) (*store, error) {
	if size < minStoreSize {
		return nil, fmt.Errorf("gpm: store size %d too small, need at least %d cells", size, minStoreSize)
	}
	return &store{cells: make([]int64, size)}, nil
}

func (s *store) size() int64 {
	return int64(len(s.cells))
}

func (s *store) inBounds(idx int64) bool {
	return idx >= 0 && idx < s.size()
}

func (s *store) read(idx int64) (int64, error) {
	if !s.inBounds(idx) {
		return 0, &overflowError{idx, s.size()}
	}
	return s.cells[idx], nil
}

func (s *store) write(idx int64, val int64) error {
	if !s.inBounds(idx) {
		return &overflowError{idx, s.size()}
	}
	s.cells[idx] = val
	return nil
}
