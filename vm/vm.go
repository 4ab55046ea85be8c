package vm

import (
	"fmt"

	"github.com/golang/glog"
)

// VM is one instance of the abstract machine: a fixed-size store, the
// nine registers, and the two I/O buffers. It is single-threaded and
// non-reentrant -- nothing about its API is safe to call from more
// than one goroutine at a time, and nothing in its design tries to
// be. Running several independent macro expansions concurrently means
// constructing several *VM values, one per goroutine; see
// internal/cli's batch command.
type VM struct {
	st  *store
	reg registers
	buf buffers
	wc  WarningChars

	label label
	done  bool // true once Finish has been reached; next Run resumes at Start
}

// New constructs a machine with the given warning-character
// configuration and store size (in cells). It fails if size is too
// small to hold the initial symbol table of six built-in macros.
func New(wc WarningChars, size int) (*VM, error) {
	if err := wc.validate(); err != nil {
		return nil, err
	}
	st, err := newStore(size)
	if err != nil {
		return nil, fmt.Errorf("gpm: %w", err)
	}

	m := &VM{
		st:    st,
		reg:   initialRegisters(),
		wc:    wc,
		label: lblStart,
	}
	if err := m.initSymtable(); err != nil {
		return nil, fmt.Errorf("gpm: initializing symbol table: %w", err)
	}
	return m, nil
}

// Run appends chunk to the pending input buffer and steps the
// machine until it either suspends for more input (NoInput) or
// reaches Finish, then drains and returns whatever output was
// produced while consuming chunk. Chunk boundaries are invisible to
// the result: Run(a)+Run(b) == Run(a+b) for any split a+b.
func (m *VM) Run(chunk string) string {
	m.buf.feed(chunk)
	if m.done {
		m.label = lblStart
		m.done = false
	}

	for {
		if m.label == lblFinish {
			m.done = true
			break
		}
		next := m.step()
		if glog.V(2) {
			glog.Infof("gpm: %s -> %s", m.label, next)
		}
		if next == lblNoInput {
			// Input exhausted mid-action: m.label is left exactly
			// where it was (Start, Q2 or LoadArg, the only states
			// that call NextCh directly) so the next Run resumes the
			// same dispatch rather than re-entering through Start.
			break
		}
		m.label = next
	}

	return m.buf.drainOutput()
}

// End flushes any residual pending output and returns it. Calling it
// twice in a row returns the empty string the second time -- there is
// nothing left to flush.
func (m *VM) End() string {
	return m.buf.drainOutput()
}
