package vm

// step runs the action for the machine's current label and returns
// the next label. Any internal invariant violation surfaced as an
// error from the store (out-of-bounds index, stack overflow) is
// promoted to Monitor(11) here, in one place, rather than scattered
// through every action -- matching the spec's classification of
// bounds violations as an immediate fatal monitor.
func (m *VM) step() label {
	fn, ok := dispatch[m.label.kind]
	if !ok {
		return lblMonitor(11)
	}
	next, err := fn(m)
	if err != nil {
		return lblMonitor(11)
	}
	return next
}

type action func(*VM) (label, error)

var dispatch = map[labelKind]action{
	kindStart:    (*VM).opStart,
	kindCopy:     (*VM).opCopy,
	kindScan:     (*VM).opScan,
	kindQ2:       (*VM).opQ2,
	kindFn:       (*VM).opFn,
	kindNextItem: (*VM).opNextItem,
	kindApply:    (*VM).opApply,
	kindLoadArg:  (*VM).opLoadArg,
	kindEndFn:    (*VM).opEndFn,
	kindExit:     (*VM).opExit,
	kindDEF:      (*VM).opDEF,
	kindVAL:      (*VM).opVAL,
	kindUPDATE:   (*VM).opUPDATE,
	kindBIN:      (*VM).opBIN,
	kindDEC:      (*VM).opDEC,
	kindBAR:      (*VM).opBAR,
	kindMonitor:  (*VM).opMonitor,
}

// opStart is the main cycle's entry: fetch one character and dispatch
// on it. A warning character that isn't actionable in the current
// context (e.g. an apply terminator while no item is under
// construction) falls back to Copy, same as ordinary text.
func (m *VM) opStart() (label, error) {
	ok, err := m.nextCh()
	if err != nil {
		return label{}, err
	}
	if !ok {
		return lblNoInput, nil
	}

	a := rune(m.reg.a)
	switch {
	case a == m.wc.Open:
		m.reg.q++
		return lblQ2, nil
	case a == m.wc.Def:
		return lblFn, nil
	case a == m.wc.ArgSep:
		if m.reg.h == 0 {
			return lblCopy, nil
		}
		return lblNextItem, nil
	case a == m.wc.Apply:
		if m.reg.h == 0 {
			return lblCopy, nil
		}
		return lblApply, nil
	case a == m.wc.LoadArg:
		if m.reg.p == 0 {
			return lblCopy, nil
		}
		return lblLoadArg, nil
	case m.reg.a == Marker:
		if m.reg.h == 0 && m.reg.c == 0 {
			return lblFinish, nil
		}
		return lblEndFn, nil
	case a == m.wc.Close:
		if m.reg.h == 0 && m.reg.c == 0 {
			return lblFinish, nil
		}
		return lblExit, nil
	default:
		return lblCopy, nil
	}
}

// opCopy appends A as ordinary text and returns to Scan.
func (m *VM) opCopy() (label, error) {
	if err := m.load(); err != nil {
		return label{}, err
	}
	return lblScan, nil
}

// opScan decides whether the next character is read through Start
// (unquoted) or Q2 (still inside a quote).
func (m *VM) opScan() (label, error) {
	if m.reg.q == 1 {
		return lblStart, nil
	}
	return lblQ2, nil
}

// opQ2 copies quoted text verbatim at any nesting depth, tracking
// open/close pairs so a quote can itself contain balanced quotes.
func (m *VM) opQ2() (label, error) {
	ok, err := m.nextCh()
	if err != nil {
		return label{}, err
	}
	if !ok {
		return lblNoInput, nil
	}

	a := rune(m.reg.a)
	switch a {
	case m.wc.Open:
		m.reg.q++
		return lblCopy, nil
	case m.wc.Close:
		m.reg.q--
		if m.reg.q == 1 {
			return lblStart, nil
		}
		return lblCopy, nil
	default:
		return lblCopy, nil
	}
}
