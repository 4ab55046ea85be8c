package vm

// The six warning-character actions below are each specified as a set
// of simultaneous assignments on the abstract machine: every
// right-hand value is read before any left-hand cell is written, even
// where a right-hand side aliases a left-hand side (e.g. Apply reads
// old F, H, S, C before overwriting the very cells that held them).

// opFn pushes a new call frame when an unquoted definition introducer
// is seen: ST[S],ST[S+1],ST[S+2],ST[S+3],H,F,S := H,F,0,0,S+3,S+1,S+4.
func (m *VM) opFn() (label, error) {
	s0, h0, f0 := m.reg.s, m.reg.h, m.reg.f

	if err := m.st.write(s0, h0); err != nil {
		return label{}, err
	}
	if err := m.st.write(s0+1, f0); err != nil {
		return label{}, err
	}
	if err := m.st.write(s0+2, 0); err != nil {
		return label{}, err
	}
	if err := m.st.write(s0+3, 0); err != nil {
		return label{}, err
	}

	m.reg.h = s0 + 3
	m.reg.f = s0 + 1
	m.reg.s = s0 + 4

	return lblStart, nil
}

// opNextItem closes the item currently under construction and opens
// the next one, within the same call frame.
func (m *VM) opNextItem() (label, error) {
	if m.reg.h == 0 {
		return lblCopy, nil
	}

	s0, h0 := m.reg.s, m.reg.h
	lenSoFar, err := m.st.read(h0)
	if err != nil {
		return label{}, err
	}
	if err := m.st.write(h0, s0-h0-lenSoFar); err != nil {
		return label{}, err
	}
	if err := m.st.write(s0, 0); err != nil {
		return label{}, err
	}

	m.reg.h = s0
	m.reg.s = s0 + 1

	return lblStart, nil
}

// opApply closes the call's item list and either begins replaying a
// user-defined macro's body from the store, or jumps straight to a
// built-in machine macro's label.
func (m *VM) opApply() (label, error) {
	if m.reg.p > m.reg.f {
		return lblMonitor(1), nil
	}
	if m.reg.h == 0 {
		return lblCopy, nil
	}

	p0, f0, h0, s0, c0 := m.reg.p, m.reg.f, m.reg.h, m.reg.s, m.reg.c

	// Snapshot every right-hand value under the OLD registers before
	// any write touches a cell one of them aliases.
	stF, err := m.st.read(f0)
	if err != nil {
		return label{}, err
	}
	stFm1, err := m.st.read(f0 - 1)
	if err != nil {
		return label{}, err
	}

	newF := stF
	newP := f0
	newH := stFm1
	newS := s0 + 1

	if err := m.st.write(h0, s0-h0); err != nil {
		return label{}, err
	}
	if err := m.st.write(s0, Marker); err != nil {
		return label{}, err
	}
	if err := m.st.write(f0-1, s0-f0+2); err != nil {
		return label{}, err
	}
	if err := m.st.write(f0, p0); err != nil {
		return label{}, err
	}
	if err := m.st.write(f0+1, c0); err != nil {
		return label{}, err
	}

	m.reg.f = newF
	m.reg.p = newP
	m.reg.h = newH
	m.reg.s = newS

	if m.reg.h != 0 {
		hv, err := m.st.read(m.reg.h)
		if err != nil {
			return label{}, err
		}
		pm1, err := m.st.read(m.reg.p - 1)
		if err != nil {
			return label{}, err
		}
		if err := m.st.write(m.reg.h, hv+pm1); err != nil {
			return label{}, err
		}
	}

	w, found, err := m.find(m.reg.p + 2)
	if err != nil {
		return label{}, err
	}
	if !found {
		return lblMonitor(7), nil
	}
	m.reg.w = w

	tag, err := m.st.read(m.reg.w)
	if err != nil {
		return label{}, err
	}
	if tag < 0 {
		if lbl, ok := machineMacroLabel(tag); ok {
			return lbl, nil
		}
		return lblMonitor(11), nil
	}

	m.reg.c = m.reg.w + 1
	return lblStart, nil
}

// machineMacroLabel maps a negative tag from the initial symbol table
// to the built-in macro it names.
func machineMacroLabel(tag int64) (label, bool) {
	switch tag {
	case -1:
		return lblDEF, true
	case -2:
		return lblVAL, true
	case -3:
		return lblUPDATE, true
	case -4:
		return lblBIN, true
	case -5:
		return lblDEC, true
	case -6:
		return lblBAR, true
	default:
		return label{}, false
	}
}

// opLoadArg substitutes the value of argument N (the digit following
// '~') into the item under construction.
func (m *VM) opLoadArg() (label, error) {
	if m.reg.p == 0 {
		if m.reg.h == 0 {
			return lblCopy, nil
		}
		return lblMonitor(2), nil
	}

	ok, err := m.nextCh()
	if err != nil {
		return label{}, err
	}
	if !ok {
		return lblNoInput, nil
	}

	n := m.reg.a - '0'
	if n < 0 {
		return lblMonitor(3), nil
	}

	w := m.reg.p + 2
	for i := int64(0); i < n; i++ {
		step, err := m.st.read(w)
		if err != nil {
			return label{}, err
		}
		w += step
		v, err := m.st.read(w)
		if err != nil {
			return label{}, err
		}
		if v == Marker {
			return lblMonitor(4), nil
		}
	}

	itemLen, err := m.st.read(w)
	if err != nil {
		return label{}, err
	}
	for r := int64(1); r < itemLen; r++ {
		v, err := m.st.read(w + r)
		if err != nil {
			return label{}, err
		}
		m.reg.a = v
		if err := m.load(); err != nil {
			return label{}, err
		}
	}

	return lblStart, nil
}

// opEndFn tears down the innermost call frame: it rewrites the
// E-chain so that no entry's link still points into the cells this
// frame is about to vacate, relocates H if an outer item is being
// built, restores the caller's P/C, and compacts the store by
// shifting everything above the frame down by its length.
func (m *VM) opEndFn() (label, error) {
	if m.reg.f > m.reg.p {
		return lblMonitor(5), nil
	}

	p0, s0 := m.reg.p, m.reg.s
	callLen, err := m.st.read(p0 - 1)
	if err != nil {
		return label{}, err
	}

	if err := m.st.write(s0, m.reg.e); err != nil {
		return label{}, err
	}
	a := s0
	limit := (p0 - 1) + callLen
	for {
		link, err := m.st.read(a)
		if err != nil {
			return label{}, err
		}
		if link < limit {
			break
		}
		if err := m.st.write(a, link-callLen); err != nil {
			return label{}, err
		}
		a = link
	}

	w, err := m.st.read(a)
	if err != nil {
		return label{}, err
	}
	for w > p0-1 {
		w, err = m.st.read(w)
		if err != nil {
			return label{}, err
		}
	}
	if err := m.st.write(a, w); err != nil {
		return label{}, err
	}
	m.reg.e, err = m.st.read(s0)
	if err != nil {
		return label{}, err
	}

	if m.reg.h != 0 {
		if m.reg.h > p0 {
			m.reg.h -= callLen
		} else {
			hv, err := m.st.read(m.reg.h)
			if err != nil {
				return label{}, err
			}
			if err := m.st.write(m.reg.h, hv-callLen); err != nil {
				return label{}, err
			}
		}
	}

	newP, err := m.st.read(p0)
	if err != nil {
		return label{}, err
	}
	newC, err := m.st.read(p0 + 1)
	if err != nil {
		return label{}, err
	}
	newS := s0 - callLen
	a2 := p0 - 1
	w2 := (p0 - 1) + callLen

	m.reg.p = newP
	m.reg.c = newC
	m.reg.s = newS

	for a2 != m.reg.s {
		v, err := m.st.read(w2)
		if err != nil {
			return label{}, err
		}
		if err := m.st.write(a2, v); err != nil {
			return label{}, err
		}
		a2++
		w2++
	}

	return lblStart, nil
}

// opExit handles an unquoted close-quote seen while a body is being
// replayed or an item is being built (Start sends the C=H=0 case
// straight to Finish); anything other than C=H=0 here is a stray '>'.
func (m *VM) opExit() (label, error) {
	if !(m.reg.c == 0 && m.reg.h == 0) {
		return lblMonitor(8), nil
	}
	return lblFinish, nil
}
