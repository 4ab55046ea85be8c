package vm

import "fmt"

// item renders the macro-call item stored at x back out as text, for
// use in diagnostic messages: the item's header cell holds its length
// once closed (0 while still under construction, in which case as
// much of it as exists so far is shown). It never disturbs A or H.
func (m *VM) item(x int64) error {
	a0, h0 := m.reg.a, m.reg.h
	defer func() { m.reg.a, m.reg.h = a0, h0 }()
	m.reg.h = 0

	if !m.st.inBounds(x) {
		m.writeText("*n(Item: bad pointer)")
		return nil
	}

	stx, err := m.st.read(x)
	if err != nil {
		return err
	}

	var end int64
	if stx == 0 {
		end = m.reg.s - x - 1
	} else {
		end = stx - 1
	}
	if end < 0 {
		end = 0
	}

	for k := int64(1); k <= end; k++ {
		idx := x + k
		if !m.st.inBounds(idx) {
			break
		}
		v, err := m.st.read(idx)
		if err != nil {
			return err
		}
		m.reg.a = v
		if err := m.load(); err != nil {
			return err
		}
	}

	if stx == 0 {
		m.writeText("...*t(Incomplete)")
	}
	return nil
}

// opMonitor runs the numbered diagnostic routine named by the current
// label and reports any internal store error as the n==11 fatal path
// would. Most diagnostics print an explanation and fall back to
// Monitor(11), the catch-all that lists every macro call still open
// and then either resumes replaying the offending call's definition
// (EndFn) or returns control to the input stream (Start).
func (m *VM) opMonitor() (label, error) {
	n := m.label.monitorN

	switch n {
	case 1:
		m.writeText("*nMONITOR: Unmatched semicolon in definition of ")
		if err := m.item(m.reg.p + 2); err != nil {
			return label{}, err
		}
		m.writeText("*nIf this had been quoted the result would be *n")
		return lblCopy, nil

	case 2:
		m.writeText("*nMONITOR: Unquoted tilde in argument list of ")
		if err := m.item(m.reg.f + 2); err != nil {
			return label{}, err
		}
		m.writeText("*nIf this had been quoted the result would be *n")
		return lblCopy, nil

	case 3:
		m.writeText("*nMONITOR:*tImpossible argument number in definition of ")
		if err := m.item(m.reg.p + 2); err != nil {
			return label{}, err
		}
		return lblMonitor(11), nil

	case 4:
		m.writeText("*nMONITOR: No argument ")
		m.reg.h = 0
		if err := m.load(); err != nil {
			return label{}, err
		}
		m.writeText("*n in call for ")
		if err := m.item(m.reg.p + 2); err != nil {
			return label{}, err
		}
		return lblMonitor(11), nil

	case 5:
		m.writeText("*nMONITOR: Terminator in ")
		if m.reg.c == 0 {
			m.writeText("input stream. Probably machine error.")
			return lblMonitor(11), nil
		}
		m.writeText("argument list for ")
		if err := m.item(m.reg.f + 2); err != nil {
			return label{}, err
		}
		m.writeText("*nProbably due to a semicolon missing from the definition of ")
		if err := m.item(m.reg.p + 2); err != nil {
			return label{}, err
		}
		m.writeText("*nIf a final semicolon is added the result is *n")
		m.reg.c--
		return lblApply, nil

	case 7:
		m.writeText("*nMONITOR: Undefined name ")
		if err := m.item(m.reg.w); err != nil {
			return label{}, err
		}
		return lblMonitor(11), nil

	case 8:
		m.writeText("*nMONITOR: Unmatched >. Probably machine error. ")
		return lblMonitor(11), nil

	case 9:
		m.writeText("*nMONITOR: Update argument too long for ")
		if err := m.item(m.reg.p + 9); err != nil {
			return label{}, err
		}
		return lblMonitor(11), nil

	case 10:
		m.writeText("*nMONITOR: Non-digit in number ")
		return lblMonitor(11), nil

	case 11:
		return m.monitor11()

	default:
		return lblMonitor(11), nil
	}
}

// monitor11 is the general monitor reached after an irremediable
// error: it lists every macro call still open, from the innermost
// (already entered, walking P) to the outermost (not yet entered,
// walking F), then either resumes the innermost call's own definition
// (if one is being replayed) or returns to the input stream.
func (m *VM) monitor11() (label, error) {
	wLimit := int64(20)
	m.writeText("*nCurrent macros are ")

	for !(m.reg.p == 0 && m.reg.f == 0) {
		var w1 int64
		if m.reg.p > m.reg.f {
			w1 = m.reg.p + 2
			newP, err := m.st.read(m.reg.p)
			if err != nil {
				return label{}, err
			}
			m.reg.p = newP
			m.writeText("*nAlready entered ")
		} else {
			w1 = m.reg.f + 2
			newF, err := m.st.read(m.reg.f)
			if err != nil {
				return label{}, err
			}
			m.reg.f = newF
			m.writeText("*nNot yet entered ")
		}

		for r := int64(1); r <= wLimit; r++ {
			if err := m.item(w1); err != nil {
				return label{}, err
			}
			if m.st.inBounds(w1) {
				v, err := m.st.read(w1)
				if err != nil {
					return label{}, err
				}
				if v == 0 {
					break
				}
			}

			step := int64(0)
			if m.st.inBounds(w1) {
				v, err := m.st.read(w1)
				if err != nil {
					return label{}, err
				}
				step = v
			}
			w1 += step

			if m.st.inBounds(w1) {
				v, err := m.st.read(w1)
				if err != nil {
					return label{}, err
				}
				if v == Marker {
					break
				}
			}

			if wLimit != 1 {
				m.writeText(fmt.Sprintf("*nArg %d,*t", r))
			}
		}

		wLimit = 1
	}

	m.writeText("*nEnd of monitor printing")
	m.reg.a = 'Q'
	if err := m.load(); err != nil {
		return label{}, err
	}

	if m.reg.p > m.reg.f {
		return lblEndFn, nil
	}
	return lblStart, nil
}
