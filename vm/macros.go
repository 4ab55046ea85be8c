package vm

// The six machine macros below are DEF, VAL, UPDATE, BIN, DEC and BAR,
// reached from Apply via the negative tags planted in the initial
// symbol table by initSymtable. Each ends by falling into EndFn,
// exactly as an ordinary user-defined macro's body would.

// opDEF records the call's first argument as a new entry on the
// E-chain, so that its second argument (the body) becomes the value
// looked up by later calls to that name.
func (m *VM) opDEF() (label, error) {
	p0, e0 := m.reg.p, m.reg.e

	if m.reg.h != 0 {
		hv, err := m.st.read(m.reg.h)
		if err != nil {
			return label{}, err
		}
		pm1, err := m.st.read(p0 - 1)
		if err != nil {
			return label{}, err
		}
		if err := m.st.write(m.reg.h, hv-pm1+6); err != nil {
			return label{}, err
		}
	}

	if err := m.st.write(p0-1, 6); err != nil {
		return label{}, err
	}
	if err := m.st.write(p0+5, e0); err != nil {
		return label{}, err
	}
	m.reg.e = p0 + 5

	return lblEndFn, nil
}

// opVAL looks up the macro named by the call's first argument and
// copies its recorded value into the output/item under construction.
func (m *VM) opVAL() (label, error) {
	w, found, err := m.find(m.reg.p + 6)
	if err != nil {
		return label{}, err
	}
	if !found {
		return lblMonitor(7), nil
	}

	for {
		v, err := m.st.read(w + 1)
		if err != nil {
			return label{}, err
		}
		if v == Marker {
			break
		}
		m.reg.a = v
		w++
		if err := m.load(); err != nil {
			return label{}, err
		}
	}

	return lblEndFn, nil
}

// opUPDATE overwrites a previously DEF'd name's value with the call's
// second argument, provided the new value is no longer than the old.
func (m *VM) opUPDATE() (label, error) {
	w, found, err := m.find(m.reg.p + 9)
	if err != nil {
		return label{}, err
	}
	if !found {
		return lblMonitor(7), nil
	}

	p9 := m.reg.p + 9
	step, err := m.st.read(p9)
	if err != nil {
		return label{}, err
	}
	src := p9 + step

	newLen, err := m.st.read(src)
	if err != nil {
		return label{}, err
	}
	oldLen, err := m.st.read(w)
	if err != nil {
		return label{}, err
	}
	if newLen > oldLen {
		return lblMonitor(9), nil
	}

	for r := int64(1); r <= newLen; r++ {
		v, err := m.st.read(src + r)
		if err != nil {
			return label{}, err
		}
		if err := m.st.write(w+r, v); err != nil {
			return label{}, err
		}
	}

	return lblEndFn, nil
}

// opBIN parses the call's (optionally signed) decimal argument into a
// single store cell holding its integer value.
func (m *VM) opBIN() (label, error) {
	p7 := m.reg.p + 7
	signCh, err := m.st.read(p7)
	if err != nil {
		return label{}, err
	}

	a := p7
	if signCh == '+' || signCh == '-' {
		a = p7 + 1
	}

	var acc int64
	for {
		ch, err := m.st.read(a)
		if err != nil {
			return label{}, err
		}
		if ch == Marker {
			break
		}
		digit := ch - '0'
		if digit < 0 || digit > 9 {
			return lblMonitor(10), nil
		}
		acc = 10*acc + digit
		a++
	}

	if signCh == '-' {
		acc = -acc
	}

	m.reg.s++
	if err := m.st.write(m.reg.s, acc); err != nil {
		return label{}, err
	}

	return lblEndFn, nil
}

// opDEC renders the call's single integer argument back into decimal
// text, emitting a leading '-' for negative values.
func (m *VM) opDEC() (label, error) {
	p7 := m.reg.p + 7
	w, err := m.st.read(p7)
	if err != nil {
		return label{}, err
	}

	if w < 0 {
		w = -w
		m.reg.a = '-'
		if err := m.load(); err != nil {
			return label{}, err
		}
	}

	w1 := int64(1)
	for 10*w1 <= w {
		w1 *= 10
	}

	for w1 >= 1 {
		q := w / w1
		r := w % w1
		m.reg.a = '0' + q
		if err := m.load(); err != nil {
			return label{}, err
		}
		w = r
		w1 /= 10
	}

	return lblEndFn, nil
}

// opBAR applies one of the five arithmetic operators (+ - x / R) to
// the call's two integer arguments and loads the single-cell result.
func (m *VM) opBAR() (label, error) {
	op, err := m.st.read(m.reg.p + 7)
	if err != nil {
		return label{}, err
	}
	w, err := m.st.read(m.reg.p + 9)
	if err != nil {
		return label{}, err
	}
	a, err := m.st.read(m.reg.p + 11)
	if err != nil {
		return label{}, err
	}

	var res int64
	switch op {
	case '+':
		res = w + a
	case '-':
		res = w - a
	case 'x':
		res = w * a
	case '/':
		if a == 0 {
			return lblMonitor(11), nil
		}
		res = w / a
	case 'R':
		if a == 0 {
			return lblMonitor(11), nil
		}
		res = w % a
	default:
		return lblMonitor(11), nil
	}

	m.reg.a = res
	if err := m.load(); err != nil {
		return label{}, err
	}

	return lblEndFn, nil
}
