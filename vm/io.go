package vm

// nextCh advances one character into register A. If C=0 it consumes
// from the pending input buffer; the returned bool is false exactly
// when that buffer is empty (the NoInput suspend condition). If C!=0
// it replays a previously-stored item from the store instead.
func (m *VM) nextCh() (bool, error) {
	if m.reg.c == 0 {
		r, ok := m.buf.readSymbol()
		if !ok {
			return false, nil
		}
		m.reg.a = int64(r)
		return true, nil
	}

	v, err := m.st.read(m.reg.c)
	if err != nil {
		return false, err
	}
	m.reg.a = v
	m.reg.c++
	return true, nil
}

// load appends register A: to pending output when H=0, or onto the
// item under construction at the store's current top otherwise.
func (m *VM) load() error {
	if m.reg.h == 0 {
		m.buf.writeSymbol(m.reg.a)
		return nil
	}
	if err := m.st.write(m.reg.s, m.reg.a); err != nil {
		return err
	}
	m.reg.s++
	return nil
}
