package vm

// find implements Find[x]: it walks the E-chain (the singly linked
// list of defined-name entries threaded through the store via each
// entry's back-link at its own first cell) looking for an entry whose
// name item matches the name item stored at x. It returns the index
// one past that entry's name (where VAL/UPDATE/Apply expect to find
// the macro's value or negative tag), or found=false if the chain is
// exhausted -- the caller is responsible for turning that into
// Monitor(7). It sets register W to x first, so that Monitor(7) can
// print the name that was not found.
func (m *VM) find(x int64) (int64, bool, error) {
	a := m.reg.e
	w := x
	m.reg.w = x

	for {
		if a < 0 || w < 0 {
			return 0, false, nil
		}

		nameLen, err := m.st.read(w)
		if err != nil {
			return 0, false, err
		}

		matched := true
		for r := int64(0); r < nameLen; r++ {
			lw, err := m.st.read(w + r)
			if err != nil {
				return 0, false, err
			}
			ra, err := m.st.read(a + r + 1)
			if err != nil {
				return 0, false, err
			}
			if lw != ra {
				matched = false
				break
			}
		}
		if matched {
			return a + 1 + nameLen, true, nil
		}

		next, err := m.st.read(a)
		if err != nil {
			return 0, false, err
		}
		a = next
		if a < 0 {
			return 0, false, nil
		}
	}
}
