package vm

// initSymtable writes the 39-cell initial symbol table -- the six
// built-in machine macros DEF, VAL, UPDATE, BIN, DEC and BAR -- at the
// base of the store and points E at its last entry. Each entry has the
// shape [link, nameLen, nameLen-1 name chars, tag]: nameLen counts
// itself as the first comparison performed by find, which is what
// makes two entries of different name length fail to match before a
// single character is even looked at.
func (m *VM) initSymtable() error {
	mst := [minStoreSize]int64{
		-1, 4, 'D', 'E', 'F', -1,
		0, 4, 'V', 'A', 'L', -2,
		6, 7, 'U', 'P', 'D', 'A', 'T', 'E', -3,
		12, 4, 'B', 'I', 'N', -4,
		21, 4, 'D', 'E', 'C', -5,
		27, 4, 'B', 'A', 'R', -6,
	}

	for i, v := range mst {
		if err := m.st.write(int64(i), v); err != nil {
			return err
		}
	}

	m.reg.h = 0
	m.reg.p = 0
	m.reg.f = 0
	m.reg.c = 0
	m.reg.s = minStoreSize
	m.reg.e = 33
	m.reg.q = 1

	return nil
}
