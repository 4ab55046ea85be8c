package vm

// registers holds the nine integer registers the abstract machine
// threads through every action. They are plain int64s -- like the
// store cells they index into, the same register sometimes holds a
// character code and sometimes a store index, and that overloading is
// load-bearing (see EndFn).
type registers struct {
	a int64 // current character/value
	w int64 // working pointer
	h int64 // head of item under construction (0 = writing directly to output)
	p int64 // current call frame
	f int64 // parent call frame
	c int64 // character source cursor (0 = reading from the input buffer)
	s int64 // stack top
	e int64 // environment / symbol-table head
	q int64 // quote depth
}

func initialRegisters() registers {
	return registers{
		s: minStoreSize,
		e: 33,
		q: 1,
	}
}
