package vm_test

import (
	"fmt"
	"strings"

	"github.com/bdwalton/gpm/vm"
)

func defaultWithAmpersand() vm.WarningChars {
	wc := vm.DefaultWarningChars()
	wc.Def = '&'
	return wc
}

// Example demonstrates defining a one-argument identity macro and
// calling it.
func Example() {
	m, err := vm.New(defaultWithAmpersand(), 400)
	if err != nil {
		panic(err)
	}
	fmt.Print(m.Run("&DEF,id,<~1>;&id,hello;") + m.End())
	// Output: hello
}

// Example_quoting shows that text inside a quoted region is copied
// through untouched, warning characters included.
func Example_quoting() {
	m, err := vm.New(defaultWithAmpersand(), 400)
	if err != nil {
		panic(err)
	}
	fmt.Print(m.Run("<&DEF,x,<~1>;>") + m.End())
	// Output: &DEF,x,<~1>;
}

// Example_chunkedInput shows that the result of a macro expansion
// does not depend on how the caller splits the input across
// successive Run calls.
func Example_chunkedInput() {
	m, err := vm.New(defaultWithAmpersand(), 400)
	if err != nil {
		panic(err)
	}

	var out string
	for _, chunk := range []string{
		"&DE", "F,Suc,<&1,2,3,4,5,6,7,8,9,1",
		"0,&DEF,1,<~>~1;;>;", "&Suc,9;",
	} {
		out += m.Run(chunk)
	}
	out += m.End()
	fmt.Print(out)
	// Output: 10
}

// Example_undefinedMacro shows the diagnostic produced when calling a
// name that was never DEF'd.
func Example_undefinedMacro() {
	m, err := vm.New(defaultWithAmpersand(), 400)
	if err != nil {
		panic(err)
	}
	out := m.Run("&nope;") + m.End()
	fmt.Println(strings.Contains(out, "MONITOR: Undefined name nope"))
	// Output: true
}
