package main

import (
	"fmt"
	"io"
	"sort"
)

// vmDumper renders a machine state snapshot: the token stream with
// addresses, both stacks, the dictionary and label tables, and the
// instruction pointer with its current token.  The same rendering backs the
// .d word, fatal diagnostics, and failing tests.
type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "========= machine state =========\n")

	fmt.Fprintf(dump.out, "token stream:\n")
	for i, tok := range dump.vm.tokens {
		if i > 0 {
			io.WriteString(dump.out, " ")
		}
		fmt.Fprintf(dump.out, "%v:[%v]", i, dump.vm.spelling(tok))
	}
	io.WriteString(dump.out, "\n")

	fmt.Fprintf(dump.out, "\ndata stack:\n")
	dump.dumpStack(len(dump.vm.stack), func(i int) interface{} { return dump.vm.stack[i] })

	fmt.Fprintf(dump.out, "\nreturn stack:\n")
	dump.dumpStack(len(dump.vm.rstack), func(i int) interface{} { return dump.vm.rstack[i] })

	if len(dump.vm.dict) > 0 {
		fmt.Fprintf(dump.out, "\ndictionary:\n")
		dump.dumpTable(dump.vm.dict)
	}
	if len(dump.vm.labels) > 0 {
		fmt.Fprintf(dump.out, "\nlabels:\n")
		dump.dumpTable(dump.vm.labels)
	}

	if dump.vm.atEnd() {
		fmt.Fprintf(dump.out, "\nip: %v\n", dump.vm.ip)
	} else {
		fmt.Fprintf(dump.out, "\nip: %v (%v)\n", dump.vm.ip, dump.vm.curSpelling())
	}
	fmt.Fprintf(dump.out, "=================================\n")
}

// dumpStack prints bottom to top, each value tagged with its depth so that
// index 0 is always the top of the stack.
func (dump vmDumper) dumpStack(n int, at func(i int) interface{}) {
	io.WriteString(dump.out, "[")
	for i := 0; i < n; i++ {
		if i > 0 {
			io.WriteString(dump.out, " ")
		}
		fmt.Fprintf(dump.out, "%v:%v", n-i-1, at(i))
	}
	io.WriteString(dump.out, "]\n")
}

func (dump vmDumper) dumpTable(table map[string]int) {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(dump.out, "  %v -> @%v\n", name, table[name])
	}
}
