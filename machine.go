package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Fifty-Nine/iforth/internal/chario"
	"github.com/Fifty-Nine/iforth/internal/fileinput"
	"github.com/Fifty-Nine/iforth/internal/flushio"
)

// VM interprets one token stream.  Two VMs share nothing; each owns its
// source text, stacks, dictionary, and label table for its whole lifetime.
type VM struct {
	logging

	inputs fileinput.Queue
	source fileinput.Source

	tokens []token

	dict   map[string]int
	labels map[string]int

	stack  []cell
	rstack []int

	ip int

	out flushio.WriteFlusher
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}

func (vm *VM) spelling(tok token) string {
	return vm.source.Text[tok.start:tok.end]
}

func (vm *VM) curSpelling() string {
	if vm.atEnd() {
		return ""
	}
	return vm.spelling(vm.tokens[vm.ip])
}

// fatal raises err as a machine diagnostic: the offending token, the
// instruction pointer, and a state dump are captured before unwinding.
func (vm *VM) fatal(err error) {
	var dump strings.Builder
	vmDumper{vm: vm, out: &dump}.dump()
	panic(&machineError{
		cause:    err,
		spelling: vm.curSpelling(),
		ip:       vm.ip,
		dump:     dump.String(),
	})
}

func (vm *VM) fatalf(cause error, format string, args ...interface{}) {
	vm.fatal(fmt.Errorf("%w: %v", cause, fmt.Sprintf(format, args...)))
}

func (vm *VM) haltif(err error) {
	if err != nil {
		vm.fatal(err)
	}
}

//// data stack

func (vm *VM) push(val cell) {
	vm.stack = append(vm.stack, val)
}

func (vm *VM) pop() cell {
	val, ok := vm.tryPop()
	if !ok {
		vm.fatal(errStackUnderflow)
	}
	return val
}

func (vm *VM) tryPop() (cell, bool) {
	i := len(vm.stack) - 1
	if i < 0 {
		return 0, false
	}
	val := vm.stack[i]
	vm.stack = vm.stack[:i]
	return val, true
}

func (vm *VM) top() cell {
	if len(vm.stack) == 0 {
		vm.fatal(errStackUnderflow)
	}
	return vm.stack[len(vm.stack)-1]
}

//// return stack

func (vm *VM) rpush(addr int) {
	vm.rstack = append(vm.rstack, addr)
}

func (vm *VM) rpop() (int, bool) {
	i := len(vm.rstack) - 1
	if i < 0 {
		return 0, false
	}
	addr := vm.rstack[i]
	vm.rstack = vm.rstack[:i]
	return addr, true
}

func (vm *VM) rtop() (int, bool) {
	if len(vm.rstack) == 0 {
		return 0, false
	}
	return vm.rstack[len(vm.rstack)-1], true
}

//// instruction pointer

func (vm *VM) endAddr() int { return len(vm.tokens) }
func (vm *VM) atEnd() bool  { return vm.ip >= vm.endAddr() }

// next advances the instruction pointer one token, saturating at the end.
func (vm *VM) next() { vm.rbranch(1) }

// rbranch moves the instruction pointer by a relative offset, clamped to the
// valid address range.
func (vm *VM) rbranch(off int) { vm.abranch(vm.ip + off) }

// abranch moves the instruction pointer to an absolute address, clamped to
// the valid address range.
func (vm *VM) abranch(addr int) {
	if addr < 0 {
		addr = 0
	} else if addr > vm.endAddr() {
		addr = vm.endAddr()
	}
	vm.ip = addr
}

// branchTo scans forward from the current token until pred matches,
// reporting whether a match was found before the end of the stream.
func (vm *VM) branchTo(pred func(token) bool) bool {
	for !vm.atEnd() && !pred(vm.tokens[vm.ip]) {
		vm.next()
	}
	return !vm.atEnd()
}

// exitWord pops the return stack into the instruction pointer.
func (vm *VM) exitWord(cause error) {
	addr, ok := vm.rpop()
	if !ok {
		vm.fatal(cause)
	}
	vm.abranch(addr)
}

//// execution

// load slurps all queued inputs, lexes them, and collects labels.  Called
// once before the first step.
func (vm *VM) load() {
	source, err := vm.inputs.Slurp()
	vm.haltif(err)
	vm.source = source

	tokens, err := lex(source.Text)
	if err != nil {
		var le lexError
		if errors.As(err, &le) {
			err = fmt.Errorf("%v: %w", source.Locate(le.pos), err)
		}
		vm.fatal(err)
	}
	vm.tokens = tokens

	vm.dict = make(map[string]int)
	vm.labels = make(map[string]int)
	for i, tok := range tokens {
		if tok.kind == tokenLabel {
			vm.registerLabel(tok, i)
		}
	}
}

func (vm *VM) registerLabel(tok token, addr int) {
	name := strings.ToLower(vm.source.Text[tok.start+1 : tok.end-1])
	vm.labels[name] = addr + 1
}

func (vm *VM) run(ctx context.Context) cell {
	vm.load()
	for !vm.atEnd() {
		vm.step()
		vm.haltif(ctx.Err())
	}
	vm.haltif(vm.out.Flush())
	if len(vm.stack) == 0 {
		return 0
	}
	return vm.stack[len(vm.stack)-1]
}

func (vm *VM) step() {
	tok := vm.tokens[vm.ip]
	if vm.logfn != nil {
		vm.logf("exec @%v %v %q -- s:%v r:%v",
			vm.ip, tok.kind, vm.spelling(tok), vm.stack, vm.rstack)
	}
	switch tok.kind {
	case tokenComment:
		vm.next()
	case tokenLabel:
		vm.registerLabel(tok, vm.ip)
		vm.next()
	case tokenNumber:
		vm.push(tok.num)
		vm.next()
	case tokenString:
		vm.pushString(vm.spelling(tok))
		vm.next()
	case tokenPrint:
		vm.print(tok)
	case tokenStartDef:
		vm.define()
	case tokenEndDef:
		vm.exitWord(errDanglingEndDef)
	case tokenIdentifier:
		vm.runWord(tok)
	}
}

//// output

func (vm *VM) writeByte(c byte) {
	vm.haltif(chario.WriteByte(vm.out, c))
}

func (vm *VM) flush() {
	vm.haltif(vm.out.Flush())
}

func boolCell(b bool) cell {
	if b {
		return 1
	}
	return 0
}
