package main

import (
	"context"
	"errors"
	"io"

	"github.com/Fifty-Nine/iforth/internal/panicerr"
)

// New builds a machine from the given options.  Inputs accumulate in order;
// nothing is read or lexed until Run.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Run interprets the machine's program to completion, returning the value
// left on top of the data stack (zero if the stack is empty).  Any fatal
// interpreter error is recovered into the returned error; a *machineError
// carries the diagnostic and renders its state dump under %+v.
func (vm *VM) Run(ctx context.Context) (int, error) {
	var result cell
	err := panicerr.Recover("machine", func() error {
		result = vm.run(ctx)
		return nil
	})
	if err != nil {
		var mach *machineError
		if errors.As(err, &mach) {
			err = mach
		}
		return 0, err
	}
	return int(result), nil
}

func WithSource(name, text string) VMOption { return withSource(name, text) }
func WithInput(r io.Reader) VMOption        { return withInput(r) }
func WithFile(path string) VMOption         { return withFile(path) }
func WithOutput(w io.Writer) VMOption       { return withOutput(w) }
func WithTee(w io.Writer) VMOption          { return withTee(w) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
