package main

import (
	"io"

	"github.com/Fifty-Nine/iforth/internal/flushio"
)

type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	withOutput(io.Discard),
)

// VMOptions combines any number of options into one; nils are skipped.
func VMOptions(opts ...VMOption) VMOption { return options(opts) }

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

type sourceOption struct {
	name string
	text string
}

type inputOption struct{ io.Reader }
type fileOption string
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type withLogfn func(mess string, args ...interface{})

func withSource(name, text string) sourceOption { return sourceOption{name, text} }
func withInput(r io.Reader) inputOption         { return inputOption{r} }
func withFile(path string) fileOption           { return fileOption(path) }
func withOutput(w io.Writer) outputOption       { return outputOption{w} }
func withTee(w io.Writer) teeOption             { return teeOption{w} }

func (src sourceOption) apply(vm *VM) {
	vm.inputs.AddString(src.name, src.text)
}

func (i inputOption) apply(vm *VM) {
	vm.inputs.AddReader(i.Reader)
}

func (path fileOption) apply(vm *VM) {
	vm.inputs.AddFile(string(path))
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}
