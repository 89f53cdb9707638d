package main

import (
	"errors"
	"fmt"
)

// Every interpreter error is fatal: the machine panics with a *machineError
// and the panic is recovered into a plain error at the Run boundary.  These
// sentinels classify the cause; errors.Is matches them through the wrapping.
var (
	errUnrecognizedToken = errors.New("unrecognized token")
	errUnknownWord       = errors.New("unknown word")
	errStackUnderflow    = errors.New("data stack underflow")
	errRetUnderflow      = errors.New("return stack underflow")
	errMalformedOperator = errors.New("malformed operator")
	errUnterminatedDef   = errors.New("unterminated definition")
	errNestedDef         = errors.New("definition inside definition")
	errDefName           = errors.New("definition requires a name")
	errDanglingEndDef    = errors.New("end of definition with no caller")
	errUnmatchedCond     = errors.New("unmatched conditional")
	errBranchTarget      = errors.New("invalid branch target")
	errNoStringTerm      = errors.New("no string terminator on stack")
	errDivideByZero      = errors.New("division by zero")
)

// machineError is the fatal diagnostic raised by any word: the cause, the
// offending token's spelling, the instruction pointer, and a state dump
// captured at the moment of failure.  The dump is only rendered by %+v so
// that plain %v stays a single line.
type machineError struct {
	cause    error
	spelling string
	ip       int
	dump     string
}

func (err *machineError) Error() string {
	if err.spelling == "" {
		return fmt.Sprintf("at @%v: %v", err.ip, err.cause)
	}
	return fmt.Sprintf("interpreting token %q at @%v: %v", err.spelling, err.ip, err.cause)
}

func (err *machineError) Format(f fmt.State, c rune) {
	fmt.Fprint(f, err.Error())
	if c == 'v' && f.Flag('+') && err.dump != "" {
		fmt.Fprintf(f, "\n%s", err.dump)
	}
}

func (err *machineError) Unwrap() error { return err.cause }

// lexError reports an unrecognized run of input, locating it by byte offset
// so the caller can resolve it to a file and line.
type lexError struct {
	pos  int
	text string
}

func (err lexError) Error() string {
	return fmt.Sprintf("%v %q at offset %v", errUnrecognizedToken, err.text, err.pos)
}

func (err lexError) Unwrap() error { return errUnrecognizedToken }
