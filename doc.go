/* Package main: iforth -- an interpreter for a small FORTH-family language

A program is a flat stream of whitespace-separated tokens.  The lexer turns
source text into that stream in a single pass; execution then walks the stream
under an instruction pointer, one token at a time, until the pointer runs off
the end.

The machine holds:

  - a data stack of 32-bit signed cells, used by every operator and most words
  - a return stack of token addresses, recording call sites and whatever the
    program parks there via >r and friends
  - a dictionary mapping word names to the address of their body's first token
  - a label table mapping [name] declarations to the address just past them

An "address" is simply an index into the token stream; one past the last token
is the terminal value.  There is no cell memory, no compile mode, and no
interactive prompt: the entire program is lexed up front and then interpreted.

Words come in three flavors, tried in this order when an identifier executes:
operator spellings (+ - * / % & | ! = < > <= >= <>), user definitions made
with `: name ... ;`, and the built-in words (dup swap over rot drop clear, the
return stack words, if/else/then, branch and ?branch, cr and exit).  Name
lookup is case-insensitive throughout.

Printing is spelled with a dot.  Bare `.` pops and prints a number, `.s` pops
and prints a zero-terminated character string, `.c` emits a single character
immediately, `.d` dumps the machine state, and `."text"` pushes a literal and
prints it in one go.

Any error -- an unknown word, a stack underflow, a branch to nowhere -- is
fatal: the interpreter reports a diagnostic with the offending token, the
instruction pointer, and a full state dump, then exits non-zero.  A program
that runs to completion exits with the value on top of the data stack, or
zero if the stack is empty.
*/
package main
