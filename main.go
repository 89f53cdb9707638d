package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/Fifty-Nine/iforth/internal/logio"
)

// demoProgram runs when no source files are given.
const demoProgram = `
( iforth demo )
: SQ DUP * ;
: GREET ."hello world\n" ;
GREET 5 SQ .
`

func main() {
	ctx := context.Background()

	var log logio.Logger
	log.SetOutput(os.Stderr)

	var timeout time.Duration
	var trace bool
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.Parse()

	opts := []VMOption{WithOutput(os.Stdout)}
	if args := flag.Args(); len(args) == 0 {
		opts = append(opts, WithSource("demo", demoProgram))
	} else {
		for _, arg := range args {
			if arg == "-" {
				opts = append(opts, WithInput(os.Stdin))
			} else {
				opts = append(opts, WithFile(arg))
			}
		}
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("trace")))
	}
	vm := New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	code, err := vm.Run(ctx)
	if err != nil {
		log.Errorf("%+v", err)
		os.Exit(log.ExitCode())
	}
	os.Exit(code)
}
