package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jcorbin/trac64/internal/logio"
)

// moFlags collects repeated -mo command-line arguments (spec.md §6:
// "Command-line: a sequence of -mo[,arg…] tokens"), applied as #(mo,...)
// calls before the REPL starts.
type moFlags []string

func (f *moFlags) String() string { return strings.Join(*f, " ") }
func (f *moFlags) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	var (
		timeout     time.Duration
		trace       bool
		unforgiving bool
		extended    bool
		dump        bool
		mo          moFlags
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable primitive-call trace logging")
	flag.BoolVar(&unforgiving, "unforgiving", false, "start in unforgiving mode")
	flag.BoolVar(&extended, "extended", false, "start in extended mode")
	flag.BoolVar(&dump, "dump", false, "print an interpreter state dump after execution")
	flag.Var(&mo, "mo", "apply a #(mo,...) call before the REPL starts (repeatable)")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	it := New(
		WithLogf(log.Leveledf("TRACE")),
		WithTrace(trace),
		WithUnforgiving(unforgiving),
		WithExtended(extended),
		WithInputOutput(os.Stdin, os.Stdout),
	)
	defer it.Close()

	for _, arg := range mo {
		if _, err := it.Eval(fmt.Sprintf("#(mo,%s)", arg)); err != nil {
			log.Errorf("-mo %q: %v", arg, err)
		}
	}

	if dump {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer lw.Close()
		defer newInterpreterDumper(it, lw).dump()
	}

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	log.ErrorIf(runREPL(ctx, it))
}
