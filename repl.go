package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jcorbin/trac64/internal/panicerr"
)

// runREPL drives one TRAC session (spec.md §6): it seeds the scan with an
// active call to ps wrapped around an active call to rs — the TRAC idiom
// `#(ps,#(rs))` — using whatever the ModeState's current syntax character
// is, reads lines until tracHalt or EOF, and sweeps every form's invariants
// (spec.md §7) after each evaluation cycle. Errors are reported through
// Interpreter.report (to the terminal when one is attached, else through
// Interpreter.logf) and the loop continues; a tracHalt or context
// cancellation ends the session. Grounded on original_source/trac.py's
// psrs() loop and on (*VM).Run's panicerr.Recover wrapping.
func runREPL(ctx context.Context, it *Interpreter) error {
	return panicerr.Recover("eval", func() error {
		return replLoop(ctx, it)
	})
}

func replLoop(ctx context.Context, it *Interpreter) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		seed := fmt.Sprintf("%c(ps,%c(rs))", it.mode.syntaxChar, it.mode.syntaxChar)
		_, err := it.Eval(seed)

		for _, verr := range it.forms.validateAll() {
			it.report(verr)
		}

		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF):
			return nil
		case isHalt(err):
			return nil
		case isInterrupted(err):
			it.report(err)
			continue
		default:
			it.report(err)
			continue
		}
	}
}

func isHalt(err error) bool {
	var h tracHalt
	return errors.As(err, &h)
}

func isInterrupted(err error) bool {
	var in interrupted
	return errors.As(err, &in)
}

// report surfaces a session-level error the way the original REPL prints
// it: to the terminal if attached, else through the logger.
func (it *Interpreter) report(err error) {
	if err == nil {
		return
	}
	if it.term != nil {
		it.term.Write(err.Error() + "\n")
		return
	}
	if it.logf != nil {
		it.logf("%s", err.Error())
	}
}
