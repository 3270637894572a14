package main

import "fmt"

// primError is a primitive-level failure (spec.md §7 PrimError): it carries
// whether the failure is "fatal" (always reported, even under a forgiving
// mode) and the already-formatted TRAC diagnostic text, e.g. "<NFN> (foo)".
// It is returned by primitive implementations, not panicked; eval decides
// whether to surface it based on ModeState.unforgiving, mirroring prim's
// __call__ in original_source/trac.py.
type primError struct {
	fatal bool
	mess  string
}

func (e primError) Error() string { return e.mess }

func newPrimError(fatal bool, format string, args ...interface{}) primError {
	return primError{fatal: fatal, mess: fmt.Sprintf(format, args...)}
}

// tracError is a scanner/evaluator-level failure that always halts the
// current top-level read-eval step and is reported to the terminal (spec.md
// §7 TracError): syntax errors, storage-engine errors (<STE>), mode errors.
type tracError struct {
	fatal bool
	mess  string
}

func (e tracError) Error() string { return e.mess }

func newTracError(fatal bool, format string, args ...interface{}) tracError {
	return tracError{fatal: fatal, mess: fmt.Sprintf(format, args...)}
}

// tracHalt unwinds the whole interpreter session (spec.md §7 TracHalt): end
// of input, or an explicit halt call. Carries no message; the REPL simply
// stops.
type tracHalt struct{}

func (tracHalt) Error() string { return "halt" }

// interrupted models a user interrupt (Ctrl-C in the original): printed as
// "<INT>" and returns control to the REPL prompt without halting the
// session.
type interrupted struct{}

func (interrupted) Error() string { return "<INT>" }

// scanError models runaway recursion in the scanner (the original's
// RuntimeError / Python recursion limit), reported as "<SCE>".
type scanError struct{ depth int }

func (e scanError) Error() string { return fmt.Sprintf("<SCE> (depth %d)", e.depth) }
