package main

import "io"

// InterpreterOption configures an Interpreter at construction time
// (SPEC_FULL.md AMBIENT-3), generalized from the teacher's VMOption /
// options.go functional-options pattern.
type InterpreterOption interface{ apply(it *Interpreter) }

type interpreterOptionFunc func(it *Interpreter)

func (f interpreterOptionFunc) apply(it *Interpreter) { f(it) }

// WithSyntaxChar sets the initial syntax character (default '#').
func WithSyntaxChar(r rune) InterpreterOption {
	return interpreterOptionFunc(func(it *Interpreter) { it.mode.syntaxChar = r })
}

// WithMetaChar sets the initial meta character (default '\'').
func WithMetaChar(r rune) InterpreterOption {
	return interpreterOptionFunc(func(it *Interpreter) { it.mode.metaChar = r })
}

// WithExtended turns on extended-primitive mode from the start.
func WithExtended(on bool) InterpreterOption {
	return interpreterOptionFunc(func(it *Interpreter) { it.mode.extended = on })
}

// WithUnforgiving turns on unforgiving mode (every primitive failure, not
// just fatal ones, surfaces its message) from the start.
func WithUnforgiving(on bool) InterpreterOption {
	return interpreterOptionFunc(func(it *Interpreter) { it.mode.unforgiving = on })
}

// WithTrace turns on primitive-call tracing from the start.
func WithTrace(on bool) InterpreterOption {
	return interpreterOptionFunc(func(it *Interpreter) { it.mode.trace = on })
}

// WithLogf attaches a leveled log function, e.g. one of
// internal/logio.Logger's Leveledf results.
func WithLogf(logfn func(mess string, args ...interface{})) InterpreterOption {
	return interpreterOptionFunc(func(it *Interpreter) { it.logf = logfn })
}

// WithTerminal attaches a pre-built TerminalAdapter directly.
func WithTerminal(term TerminalAdapter) InterpreterOption {
	return interpreterOptionFunc(func(it *Interpreter) { it.term = term })
}

// WithInputOutput builds and attaches the default lineTerminal over r/w.
func WithInputOutput(r io.Reader, w io.Writer) InterpreterOption {
	return interpreterOptionFunc(func(it *Interpreter) { it.term = newLineTerminal(r, w) })
}

// WithForm predefines a form's body, equivalent to an initial (ds) call.
func WithForm(name, text string) InterpreterOption {
	return interpreterOptionFunc(func(it *Interpreter) { it.forms.define(name, text) })
}
