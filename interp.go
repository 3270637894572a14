package main

// Interpreter holds one TRAC session's complete state (spec.md §3): its
// FormStore, its ModeState, the primitive dispatch table, and the external
// terminal it reads from / writes to. Named and shaped after first.go's VM
// struct, generalized from a Forth machine's stack+memory to TRAC's
// name-keyed forms.
type Interpreter struct {
	forms    *FormStore
	mode     *ModeState
	registry *PrimitiveRegistry
	term     TerminalAdapter
	logf     func(mess string, args ...interface{})
}

// New builds an Interpreter, applying options in order (AMBIENT-3). A bare
// New() has no terminal attached; callers that need an interactive REPL
// pass WithTerminal, or WithInputOutput to get the default
// lineTerminal.
func New(opts ...InterpreterOption) *Interpreter {
	it := &Interpreter{
		forms:    newFormStore(),
		mode:     newModeState(),
		registry: newPrimitiveRegistry(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(it)
		}
	}
	return it
}

// Eval scans and evaluates s as if it had been read by the REPL: an
// implicitly active top-level scan (spec.md §6). It is the entry point
// used both by the REPL loop and directly by tests.
func (it *Interpreter) Eval(s string) (string, error) {
	return it.scanString(s)
}

// Close releases the attached terminal's resources, if any.
func (it *Interpreter) Close() error {
	if it.term != nil {
		return it.term.Close()
	}
	return nil
}
