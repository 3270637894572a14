package main

import "strings"

// primFunc implements one primitive's behavior. args is already
// arity-padded per primSpec.minArgs/maxArgs (spec.md Open Question 3);
// active reports whether the call that invoked it was active (`#(`) or
// neutral (`##(`), for the handful of primitives whose behavior depends on
// it (ni). It returns the primitive's substitution text, whether that
// text should be treated as active regardless of the caller's own
// activeness (spec.md §4.1's "Pair (string, forceActive)" return, used by
// e.g. cc/cn/cs/in's End-of-form default and dv/rm's divide-by-zero
// fallback), or an error: a primError for a recoverable, possibly
// non-fatal failure, or a tracError/tracHalt for a failure that always
// propagates.
type primFunc func(it *Interpreter, args []string, active bool) (result string, forceActive bool, err error)

// primSpec describes one entry of the PrimitiveRegistry (spec.md §3):
// arity bounds and whether the primitive is only available in extended
// mode. Grounded on original_source/trac.py's prim class and on
// first.go's name/arity-indexed vmCodeTable for the table-driven shape.
type primSpec struct {
	name     string
	fn       primFunc
	minArgs  int
	maxArgs  int // -1 means unbounded; pad to minArgs only (Open Question 3)
	extended bool
}

// PrimitiveRegistry maps primitive names to their specs (spec.md §3).
type PrimitiveRegistry struct {
	byName map[string]primSpec
}

func newPrimitiveRegistry() *PrimitiveRegistry {
	r := &PrimitiveRegistry{byName: make(map[string]primSpec)}
	r.registerAll()
	return r
}

func (r *PrimitiveRegistry) register(spec primSpec) {
	r.byName[spec.name] = spec
}

func (r *PrimitiveRegistry) lookup(name string) (primSpec, bool) {
	s, ok := r.byName[name]
	return s, ok
}

func (r *PrimitiveRegistry) names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	return names
}

// fixArgs pads/truncates args to the primitive's declared arity, per
// spec.md Open Question 3: when maxArgs == -1, pad to minArgs and never
// truncate; otherwise pad to max(minArgs, maxArgs) and truncate to maxArgs.
// Grounded on original_source/trac.py's prim.fixargs.
func fixArgs(args []string, minArgs, maxArgs int) []string {
	want := minArgs
	if maxArgs >= 0 && maxArgs > want {
		want = maxArgs
	}
	if len(args) > want {
		want = len(args)
	}
	out := make([]string, want)
	copy(out, args)
	if maxArgs >= 0 && len(out) > maxArgs {
		out = out[:maxArgs]
	}
	return out
}

// eval is TRAC's eval(arglist, act) (spec.md §4.1): arglist[0] names a
// primitive or, failing that, a form to call implicitly. depth is purely
// informational here (the scanner's recursion guard lives in parse, which
// is where the unbounded recursion actually happens); eval itself does
// not use it, and traceCall does not receive it. Grounded on
// original_source/trac.py's eval(arglist, act).
func (it *Interpreter) eval(args []string, active bool, depth int) (string, bool, error) {
	if len(args) == 0 {
		args = []string{""}
	}
	name := args[0]
	rest := args[1:]
	pname := strings.ToLower(name)

	if it.mode.trace {
		if cancel := it.traceCall(name, rest, active); cancel {
			return "", active, interrupted{}
		}
	}

	if spec, ok := it.registry.lookup(pname); ok && (it.mode.extended || !spec.extended) {
		val, forceActive, err := it.invokePrim(pname, spec, rest, active)
		if err != nil {
			return "", active, err
		}
		return val, active || forceActive, nil
	}

	// Implied call (spec.md §4.6): name didn't resolve to an enabled
	// primitive, so treat it as cl(name, rest...). The result is always
	// forced active, and impliedActive is left set (never restored) so
	// that (ni), evaluated anywhere inside the substituted body — however
	// deep — can see whether this particular invocation was active.
	it.mode.impliedActive = active
	clSpec, _ := it.registry.lookup("cl")
	val, _, err := it.invokePrim("cl", clSpec, append([]string{name}, rest...), active)
	if err != nil {
		return "", true, err
	}
	return val, true, nil
}

// invokePrim applies arity checking/padding and calls spec.fn, translating
// any primError it raises according to the unforgiving-mode policy of
// spec.md §7: a swallowed (forgiving) failure yields the empty string with
// no error, while a fatal or unforgiving one becomes a tracError that
// aborts the whole top-level evaluation. Grounded on original_source/
// trac.py's prim.__call__, whose try/except around fixargs+fn is the same
// shape: arity faults are just another primError, not a separate case.
func (it *Interpreter) invokePrim(name string, spec primSpec, args []string, active bool) (string, bool, error) {
	var argErr error
	switch {
	case it.mode.unforgiving && len(args) < spec.minArgs:
		argErr = newPrimError(false, "too few arguments")
	case it.mode.unforgiving && spec.maxArgs >= 0 && len(args) > spec.maxArgs:
		argErr = newPrimError(false, "too many arguments")
	}

	var (
		val         string
		forceActive bool
		err         error = argErr
	)
	if err == nil {
		val, forceActive, err = spec.fn(it, fixArgs(args, spec.minArgs, spec.maxArgs), active)
	}
	if err == nil {
		return val, forceActive, nil
	}
	pe, ok := err.(primError)
	if !ok {
		return "", false, err
	}
	if ferr := it.primFailure(name, pe); ferr != nil {
		return "", false, ferr
	}
	return "", false, nil
}

// primFailure applies the unforgiving-mode policy to a primError (spec.md
// §7): a fatal error, or any error while ModeState.unforgiving is set,
// becomes a tracError that propagates out of the scanner entirely and is
// reported by the REPL; otherwise it is swallowed (the caller yields "").
func (it *Interpreter) primFailure(name string, pe primError) error {
	if pe.fatal || it.mode.unforgiving {
		return newTracError(true, "<UNF> (%s) %s", name, pe.mess)
	}
	return nil
}

// traceCall emits a one-line trace of the pending call and synchronously
// reads one line of input (spec.md §4.1); a non-empty line cancels the
// call, simulating an interrupt.
func (it *Interpreter) traceCall(name string, args []string, active bool) (cancel bool) {
	kind := "neutral"
	if active {
		kind = "active"
	}
	if it.logf != nil {
		it.logf("%s call %s(%v)", kind, name, args)
	}
	if it.term == nil {
		return false
	}
	line, err := it.term.ReadLine("")
	if err != nil {
		return false
	}
	return line != ""
}

func (r *PrimitiveRegistry) registerAll() {
	r.registerFormPrims()
	r.registerMathPrims()
	r.registerBoolPrims()
	r.registerBlockPrims()
	r.registerModePrims()
}
