package main

import (
	"sort"
	"strings"
)

// registerFormPrims wires up the form-manipulation primitives of spec.md
// §4.2: ds, ss, cl, cr, cc, cs, cn, in, dd, da, ln, pf. Arities follow
// spec.md's explicit signatures.
func (r *PrimitiveRegistry) registerFormPrims() {
	r.register(primSpec{name: "ds", fn: primDS, minArgs: 2, maxArgs: 2})
	r.register(primSpec{name: "ss", fn: primSS, minArgs: 1, maxArgs: -1})
	r.register(primSpec{name: "cl", fn: primCL, minArgs: 1, maxArgs: -1})
	r.register(primSpec{name: "cr", fn: primCR, minArgs: 1, maxArgs: 1})
	r.register(primSpec{name: "cc", fn: primCC, minArgs: 2, maxArgs: 2})
	r.register(primSpec{name: "cs", fn: primCS, minArgs: 2, maxArgs: 2})
	r.register(primSpec{name: "cn", fn: primCN, minArgs: 3, maxArgs: 3})
	r.register(primSpec{name: "in", fn: primIN, minArgs: 3, maxArgs: 3})
	r.register(primSpec{name: "dd", fn: primDD, minArgs: 0, maxArgs: -1})
	r.register(primSpec{name: "da", fn: primDA, minArgs: 0, maxArgs: 0})
	r.register(primSpec{name: "ln", fn: primLN, minArgs: 1, maxArgs: 1})
	r.register(primSpec{name: "pf", fn: primPF, minArgs: 1, maxArgs: 1})
}

// ds(name,text) defines (or redefines) a form's body as plain text, whether
// the call is active or neutral; the name must be non-empty.
func primDS(it *Interpreter, args []string, active bool) (string, bool, error) {
	name := args[0]
	if name == "" {
		return "", false, newPrimError(false, "<NFN> (empty name)")
	}
	it.forms.define(name, args[1])
	return "", false, nil
}

// ss(name,seg1,seg2,...) segments a form's text into numbered gaps: every
// occurrence of segN anywhere in the form's literal text becomes gap N
// (1-based), so a parameter used at several positions in a definition
// needs only one call-time argument. An empty segN still claims gap
// number N but inserts nothing (spec.md §4.2). Resets the cursor to
// leftmost per Open Question 2.
func primSS(it *Interpreter, args []string, active bool) (string, bool, error) {
	form, err := it.forms.find(args[0])
	if err != nil {
		return "", false, newPrimError(false, "<NFN> (%s)", args[0])
	}
	specs := make([]segSpec, len(args[1:]))
	for i, seg := range args[1:] {
		specs[i] = segSpec{Gap: i + 1, Match: seg}
	}
	form.segment(specs)
	return "", false, nil
}

// cl(name,arg1,...) explicitly calls a form, substituting args into its
// gaps from the cursor to End (spec.md §4.2). It fires immediately
// regardless of how many gaps are actually bound; implied calls go through
// this same primitive.
func primCL(it *Interpreter, args []string, active bool) (string, bool, error) {
	form, err := it.forms.find(args[0])
	if err != nil {
		return "", false, newPrimError(false, "<NFN> (%s)", args[0])
	}
	full := make([]string, form.numGaps()+1)
	copy(full[1:], args[1:])
	return form.callFromCursor(full), false, nil
}

// cr(name) resets a form's cursor to the leftmost position.
func primCR(it *Interpreter, args []string, active bool) (string, bool, error) {
	form, err := it.forms.find(args[0])
	if err != nil {
		return "", false, newPrimError(false, "<NFN> (%s)", args[0])
	}
	form.resetPointer()
	return "", false, nil
}

// cc(name,default) reads and consumes the single character at the form's
// cursor, advancing past any intervening empty chunks first. At End, it
// returns default and forces the result active regardless of the caller's
// own activeness (spec.md §4.2).
func primCC(it *Interpreter, args []string, active bool) (string, bool, error) {
	form, err := it.forms.find(args[0])
	if err != nil {
		return "", false, newPrimError(false, "<NFN> (%s)", args[0])
	}
	if form.atEnd() {
		return args[1], true, nil
	}
	r, ok := form.getNextChar()
	if !ok {
		return args[1], true, nil
	}
	return string(r), false, nil
}

// cs(name,default) returns the remainder of the current Text chunk (or
// empty if the cursor sits on a Gap), then advances the cursor past the
// following Gap, if there is one. At End it returns default and forces the
// result active regardless of the caller's own activeness (spec.md §4.2).
func primCS(it *Interpreter, args []string, active bool) (string, bool, error) {
	form, err := it.forms.find(args[0])
	if err != nil {
		return "", false, newPrimError(false, "<NFN> (%s)", args[0])
	}
	if form.atEnd() {
		return args[1], true, nil
	}
	return form.consumeSegment(), false, nil
}

// cn(name,num,default) reads up to num characters from the cursor, moving
// right for positive/unsigned num and left for negative num; num=0 (resp.
// -0) just advances past empty chunks without yielding a character. At the
// relevant boundary (End moving right, start moving left) it returns
// default and forces the result active regardless of the caller's own
// activeness; collecting fewer than num characters before that boundary
// still returns what was collected, not forced active (spec.md §4.2).
func primCN(it *Interpreter, args []string, active bool) (string, bool, error) {
	form, err := it.forms.find(args[0])
	if err != nil {
		return "", false, newPrimError(false, "<NFN> (%s)", args[0])
	}
	neg, mag, perr := parseSignedInt(args[1])
	if perr != nil {
		return "", false, newPrimError(false, "<TMA> (%s)", args[1])
	}
	if !neg {
		if mag == 0 {
			if form.atEnd() {
				return args[2], true, nil
			}
			form.skipGapsForward()
			return "", false, nil
		}
		if form.atEnd() {
			return args[2], true, nil
		}
		var b strings.Builder
		for i := 0; i < mag; i++ {
			r, ok := form.getNextChar()
			if !ok {
				break
			}
			b.WriteRune(r)
		}
		return b.String(), false, nil
	}

	if mag == 0 {
		if form.atStart() {
			return args[2], true, nil
		}
		form.skipGapsBackward()
		return "", false, nil
	}
	if form.atStart() {
		return args[2], true, nil
	}
	out := make([]rune, 0, mag)
	for i := 0; i < mag; i++ {
		r, ok := form.getPrevChar()
		if !ok {
			break
		}
		out = append(out, r)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), false, nil
}

// in(name,text,default) finds the leftmost occurrence of text from the
// cursor to End, returns the characters traversed up to the match and
// advances the cursor just past it; if not found (or text is empty), it
// returns default, forced active regardless of the caller's own
// activeness, and leaves the cursor unchanged (spec.md §4.2).
func primIN(it *Interpreter, args []string, active bool) (string, bool, error) {
	form, err := it.forms.find(args[0])
	if err != nil {
		return "", false, newPrimError(false, "<NFN> (%s)", args[0])
	}
	prefix, cursor, offset, found := form.findFromCursor(args[1])
	if !found {
		return args[2], true, nil
	}
	form.cursor = cursor
	form.offset = offset
	return prefix, false, nil
}

// dd(name…) deletes the named forms. Forgiving mode silently ignores
// missing names; unforgiving mode reports them (spec.md §4.2/§7).
func primDD(it *Interpreter, args []string, active bool) (string, bool, error) {
	var missing []string
	for _, name := range args {
		if name == "" {
			continue
		}
		if _, err := it.forms.find(name); err != nil {
			missing = append(missing, name)
			continue
		}
		it.forms.deleteForm(name)
	}
	if len(missing) > 0 && it.mode.unforgiving {
		return "", false, newPrimError(false, "<NFN> (%s)", strings.Join(missing, ","))
	}
	return "", false, nil
}

// da() deletes every form.
func primDA(it *Interpreter, args []string, active bool) (string, bool, error) {
	it.forms.deleteAll()
	return "", false, nil
}

// ln(sep) joins every form name in the store with sep (spec.md §4.2).
// Names are sorted for a deterministic result; spec.md leaves FormStore
// iteration order unspecified.
func primLN(it *Interpreter, args []string, active bool) (string, bool, error) {
	names := it.forms.names()
	sort.Strings(names)
	return strings.Join(names, args[0]), false, nil
}

// pf(name) is the diagnostic primitive: renders the form's chunk structure
// with the cursor shown as <^> and each gap as <k>.
func primPF(it *Interpreter, args []string, active bool) (string, bool, error) {
	form, err := it.forms.find(args[0])
	if err != nil {
		return "", false, newPrimError(false, "<NFN> (%s)", args[0])
	}
	return form.render(), false, nil
}
