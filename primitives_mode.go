package main

import "fmt"

// registerModePrims wires up spec.md §4.5's mode/trace/halt/meta/syntax
// primitives (mo, cm, tn, tf, hl) plus rc/rs/ps (terminal I/O) and ni (the
// partial-call/implied-activeness primitive of §4.6).
func (r *PrimitiveRegistry) registerModePrims() {
	r.register(primSpec{name: "mo", fn: primMO, minArgs: 0, maxArgs: -1})
	r.register(primSpec{name: "cm", fn: primCM, minArgs: 1, maxArgs: 1})
	r.register(primSpec{name: "tn", fn: primTN, minArgs: 0, maxArgs: 0})
	r.register(primSpec{name: "tf", fn: primTF, minArgs: 0, maxArgs: 0})
	r.register(primSpec{name: "hl", fn: primHL, minArgs: 0, maxArgs: 0})
	r.register(primSpec{name: "ni", fn: primNI, minArgs: 1, maxArgs: 2, extended: true})
	r.register(primSpec{name: "rc", fn: primRC, minArgs: 0, maxArgs: 0})
	r.register(primSpec{name: "rs", fn: primRS, minArgs: 0, maxArgs: 1})
	r.register(primSpec{name: "ps", fn: primPS, minArgs: 1, maxArgs: 1})
}

// mo(sub,...) adjusts or reports mode switches (spec.md §4.5):
//
//	mo             reset to strict T-64 mode: extensions and unforgiving off
//	mo,e           enable extensions (spec.md §4.5's "mo,e")
//	mo,s,±p±u      adjust the extended-primitives/unforgiving switch bank
//	mo,ms,c        set the syntax character to c
//	mo,rt,...      delegated to the terminal (only "l", line mode, here)
//	mo,pm          report the current mode switches (SPEC_FULL.md supplement)
func primMO(it *Interpreter, args []string, active bool) (string, bool, error) {
	if len(args) == 0 {
		it.mode.extended = false
		it.mode.unforgiving = false
		return "", false, nil
	}
	sub := args[0]
	switch sub {
	case "e":
		it.mode.extended = true
		return "", false, nil
	case "s":
		for _, sw := range args[1:] {
			if err := applySwitch(it.mode, sw); err != nil {
				return "", false, err
			}
		}
		return "", false, nil
	case "ms":
		if len(args) < 2 {
			return "", false, newPrimError(false, "<TMA> (mo,ms)")
		}
		r, err := validSpecialChar(args[1], it.mode.metaChar, false)
		if err != nil {
			return "", false, err
		}
		it.mode.syntaxChar = r
		return "", false, nil
	case "pm":
		return it.mode.describe(), false, nil
	case "rt":
		if len(args) < 2 || args[1] == "" || args[1] == "l" {
			return "l", false, nil
		}
		return "", false, newPrimError(true, "<UNF> (mo,rt,%s) terminal type not supported", args[1])
	default:
		return "", false, newPrimError(false, "<UNF> (mo,%s) unknown mode switch", sub)
	}
}

// applySwitch applies one "±p" / "±u" switch token of mo,s (spec.md
// §4.5): p toggles extended-primitive mode, u toggles unforgiving mode.
func applySwitch(m *ModeState, sw string) error {
	if len(sw) < 2 {
		return newPrimError(false, "<TMA> (mo,s,%s)", sw)
	}
	sign, flag := sw[0], sw[1]
	var on bool
	switch sign {
	case '+':
		on = true
	case '-':
		on = false
	default:
		return newPrimError(false, "<TMA> (mo,s,%s)", sw)
	}
	switch flag {
	case 'p':
		m.extended = on
	case 'u':
		m.unforgiving = on
	default:
		return newPrimError(false, "<TMA> (mo,s,%s)", sw)
	}
	return nil
}

// cm(c) sets the meta character (spec.md §4.5). The stored character is
// shown by (mo,pm); terminal input is not split on it, since lineTerminal's
// ReadLine always ends a read at a newline.
func primCM(it *Interpreter, args []string, active bool) (string, bool, error) {
	r, err := validSpecialChar(args[0], it.mode.syntaxChar, true)
	if err != nil {
		return "", false, err
	}
	it.mode.metaChar = r
	return "", false, nil
}

func primTN(it *Interpreter, args []string, active bool) (string, bool, error) {
	it.mode.trace = true
	return "", false, nil
}

func primTF(it *Interpreter, args []string, active bool) (string, bool, error) {
	it.mode.trace = false
	return "", false, nil
}

func primHL(it *Interpreter, args []string, active bool) (string, bool, error) {
	return "", false, tracHalt{}
}

// ni(a,b) is TRAC's partial-call discrimination primitive (spec.md §4.6):
// within the body of an implied call, it returns b if the call that
// triggered this implied evaluation was active, else a. It is the only
// primitive whose result depends on ModeState.impliedActive rather than
// on its own caller's activeness.
func primNI(it *Interpreter, args []string, active bool) (string, bool, error) {
	if it.mode.impliedActive {
		return args[1], false, nil
	}
	return args[0], false, nil
}

func primRC(it *Interpreter, args []string, active bool) (string, bool, error) {
	if it.term == nil {
		return "", false, newPrimError(true, "<STE> no terminal attached")
	}
	r, err := it.term.ReadChar()
	if err != nil {
		return "", false, tracHalt{}
	}
	return string(r), false, nil
}

// rs([prompt]) reads one line from the terminal (spec.md §6), recording it
// in ModeState.rsHistory. Its activeness is ordinary: called as `#(rs)`
// (as the REPL's `#(ps,#(rs))` seed does) the line it reads is spliced back
// into the same argument-gathering scan that's assembling ps's argument and
// evaluated right there, which is what actually runs whatever the user
// typed.
func primRS(it *Interpreter, args []string, active bool) (string, bool, error) {
	if it.term == nil {
		return "", false, newPrimError(true, "<STE> no terminal attached")
	}
	prompt := ""
	if len(args) > 0 {
		prompt = args[0]
	}
	line, err := it.term.ReadLine(prompt)
	if err != nil {
		return "", false, tracHalt{}
	}
	it.mode.recordRead(line)
	return line, false, nil
}

// ps(s) writes s to the terminal (with none attached, it logs s through
// Interpreter.logf if one is set, else does nothing) and always returns the
// empty string (spec.md §6): it is a
// pure side effect, same as original_source/trac.py's printstr.
func primPS(it *Interpreter, args []string, active bool) (string, bool, error) {
	if it.term != nil {
		if err := it.term.Write(args[0]); err != nil {
			return "", false, newTracError(true, "<STE> (%v)", err)
		}
	} else if it.logf != nil {
		it.logf("%s", fmt.Sprintf("ps: %s", args[0]))
	}
	return "", false, nil
}
