package main

import (
	"regexp"
	"strconv"
)

// registerMathPrims wires up spec.md §4.3's signed-decimal arithmetic
// primitives: ad, su, ml, dv, rm, gr, eq.
func (r *PrimitiveRegistry) registerMathPrims() {
	r.register(primSpec{name: "ad", fn: primArith(addOp), minArgs: 3, maxArgs: 3})
	r.register(primSpec{name: "su", fn: primArith(subOp), minArgs: 3, maxArgs: 3})
	r.register(primSpec{name: "ml", fn: primArith(mulOp), minArgs: 3, maxArgs: 3})
	r.register(primSpec{name: "dv", fn: primArith(divOp), minArgs: 3, maxArgs: 3})
	r.register(primSpec{name: "rm", fn: primArith(remOp), minArgs: 3, maxArgs: 3, extended: true})
	r.register(primSpec{name: "gr", fn: primGR, minArgs: 4, maxArgs: 4})
	r.register(primSpec{name: "eq", fn: primEQ, minArgs: 4, maxArgs: 4})
}

// prefixNumberPattern mirrors spec.md §4.3's parsenum: a non-greedy prefix
// of any characters, an optional sign, and a (possibly empty) run of
// decimal digits anchored to the end of the string. Because digits may be
// empty, parsenum never fails; it is used for the first operand of the
// arithmetic primitives so that a non-numeric prefix is preserved and
// re-emitted, e.g. ad(x12,3) = x15.
var prefixNumberPattern = regexp.MustCompile(`^(.*?)([+-]?)([0-9]*)$`)

// parseTracNum implements parsenum (spec.md §4.3). It always succeeds:
// empty digits parse as value 0 (prefix-only text still "works").
func parseTracNum(s string) (prefix string, value int) {
	m := prefixNumberPattern.FindStringSubmatch(s)
	prefix, sign, digits := m[1], m[2], m[3]
	v := 0
	if digits != "" {
		v, _ = strconv.Atoi(digits)
	}
	if sign == "-" {
		v = -v
	}
	return prefix, v
}

// numberPattern is tracint's stricter relative: it requires at least one
// digit, so a string with no trailing digit run fails to parse (spec.md
// §4.3's tracint, used for the arithmetic primitives' second operand: no
// prefix is re-emitted for it, so whether one exists doesn't matter, but
// its absence of digits is a real parse failure).
var numberPattern = regexp.MustCompile(`^(.*?)([+-]?)([0-9]+)$`)

// tracInt parses a TRAC numeral: a (possibly signed) run of decimal digits
// anywhere at the end of the string is the value; anything else is a
// parse failure.
func tracInt(s string) (int, bool) {
	m := numberPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[2] + m[3])
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseSignedInt parses a TRAC signed decimal in full (no prefix allowed):
// an optional leading sign followed by zero or more digits, with "-0"
// distinguished from "0" via the negative return even though both carry
// magnitude 0 (spec.md §4.2's cn, and §4.3's "-0 is distinct from 0").
func parseSignedInt(s string) (negative bool, magnitude int, err error) {
	rest := s
	sign := byte(0)
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		sign = rest[0]
		rest = rest[1:]
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return false, 0, newPrimError(false, "<TMA> (%s)", s)
		}
	}
	v := 0
	if rest != "" {
		v, _ = strconv.Atoi(rest)
	}
	return sign == '-', v, nil
}

type binOp func(a, b int) (int, bool) // ok=false signals a primitive failure (e.g. divide by zero)

func addOp(a, b int) (int, bool) { return a + b, true }
func subOp(a, b int) (int, bool) { return a - b, true }
func mulOp(a, b int) (int, bool) { return a * b, true }
func divOp(a, b int) (int, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}
func remOp(a, b int) (int, bool) {
	if b == 0 {
		return 0, false
	}
	return a % b, true
}

// primArith builds an (ad|su|ml|dv|rm) implementation: parse the first
// operand with parsenum (preserving its prefix) and the second with the
// stricter tracint, apply op, and re-emit the first operand's prefix
// before the numeric result. On any failure — a non-numeric second
// operand or the op itself failing, e.g. division by zero — it returns
// the 3rd argument as a fallback, forced active regardless of the
// caller's own activeness (spec.md §4.3's divide-by-zero rule, extended
// here to every arithmetic failure for consistency).
func primArith(op binOp) primFunc {
	return func(it *Interpreter, args []string, active bool) (string, bool, error) {
		prefix, a := parseTracNum(args[0])
		b, bok := tracInt(args[1])
		if !bok {
			return args[2], true, nil
		}
		v, ok := op(a, b)
		if !ok {
			return args[2], true, nil
		}
		return prefix + strconv.Itoa(v), false, nil
	}
}

// gr(a,b,then,else) compares a and b numerically, returning then if a>b
// and else otherwise (non-numeric operands count as failing the test).
func primGR(it *Interpreter, args []string, active bool) (string, bool, error) {
	a, aok := tracInt(args[0])
	b, bok := tracInt(args[1])
	if aok && bok && a > b {
		return args[2], false, nil
	}
	return args[3], false, nil
}

// eq(a,b,then,else) compares a and b as strings, returning then if equal
// and else otherwise.
func primEQ(it *Interpreter, args []string, active bool) (string, bool, error) {
	if args[0] == args[1] {
		return args[2], false, nil
	}
	return args[3], false, nil
}
