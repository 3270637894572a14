package main

import "strings"

// maxScanDepth bounds the scanner's argument-gathering recursion
// (SPEC_FULL.md 4.1 supplement); exceeding it reports <SCE> rather than
// overflowing the Go call stack, standing in for original_source/trac.py's
// reliance on Python's own recursion limit.
const maxScanDepth = 4096

// delim reports why parse stopped gathering one segment of text: it ran off
// the end of the input, hit a comma (separating call arguments), or hit a
// close-paren (closing a call's argument list, or a bare top-level stray).
type delim int

const (
	delimEnd delim = iota
	delimComma
	delimClose
)

// scanString is TRAC's single evaluation rule (spec.md §4.1): copy text
// through unchanged until a call is reached, then evaluate it. `#(` (the
// mode's syntax char immediately before `(`) begins an active call: its
// result is spliced back into the same stream and rescanned in place. A
// doubled syntax char, `##(`, begins a neutral call: same argument-gathering,
// but its result is not rescanned unless the callee forces it active (an
// implied call, or a default returned by cc/cn/cs/in or the arithmetic
// primitives). A bare `(` begins a protect group: its contents are copied
// through literally, nested parens and all, with no scanning at all; the
// outermost pair itself is dropped. Grounded on original_source/trac.py's
// parse()/eval() pair, whose control flow this follows without the
// original's regexp-based lookahead.
func (it *Interpreter) scanString(s string) (string, error) {
	neutral, d, tail, err := it.parse([]rune(s), 0)
	if err != nil {
		return "", err
	}
	if d != delimEnd {
		remainder := neutral + string(tail)
		return "", newTracError(false, "<UNF> unbalanced parens: after parsing remainder = %s", remainder)
	}
	return neutral, nil
}

// parse consumes active (the not-yet-scanned remainder of the input)
// character by character, copying plain text straight to the returned
// neutral string and evaluating calls as they're found. It returns when it
// runs off the end of active (delimEnd), or hits a comma or close-paren that
// belongs to an enclosing call's argument list (delimComma / delimClose),
// handing back whatever of active it didn't consume as tail.
func (it *Interpreter) parse(active []rune, depth int) (neutral string, d delim, tail []rune, err error) {
	if depth > maxScanDepth {
		return "", delimEnd, nil, scanError{depth}
	}
	var out strings.Builder
	protectDepth := 0
	for {
		if len(active) == 0 {
			return out.String(), delimEnd, nil, nil
		}
		ch := active[0]
		switch {
		case ch == '(':
			// Entering (or descending further into) a protect group: the
			// opening paren itself is only copied through once we're
			// already inside one, so the outermost pair is consumed.
			if protectDepth > 0 {
				out.WriteRune(ch)
			}
			protectDepth++
			active = active[1:]

		case protectDepth > 0:
			active = active[1:]
			if ch == ')' {
				protectDepth--
				if protectDepth == 0 {
					continue
				}
			}
			out.WriteRune(ch)

		case ch == '\n':
			// Unprotected newlines are structural only (line continuation
			// inside a call's argument list) and are dropped; newlines
			// inside a protect group are copied by the case above.
			active = active[1:]

		case ch == ',':
			return out.String(), delimComma, active[1:], nil

		case ch == ')':
			return out.String(), delimClose, active[1:], nil

		case ch == it.mode.syntaxChar:
			rest := active[1:]
			var callActive bool
			switch {
			case len(rest) > 0 && rest[0] == '(':
				callActive = true
				rest = rest[1:]
			case len(rest) > 1 && rest[0] == it.mode.syntaxChar && rest[1] == '(':
				callActive = false
				rest = rest[2:]
			default:
				// Syntax char not followed by (a doubled syntax char and)
				// an open paren: it's just a character.
				out.WriteRune(ch)
				active = active[1:]
				continue
			}

			var args []string
			cur := rest
			for {
				arg, ad, at, aerr := it.parse(cur, depth+1)
				if aerr != nil {
					return "", delimEnd, nil, aerr
				}
				args = append(args, arg)
				cur = at
				if ad == delimComma {
					continue
				}
				if ad == delimClose {
					break
				}
				return "", delimEnd, nil, newTracError(true, "<UNF> hit end of string while expecting ')'")
			}

			result, resultActive, everr := it.eval(args, callActive, depth)
			if everr != nil {
				return "", delimEnd, nil, everr
			}
			if resultActive {
				// Splice the result back into the very stream we're
				// scanning and keep going in this same frame, rather than
				// recursing: this is what lets e.g. rs's raw typed line
				// get evaluated as part of the call gathering its result.
				active = append([]rune(result), cur...)
				continue
			}
			out.WriteString(result)
			active = cur

		default:
			out.WriteRune(ch)
			active = active[1:]
		}
	}
}
