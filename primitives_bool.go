package main

// registerBoolPrims wires up spec.md §4.3's octal-Boolean primitives: bu
// (union), bi (intersection), bc (complement), br (rotate), bs (shift).
// Values are octal-digit strings, each digit an independent 3-bit group;
// only the longest trailing run of octal digits of an argument counts,
// never failing to parse.
func (r *PrimitiveRegistry) registerBoolPrims() {
	r.register(primSpec{name: "bu", fn: primBU, minArgs: 2, maxArgs: 2})
	r.register(primSpec{name: "bi", fn: primBI, minArgs: 2, maxArgs: 2})
	r.register(primSpec{name: "bc", fn: primBC, minArgs: 1, maxArgs: 1})
	r.register(primSpec{name: "br", fn: primBR, minArgs: 2, maxArgs: 2})
	r.register(primSpec{name: "bs", fn: primBS, minArgs: 2, maxArgs: 2})
}

// trailingOctal extracts the longest trailing run of octal digits (0-7) of
// s into big-endian 3-bit groups, most significant digit first. It never
// fails: an argument with no trailing octal digit at all yields a
// zero-width (empty) mask.
func trailingOctal(s string) []uint8 {
	end := len(s)
	start := end
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '7' {
		start--
	}
	digits := make([]uint8, end-start)
	for i := start; i < end; i++ {
		digits[i-start] = s[i] - '0'
	}
	return digits
}

func formatOctalMask(digits []uint8) string {
	b := make([]byte, len(digits))
	for i, d := range digits {
		b[i] = '0' + d
	}
	return string(b)
}

// padLeft left-pads a with zero digits until it reaches width w (used by
// bu, whose result width is the max of its two operands').
func padLeft(a []uint8, w int) []uint8 {
	if len(a) >= w {
		return a
	}
	out := make([]uint8, w)
	copy(out[w-len(a):], a)
	return out
}

// truncRight keeps only the rightmost (least-significant) w digits of a
// (used by bi, whose result width is the min of its two operands').
func truncRight(a []uint8, w int) []uint8 {
	if len(a) <= w {
		return a
	}
	return a[len(a)-w:]
}

func primBU(it *Interpreter, args []string, active bool) (string, bool, error) {
	a := trailingOctal(args[0])
	b := trailingOctal(args[1])
	w := len(a)
	if len(b) > w {
		w = len(b)
	}
	a, b = padLeft(a, w), padLeft(b, w)
	out := make([]uint8, w)
	for i := range out {
		out[i] = a[i] | b[i]
	}
	return formatOctalMask(out), false, nil
}

func primBI(it *Interpreter, args []string, active bool) (string, bool, error) {
	a := trailingOctal(args[0])
	b := trailingOctal(args[1])
	w := len(a)
	if len(b) < w {
		w = len(b)
	}
	a, b = truncRight(a, w), truncRight(b, w)
	out := make([]uint8, w)
	for i := range out {
		out[i] = a[i] & b[i]
	}
	return formatOctalMask(out), false, nil
}

func primBC(it *Interpreter, args []string, active bool) (string, bool, error) {
	a := trailingOctal(args[0])
	out := make([]uint8, len(a))
	for i, d := range a {
		out[i] = d ^ 7
	}
	return formatOctalMask(out), false, nil
}

// primBR rotates b's bits (3 per octal digit) left by tracint(d) mod
// (3*width), b's own trailing-octal width (spec.md §4.3).
func primBR(it *Interpreter, args []string, active bool) (string, bool, error) {
	d, b := args[0], args[1]
	mask := trailingOctal(b)
	n, ok := tracInt(d)
	if !ok {
		return "", false, newPrimError(false, "<TMA> (%s)", d)
	}
	bits := maskToBits(mask)
	width := len(bits)
	if width == 0 {
		return b, false, nil
	}
	n = ((n % width) + width) % width
	rotated := append(append([]uint8(nil), bits[n:]...), bits[:n]...)
	return formatOctalMask(bitsToMask(rotated)), false, nil
}

// primBS shifts b's bits left (d>=0) or right (d<0) by |d| bits,
// zero-filling vacated positions and preserving b's own width (spec.md
// §4.3).
func primBS(it *Interpreter, args []string, active bool) (string, bool, error) {
	d, b := args[0], args[1]
	mask := trailingOctal(b)
	n, ok := tracInt(d)
	if !ok {
		return "", false, newPrimError(false, "<TMA> (%s)", d)
	}
	bits := maskToBits(mask)
	width := len(bits)
	out := make([]uint8, width)
	for i := 0; i < width; i++ {
		src := i + n
		if src >= 0 && src < width {
			out[i] = bits[src]
		}
	}
	return formatOctalMask(bitsToMask(out)), false, nil
}

func maskToBits(digits []uint8) []uint8 {
	bits := make([]uint8, 0, len(digits)*3)
	for _, d := range digits {
		bits = append(bits, (d>>2)&1, (d>>1)&1, d&1)
	}
	return bits
}

func bitsToMask(bits []uint8) []uint8 {
	for len(bits)%3 != 0 {
		bits = append([]uint8{0}, bits...)
	}
	digits := make([]uint8, len(bits)/3)
	for i := range digits {
		digits[i] = bits[i*3]<<2 | bits[i*3+1]<<1 | bits[i*3+2]
	}
	return digits
}
