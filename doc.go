/* Package main: a TRAC T-64 text-macro processor.

TRAC (Text Reckoning And Compiling) is an interpreted macro language built
entirely out of string substitution: there are no variables, no typed values
beyond strings and the small integers arithmetic primitives parse out of
them, and no control flow beyond active-string rescanning. A "form" is a
named, mutable string; a "call" is a parenthesized, comma-separated sequence
that is evaluated by locating a primitive or a user-defined form of the same
name and substituting its result back into the string being scanned.

The language has exactly one evaluation rule, applied repeatedly: scan
left to right. `#(` begins an active call (its arguments are themselves
evaluated while being gathered, and an active call's result is spliced back
into the stream and rescanned in place); `##(` begins a neutral call
(arguments are still evaluated while gathered, but the call's own result is
substituted without being rescanned, unless the callee forces it active as
implied calls and partial-call defaults do). A bare `(` with no preceding
syntax character opens a protect group: everything between it and its
matching `)` passes through completely unevaluated, nested parens included,
and is never dispatched as a call at all; the outermost pair is dropped. Everything outside a call or protect group is passed through
unevaluated.

This document describes the evaluator (see scanner.go), the string-storage
model (see form.go), the primitive set (see primitives*.go), and the
mode/error/diagnostic machinery layered around them. The REPL (see repl.go)
seeds every read-eval cycle with an active call to `rs` nested inside an
active call to `ps`, `#(ps,#(rs))`, the way a TRAC session conventionally
runs: the line read is evaluated while ps's argument is gathered, and its
neutral residue is printed.
*/
package main
