package main

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTerminal is a minimal TerminalAdapter backed by in-memory buffers, used
// to drive the REPL end-to-end without a real tty.
type fakeTerminal struct {
	in  *bufio.Reader
	out bytes.Buffer
}

func newFakeTerminal(input string) *fakeTerminal {
	return &fakeTerminal{in: bufio.NewReader(bytes.NewBufferString(input))}
}

func (f *fakeTerminal) ReadLine(prompt string) (string, error) {
	line, err := f.in.ReadString('\n')
	if err != nil && line == "" {
		return "", io.EOF
	}
	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}
	return line, nil
}

func (f *fakeTerminal) ReadChar() (rune, error) {
	r, _, err := f.in.ReadRune()
	return r, err
}

func (f *fakeTerminal) Write(s string) error {
	_, err := f.out.WriteString(s)
	return err
}

func (f *fakeTerminal) Bell() error { return nil }

func (f *fakeTerminal) Close() error { return nil }

// TestScenarioDefineSegmentCall mirrors spec.md §8's basic define/segment/
// call scenario: defining a form with an embedded call, segmenting out a
// placeholder, and calling it with a fresh argument.
func TestScenarioDefineSegmentCall(t *testing.T) {
	it := newTestInterpreter()
	// A single placeholder occurring twice in the body: ss replaces every
	// occurrence of "N" with the same gap 1, so one call-time argument
	// fills both (spec.md §4.2's ss, not merely its first occurrence). The
	// body is protect-grouped so (ad,N,N) is stored literally instead of
	// being evaluated while ds's own argument is gathered.
	_, err := it.Eval("#(ds,double,(#(ad,N,N)))")
	require.NoError(t, err)
	_, err = it.Eval("#(ss,double,N)")
	require.NoError(t, err)
	out, err := it.Eval("#(cl,double,21)")
	require.NoError(t, err)
	assert.Equal(t, "42", out)
}

// TestScenarioRecursiveDefinition exercises a form that calls itself
// through an intermediate counter, terminating via (eq) rather than a host
// loop construct, matching TRAC's recursion-only control flow.
//
// The recursive call is not embedded directly in (eq)'s branch arguments:
// an active call prescans every argument regardless of which branch wins,
// so a literal call there would recurse unconditionally. Instead (eq)
// picks a form NAME ("done" or "count"), and that name becomes the callee
// of an enclosing (cl) whose own rescan is what carries the recursion
// forward one step at a time. Both of count's two uses of its parameter
// share one gap, so each recursive step needs only a single argument.
// count's own body is protect-grouped, same reason as double's above: a
// (ds) argument is gathered exactly like any other, so without the
// protect group the embedded calls would fire immediately instead of
// being stored for later.
func TestScenarioRecursiveDefinition(t *testing.T) {
	it := newTestInterpreter()
	_, err := it.Eval("#(ds,done,finished)")
	require.NoError(t, err)
	_, err = it.Eval("#(ds,count,(#(cl,#(eq,N,0,done,count),#(su,N,1))))")
	require.NoError(t, err)
	_, err = it.Eval("#(ss,count,N)")
	require.NoError(t, err)
	out, err := it.Eval("#(cl,count,3)")
	require.NoError(t, err)
	assert.Equal(t, "finished", out)
}

// TestScenarioImpliedCallSetsNi exercises spec.md §4.6's partial-call
// discrimination primitive (ni): a name that isn't a primitive dispatches
// as an implied call on the like-named form, and that implied call's own
// activeness — `#(pick)` vs `##(pick)` — is what (ni) inside pick's body
// reports, regardless of how deep pick's own body rescans.
func TestScenarioImpliedCallSetsNi(t *testing.T) {
	it := newTestInterpreter()
	_, err := it.Eval("#(mo,e)")
	require.NoError(t, err)
	_, err = it.Eval("#(ds,pick,(#(ni,no,yes)))")
	require.NoError(t, err)

	out, err := it.Eval("#(pick)")
	require.NoError(t, err)
	assert.Equal(t, "yes", out, "implied call triggered actively")

	out, err = it.Eval("##(pick)")
	require.NoError(t, err)
	assert.Equal(t, "no", out, "implied call triggered neutrally")
}

// TestScenarioCursorWalkViaIn exercises spec.md §4.2's (in): each call
// advances the form's cursor past the first match from its current
// position, so repeated calls walk through a form's text like a simple
// tokenizer.
func TestScenarioCursorWalkViaIn(t *testing.T) {
	it := newTestInterpreter()
	it.forms.define("csv", "a,b,c")

	out, err := it.Eval("#(in,csv,(,),none)")
	require.NoError(t, err)
	assert.Equal(t, "a", out)

	out, err = it.Eval("#(in,csv,(,),none)")
	require.NoError(t, err)
	assert.Equal(t, "b", out)

	out, err = it.Eval("#(in,csv,(,),none)")
	require.NoError(t, err)
	assert.Equal(t, "none", out, "no more commas: default returned, cursor unchanged")
}

// TestScenarioREPLEvaluatesTypedLine drives the whole REPL loop (spec.md
// §6) against a fake terminal. The `#(ps,#(rs))` seed reads a line with
// rs, but rs's result is active, so it is spliced back into and rescanned
// within the very scan that's gathering ps's own argument: the typed
// line's calls run right there, and only their neutral residue ever
// reaches ps, and so the terminal.
func TestScenarioREPLEvaluatesTypedLine(t *testing.T) {
	line := "#(ds,x,hi)#(cl,x)"
	term := newFakeTerminal(line + "\n")
	it := New(WithTerminal(term))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := runREPL(ctx, it)
	require.NoError(t, err)

	// Only "hi" (cl,x's result) survives as neutral residue; the ds call
	// itself contributes nothing, and the raw source text is never echoed.
	assert.Equal(t, "hi", term.out.String())
	form, ferr := it.forms.find("x")
	require.NoError(t, ferr)
	assert.Equal(t, "hi", form.text())
}
