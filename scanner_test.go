package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterpreter() *Interpreter {
	return New()
}

func TestScanPlainTextPassesThrough(t *testing.T) {
	it := newTestInterpreter()
	out, err := it.Eval("just some text")
	require.NoError(t, err)
	assert.Equal(t, "just some text", out)
}

func TestScanNeutralCallNotRescanned(t *testing.T) {
	it := newTestInterpreter()
	it.forms.define("inner", "#(ad,1,1)")
	out, err := it.Eval("##(cl,inner)")
	require.NoError(t, err)
	// neutral: the form's own active call inside its body is not expanded
	// a second time by the outer (neutral) call's substitution.
	assert.Equal(t, "#(ad,1,1)", out)
}

func TestScanProtectGroupIsLiteral(t *testing.T) {
	it := newTestInterpreter()
	// A bare paren is a protect group, not a call at all: its contents,
	// parens included, pass through completely unscanned.
	out, err := it.Eval("before (a call #(ad,1,1) stays literal) after")
	require.NoError(t, err)
	assert.Equal(t, "before a call #(ad,1,1) stays literal after", out)
}

func TestScanActiveCallIsRescanned(t *testing.T) {
	it := newTestInterpreter()
	it.forms.define("inner", "#(ad,1,1)")
	out, err := it.Eval("#(cl,inner)")
	require.NoError(t, err)
	assert.Equal(t, "2", out)
}

func TestScanDefineThenCall(t *testing.T) {
	it := newTestInterpreter()
	// The body is wrapped in a protect group so the embedded (cl,who) is
	// stored literally rather than evaluated right now, while ds's own
	// argument is still being gathered. Calling greet actively yields
	// "hi #(cl,there)", which is rescanned: the embedded call now names the
	// undefined form "there", which forgiving mode turns into "".
	_, err := it.Eval("#(ds,greet,(hi #(cl,who)))")
	require.NoError(t, err)
	_, err = it.Eval("#(ss,greet,who)")
	require.NoError(t, err)
	out, err := it.Eval("#(cl,greet,there)")
	require.NoError(t, err)
	assert.Equal(t, "hi ", out)
}

func TestScanUnknownNameIsForgiving(t *testing.T) {
	it := newTestInterpreter()
	out, err := it.Eval("#(nosuchname)")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestScanUnknownNameUnforgiving(t *testing.T) {
	it := New(WithUnforgiving(true))
	_, err := it.Eval("#(nosuchname)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<UNF>")
	assert.Contains(t, err.Error(), "<NFN>")
}

// TestScanDepthLimitReported drives genuinely unbounded recursion: loop's
// recursive call sits nested inside ad's second argument, so every
// expansion adds another level of argument-gathering recursion rather than
// looping flat within one scan frame (the way a directly self-spliced form
// would).
func TestScanDepthLimitReported(t *testing.T) {
	it := newTestInterpreter()
	it.forms.define("loop", "#(ad,0,#(cl,loop))")
	_, err := it.Eval("#(cl,loop)")
	require.Error(t, err)
	assert.IsType(t, scanError{}, err)
}
