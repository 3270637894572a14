package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These mirror the worked end-to-end scenarios given in spec.md's Testable
// Properties section verbatim (minus the trailing meta-character statement
// separators, since each statement is issued here as its own Eval call
// rather than typed at the REPL prompt). The repeat example additionally
// enables extended mode, since (ni) is an extended primitive here, and
// reads what (ps) prints from a fake terminal.

func TestSpecExampleFactorial(t *testing.T) {
	it := newTestInterpreter()
	_, err := it.Eval("#(ds,fact,(#(eq,*,0,1,(#(ml,*,#(fact,#(su,*,1)))))))")
	require.NoError(t, err)
	_, err = it.Eval("#(ss,fact,*)")
	require.NoError(t, err)
	out, err := it.Eval("#(fact,5)")
	require.NoError(t, err)
	require.Equal(t, "120", out)
}

func TestSpecExampleCursorWalk(t *testing.T) {
	it := newTestInterpreter()
	_, err := it.Eval("#(ds,a,hello)")
	require.NoError(t, err)

	out, err := it.Eval("#(cn,a,2,X)")
	require.NoError(t, err)
	require.Equal(t, "he", out)

	// -0 moves left across empty chunks without yielding a character or
	// otherwise moving the cursor, so the next positive cn picks up right
	// where the previous one left off.
	out, err = it.Eval("#(cn,a,-0,X)")
	require.NoError(t, err)
	require.Equal(t, "", out)

	out, err = it.Eval("#(cn,a,10,X)")
	require.NoError(t, err)
	require.Equal(t, "llo", out)

	out, err = it.Eval("#(cn,a,1,END)")
	require.NoError(t, err)
	require.Equal(t, "END", out)
}

func TestSpecExampleSegmentAndNeutralCall(t *testing.T) {
	it := newTestInterpreter()
	_, err := it.Eval("#(ds,p,(abXcdXef))")
	require.NoError(t, err)
	_, err = it.Eval("#(ss,p,X)")
	require.NoError(t, err)
	out, err := it.Eval("##(cl,p,-,-)")
	require.NoError(t, err)
	require.Equal(t, "ab-cd-ef", out)
}

func TestSpecExampleArithmeticAndBoolean(t *testing.T) {
	it := newTestInterpreter()

	out, err := it.Eval("#(ad,x12,3)")
	require.NoError(t, err)
	require.Equal(t, "x15", out)

	out, err = it.Eval("#(dv,5,0,oops)")
	require.NoError(t, err)
	require.Equal(t, "oops", out)

	out, err = it.Eval("#(bu,7,10)")
	require.NoError(t, err)
	require.Equal(t, "17", out)

	out, err = it.Eval("#(bc,7)")
	require.NoError(t, err)
	require.Equal(t, "0", out)

	out, err = it.Eval("#(bs,2,1)")
	require.NoError(t, err)
	require.Equal(t, "4", out)
}

// TestSpecExampleRepeatDiscriminatesOnActiveness is the canonical ni/
// implied-call example: repeat's body calls itself through an implied
// call, and that implied call's own activeness — set once per invocation
// and read by every (ni,#) inside the recursive expansion — decides
// whether each step actually fires (ps,hi) or leaves it as literal text.
// (ps) returns "", so the fired steps show up only on the terminal.
func TestSpecExampleRepeatDiscriminatesOnActiveness(t *testing.T) {
	term := newFakeTerminal("")
	it := New(WithTerminal(term))
	_, err := it.Eval("#(mo,e)")
	require.NoError(t, err)
	_, err = it.Eval("#(ds,repeat,(#(eq,*2,0,,(#(ni,#)#(cl,*1)#(cl,repeat,*1,#(su,*2,1))))))")
	require.NoError(t, err)
	_, err = it.Eval("#(ss,repeat,*1,*2)")
	require.NoError(t, err)
	_, err = it.Eval("#(ds,h,(#(ps,hi)))")
	require.NoError(t, err)

	_, err = it.Eval("#(repeat,h,3)")
	require.NoError(t, err)
	require.Equal(t, "hihihi", term.out.String())

	out, err := it.Eval("##(repeat,h,3)")
	require.NoError(t, err)
	require.Equal(t, "#(ps,hi)#(ps,hi)#(ps,hi)", out)
}
