package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeDefaults(t *testing.T) {
	m := newModeState()
	assert.Equal(t, '#', m.syntaxChar)
	assert.Equal(t, '\'', m.metaChar)
	assert.False(t, m.extended)
	assert.False(t, m.unforgiving)
}

func TestValidSpecialCharRejectsReservedAndControl(t *testing.T) {
	_, err := validSpecialChar("(", '\'', true)
	assert.Error(t, err)

	_, err = validSpecialChar("", '\'', true)
	assert.Error(t, err)

	_, err = validSpecialChar("\x01", '\'', true)
	assert.Error(t, err)

	_, err = validSpecialChar("'", '\'', true)
	assert.Error(t, err)

	r, err := validSpecialChar("@", '\'', true)
	require.NoError(t, err)
	assert.Equal(t, '@', r)
}

func TestModeSyntaxCharSwitch(t *testing.T) {
	it := newTestInterpreter()
	_, err := it.Eval("#(mo,ms,@)")
	require.NoError(t, err)
	assert.Equal(t, '@', it.mode.syntaxChar)

	out, err := it.Eval("@(ad,1,1)")
	require.NoError(t, err)
	assert.Equal(t, "2", out)
}

func TestModeExtendedGatesExtendedPrimitives(t *testing.T) {
	it := newTestInterpreter()
	out, err := it.Eval("#(rm,7,3,x)")
	require.NoError(t, err)
	// rm is extended and extended mode is off, so it falls through to an
	// implied call on the (undefined) form "rm", forgiving to "".
	assert.Equal(t, "", out)

	_, err = it.Eval("#(mo,e)")
	require.NoError(t, err)
	out, err = it.Eval("#(rm,7,3,x)")
	require.NoError(t, err)
	assert.Equal(t, "1", out)
}

func TestTraceToggle(t *testing.T) {
	it := newTestInterpreter()
	_, err := it.Eval("#(tn)")
	require.NoError(t, err)
	assert.True(t, it.mode.trace)
	_, err = it.Eval("#(tf)")
	require.NoError(t, err)
	assert.False(t, it.mode.trace)
}

func TestHaltPrimitive(t *testing.T) {
	it := newTestInterpreter()
	_, err := it.Eval("#(hl)")
	require.Error(t, err)
	assert.True(t, isHalt(err))
}
