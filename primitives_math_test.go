package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracIntParsing(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"42", 42, true},
		{"-7", -7, true},
		{"+3", 3, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		v, ok := tracInt(c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		if ok {
			assert.Equal(t, c.want, v)
		}
	}
}

func TestArithmeticPrimitives(t *testing.T) {
	it := newTestInterpreter()

	out, err := it.Eval("#(ad,2,3)")
	require.NoError(t, err)
	assert.Equal(t, "5", out)

	out, err = it.Eval("#(su,10,4)")
	require.NoError(t, err)
	assert.Equal(t, "6", out)

	out, err = it.Eval("#(ml,6,7)")
	require.NoError(t, err)
	assert.Equal(t, "42", out)

	out, err = it.Eval("#(dv,10,3)")
	require.NoError(t, err)
	assert.Equal(t, "3", out)
}

func TestDivideByZeroFallsBackToThirdArg(t *testing.T) {
	it := newTestInterpreter()
	out, err := it.Eval("#(dv,10,0,fallback)")
	require.NoError(t, err)
	assert.Equal(t, "fallback", out)
}

func TestGreaterAndEqual(t *testing.T) {
	it := newTestInterpreter()

	out, err := it.Eval("#(gr,5,3,yes,no)")
	require.NoError(t, err)
	assert.Equal(t, "yes", out)

	out, err = it.Eval("#(gr,3,5,yes,no)")
	require.NoError(t, err)
	assert.Equal(t, "no", out)

	out, err = it.Eval("#(eq,cat,cat,same,diff)")
	require.NoError(t, err)
	assert.Equal(t, "same", out)

	out, err = it.Eval("#(eq,cat,dog,same,diff)")
	require.NoError(t, err)
	assert.Equal(t, "diff", out)
}
