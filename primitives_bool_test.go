package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolUnionIntersectionComplement(t *testing.T) {
	it := newTestInterpreter()

	out, err := it.Eval("#(bu,3,5)")
	require.NoError(t, err)
	assert.Equal(t, "7", out) // 011 | 101 = 111

	out, err = it.Eval("#(bi,3,5)")
	require.NoError(t, err)
	assert.Equal(t, "1", out) // 011 & 101 = 001

	out, err = it.Eval("#(bc,0)")
	require.NoError(t, err)
	assert.Equal(t, "7", out)
}

func TestBoolRotateWraps(t *testing.T) {
	it := newTestInterpreter()
	out, err := it.Eval("#(br,3,1)")
	require.NoError(t, err)
	// 001 rotated left 3 (one full octal digit's width) returns to itself
	assert.Equal(t, "1", out)
}

func TestBoolShiftTruncates(t *testing.T) {
	it := newTestInterpreter()
	out, err := it.Eval("#(bs,-3,4)")
	require.NoError(t, err)
	assert.Equal(t, "0", out)
}

func TestTrailingOctalIgnoresNonOctalPrefix(t *testing.T) {
	assert.Empty(t, trailingOctal("89"))
	assert.Equal(t, []uint8{0, 1, 7}, trailingOctal("x017"))
}
