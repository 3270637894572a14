package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormTextRoundTrip(t *testing.T) {
	f := newTextForm("greeting", "hello world")
	assert.Equal(t, "hello world", f.text())
	assert.NoError(t, f.validate())
}

func TestFormGetNextChar(t *testing.T) {
	f := newTextForm("name", "abc")
	var got []rune
	for {
		r, ok := f.getNextChar()
		if !ok {
			break
		}
		got = append(got, r)
	}
	assert.Equal(t, "abc", string(got))
	assert.True(t, f.atEnd())
}

func TestFormSegmentAndCall(t *testing.T) {
	f := newTextForm("greet", "hello NAME, welcome to PLACE")
	f.segment([]segSpec{{Gap: 1, Match: "NAME"}, {Gap: 2, Match: "PLACE"}})
	require.Equal(t, 2, f.numGaps())

	out := f.callFromCursor([]string{"", "world", "here"})
	assert.Equal(t, "hello world, welcome to here", out)

	// segment always resets the cursor to the leftmost chunk (Open
	// Question 2), never leaving a stale cursor on a shadowed copy.
	assert.True(t, f.atStart())
}

func TestFormValidateRejectsCursorOutOfRange(t *testing.T) {
	f := &Form{name: "bad", chunks: []chunk{
		{kind: chunkText, text: "ab"},
		{kind: chunkEnd},
	}, cursor: 5}
	assert.Error(t, f.validate())
}

func TestFormStoreDefineFindDelete(t *testing.T) {
	fs := newFormStore()
	fs.define("x", "123")
	f, err := fs.find("x")
	require.NoError(t, err)
	assert.Equal(t, "123", f.text())

	fs.deleteForm("x")
	_, err = fs.find("x")
	assert.Error(t, err)
}

func TestFormStoreDeleteAll(t *testing.T) {
	fs := newFormStore()
	fs.define("a", "1")
	fs.define("b", "2")
	fs.deleteAll()
	assert.Empty(t, fs.names())
}

func TestFormFindFromCursor(t *testing.T) {
	f := newTextForm("f", "one two three")
	prefix, cursor, offset, found := f.findFromCursor("two")
	require.True(t, found)
	assert.Equal(t, "one ", prefix)
	f.cursor, f.offset = cursor, offset
	assert.Equal(t, " three", f.callFromCursor(nil))
}
