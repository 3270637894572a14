package main

import (
	"bufio"
	"io"

	"github.com/jcorbin/trac64/internal/fileinput"
	"github.com/jcorbin/trac64/internal/flushio"
	"github.com/jcorbin/trac64/internal/runeio"
)

// TerminalAdapter is the external read/write surface the interpreter needs
// (spec.md §EXTERNAL INTERFACES): reading a line, reading a single
// character, writing output, and ringing the bell. The full-cursor ANSI and
// OS-specific raw-key terminal variants original_source/trac.py supports
// are out of scope; this is the "basic, line-oriented" variant.
type TerminalAdapter interface {
	ReadLine(prompt string) (string, error)
	ReadChar() (rune, error)
	Write(s string) error
	Bell() error
	Close() error
}

// lineTerminal is the TerminalAdapter built from the teacher's rune-level
// plumbing: fileinput.Input for location-tracked rune reading, a
// flushio.WriteFlusher for buffered output, and runeio for ANSI-safe
// writing of non-printable content.
type lineTerminal struct {
	in      fileinput.Input
	out     flushio.WriteFlusher
	closers []io.Closer
}

func newLineTerminal(r io.Reader, w io.Writer) *lineTerminal {
	t := &lineTerminal{out: flushio.NewWriteFlusher(w)}
	t.in.Queue = append(t.in.Queue, r)
	if cl, ok := w.(io.Closer); ok {
		t.closers = append(t.closers, cl)
	}
	if cl, ok := r.(io.Closer); ok {
		t.closers = append(t.closers, cl)
	}
	return t
}

func (t *lineTerminal) Write(s string) error {
	if _, err := runeio.WriteANSIString(t.out, s); err != nil {
		return err
	}
	return t.out.Flush()
}

func (t *lineTerminal) Bell() error {
	_, err := runeio.WriteANSIRune(t.out, '\a')
	return err
}

// ReadLine reads up to and including the next newline, returning the line
// without its terminator. prompt is written first (spec.md's read_line).
func (t *lineTerminal) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if err := t.Write(prompt); err != nil {
			return "", err
		}
	}
	var buf []rune
	for {
		r, _, err := t.in.ReadRune()
		if err != nil {
			if err == io.EOF {
				if len(buf) == 0 {
					return "", io.EOF
				}
				return string(buf), nil
			}
			return "", err
		}
		if r == '\n' {
			return string(buf), nil
		}
		if r == '\r' {
			continue
		}
		buf = append(buf, r)
	}
}

func (t *lineTerminal) ReadChar() (rune, error) {
	r, _, err := t.in.ReadRune()
	if r == '\r' {
		return '\n', nil
	}
	return r, err
}

func (t *lineTerminal) Close() error {
	var firstErr error
	if t.out != nil {
		if err := t.out.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for _, cl := range t.closers {
		if err := cl.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// bufferedReader adapts a bare io.Reader into a bufio.Reader. Nothing in
// this package calls it; the REPL always reads through a TerminalAdapter.
func bufferedReader(r io.Reader) *bufio.Reader { return bufio.NewReader(r) }
