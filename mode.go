package main

import (
	"fmt"
	"strings"
)

// ModeState holds the interpreter's global, mutable mode (spec.md §3): the
// current syntax and meta characters, the extended/unforgiving/trace
// switches, the activeness of the most recent implied call as read by (ni)
// (implied_active), and the history of strings read by (rs). Grounded on
// original_source/trac.py's mode class and xConsole history handling.
type ModeState struct {
	syntaxChar    rune
	metaChar      rune
	extended      bool
	unforgiving   bool
	trace         bool
	impliedActive bool

	rsHistory []string
}

func newModeState() *ModeState {
	return &ModeState{
		syntaxChar: '#',
		metaChar:   '\'',
	}
}

// excludedSyntaxChars are characters TRAC never allows as the syntax or
// meta character (they are already meaningful), per original_source's
// specchar/syntclass checks.
const excludedSyntaxChars = "(),"

// validSpecialChar rejects the empty string, characters already reserved
// for call syntax, the other special character currently in effect, and
// non-printing codepoints (spec.md §4.5's mo,ms / cm rules). allowNewline
// distinguishes meta_char (printable-or-newline) from syntax_char
// (printable only) per spec.md §3's ModeState invariants.
func validSpecialChar(s string, other rune, allowNewline bool) (rune, error) {
	if len(s) == 0 {
		return 0, newPrimError(true, "<CCE> empty character")
	}
	rs := []rune(s)
	if len(rs) != 1 {
		return 0, newPrimError(true, "<CCE> (%s) not a single character", s)
	}
	r := rs[0]
	if strings.ContainsRune(excludedSyntaxChars, r) {
		return 0, newPrimError(true, "<CCE> (%s) reserved character", s)
	}
	if r == other {
		return 0, newPrimError(true, "<CCE> (%s) already in use", s)
	}
	if allowNewline && r == '\n' {
		return r, nil
	}
	if r < 32 || r > 126 {
		return 0, newPrimError(true, "<CCE> (%s) non-printing character", s)
	}
	return r, nil
}

func (m *ModeState) recordRead(s string) {
	m.rsHistory = append(m.rsHistory, s)
}

// describe renders the current mode switches, the (mo,pm) supplement from
// DOMAIN-3/SPEC_FULL.md.
func (m *ModeState) describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "syntax=%c meta=%c", m.syntaxChar, m.metaChar)
	if m.extended {
		b.WriteString(" extended")
	}
	if m.unforgiving {
		b.WriteString(" unforgiving")
	}
	if m.trace {
		b.WriteString(" trace")
	}
	if m.impliedActive {
		b.WriteString(" implied-active")
	}
	fmt.Fprintf(&b, " history=%d", len(m.rsHistory))
	return b.String()
}
