package main

import (
	"fmt"
	"strings"
)

// A chunk is one piece of a form's content (spec.md DATA MODEL): literal
// text, a numbered segment gap left by (ss), or the form's End sentinel.
// Per spec.md DESIGN NOTES, the form pointer is NOT duplicated onto each
// chunk; only Form.cursor/Form.offset track it, so a chunk here carries
// only its own content.
type chunkKind int

const (
	chunkText chunkKind = iota
	chunkGap
	chunkEnd
)

type chunk struct {
	kind chunkKind
	text string // chunkText only; invariant: non-empty
	gap  int    // chunkGap only: 1-based segment number
}

// A Form is a named, mutable string built from a sequence of chunks with a
// single movable cursor (spec.md DATA MODEL). cursor indexes the chunk
// presently holding the form pointer; offset is meaningful only when that
// chunk is chunkText, and ranges over 0..len(text)-1 (the DESIGN NOTES'
// "fold into cursor + offset", replacing the source's per-chunk pointer).
// Segmenting (ss) replaces runs of the form's text with numbered gaps
// without losing the surrounding text; calling (cl) substitutes concrete
// arguments back into those gaps.
type Form struct {
	name   string
	chunks []chunk
	cursor int
	offset int
}

// newTextForm builds a single-chunk form with the cursor at the left
// (spec.md §4.2's ds: "cursor at left edge").
func newTextForm(name, text string) *Form {
	chunks := []chunk{{kind: chunkEnd}}
	if text != "" {
		chunks = []chunk{{kind: chunkText, text: text}, {kind: chunkEnd}}
	}
	return &Form{name: name, chunks: chunks}
}

// text concatenates every chunk's literal content, ignoring the cursor and
// treating gaps as empty: the stored, pre-call form of a defined macro.
func (f *Form) text() string {
	var b strings.Builder
	for _, c := range f.chunks {
		if c.kind == chunkText {
			b.WriteString(c.text)
		}
	}
	return b.String()
}

// render is (pf)'s diagnostic rendering (spec.md §4.2): the form pointer
// shown as "<^>" and each gap as "<k>" (1-based).
func (f *Form) render() string {
	var b strings.Builder
	for i, c := range f.chunks {
		switch c.kind {
		case chunkText:
			if i == f.cursor {
				b.WriteString(c.text[:f.offset])
				b.WriteString("<^>")
				b.WriteString(c.text[f.offset:])
			} else {
				b.WriteString(c.text)
			}
		case chunkGap:
			if i == f.cursor {
				b.WriteString("<^>")
			}
			fmt.Fprintf(&b, "<%d>", c.gap)
		case chunkEnd:
			if i == f.cursor {
				b.WriteString("<^>")
			}
		}
	}
	return b.String()
}

func (f *Form) String() string { return f.render() }

// atEnd reports whether the cursor has no more characters to read (spec.md
// §4.2's cc/cn/cs/in boundary condition).
func (f *Form) atEnd() bool {
	return f.chunks[f.cursor].kind == chunkEnd
}

// resetPointer moves the cursor to the leftmost position in the form
// (spec.md §4.2's cr, and Open Question 2: reset the Form's own cursor
// field directly after (ss), never a local shadow of it).
func (f *Form) resetPointer() {
	f.cursor = 0
	f.offset = 0
}

// getNextChar returns the character at the cursor and advances it one
// position, skipping any gaps along the way (they hold no character), or
// ok=false at the end of the form.
func (f *Form) getNextChar() (rune, bool) {
	for {
		c := f.chunks[f.cursor]
		switch c.kind {
		case chunkEnd:
			return 0, false
		case chunkGap:
			f.cursor++
			f.offset = 0
		case chunkText:
			r := rune(c.text[f.offset])
			f.offset++
			if f.offset >= len(c.text) {
				f.cursor++
				f.offset = 0
			}
			return r, true
		}
	}
}

// getPrevChar moves the cursor back one position and returns the character
// now at it, skipping gaps, or ok=false at the start of the form.
func (f *Form) getPrevChar() (rune, bool) {
	for {
		if f.offset > 0 {
			f.offset--
			return rune(f.chunks[f.cursor].text[f.offset]), true
		}
		if f.cursor == 0 {
			return 0, false
		}
		f.cursor--
		if f.chunks[f.cursor].kind == chunkText {
			f.offset = len(f.chunks[f.cursor].text)
		}
	}
}

// atStart reports whether the cursor sits at the very left edge of the
// form: the leftmost chunk, with its pointer at offset 0 (spec.md §4.2's
// cn boundary condition for negative counts).
func (f *Form) atStart() bool {
	return f.cursor == 0 && f.offset == 0
}

// consumeSegment implements (cs)'s single-step read (spec.md §4.2): it
// returns the remainder of the current Text chunk (or empty, if the
// cursor sits on a Gap), then advances the cursor past the chunk it was
// on and past a following Gap, if there is one.
func (f *Form) consumeSegment() string {
	cur := f.chunks[f.cursor]
	var text string
	if cur.kind == chunkText {
		text = cur.text[f.offset:]
	}
	f.cursor++
	f.offset = 0
	if f.cursor < len(f.chunks) && f.chunks[f.cursor].kind == chunkGap {
		f.cursor++
		f.offset = 0
	}
	return text
}

// skipGapsForward advances the cursor across any gaps it currently sits
// at without consuming a character; used by (cn)'s n=0 case (spec.md
// §4.2: "just advance past empty chunks").
func (f *Form) skipGapsForward() {
	for f.chunks[f.cursor].kind == chunkGap {
		f.cursor++
		f.offset = 0
	}
}

// skipGapsBackward moves the cursor left across any immediately preceding
// gaps without consuming a character; used by (cn)'s n=-0 case. It is a
// no-op when the cursor sits inside a text chunk's interior (offset>0),
// since there is nothing empty to cross there.
func (f *Form) skipGapsBackward() {
	for f.offset == 0 && f.cursor > 0 && f.chunks[f.cursor-1].kind == chunkGap {
		f.cursor--
	}
}

// callFromCursor is (cl)'s substitution rule (spec.md §4.2): from the
// cursor chunk to End, text contributes its remainder (from the active
// offset if it is the cursor chunk, else in full), gaps contribute
// args[gap] or empty if missing, End contributes nothing. args is
// 1-indexed; args[0] is unused. The form's cursor is left unchanged.
func (f *Form) callFromCursor(args []string) string {
	var b strings.Builder
	first := f.chunks[f.cursor]
	switch first.kind {
	case chunkText:
		b.WriteString(first.text[f.offset:])
	case chunkGap:
		if first.gap < len(args) {
			b.WriteString(args[first.gap])
		}
	}
	for i := f.cursor + 1; i < len(f.chunks); i++ {
		c := f.chunks[i]
		switch c.kind {
		case chunkText:
			b.WriteString(c.text)
		case chunkGap:
			if c.gap < len(args) {
				b.WriteString(args[c.gap])
			}
		}
	}
	return b.String()
}

// findFromCursor implements (in)'s search (spec.md §4.2): the leftmost
// occurrence of text in the concatenation from the cursor to End. It
// returns the characters traversed up to (not including) the match and
// the cursor position just past it; found is false (and the form
// untouched) if text does not occur, or is empty.
func (f *Form) findFromCursor(text string) (prefix string, cursor, offset int, found bool) {
	if text == "" {
		return "", 0, 0, false
	}
	var flat strings.Builder
	var atCursor, atOffset []int
	cur, off := f.cursor, f.offset
	for cur < len(f.chunks) {
		c := f.chunks[cur]
		switch c.kind {
		case chunkEnd:
			cur = len(f.chunks)
		case chunkGap:
			cur++
			off = 0
		case chunkText:
			for off < len(c.text) {
				flat.WriteByte(c.text[off])
				off++
				atCursor = append(atCursor, cur)
				atOffset = append(atOffset, off)
			}
			cur++
			off = 0
		}
	}
	s := flat.String()
	idx := strings.Index(s, text)
	if idx < 0 {
		return "", 0, 0, false
	}
	end := idx + len(text)
	ci, oi := atCursor[end-1], atOffset[end-1]
	for ci < len(f.chunks) {
		c := f.chunks[ci]
		if c.kind == chunkText && oi >= len(c.text) {
			ci++
			oi = 0
			continue
		}
		if c.kind == chunkGap {
			ci++
			oi = 0
			continue
		}
		break
	}
	return s[:idx], ci, oi, true
}

// segItem is segment's intermediate representation: either a run of literal
// text awaiting further splitting, or a gap already assigned a number.
type segItem struct {
	isGap bool
	text  string
	gap   int
}

// splitItems replaces every non-overlapping occurrence of match within the
// literal items of in with a gap numbered gapNo, leaving existing gaps
// untouched. Text already turned into a gap by an earlier split is never
// revisited, since it is no longer a text item.
func splitItems(in []segItem, match string, gapNo int) []segItem {
	if match == "" {
		return in
	}
	var out []segItem
	for _, it := range in {
		if it.isGap {
			out = append(out, it)
			continue
		}
		s := it.text
		pos := 0
		for {
			idx := strings.Index(s[pos:], match)
			if idx < 0 {
				break
			}
			start := pos + idx
			if start > pos {
				out = append(out, segItem{text: s[pos:start]})
			}
			out = append(out, segItem{isGap: true, gap: gapNo})
			pos = start + len(match)
		}
		if pos < len(s) {
			out = append(out, segItem{text: s[pos:]})
		}
	}
	return out
}

// segSpec names a segmentation target: every occurrence of Match in the
// form's literal text is replaced with gap number Gap (spec.md §4.2's ss).
type segSpec struct {
	Gap   int
	Match string
}

// segment splits every Text chunk on each of the given (1-based gap
// number, literal match) pairs in order, so every occurrence of a given
// match string takes the same gap number wherever it appears. An empty
// match is a no-op for that gap number (spec.md §4.2). Resets the cursor
// to the left per Open Question 2.
func (f *Form) segment(specs []segSpec) {
	items := make([]segItem, 0, len(f.chunks))
	for _, c := range f.chunks {
		switch c.kind {
		case chunkText:
			if c.text != "" {
				items = append(items, segItem{text: c.text})
			}
		case chunkGap:
			items = append(items, segItem{isGap: true, gap: c.gap})
		}
	}
	for _, sp := range specs {
		items = splitItems(items, sp.Match, sp.Gap)
	}
	newChunks := make([]chunk, 0, len(items)+1)
	for _, it := range items {
		if it.isGap {
			newChunks = append(newChunks, chunk{kind: chunkGap, gap: it.gap})
		} else {
			newChunks = append(newChunks, chunk{kind: chunkText, text: it.text})
		}
	}
	newChunks = append(newChunks, chunk{kind: chunkEnd})
	f.chunks = newChunks
	f.resetPointer()
}

// numGaps reports the highest gap number present in the form. A single gap
// number may label more than one chunk, when ss found repeated occurrences
// of the same segment string, so this is not simply a chunk count.
func (f *Form) numGaps() int {
	n := 0
	for _, c := range f.chunks {
		if c.kind == chunkGap && c.gap > n {
			n = c.gap
		}
	}
	return n
}

// validate checks the chunk-list invariants of spec.md §3/§7: the chunk
// list is non-empty and ends with exactly one End chunk, no two Text
// chunks are adjacent, no Text chunk is empty, and the cursor points at
// a real chunk with a sane offset.
func (f *Form) validate() error {
	if len(f.chunks) == 0 {
		return fmt.Errorf("form %q: no chunks", f.name)
	}
	if f.chunks[len(f.chunks)-1].kind != chunkEnd {
		return fmt.Errorf("form %q: last chunk is not End", f.name)
	}
	prevWasText := false
	for i, c := range f.chunks {
		switch c.kind {
		case chunkText:
			if c.text == "" {
				return fmt.Errorf("form %q: empty text chunk", f.name)
			}
			if prevWasText {
				return fmt.Errorf("form %q: adjacent text chunks", f.name)
			}
			prevWasText = true
		case chunkEnd:
			if i != len(f.chunks)-1 {
				return fmt.Errorf("form %q: end chunk not last", f.name)
			}
			prevWasText = false
		default:
			prevWasText = false
		}
	}
	if f.cursor < 0 || f.cursor >= len(f.chunks) {
		return fmt.Errorf("form %q: cursor out of range", f.name)
	}
	if f.chunks[f.cursor].kind == chunkText {
		if f.offset < 0 || f.offset >= len(f.chunks[f.cursor].text) {
			return fmt.Errorf("form %q: cursor offset out of range", f.name)
		}
	} else if f.offset != 0 {
		return fmt.Errorf("form %q: non-text chunk with nonzero offset", f.name)
	}
	return nil
}

// FormStore holds every named form in a session (spec.md §3 FormStore).
// Lookup by exact, case-sensitive name; TRAC has no namespacing.
type FormStore struct {
	forms map[string]*Form
}

func newFormStore() *FormStore {
	return &FormStore{forms: make(map[string]*Form)}
}

// ErrNoSuchForm is returned/wrapped as a primError (the original's FNFError)
// when a name has no associated form.
type ErrNoSuchForm struct{ Name string }

func (e ErrNoSuchForm) Error() string { return fmt.Sprintf("<NFN> (%s)", e.Name) }

func (fs *FormStore) find(name string) (*Form, error) {
	f, ok := fs.forms[name]
	if !ok {
		return nil, ErrNoSuchForm{name}
	}
	return f, nil
}

// define installs (or replaces) a named form's body as flat text.
func (fs *FormStore) define(name, text string) {
	fs.forms[name] = newTextForm(name, text)
}

// deleteForm removes a form; no error if absent.
func (fs *FormStore) deleteForm(name string) {
	delete(fs.forms, name)
}

// deleteAll clears every form (spec.md §4.2's da).
func (fs *FormStore) deleteAll() {
	fs.forms = make(map[string]*Form)
}

// names returns every form name, used by block persistence, (ln), and dump.
func (fs *FormStore) names() []string {
	names := make([]string, 0, len(fs.forms))
	for n := range fs.forms {
		names = append(names, n)
	}
	return names
}

func (fs *FormStore) validateAll() []error {
	var errs []error
	for _, name := range fs.names() {
		if err := fs.forms[name].validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
