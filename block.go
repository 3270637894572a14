package main

import (
	"fmt"
	"os"
	"strings"

	mcjson "github.com/mcvoid/json"
)

// Block persistence (spec.md §4.4, DOMAIN-1 of SPEC_FULL.md): sb stores a
// named set of forms into a file, fb fetches them back, eb erases the
// stored file. The on-disk format is a JSON array of form documents, each
// self-describing its chunk structure so a fetch round-trips exactly what
// was stored, including cursor position and gap numbering.
//
// Encoding is done by hand (mcvoid/json has no encoder) and decoding uses
// github.com/mcvoid/json's parser, so the dependency is exercised on the
// read side, which is where a hand-rolled parser earns its keep the most:
// a corrupt or foreign block file must fail cleanly rather than panic.

func blockPath(name string) string { return name + ".trac-block" }

func encodeForm(f *Form) string {
	var b strings.Builder
	b.WriteByte('{')
	fmt.Fprintf(&b, "%q:%q,", "name", f.name)
	fmt.Fprintf(&b, "%q:%d,", "cursor", f.cursor)
	fmt.Fprintf(&b, "%q:%d,", "offset", f.offset)
	fmt.Fprintf(&b, "%q:[", "chunks")
	for i, c := range f.chunks {
		if i > 0 {
			b.WriteByte(',')
		}
		switch c.kind {
		case chunkText:
			fmt.Fprintf(&b, `{"kind":"text","text":%q}`, c.text)
		case chunkGap:
			fmt.Fprintf(&b, `{"kind":"gap","gap":%d}`, c.gap)
		case chunkEnd:
			b.WriteString(`{"kind":"end"}`)
		}
	}
	b.WriteString("]}")
	return b.String()
}

func decodeForm(v *mcjson.Value) (*Form, error) {
	obj, err := v.AsObject()
	if err != nil {
		return nil, err
	}
	nameVal, ok := obj["name"]
	if !ok {
		return nil, fmt.Errorf("block: form missing name")
	}
	name, err := nameVal.AsString()
	if err != nil {
		return nil, err
	}
	chunksVal, ok := obj["chunks"]
	if !ok {
		return nil, fmt.Errorf("block: form %q missing chunks", name)
	}
	arr, err := chunksVal.AsArray()
	if err != nil {
		return nil, err
	}
	f := &Form{name: name}
	if cursorVal, ok := obj["cursor"]; ok {
		c, _ := cursorVal.AsInteger()
		f.cursor = int(c)
	}
	if offsetVal, ok := obj["offset"]; ok {
		o, _ := offsetVal.AsInteger()
		f.offset = int(o)
	}
	for _, cv := range arr {
		cobj, err := cv.AsObject()
		if err != nil {
			return nil, err
		}
		kindVal, ok := cobj["kind"]
		if !ok {
			return nil, fmt.Errorf("block: chunk missing kind")
		}
		kind, err := kindVal.AsString()
		if err != nil {
			return nil, err
		}
		switch kind {
		case "text":
			text, _ := cobj["text"].AsString()
			f.chunks = append(f.chunks, chunk{kind: chunkText, text: text})
		case "gap":
			gap, _ := cobj["gap"].AsInteger()
			f.chunks = append(f.chunks, chunk{kind: chunkGap, gap: int(gap)})
		case "end":
			f.chunks = append(f.chunks, chunk{kind: chunkEnd})
		default:
			return nil, fmt.Errorf("block: form %q: unknown chunk kind %q", name, kind)
		}
	}
	return f, nil
}

// storeBlock writes the named forms to disk. sb deletes the forms from
// the live FormStore after a successful store, matching
// original_source/trac.py's block.store.
func (it *Interpreter) storeBlock(blockName string, formNames []string) error {
	var b strings.Builder
	b.WriteByte('[')
	for i, name := range formNames {
		form, err := it.forms.find(name)
		if err != nil {
			return newPrimError(false, "<NFN> (%s)", name)
		}
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(encodeForm(form))
	}
	b.WriteByte(']')
	if err := os.WriteFile(blockPath(blockName), []byte(b.String()), 0o644); err != nil {
		return newTracError(true, "<STE> (%v)", err)
	}
	for _, name := range formNames {
		it.forms.deleteForm(name)
	}
	return nil
}

// fetchBlock reads the named forms back from disk, installing them in the
// live FormStore. An empty formNames fetches every form in the block.
func (it *Interpreter) fetchBlock(blockName string, formNames []string) error {
	data, err := os.ReadFile(blockPath(blockName))
	if err != nil {
		return newTracError(true, "<STE> (%v)", err)
	}
	root, perr := mcjson.ParseString(string(data))
	if perr != nil {
		return newTracError(true, "<STE> malformed block %q: %v", blockName, perr)
	}
	arr, aerr := root.AsArray()
	if aerr != nil {
		return newTracError(true, "<STE> malformed block %q", blockName)
	}
	want := make(map[string]bool, len(formNames))
	for _, n := range formNames {
		want[n] = true
	}
	for _, cv := range arr {
		f, derr := decodeForm(cv)
		if derr != nil {
			return newTracError(true, "<STE> malformed block %q: %v", blockName, derr)
		}
		if len(want) == 0 || want[f.name] {
			it.forms.forms[f.name] = f
		}
	}
	return nil
}

// eraseBlock deletes the stored block file entirely.
func (it *Interpreter) eraseBlock(blockName string) error {
	if err := os.Remove(blockPath(blockName)); err != nil && !os.IsNotExist(err) {
		return newTracError(true, "<STE> (%v)", err)
	}
	return nil
}
