package main

import (
	"fmt"
	"io"
	"sort"
)

// interpreterDumper renders a full Interpreter snapshot (DOMAIN-4 of
// SPEC_FULL.md): every form's chunk structure via the same rendering pf
// uses, the current ModeState, and the primitive registry's name list.
// Shaped after the teacher's vmDumper (section-header-per-region dump
// written straight to an io.Writer), generalized from a flat memory/
// dictionary dump to TRAC's name-keyed forms.
type interpreterDumper struct {
	it  *Interpreter
	out io.Writer
}

func newInterpreterDumper(it *Interpreter, out io.Writer) interpreterDumper {
	return interpreterDumper{it: it, out: out}
}

func (d interpreterDumper) dump() {
	fmt.Fprintf(d.out, "# Interpreter Dump\n")
	fmt.Fprintf(d.out, "  mode: %s\n", d.it.mode.describe())

	d.dumpForms()
	d.dumpPrimitives()
}

func (d interpreterDumper) dumpForms() {
	names := d.it.forms.names()
	sort.Strings(names)
	fmt.Fprintf(d.out, "# Forms @%d\n", len(names))
	for _, name := range names {
		form, err := d.it.forms.find(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(d.out, "  %s\n", form.render())
	}
}

func (d interpreterDumper) dumpPrimitives() {
	names := d.it.registry.names()
	sort.Strings(names)
	fmt.Fprintf(d.out, "# Primitives @%d\n", len(names))
	for _, name := range names {
		spec, _ := d.it.registry.lookup(name)
		extra := ""
		if spec.extended {
			extra = " extended"
		}
		fmt.Fprintf(d.out, "  %s (%d..%d)%s\n", name, spec.minArgs, spec.maxArgs, extra)
	}
}
