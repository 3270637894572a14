package main

// registerBlockPrims wires up spec.md §4.4's persistence primitives: sb
// (store block), fb (fetch block), eb (erase block). The first argument
// names the block (file); remaining arguments name the forms to store or
// fetch. With none given, sb stores every form currently defined and fb
// fetches every form in the block.
func (r *PrimitiveRegistry) registerBlockPrims() {
	r.register(primSpec{name: "sb", fn: primSB, minArgs: 1, maxArgs: -1})
	r.register(primSpec{name: "fb", fn: primFB, minArgs: 1, maxArgs: -1})
	r.register(primSpec{name: "eb", fn: primEB, minArgs: 1, maxArgs: -1})
}

// dedupOrdered keeps the first occurrence of each name, preserving order
// (spec.md §4.4's sb: "deduplicated, order-preserved").
func dedupOrdered(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func primSB(it *Interpreter, args []string, active bool) (string, bool, error) {
	blockName := args[0]
	names := args[1:]
	if len(names) == 0 {
		names = it.forms.names()
	}
	names = dedupOrdered(names)
	if err := it.storeBlock(blockName, names); err != nil {
		if pe, ok := err.(primError); ok {
			return "", false, pe
		}
		return "", false, err
	}
	return "", false, nil
}

func primFB(it *Interpreter, args []string, active bool) (string, bool, error) {
	blockName := args[0]
	if err := it.fetchBlock(blockName, args[1:]); err != nil {
		if pe, ok := err.(primError); ok {
			return "", false, pe
		}
		return "", false, err
	}
	return "", false, nil
}

func primEB(it *Interpreter, args []string, active bool) (string, bool, error) {
	blockName := args[0]
	if err := it.eraseBlock(blockName); err != nil {
		if pe, ok := err.(primError); ok {
			return "", false, pe
		}
		return "", false, err
	}
	return "", false, nil
}
