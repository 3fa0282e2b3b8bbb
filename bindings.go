package sequencer

// Bindings maps operands to the nodes currently bound to them. Only weak
// handles are stored.
type Bindings struct {
	m map[Operand][]Handle
}

// Bind adds nodes to op. Nodes already bound to op are skipped.
func (b *Bindings) Bind(op Operand, nodes ...*Node) {
	if b.m == nil {
		b.m = make(map[Operand][]Handle)
	}
	list := b.m[op]
outer:
	for _, n := range nodes {
		if n == nil {
			continue
		}
		h := WeakHandle(n)
		for _, existing := range list {
			if existing == h {
				continue outer
			}
		}
		list = append(list, h)
	}
	b.m[op] = list
}

// Unbind removes every node bound to op.
func (b *Bindings) Unbind(op Operand) {
	delete(b.m, op)
}

// FindBoundObjects returns the handles bound to op. Handles may be dead;
// callers resolve each one. The returned slice MUST NOT be mutated.
func (b *Bindings) FindBoundObjects(op Operand) []Handle {
	return b.m[op]
}

// Prune drops dead handles and empty operands. Returns the number of handles
// removed.
func (b *Bindings) Prune() int {
	removed := 0
	for op, list := range b.m {
		live := list[:0]
		for _, h := range list {
			if h.IsValid() {
				live = append(live, h)
			} else {
				removed++
			}
		}
		clear(list[len(live):])
		if len(live) == 0 {
			delete(b.m, op)
		} else {
			b.m[op] = live
		}
	}
	return removed
}
