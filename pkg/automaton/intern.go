package automaton

// interner maps the opaque string state ids of one automaton to dense
// integer indices for the duration of one algorithm call. State ids stay
// opaque strings in the external contract (spec.md §9); algorithms that
// benefit from dense tables intern them internally and translate back
// when building their result.
type interner struct {
	ids   []string
	index map[string]int
}

func newInterner(ids []string) *interner {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	return &interner{ids: append([]string(nil), ids...), index: idx}
}

func (in *interner) at(i int) string { return in.ids[i] }

func (in *interner) indexOf(id string) (int, bool) {
	i, ok := in.index[id]
	return i, ok
}

func (in *interner) len() int { return len(in.ids) }
