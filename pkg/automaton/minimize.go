package automaton

import (
	"sort"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// Minimize implements Hopcroft's partition-refinement algorithm
// (spec.md §4.3). The input is assumed deterministic — callers convert
// NFAs with ToDFA first. Unreachable states are pruned before
// partitioning (mandatory: Hopcroft would otherwise produce spurious
// non-minimal output), and the result is renamed q0, q1, … with q0 the
// block containing the original initial state.
//
// Partition blocks are represented as bitset.BitSet over interned state
// indices rather than hashed string sets, which keeps the O(|Σ|·|Q|log|Q|)
// splitting work within a tight, allocation-light inner loop.
func (a *Automaton) Minimize() *Automaton {
	reachable := a.ReachableStates()
	var keep []string
	for _, s := range a.States {
		if reachable[s] {
			keep = append(keep, s)
		}
	}

	in := newInterner(keep)
	n := in.len()
	if n == 0 {
		return New()
	}

	// Dense transition table: delta[state*|Σ|+symbolIdx] = target index, or -1.
	symIdx := make(map[string]int, len(a.Alphabet))
	for i, s := range a.Alphabet {
		symIdx[s] = i
	}
	sigma := len(a.Alphabet)
	delta := make([]int, n*sigma)
	for i := range delta {
		delta[i] = -1
	}
	for _, t := range a.Transitions {
		from, ok1 := in.indexOf(t.From)
		to, ok2 := in.indexOf(t.To)
		si, ok3 := symIdx[t.Symbol]
		if ok1 && ok2 && ok3 {
			delta[from*sigma+si] = to
		}
	}

	accept := bitset.New(uint(n))
	for _, s := range a.Accepting {
		if i, ok := in.indexOf(s); ok {
			accept.Set(uint(i))
		}
	}
	nonAccept := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if !accept.Test(uint(i)) {
			nonAccept.Set(uint(i))
		}
	}

	var partition []*bitset.BitSet
	if accept.Count() > 0 {
		partition = append(partition, accept)
	}
	if nonAccept.Count() > 0 {
		partition = append(partition, nonAccept)
	}
	worklist := append([]*bitset.BitSet(nil), partition...)

	for len(worklist) > 0 {
		splitter := worklist[0]
		worklist = worklist[1:]

		for si := 0; si < sigma; si++ {
			x := bitset.New(uint(n))
			for q := 0; q < n; q++ {
				target := delta[q*sigma+si]
				if target >= 0 && splitter.Test(uint(target)) {
					x.Set(uint(q))
				}
			}
			if x.Count() == 0 {
				continue
			}

			var next []*bitset.BitSet
			for _, block := range partition {
				inPred := block.Intersection(x)
				notPred := block.Difference(x)
				if inPred.Count() > 0 && notPred.Count() > 0 {
					next = append(next, inPred, notPred)
					if idx := findBlock(worklist, block); idx >= 0 {
						worklist[idx] = inPred
						worklist = append(worklist, notPred)
					} else if inPred.Count() <= notPred.Count() {
						worklist = append(worklist, inPred)
					} else {
						worklist = append(worklist, notPred)
					}
				} else {
					next = append(next, block)
				}
			}
			partition = next
		}
	}

	return buildMinimalAutomaton(a, in, sigma, symIdx, delta, partition)
}

func findBlock(blocks []*bitset.BitSet, target *bitset.BitSet) int {
	for i, b := range blocks {
		if b == target {
			return i
		}
	}
	return -1
}

func buildMinimalAutomaton(a *Automaton, in *interner, sigma int, symIdx map[string]int, delta []int, partition []*bitset.BitSet) *Automaton {
	initialIdx, _ := in.indexOf(a.Initial)

	type blockInfo struct {
		members []int
		hasInit bool
	}
	infos := make([]blockInfo, len(partition))
	for bi, block := range partition {
		var members []int
		for i := uint(0); i < uint(in.len()); i++ {
			if block.Test(i) {
				members = append(members, int(i))
			}
		}
		sort.Slice(members, func(x, y int) bool { return in.at(members[x]) < in.at(members[y]) })
		infos[bi] = blockInfo{members: members, hasInit: block.Test(uint(initialIdx))}
	}

	// Order blocks so the initial block is q0; remaining blocks ordered by
	// their lexicographically-smallest member for reproducible output.
	order := make([]int, len(infos))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(x, y int) bool {
		ix, iy := order[x], order[y]
		if infos[ix].hasInit != infos[iy].hasInit {
			return infos[ix].hasInit
		}
		return in.at(infos[ix].members[0]) < in.at(infos[iy].members[0])
	})

	name := make([]string, len(infos))
	blockOfState := make([]int, in.len())
	for rank, bi := range order {
		name[bi] = "q" + strconv.Itoa(rank)
		for _, m := range infos[bi].members {
			blockOfState[m] = bi
		}
	}

	result := New()
	for _, bi := range order {
		result.AddState(name[bi])
	}
	result.Alphabet = append([]string(nil), a.Alphabet...)
	result.Initial = name[blockOfState[initialIdx]]

	for _, bi := range order {
		rep := infos[bi].members[0]
		if a.IsAccepting(in.at(rep)) {
			result.Accepting = append(result.Accepting, name[bi])
		}
		for _, sym := range a.Alphabet {
			target := delta[rep*sigma+symIdx[sym]]
			if target < 0 {
				continue
			}
			result.AddTransition(name[bi], sym, name[blockOfState[target]])
		}
	}

	return result
}

// IsMinimal reports whether a is already its own minimal DFA, i.e.
// |states(Minimize(a))| == |states(a)| (spec.md §4.6).
func (a *Automaton) IsMinimal() bool {
	return len(a.Minimize().States) == len(a.States)
}
