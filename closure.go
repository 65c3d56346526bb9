package automaton

import "github.com/bits-and-blooms/bitset"

// EpsilonClosure Returns every state reachable from seeds using only epsilon
// transitions (seeds included) and whether any of them is an accept state.
// seeds is not modified. Closing an already closed set returns an equal set.
func (a *Automaton) EpsilonClosure(seeds *bitset.BitSet) (*bitset.BitSet, bool) {
	closure := bitset.New(uint(a.NumStates()))
	workList := make([]int, 0, seeds.Count())
	for s, ok := seeds.NextSet(0); ok && s < uint(a.NumStates()); s, ok = seeds.NextSet(s + 1) {
		closure.Set(s)
		workList = append(workList, int(s))
	}

	for len(workList) > 0 {
		state := workList[len(workList)-1]
		workList = workList[:len(workList)-1]

		// Epsilon sorts before every symbol, so these are a prefix.
		for _, t := range a.transitionsOf(state) {
			if t.Label != Epsilon {
				break
			}
			if !closure.Test(uint(t.Dest)) {
				closure.Set(uint(t.Dest))
				workList = append(workList, t.Dest)
			}
		}
	}

	return closure, a.containsAccept(closure)
}

// StateClosure Returns the epsilon-closure of a single state.
func (a *Automaton) StateClosure(state int) (*bitset.BitSet, bool) {
	seeds := bitset.New(uint(a.NumStates()))
	seeds.Set(uint(state))
	return a.EpsilonClosure(seeds)
}

func (a *Automaton) containsAccept(states *bitset.BitSet) bool {
	return a.isAccept.IntersectionCardinality(states) > 0
}
