package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// DeterministicAutomataIsomorphism Looks for a renaming of the states of a1 onto
// the states of a2 that preserves the initial state, accept flags and every
// transition. Both automata must be deterministic. Returns the mapping from
// states of a1 to states of a2, or false if there is none.
func DeterministicAutomataIsomorphism(a1, a2 *Automaton) (map[int]int, bool) {
	if !a1.IsDeterministic() || !a2.IsDeterministic() {
		return nil, false
	}
	if a1.NumStates() != a2.NumStates() || a1.NumTransitions() != a2.NumTransitions() {
		return nil, false
	}
	if !slices.Equal(a1.alphabet, a2.alphabet) {
		return nil, false
	}

	mapping := map[int]int{a1.Initial(): a2.Initial()}
	used := bitset.New(uint(a2.NumStates()))
	used.Set(uint(a2.Initial()))

	workList := []int{a1.Initial()}
	for i := 0; i < len(workList); i++ {
		s1 := workList[i]
		s2 := mapping[s1]
		if a1.IsAccept(s1) != a2.IsAccept(s2) {
			return nil, false
		}

		t1, t2 := a1.transitionsOf(s1), a2.transitionsOf(s2)
		if len(t1) != len(t2) {
			return nil, false
		}
		for k := range t1 {
			if t1[k].Label != t2[k].Label {
				return nil, false
			}
			d1, d2 := t1[k].Dest, t2[k].Dest
			if m, ok := mapping[d1]; ok {
				if m != d2 {
					return nil, false
				}
				continue
			}
			if used.Test(uint(d2)) {
				return nil, false
			}
			mapping[d1] = d2
			used.Set(uint(d2))
			workList = append(workList, d1)
		}
	}

	// States not reachable from the initial state cannot be paired.
	if len(mapping) != a1.NumStates() {
		return nil, false
	}
	return mapping, true
}

// Equivalent Returns true if a1 and a2 accept the same language. Both are
// brought to the union of their alphabets, determinized and minimized, and the
// minimal automata are compared up to state renaming.
//
// workLimit bounds each determinization as in Determinize; values <= 0 mean no
// limit.
func Equivalent(a1, a2 *Automaton, workLimit int) (bool, error) {
	m1, err := minimalOver(a1, a2.alphabet, workLimit)
	if err != nil {
		return false, err
	}
	m2, err := minimalOver(a2, a1.alphabet, workLimit)
	if err != nil {
		return false, err
	}
	_, ok := DeterministicAutomataIsomorphism(m1, m2)
	return ok, nil
}

func minimalOver(a *Automaton, symbols []rune, workLimit int) (*Automaton, error) {
	b := NewBuilder()
	b.Copy(a)
	b.SetInitial(a.Initial())
	b.AddSymbol(symbols...)
	extended, err := b.Finish()
	if err != nil {
		return nil, err
	}
	dfa, err := Determinize(extended, workLimit)
	if err != nil {
		return nil, err
	}
	return Minimize(dfa)
}
