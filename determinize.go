package automaton

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// SinkName is the display name of the dead state added by determinization.
const SinkName = "sink"

// ToDeterministic Returns an equivalent deterministic and total automaton.
// Worst case complexity: exponential in number of states.
func (a *Automaton) ToDeterministic() *Automaton {
	// Without a work limit the only possible failure is a builder bug.
	d, err := Determinize(a, 0)
	if err != nil {
		panic(err)
	}
	return d
}

// Determinize Determinizes the given automaton with the subset construction.
// Each state of the result stands for the epsilon-closed set of states of a
// the input may be in; sets with the same members are the same state. Symbols
// with no destination lead to a single shared, non-accepting sink state which
// loops to itself. State 0 of the result is the initial state.
//
// workLimit bounds the number of composite states the construction may create;
// values <= 0 mean no limit. Exceeding it returns ErrTooComplexToDeterminize.
func Determinize(a *Automaton, workLimit int) (*Automaton, error) {
	numStates := a.NumStates()
	alphabet := a.alphabet

	b := NewBuilderV1(16, len(alphabet))
	b.AddSymbol(alphabet...)

	initialClosure, accept := a.StateClosure(a.Initial())
	initialSet := freezeBitSet(initialClosure, 0)
	b.CreateState(a.compositeName(initialSet.values))
	b.SetAccept(0, accept)

	newState := NewHashMap[int]()
	newState.Set(initialSet, initialSet.state)
	worklist := []*FrozenIntSet{initialSet}

	sink := -1
	seeds := bitset.New(uint(numStates))
	moves := make([]Transition, 0)
	for len(worklist) > 0 {
		set := worklist[0]
		worklist = worklist[1:]

		// Non-epsilon moves of all members, grouped by label.
		moves = moves[:0]
		for _, s := range set.values {
			for _, t := range a.transitionsOf(s) {
				if t.Label != Epsilon {
					moves = append(moves, t)
				}
			}
		}
		slices.SortFunc(moves, func(x, y Transition) int {
			return cmp.Compare(x.Label, y.Label)
		})

		next := 0
		for _, c := range alphabet {
			if next == len(moves) || moves[next].Label != c {
				if sink == -1 {
					sink = b.CreateState(SinkName)
				}
				b.AddTransition(set.state, sink, c)
				continue
			}

			for ; next < len(moves) && moves[next].Label == c; next++ {
				seeds.Set(uint(moves[next].Dest))
			}
			closure, accept := a.EpsilonClosure(seeds)
			seeds.ClearAll()

			key := freezeBitSet(closure, -1)
			target, ok := newState.Get(key)
			if !ok {
				if workLimit > 0 && newState.Size() >= workLimit {
					return nil, fmt.Errorf("%w: more than %d states", ErrTooComplexToDeterminize, workLimit)
				}
				target = b.CreateState(a.compositeName(key.values))
				b.SetAccept(target, accept)
				key.state = target
				newState.Set(key, target)
				worklist = append(worklist, key)
			}
			b.AddTransition(set.state, target, c)
		}
	}

	if sink != -1 {
		for _, c := range alphabet {
			b.AddTransition(sink, sink, c)
		}
	}

	return b.Finish()
}

// compositeName Joins the names of members, sorted by name. The name is for
// display only; merged states are identified by their member numbers.
func (a *Automaton) compositeName(members []int) string {
	names := make([]string, len(members))
	for i, s := range members {
		names[i] = a.names[s]
	}
	slices.Sort(names)
	return strings.Join(names, "")
}
