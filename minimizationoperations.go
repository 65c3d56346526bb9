package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// ToMinimized Returns the minimal deterministic automaton accepting the same
// language. See Minimize.
func (a *Automaton) ToMinimized() (*Automaton, error) {
	return Minimize(a)
}

// Minimize
// Minimizes the given deterministic, total automaton with Moore's partition
// refinement. States unreachable from the initial state are dropped first. Each
// equivalence class becomes one state, named after its members; the class of the
// initial state is state 0. The result is unique up to state renaming, so
// minimizing it again yields an isomorphic automaton.
//
// Returns ErrNotDeterministic or ErrNotTotal if a is not the output of a
// determinization (or otherwise deterministic and total).
func Minimize(a *Automaton) (*Automaton, error) {
	if !a.IsDeterministic() {
		return nil, ErrNotDeterministic
	}
	if !a.IsTotal() {
		return nil, ErrNotTotal
	}

	order := getLiveStatesFromInitial(a)
	numStates := len(order)
	numSymbols := len(a.alphabet)

	position := make([]int, a.NumStates())
	for i, s := range order {
		position[s] = i
	}

	// delta[i*numSymbols+j] is the position reached from order[i] on the j-th symbol.
	delta := make([]int, numStates*numSymbols)
	for i, s := range order {
		for j, t := range a.transitionsOf(s) {
			delta[i*numSymbols+j] = position[t.Dest]
		}
	}

	class := make([]int, numStates)
	numClasses := 0
	acceptClass, rejectClass := -1, -1
	for i, s := range order {
		if a.IsAccept(s) {
			if acceptClass == -1 {
				acceptClass = numClasses
				numClasses++
			}
			class[i] = acceptClass
		} else {
			if rejectClass == -1 {
				rejectClass = numClasses
				numClasses++
			}
			class[i] = rejectClass
		}
	}

	// Every pass either splits a class or leaves the partition as it is, and
	// there are never more classes than states, so numStates passes suffice.
	for pass := 0; pass < numStates; pass++ {
		next, count := refinePartition(class, delta, numSymbols)
		if count == numClasses {
			break
		}
		class, numClasses = next, count
	}

	members := make([][]int, numClasses)
	for i, s := range order {
		members[class[i]] = append(members[class[i]], s)
	}

	b := NewBuilderV1(numClasses, numClasses*numSymbols)
	b.AddSymbol(a.alphabet...)
	for c := range members {
		b.CreateState(a.compositeName(members[c]))
		b.SetAccept(c, a.IsAccept(members[c][0]))
	}
	for c := range members {
		// All members agree on the destination class, so any one will do.
		rep := position[members[c][0]]
		for j, label := range a.alphabet {
			b.AddTransition(c, class[delta[rep*numSymbols+j]], label)
		}
	}
	b.SetInitial(class[0])

	return b.Finish()
}

// refinePartition Splits every class of the partition by the classes its
// members reach on each symbol. Classes are renumbered in order of first
// appearance. Returns the new class of every state and the number of classes.
func refinePartition(class, delta []int, numSymbols int) ([]int, int) {
	next := make([]int, len(class))
	signatures := NewHashMap[int](WithCapacity(len(class)))

	for i := range class {
		signature := make(intTuple, numSymbols+1)
		signature[0] = class[i]
		for j := 0; j < numSymbols; j++ {
			signature[j+1] = class[delta[i*numSymbols+j]]
		}

		next[i], _ = signatures.GetOrInsert(signature, signatures.Size)
	}
	return next, signatures.Size()
}

// Returns the states reachable from the initial state, in breadth-first order
// starting with the initial state.
func getLiveStatesFromInitial(a *Automaton) []int {
	live := bitset.New(uint(a.NumStates()))
	workList := []int{a.Initial()}
	live.Set(uint(a.Initial()))

	for i := 0; i < len(workList); i++ {
		for _, t := range a.transitionsOf(workList[i]) {
			if !live.Test(uint(t.Dest)) {
				live.Set(uint(t.Dest))
				workList = append(workList, t.Dest)
			}
		}
	}
	return workList
}

// intTuple An ordered sequence of ints usable as a HashMap key.
type intTuple []int

func (t intTuple) Hash() uint64 {
	h := uint64(len(t))
	for _, v := range t {
		h = mixPhi(h, v)
	}
	return h
}

func (t intTuple) Equals(other Hashable) bool {
	o, ok := other.(intTuple)
	return ok && slices.Equal(t, o)
}
