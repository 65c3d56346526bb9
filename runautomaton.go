package automaton

import (
	"fmt"
	"slices"
)

// RunAutomaton Table representation of a deterministic automaton for fast
// matching. Rows are states, columns are alphabet symbols; missing transitions
// are -1, so partial DFAs are accepted as well as total ones.
type RunAutomaton struct {
	initial  int
	alphabet []rune
	accept   []bool
	table    []int
}

func NewRunAutomaton(a *Automaton) (*RunAutomaton, error) {
	if !a.IsDeterministic() {
		return nil, fmt.Errorf("%w: cannot build run table", ErrNotDeterministic)
	}

	numSymbols := len(a.alphabet)
	r := &RunAutomaton{
		initial:  a.Initial(),
		alphabet: a.Alphabet(),
		accept:   make([]bool, a.NumStates()),
		table:    make([]int, a.NumStates()*numSymbols),
	}
	for i := range r.table {
		r.table[i] = -1
	}
	for s := 0; s < a.NumStates(); s++ {
		r.accept[s] = a.IsAccept(s)
		for _, t := range a.transitionsOf(s) {
			i, _ := slices.BinarySearch(r.alphabet, t.Label)
			r.table[s*numSymbols+i] = t.Dest
		}
	}
	return r, nil
}

// Step Returns the state reached from state on label, or -1 if there is none
// (including labels outside the alphabet).
func (r *RunAutomaton) Step(state int, label rune) int {
	if state < 0 {
		return -1
	}
	i, ok := slices.BinarySearch(r.alphabet, label)
	if !ok {
		return -1
	}
	return r.table[state*len(r.alphabet)+i]
}

func (r *RunAutomaton) IsAccept(state int) bool {
	return r.accept[state]
}

// Run Returns true if the given string is accepted by this automaton
func (r *RunAutomaton) Run(s string) bool {
	p := r.initial
	for _, c := range s {
		p = r.Step(p, c)
		if p == -1 {
			return false
		}
	}
	return r.accept[p]
}
