package automaton

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Epsilon is the label of a transition that consumes no input.
const Epsilon rune = -1

// State describes one state passed to Build. Its identity is its position in the
// states slice; Name is only used for display and composite naming.
type State struct {
	Name   string
	Accept bool
}

// Transition is an edge Source --Label--> Dest, where Source and Dest are state
// indices. Label is Epsilon for an epsilon transition.
type Transition struct {
	Source int
	Label  rune
	Dest   int
}

// IsEpsilon reports whether the transition consumes no input.
func (t Transition) IsEpsilon() bool {
	return t.Label == Epsilon
}

// Automaton is an immutable finite automaton, possibly nondeterministic and with
// epsilon transitions. States are the integers [0, NumStates()) and are created
// through a Builder (or Build). Transitions are kept sorted by source, then label,
// then dest, so the epsilon transitions of a state always come first.
type Automaton struct {
	initial int

	names    []string
	isAccept *bitset.BitSet

	// Sorted, without duplicates, never contains Epsilon.
	alphabet []rune

	// states[2*s] is the index in transitions of the first transition leaving s,
	// states[2*s+1] is how many transitions leave s.
	states []int

	transitions []Transition

	// True if there are no epsilon transitions and no state has two transitions
	// leaving with the same label.
	deterministic bool

	// True if deterministic and every state has a transition for every symbol.
	total bool
}

// Build creates an automaton from an explicit description. It fails if the
// initial state or any transition endpoint is out of range, or if a transition
// uses a symbol that is not in symbols.
func Build(initial int, states []State, symbols []rune, transitions []Transition) (*Automaton, error) {
	b := NewBuilder()
	for _, s := range states {
		b.SetAccept(b.CreateState(s.Name), s.Accept)
	}
	b.SetInitial(initial)
	b.AddSymbol(symbols...)
	for _, t := range transitions {
		b.AddTransition(t.Source, t.Dest, t.Label)
	}
	return b.Finish()
}

// NumStates How many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.names)
}

// NumTransitions How many transitions this automaton has.
func (a *Automaton) NumTransitions() int {
	return len(a.transitions)
}

// NumTransitionsWithState How many transitions leave this state.
func (a *Automaton) NumTransitionsWithState(state int) int {
	return a.states[2*state+1]
}

// Initial returns the initial state.
func (a *Automaton) Initial() int {
	return a.initial
}

// Name returns the display name of a state.
func (a *Automaton) Name(state int) string {
	return a.names[state]
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return a.isAccept.Test(uint(state))
}

// Returns accept states. If the bit is set then that state is an accept state.
func (a *Automaton) getAcceptStates() *bitset.BitSet {
	return a.isAccept
}

// Alphabet returns a sorted copy of the alphabet.
func (a *Automaton) Alphabet() []rune {
	return slices.Clone(a.alphabet)
}

// HasSymbol reports whether label belongs to the alphabet.
func (a *Automaton) HasSymbol(label rune) bool {
	_, ok := slices.BinarySearch(a.alphabet, label)
	return ok
}

// Transitions returns a copy of all transitions, sorted by source, label, dest.
func (a *Automaton) Transitions() []Transition {
	return slices.Clone(a.transitions)
}

// TransitionsFrom returns a copy of the transitions leaving state.
func (a *Automaton) TransitionsFrom(state int) []Transition {
	return slices.Clone(a.transitionsOf(state))
}

func (a *Automaton) transitionsOf(state int) []Transition {
	offset := a.states[2*state]
	return a.transitions[offset : offset+a.states[2*state+1]]
}

// IsDeterministic Returns true if this automaton is deterministic (no epsilon
// transitions and, for every state, at most one transition per label).
func (a *Automaton) IsDeterministic() bool {
	return a.deterministic
}

// IsTotal Returns true if this automaton is deterministic and every state has
// exactly one transition for every symbol of the alphabet.
func (a *Automaton) IsTotal() bool {
	return a.total
}

// Step Performs lookup in transitions, assuming determinism.
// Returns: destination state, -1 if no matching outgoing transition
func (a *Automaton) Step(state int, label rune) int {
	trans := a.transitionsOf(state)

	// Since transitions are sorted, binary search the first one with this label.
	low, high := 0, len(trans)-1
	for low <= high {
		mid := (low + high) >> 1
		switch {
		case trans[mid].Label < label:
			low = mid + 1
		case trans[mid].Label > label:
			high = mid - 1
		default:
			for mid > low && trans[mid-1].Label == label {
				mid--
			}
			return trans[mid].Dest
		}
	}
	return -1
}

func (a *Automaton) String() string {
	b := new(strings.Builder)
	b.WriteString("symbols: ")
	for _, c := range a.alphabet {
		b.WriteRune(c)
	}
	b.WriteByte('\n')
	for s := range a.names {
		b.WriteString(a.names[s])
		if a.IsAccept(s) {
			b.WriteString(" final")
		}
		b.WriteByte('\n')
	}
	if len(a.names) > 0 {
		fmt.Fprintf(b, "--> %s\n", a.names[a.initial])
	}
	for _, t := range a.transitions {
		if t.IsEpsilon() {
			fmt.Fprintf(b, "%s --> %s\n", a.names[t.Source], a.names[t.Dest])
		} else {
			fmt.Fprintf(b, "%s -%c-> %s\n", a.names[t.Source], t.Label, a.names[t.Dest])
		}
	}
	return b.String()
}
