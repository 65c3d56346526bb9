package automaton

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// Builder Records states and transitions and then sorts, de-duplicates and
// validates them when Finish is called. State numbers are handed out
// sequentially by CreateState and are only meaningful within this builder.
// Unlike Automaton, transitions may be added in any order.
type Builder struct {
	initial     int
	names       []string
	isAccept    *bitset.BitSet
	symbols     map[rune]struct{}
	transitions []Transition
}

func NewBuilder() *Builder {
	return NewBuilderV1(16, 16)
}

func NewBuilderV1(numStates, numTransitions int) *Builder {
	return &Builder{
		names:       make([]string, 0, numStates),
		isAccept:    bitset.New(uint(numStates)),
		symbols:     make(map[rune]struct{}),
		transitions: make([]Transition, 0, numTransitions),
	}
}

// CreateState Create a new state. An empty name defaults to "q<index>".
func (r *Builder) CreateState(name string) int {
	state := len(r.names)
	if name == "" {
		name = "q" + strconv.Itoa(state)
	}
	r.names = append(r.names, name)
	return state
}

// SetAccept Set or clear this state as an accept state.
func (r *Builder) SetAccept(state int, accept bool) {
	r.isAccept.SetTo(uint(state), accept)
}

func (r *Builder) IsAccept(state int) bool {
	return r.isAccept.Test(uint(state))
}

// SetInitial Sets the initial state; defaults to state 0.
func (r *Builder) SetInitial(state int) {
	r.initial = state
}

// SetName Renames a state.
func (r *Builder) SetName(state int, name string) {
	r.names[state] = name
}

// AddSymbol Adds symbols to the alphabet.
func (r *Builder) AddSymbol(symbols ...rune) {
	for _, c := range symbols {
		r.symbols[c] = struct{}{}
	}
}

// AddTransition Add a new transition; label may be Epsilon.
func (r *Builder) AddTransition(source, dest int, label rune) {
	r.transitions = append(r.transitions, Transition{Source: source, Label: label, Dest: dest})
}

// AddEpsilon Add an epsilon transition between source and dest.
func (r *Builder) AddEpsilon(source, dest int) {
	r.AddTransition(source, dest, Epsilon)
}

// GetNumStates How many states this builder has.
func (r *Builder) GetNumStates() int {
	return len(r.names)
}

// Copy Copies over all states, symbols and transitions from other. The state
// numbers are sequentially assigned (appended); the returned offset maps a state
// s of other to s+offset in this builder. other is not modified.
func (r *Builder) Copy(other *Automaton) int {
	offset := len(r.names)
	r.names = append(r.names, other.names...)

	acceptStates := other.getAcceptStates()
	for state, ok := acceptStates.NextSet(0); ok; state, ok = acceptStates.NextSet(state + 1) {
		r.SetAccept(offset+int(state), true)
	}

	r.AddSymbol(other.alphabet...)
	for _, t := range other.transitions {
		r.AddTransition(t.Source+offset, t.Dest+offset, t.Label)
	}
	return offset
}

// Finish Validates what was recorded and returns the automaton.
func (r *Builder) Finish() (*Automaton, error) {
	numStates := len(r.names)
	if r.initial < 0 || r.initial >= numStates {
		return nil, fmt.Errorf("%w: %d", ErrInitialStateNotFound, r.initial)
	}

	alphabet := make([]rune, 0, len(r.symbols))
	for c := range r.symbols {
		if c == Epsilon {
			return nil, fmt.Errorf("%w: epsilon marker", ErrInvalidSymbol)
		}
		alphabet = append(alphabet, c)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	for _, t := range r.transitions {
		if t.Source < 0 || t.Source >= numStates {
			return nil, fmt.Errorf("%w: transition source %d", ErrStateNotFound, t.Source)
		}
		if t.Dest < 0 || t.Dest >= numStates {
			return nil, fmt.Errorf("%w: transition dest %d", ErrStateNotFound, t.Dest)
		}
		if t.Label == Epsilon {
			continue
		}
		if _, ok := r.symbols[t.Label]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, t.Label)
		}
	}

	transitions := make([]Transition, len(r.transitions))
	copy(transitions, r.transitions)
	sort.Sort(sourceLabelDestSorter(transitions))

	// Reduce duplicates:
	upto := 0
	for i, t := range transitions {
		if i > 0 && t == transitions[upto-1] {
			continue
		}
		transitions[upto] = t
		upto++
	}
	transitions = transitions[:upto]

	a := &Automaton{
		initial:       r.initial,
		names:         append([]string(nil), r.names...),
		isAccept:      bitset.New(uint(numStates)),
		alphabet:      alphabet,
		states:        make([]int, 2*numStates),
		transitions:   transitions,
		deterministic: true,
	}
	for s, ok := r.isAccept.NextSet(0); ok && s < uint(numStates); s, ok = r.isAccept.NextSet(s + 1) {
		a.isAccept.Set(s)
	}

	for i, t := range transitions {
		if a.states[2*t.Source+1] == 0 {
			a.states[2*t.Source] = i
		}
		a.states[2*t.Source+1]++

		if t.Label == Epsilon {
			a.deterministic = false
		} else if i > 0 && transitions[i-1].Source == t.Source && transitions[i-1].Label == t.Label {
			a.deterministic = false
		}
	}

	a.total = a.deterministic
	for s := 0; a.total && s < numStates; s++ {
		if a.states[2*s+1] != len(alphabet) {
			a.total = false
		}
	}
	return a, nil
}

// Sorts transitions by source ascending, then label ascending, then dest ascending
type sourceLabelDestSorter []Transition

func (r sourceLabelDestSorter) Len() int {
	return len(r)
}

func (r sourceLabelDestSorter) Less(i, j int) bool {
	if r[i].Source != r[j].Source {
		return r[i].Source < r[j].Source
	}
	if r[i].Label != r[j].Label {
		return r[i].Label < r[j].Label
	}
	return r[i].Dest < r[j].Dest
}

func (r sourceLabelDestSorter) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}
