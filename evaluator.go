package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Evaluator Drives an automaton (NFA, DFA or minimal DFA) over its input one
// symbol at a time. It tracks the set of states the automaton may be in after
// the symbols consumed so far, always closed under epsilon transitions.
type Evaluator struct {
	automaton *Automaton
	current   *bitset.BitSet
}

func NewEvaluator(a *Automaton) *Evaluator {
	e := &Evaluator{automaton: a}
	e.Reset()
	return e
}

// Reset Moves the evaluator back to the epsilon-closure of the initial state.
func (e *Evaluator) Reset() {
	e.current, _ = e.automaton.StateClosure(e.automaton.Initial())
}

// ProcessSymbol Consumes one symbol. It fails if the symbol is not in the
// alphabet, in which case the current states are unspecified.
func (e *Evaluator) ProcessSymbol(symbol rune) error {
	a := e.automaton
	if !a.HasSymbol(symbol) {
		return fmt.Errorf("%w: %q", ErrUnrecognizedSymbol, symbol)
	}

	next := bitset.New(uint(a.NumStates()))
	for s, ok := e.current.NextSet(0); ok; s, ok = e.current.NextSet(s + 1) {
		for _, t := range a.transitionsOf(int(s)) {
			if t.Label == symbol {
				next.Set(uint(t.Dest))
			} else if t.Label > symbol {
				break
			}
		}
	}
	e.current, _ = a.EpsilonClosure(next)
	return nil
}

// ProcessString Consumes every rune of s in order, stopping at the first error.
func (e *Evaluator) ProcessString(s string) error {
	for _, c := range s {
		if err := e.ProcessSymbol(c); err != nil {
			return err
		}
	}
	return nil
}

// IsAccepting Returns true if any current state is an accept state. An empty
// set of current states is not accepting.
func (e *Evaluator) IsAccepting() bool {
	return e.automaton.containsAccept(e.current)
}

// CurrentStates Returns the current states in ascending order.
func (e *Evaluator) CurrentStates() []int {
	states := make([]int, 0, e.current.Count())
	for s, ok := e.current.NextSet(0); ok; s, ok = e.current.NextSet(s + 1) {
		states = append(states, int(s))
	}
	return states
}

// Run Returns true if the automaton accepts s.
func Run(a *Automaton, s string) (bool, error) {
	e := NewEvaluator(a)
	if err := e.ProcessString(s); err != nil {
		return false, err
	}
	return e.IsAccepting(), nil
}
