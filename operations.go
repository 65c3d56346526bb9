package automaton

import "strconv"

// Thompson combinators. Every operand is copied into a fresh builder, so the
// inputs are never modified and the same automaton may be passed more than once.
// States of the result are renamed q0, q1, ... in creation order.

// Union
// Returns an automaton accepting the union of the languages of automatons: a new
// initial state with epsilon transitions to each operand's initial state, and a
// new accept state reached by epsilon from each operand's former accept states.
func Union(automatons ...*Automaton) *Automaton {
	b := NewBuilder()
	initial := b.CreateState("")
	final := b.CreateState("")
	b.SetAccept(final, true)

	for _, a := range automatons {
		offset := b.Copy(a)
		b.AddEpsilon(initial, offset+a.Initial())
		for _, s := range toSet(a, offset) {
			b.SetAccept(s, false)
			b.AddEpsilon(s, final)
		}
	}

	return renumber(b)
}

// Concatenate
// Returns an automaton accepting the concatenation of the languages of
// automatons, in order. The first operand's initial state is the initial state;
// its former accept states get epsilon transitions to the next operand's
// initial state. The last operand's accept states stay accepting.
func Concatenate(automatons ...*Automaton) *Automaton {
	if len(automatons) == 0 {
		return defaultAutomata.MakeEmptyString()
	}

	b := NewBuilder()
	offset := b.Copy(automatons[0])
	b.SetInitial(offset + automatons[0].Initial())
	prevAcceptStates := toSet(automatons[0], offset)

	for _, a := range automatons[1:] {
		offset = b.Copy(a)
		for _, s := range prevAcceptStates {
			b.SetAccept(s, false)
			b.AddEpsilon(s, offset+a.Initial())
		}
		prevAcceptStates = toSet(a, offset)
	}

	return renumber(b)
}

// Repeat
// Returns an automaton accepting the Kleene star of the language of a: new
// initial and accept states joined by epsilon, and epsilon transitions from a's
// former accept states back to a's initial state and on to the new accept state.
func Repeat(a *Automaton) *Automaton {
	b := NewBuilder()
	initial := b.CreateState("")
	final := b.CreateState("")
	b.SetAccept(final, true)

	offset := b.Copy(a)
	inner := offset + a.Initial()
	b.AddEpsilon(initial, inner)
	b.AddEpsilon(initial, final)
	for _, s := range toSet(a, offset) {
		b.SetAccept(s, false)
		b.AddEpsilon(s, inner)
		b.AddEpsilon(s, final)
	}

	return renumber(b)
}

// Returns the accept states of a, shifted by offset.
func toSet(a *Automaton, offset int) []int {
	isAccept := a.getAcceptStates()
	result := make([]int, 0, isAccept.Count())
	for upto, ok := isAccept.NextSet(0); ok; upto, ok = isAccept.NextSet(upto + 1) {
		result = append(result, offset+int(upto))
	}
	return result
}

func renumber(b *Builder) *Automaton {
	for s := 0; s < b.GetNumStates(); s++ {
		b.SetName(s, "q"+strconv.Itoa(s))
	}
	return mustFinish(b)
}
