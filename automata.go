package automaton

type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new automaton with the empty language: an initial state and an
// accept state that cannot be reached.
func (*Automata) MakeEmpty() *Automaton {
	b := NewBuilder()
	b.CreateState("")
	b.SetAccept(b.CreateState(""), true)
	return mustFinish(b)
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString() *Automaton {
	b := NewBuilder()
	b.SetAccept(b.CreateState(""), true)
	return mustFinish(b)
}

// MakeChar
// Returns a new automaton that accepts a single symbol.
func (*Automata) MakeChar(c rune) *Automaton {
	b := NewBuilder()
	s := b.CreateState("")
	f := b.CreateState("")
	b.SetAccept(f, true)
	b.AddSymbol(c)
	b.AddTransition(s, f, c)
	return mustFinish(b)
}

// MakeCharSet
// Returns a new automaton that accepts any single symbol of chars: two states
// with one transition per symbol.
func (*Automata) MakeCharSet(chars ...rune) *Automaton {
	b := NewBuilderV1(2, len(chars))
	s := b.CreateState("")
	f := b.CreateState("")
	b.SetAccept(f, true)
	b.AddSymbol(chars...)
	for _, c := range chars {
		b.AddTransition(s, f, c)
	}
	return mustFinish(b)
}

// MakeString
// Returns a new automaton that accepts exactly s.
func (*Automata) MakeString(s string) *Automaton {
	b := NewBuilder()
	last := b.CreateState("")
	for _, c := range s {
		next := b.CreateState("")
		b.AddSymbol(c)
		b.AddTransition(last, next, c)
		last = next
	}
	b.SetAccept(last, true)
	return mustFinish(b)
}

// Every combinator in this package only feeds valid automata into its builder.
func mustFinish(b *Builder) *Automaton {
	a, err := b.Finish()
	if err != nil {
		panic(err)
	}
	return a
}
