package automaton

import "errors"

var (
	// ErrInitialStateNotFound is returned when the initial state is not one of the automaton's states.
	ErrInitialStateNotFound = errors.New("initial state not in state set")

	// ErrStateNotFound is returned when a transition endpoint is not one of the automaton's states.
	ErrStateNotFound = errors.New("state not in state set")

	// ErrSymbolNotInAlphabet is returned when a transition is labeled with an undeclared symbol.
	ErrSymbolNotInAlphabet = errors.New("symbol not in alphabet")

	// ErrInvalidSymbol is returned when the epsilon marker is declared as an alphabet symbol.
	ErrInvalidSymbol = errors.New("invalid alphabet symbol")

	// ErrUnrecognizedSymbol is returned by the evaluator for input outside the alphabet.
	ErrUnrecognizedSymbol = errors.New("unrecognized symbol")

	// ErrNotDeterministic is returned when an operation needs an automaton without
	// epsilon transitions and with at most one transition per state and label.
	ErrNotDeterministic = errors.New("automaton is not deterministic")

	// ErrNotTotal is returned by minimization when some state lacks a transition for some symbol.
	ErrNotTotal = errors.New("automaton is not total")

	// ErrTooComplexToDeterminize is returned when subset construction exceeds its work limit.
	ErrTooComplexToDeterminize = errors.New("too complex to determinize")
)
