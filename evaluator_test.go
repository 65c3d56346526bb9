package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator(t *testing.T) {
	// Strings over {a,b} ending in "ab", with an epsilon shortcut from q0 to q1.
	a := readAutomaton(t, `
		symbols: ab
		q0
		q1
		q2 final
		--> q0
		q0 -a-> q0
		q0 -b-> q0
		q0 -a-> q1
		q1 -b-> q2
		q0 --> q1
	`)

	t.Run("initial states are closed", func(t *testing.T) {
		e := NewEvaluator(a)
		assert.Equal(t, []int{0, 1}, e.CurrentStates())
		assert.False(t, e.IsAccepting())
	})

	t.Run("process symbols", func(t *testing.T) {
		e := NewEvaluator(a)
		require.NoError(t, e.ProcessSymbol('b'))
		assert.Equal(t, []int{0, 1, 2}, e.CurrentStates())
		assert.True(t, e.IsAccepting())

		require.NoError(t, e.ProcessSymbol('a'))
		assert.Equal(t, []int{0, 1}, e.CurrentStates())
		assert.False(t, e.IsAccepting())

		require.NoError(t, e.ProcessString("ab"))
		assert.True(t, e.IsAccepting())

		e.Reset()
		assert.Equal(t, []int{0, 1}, e.CurrentStates())
	})

	t.Run("unrecognized symbol", func(t *testing.T) {
		e := NewEvaluator(a)
		err := e.ProcessSymbol('c')
		assert.ErrorIs(t, err, ErrUnrecognizedSymbol)
		assert.Contains(t, err.Error(), "'c'")

		assert.ErrorIs(t, e.ProcessSymbol(Epsilon), ErrUnrecognizedSymbol)
		assert.ErrorIs(t, e.ProcessString("abc"), ErrUnrecognizedSymbol)
	})

	t.Run("run", func(t *testing.T) {
		tests := []struct {
			input string
			want  bool
		}{
			{"", false},
			{"b", true},
			{"ab", true},
			{"aab", true},
			{"aba", false},
			{"bbb", true},
			{"ba", false},
		}
		for _, tt := range tests {
			got, err := Run(a, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "input %q", tt.input)
		}

		_, err := Run(a, "abx")
		assert.ErrorIs(t, err, ErrUnrecognizedSymbol)
	})
}

func TestEvaluator_EmptyStateSet(t *testing.T) {
	// Once no state is left the evaluator stays empty and rejects.
	a := readAutomaton(t, `
		symbols: ab
		q0
		q1 final
		--> q0
		q0 -a-> q1
	`)

	e := NewEvaluator(a)
	require.NoError(t, e.ProcessString("b"))
	assert.Empty(t, e.CurrentStates())
	assert.False(t, e.IsAccepting())

	require.NoError(t, e.ProcessString("a"))
	assert.Empty(t, e.CurrentStates())
	assert.False(t, e.IsAccepting())
}

func TestEvaluator_AcceptingInitialClosure(t *testing.T) {
	a := readAutomaton(t, `
		symbols:
		q0
		q1
		qf final
		--> q0
		q0 --> q1
		q1 --> qf
	`)

	ok, err := Run(a, "")
	require.NoError(t, err)
	assert.True(t, ok)
}
