package automaton

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
)

func closureTestAutomaton(t *testing.T) *Automaton {
	return readAutomaton(t, `
		symbols: a
		q0
		q1
		q2
		q3 final
		q4
		--> q0
		q0 --> q1
		q1 --> q2
		q2 --> q0
		q2 -a-> q3
		q3 --> q4
	`)
}

func toInts(bs *bitset.BitSet) []int {
	result := make([]int, 0, bs.Count())
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		result = append(result, int(i))
	}
	return result
}

func TestAutomaton_StateClosure(t *testing.T) {
	a := closureTestAutomaton(t)

	tests := []struct {
		state  int
		want   []int
		accept bool
	}{
		{state: 0, want: []int{0, 1, 2}, accept: false},
		{state: 2, want: []int{0, 1, 2}, accept: false},
		{state: 3, want: []int{3, 4}, accept: true},
		{state: 4, want: []int{4}, accept: false},
	}
	for _, tt := range tests {
		closure, accept := a.StateClosure(tt.state)
		assert.Equal(t, tt.want, toInts(closure), "state %d", tt.state)
		assert.Equal(t, tt.accept, accept, "state %d", tt.state)
	}
}

func TestAutomaton_EpsilonClosure(t *testing.T) {
	a := closureTestAutomaton(t)

	t.Run("seeds are not modified", func(t *testing.T) {
		seeds := bitset.New(uint(a.NumStates()))
		seeds.Set(1).Set(4)
		closure, accept := a.EpsilonClosure(seeds)
		assert.Equal(t, []int{0, 1, 2, 4}, toInts(closure))
		assert.False(t, accept)
		assert.Equal(t, []int{1, 4}, toInts(seeds))
	})

	t.Run("empty", func(t *testing.T) {
		closure, accept := a.EpsilonClosure(bitset.New(uint(a.NumStates())))
		assert.True(t, closure.None())
		assert.False(t, accept)
	})

	t.Run("idempotent and monotonic", func(t *testing.T) {
		for seed := uint(0); seed < 1<<a.NumStates(); seed++ {
			seeds := bitset.From([]uint64{uint64(seed)})
			closure, accept := a.EpsilonClosure(seeds)
			again, acceptAgain := a.EpsilonClosure(closure)

			assert.Equal(t, toInts(closure), toInts(again))
			assert.Equal(t, accept, acceptAgain)
			assert.True(t, closure.IsSuperSet(seeds))
		}
	})
}
