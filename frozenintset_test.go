package automaton

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
)

func TestNewFrozenIntSet(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		state    int
		hashCode uint64
	}{
		{name: "Normal case", values: []int{1, 2, 3}, state: 0, hashCode: 123456789},
		{name: "Nil slice", values: nil, state: -1, hashCode: 0},
		{name: "Empty slice", values: []int{}, state: 1, hashCode: 987654321},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewFrozenIntSet(tt.values, tt.hashCode, tt.state)
			assert.Equal(t, tt.values, got.GetArray())
			assert.Equal(t, len(tt.values), got.Size())
			assert.Equal(t, tt.state, got.State())
			assert.Equal(t, tt.hashCode, got.Hash())
		})
	}
}

func TestFreezeBitSet(t *testing.T) {
	bs := bitset.New(16)
	bs.Set(9).Set(2).Set(4)

	set := freezeBitSet(bs, 5)
	assert.Equal(t, []int{2, 4, 9}, set.GetArray())
	assert.Equal(t, 5, set.State())

	// The same members always freeze to an equal key.
	other := bitset.New(64)
	other.Set(4).Set(9).Set(2)
	assert.True(t, set.Equals(freezeBitSet(other, -1)))
	assert.Equal(t, set.Hash(), freezeBitSet(other, -1).Hash())

	other.Set(3)
	assert.False(t, set.Equals(freezeBitSet(other, -1)))
}

func TestFrozenIntSet_Equals(t *testing.T) {
	tests := []struct {
		name     string
		f        *FrozenIntSet
		other    Hashable
		expected bool
	}{
		{
			name:     "TC01 - both nil",
			f:        nil,
			other:    (*FrozenIntSet)(nil),
			expected: true,
		},
		{
			name:     "TC02 - f not nil, other nil",
			f:        &FrozenIntSet{},
			other:    nil,
			expected: false,
		},
		{
			name:     "TC03 - different type",
			f:        &FrozenIntSet{values: []int{1, 2, 3}, state: 1, hashCode: 123},
			other:    intTuple{1, 2, 3},
			expected: false,
		},
		{
			name:     "TC04 - values differ",
			f:        &FrozenIntSet{values: []int{1, 2, 3}, state: 1, hashCode: 123},
			other:    &FrozenIntSet{values: []int{1, 2}, state: 1, hashCode: 123},
			expected: false,
		},
		{
			name:     "TC05 - state differs",
			f:        &FrozenIntSet{values: []int{1, 2, 3}, state: 1, hashCode: 123},
			other:    &FrozenIntSet{values: []int{1, 2, 3}, state: 2, hashCode: 123},
			expected: true,
		},
		{
			name:     "TC06 - hashCode differs",
			f:        &FrozenIntSet{values: []int{1, 2, 3}, state: 1, hashCode: 123},
			other:    &FrozenIntSet{values: []int{1, 2, 3}, state: 1, hashCode: 456},
			expected: false,
		},
		{
			name:     "TC07 - all fields equal",
			f:        &FrozenIntSet{values: []int{1, 2, 3}, state: 1, hashCode: 123},
			other:    &FrozenIntSet{values: []int{1, 2, 3}, state: 1, hashCode: 123},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.f.Equals(tt.other))
		})
	}
}
