package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

type IntSet interface {
	Hashable

	GetArray() []int

	Size() int
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet An immutable, sorted set of state numbers used as the identity
// of a composite state. Two sets are equal iff they hold the same members; state
// is a payload (the composite state's number) and does not take part in equality.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

func NewFrozenIntSet(values []int, hashCode uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

// freezeBitSet snapshots the members of bs in ascending order.
func freezeBitSet(bs *bitset.BitSet, state int) *FrozenIntSet {
	values := make([]int, 0, bs.Count())
	hashCode := uint64(bs.Count())
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		values = append(values, int(i))
		hashCode += uint64(mix(int(i)))
	}
	return NewFrozenIntSet(values, hashCode, state)
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenIntSet) Equals(other Hashable) bool {
	o, ok := other.(*FrozenIntSet)
	if !ok {
		return false
	}
	if f == nil || o == nil {
		return f == o
	}
	return f.hashCode == o.hashCode && slices.Equal(f.values, o.values)
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State returns the composite state this set was assigned to.
func (f *FrozenIntSet) State() int {
	return f.state
}
