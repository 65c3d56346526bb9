package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 测试键类型
type TestKey struct {
	part1 int
	part2 string
}

func (k TestKey) Hash() uint64 {
	return uint64(k.part1 + len(k.part2))
}

func (k TestKey) Equals(other Hashable) bool {
	o, ok := other.(TestKey)
	return ok && k.part1 == o.part1 && k.part2 == o.part2
}

// 另一个测试键类型（用于类型安全测试）
type AnotherKey int

func (k AnotherKey) Hash() uint64 {
	return uint64(k)
}

func (k AnotherKey) Equals(other Hashable) bool {
	o, ok := other.(AnotherKey)
	return ok && k == o
}

func TestHashMapBasic(t *testing.T) {
	t.Run("SetAndGet", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		hm.Set(TestKey{1, "a"}, "value1")

		val, exists := hm.Get(TestKey{1, "a"})
		assert.True(t, exists)
		assert.Equal(t, "value1", val)

		_, exists = hm.Get(TestKey{2, "b"})
		assert.False(t, exists)
	})

	t.Run("UpdateValue", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := TestKey{1, "a"}
		hm.Set(key, "value1")
		hm.Set(key, "value2")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value2", val)
		assert.Equal(t, 1, hm.Size())
	})

	t.Run("GetOrInsert", func(t *testing.T) {
		hm := NewHashMap[int]()
		calls := 0
		next := func() int {
			calls++
			return hm.Size()
		}

		// 按首次出现的顺序编号
		for i, key := range []AnotherKey{7, 3, 7, 9, 3} {
			val, inserted := hm.GetOrInsert(key, next)
			assert.Equal(t, []int{0, 1, 0, 2, 1}[i], val)
			assert.Equal(t, []bool{true, true, false, true, false}[i], inserted)
		}
		assert.Equal(t, 3, calls)
		assert.Equal(t, 3, hm.Size())
	})
}

func TestHashCollision(t *testing.T) {
	hm := NewHashMap[string](WithCapacity(16))

	// 构造哈希冲突的key
	key1 := TestKey{1, "a"}  // Hash: 1+1=2
	key2 := TestKey{0, "bb"} // Hash: 0+2=2
	key3 := TestKey{2, "a"}  // Hash: 2+1=3

	hm.Set(key1, "value1")
	hm.Set(key2, "value2")
	hm.Set(key3, "value3")
	assert.Equal(t, 3, hm.Size())

	val, exists := hm.Get(key1)
	assert.True(t, exists)
	assert.Equal(t, "value1", val)

	val, exists = hm.Get(key2)
	assert.True(t, exists)
	assert.Equal(t, "value2", val)
}

func TestAutoResize(t *testing.T) {
	hm := NewHashMap[int](WithCapacity(16), WithLoadFactor(0.5))

	// 16 * 0.5 = 8，第 9 个元素触发扩容
	for i := 0; i < 9; i++ {
		hm.Set(TestKey{i, ""}, i)
	}
	assert.Equal(t, 32, len(hm.buckets))

	// 扩容后所有数据仍然可访问
	for i := 0; i < 9; i++ {
		val, exists := hm.Get(TestKey{i, ""})
		assert.True(t, exists)
		assert.Equal(t, i, val)
	}
}

func TestHashMapStateSetKeys(t *testing.T) {
	hm := NewHashMap[int](WithCapacity(4))

	// 相同成员的集合视为同一个键，state 不参与比较
	hm.Set(NewFrozenIntSet([]int{0, 2, 5}, 7, 3), 3)
	val, exists := hm.Get(NewFrozenIntSet([]int{0, 2, 5}, 7, -1))
	assert.True(t, exists)
	assert.Equal(t, 3, val)

	// 哈希相同但成员不同
	_, exists = hm.Get(NewFrozenIntSet([]int{0, 2}, 7, 3))
	assert.False(t, exists)

	// 元组键与集合键互不干扰
	hm.Set(intTuple{0, 2, 5}, 9)
	assert.Equal(t, 2, hm.Size())
	val, exists = hm.Get(intTuple{0, 2, 5})
	assert.True(t, exists)
	assert.Equal(t, 9, val)

	// 元组的顺序有意义
	_, exists = hm.Get(intTuple{5, 2, 0})
	assert.False(t, exists)
}

func TestTypeSafety(t *testing.T) {
	hm := NewHashMap[string](WithCapacity(8))

	// 不同类型但哈希值相同
	key1 := TestKey{1, "a"} // Hash = 2
	key2 := AnotherKey(2)   // Hash = 2

	hm.Set(key1, "value1")
	hm.Set(key2, "value2")

	val, exists := hm.Get(key1)
	assert.True(t, exists)
	assert.Equal(t, "value1", val)

	val, exists = hm.Get(key2)
	assert.True(t, exists)
	assert.Equal(t, "value2", val)
}

func TestEdgeCases(t *testing.T) {
	t.Run("NilKey", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		assert.Panics(t, func() {
			hm.Set(nil, "value")
		})
	})

	t.Run("ZeroCapacity", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(0))
		assert.Equal(t, 1, len(hm.buckets))
		hm.Set(AnotherKey(1), "a")
		hm.Set(AnotherKey(2), "b")
		assert.Equal(t, 2, hm.Size())
	})
}
