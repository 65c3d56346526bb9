package automaton

// Hashable 自定义哈希接口
// Hash 相同的键不一定相等，最终由 Equals 判定。
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap 以 Hashable 为键的哈希表
// 子集构造用它按成员集合（FrozenIntSet）查找已创建的状态，划分细化用它按签名
// （intTuple）给等价类编号。非并发安全。
type HashMap[T any] struct {
	buckets    [][]mapEntry[T]
	size       int
	mask       uint64
	loadFactor float64
}

type mapEntry[T any] struct {
	key   Hashable
	value T
}

type optionsHashMap struct {
	capacity   int     // 初始容量，向上取 2 的幂，默认 1
	loadFactor float64 // 负载因子，默认 0.75
}

type OptionsHashMap func(*optionsHashMap)

func WithCapacity(capacity int) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.capacity = capacity
	}
}

func WithLoadFactor(loadFactor float64) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.loadFactor = loadFactor
	}
}

// NewHashMap 创建哈希表
func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opts := &optionsHashMap{
		capacity:   1,
		loadFactor: 0.75,
	}
	for _, fn := range options {
		fn(opts)
	}

	n := 1
	for n < opts.capacity {
		n <<= 1
	}
	return &HashMap[T]{
		buckets:    make([][]mapEntry[T], n),
		mask:       uint64(n - 1),
		loadFactor: opts.loadFactor,
	}
}

// 返回 key 所在的桶，以及它在桶中的下标（不存在时为 -1）
func (m *HashMap[T]) find(key Hashable) (uint64, int) {
	index := key.Hash() & m.mask
	for i, e := range m.buckets[index] {
		if e.key.Equals(key) {
			return index, i
		}
	}
	return index, -1
}

// Get 获取值
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	index, i := m.find(key)
	if i < 0 {
		var zero T
		return zero, false
	}
	return m.buckets[index][i].value, true
}

// Set 插入键值对，已存在时更新
func (m *HashMap[T]) Set(key Hashable, value T) {
	index, i := m.find(key)
	if i >= 0 {
		m.buckets[index][i].value = value
		return
	}
	m.insert(index, key, value)
}

// GetOrInsert Returns the value stored under key. If there is none, the result
// of newValue is stored and returned with inserted set to true.
func (m *HashMap[T]) GetOrInsert(key Hashable, newValue func() T) (value T, inserted bool) {
	index, i := m.find(key)
	if i >= 0 {
		return m.buckets[index][i].value, false
	}
	value = newValue()
	m.insert(index, key, value)
	return value, true
}

func (m *HashMap[T]) insert(index uint64, key Hashable, value T) {
	m.buckets[index] = append(m.buckets[index], mapEntry[T]{key: key, value: value})
	m.size++
	if float64(m.size) > m.loadFactor*float64(len(m.buckets)) {
		m.resize()
	}
}

// 容量翻倍并重新分配所有条目
func (m *HashMap[T]) resize() {
	buckets := make([][]mapEntry[T], len(m.buckets)<<1)
	mask := uint64(len(buckets) - 1)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			index := e.key.Hash() & mask
			buckets[index] = append(buckets[index], e)
		}
	}
	m.buckets, m.mask = buckets, mask
}

// Size 获取元素数量
func (m *HashMap[T]) Size() int {
	return m.size
}
