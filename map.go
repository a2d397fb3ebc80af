package vecmap

import "iter"

// Pair is a key-value pair as stored by Map.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// MutPair is a key with a pointer to its value inside the map.
type MutPair[K comparable, V any] struct {
	Key   K
	Value *V
}

// Map is a map-like data structure backed by a slice of pairs.
// Keys are compared with == unless WithEqualFunc is given, every lookup
// is a linear scan. The zero value is an empty map ready to use.
//
// Pointers to values (GetMut, ValuesMut, entry handles) point into the
// backing slice and are valid until the next change of the map's length or
// capacity.
type Map[K comparable, V any] struct {
	backing vec[Pair[K, V]]
	equal   func(a, b K) bool
}

// Returns a new map with room for capacity pairs.
func NewMap[K comparable, V any](capacity int, opts ...Option[K]) *Map[K, V] {
	var m Map[K, V]
	m.init(capacity, applyOptions(opts))

	return &m
}

func (m *Map[K, V]) init(capacity int, c config[K]) {
	m.backing.init(capacity)
	m.equal = c.equal
}

// Builds a map from pairs. When a key repeats, the last pair wins.
// The capacity of the result fits its length exactly.
func FromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option[K]) *Map[K, V] {
	m := NewMap[K, V](len(pairs), opts...)
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	m.ShrinkToFit()

	return m
}

// Builds a map from a sequence. When a key repeats, the last pair wins.
// The capacity of the result fits its length exactly.
func CollectMap[K comparable, V any](seq iter.Seq2[K, V], opts ...Option[K]) *Map[K, V] {
	m := NewMap[K, V](0, opts...)
	m.Extend(seq)
	m.ShrinkToFit()

	return m
}

func (m *Map[K, V]) index(key K) int {
	if m.equal == nil {
		return m.backing.indexFunc(func(p *Pair[K, V]) bool { return p.Key == key })
	}

	return m.backing.indexFunc(func(p *Pair[K, V]) bool { return m.equal(p.Key, key) })
}

func (m *Map[K, V]) indexFunc(match func(K) bool) int {
	return m.backing.indexFunc(func(p *Pair[K, V]) bool { return match(p.Key) })
}

func (m *Map[K, V]) Len() int {
	return m.backing.len()
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.backing.len() == 0
}

func (m *Map[K, V]) Capacity() int {
	return m.backing.cap()
}

func (m *Map[K, V]) Stats() Stats {
	return statsOf(&m.backing)
}

// Inserts a pair. If the key is already present, its value is replaced in
// place and the old value is returned; otherwise the pair is appended.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	if i := m.index(key); i >= 0 {
		old := m.backing.items[i].Value
		m.backing.items[i].Value = value

		return old, true
	}

	m.backing.push(Pair[K, V]{Key: key, Value: value})

	var zero V
	return zero, false
}

// Extend inserts every pair of seq. When a key repeats, the last pair wins.
func (m *Map[K, V]) Extend(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Insert(k, v)
	}
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.valueAt(m.index(key))
}

// GetFunc returns the value of the first key matching.
// It allows lookups by a view of the key without building a K.
func (m *Map[K, V]) GetFunc(match func(K) bool) (V, bool) {
	return m.valueAt(m.indexFunc(match))
}

func (m *Map[K, V]) valueAt(i int) (V, bool) {
	if i < 0 {
		var zero V
		return zero, false
	}

	return m.backing.items[i].Value, true
}

// MustGet returns the value of key, panicking if it's absent.
func (m *Map[K, V]) MustGet(key K) V {
	i := m.index(key)
	if i < 0 {
		panic("vecmap: no entry found for key")
	}

	return m.backing.items[i].Value
}

// GetMut returns a pointer to the value of key, or nil.
func (m *Map[K, V]) GetMut(key K) *V {
	return m.valuePtrAt(m.index(key))
}

func (m *Map[K, V]) GetMutFunc(match func(K) bool) *V {
	return m.valuePtrAt(m.indexFunc(match))
}

func (m *Map[K, V]) valuePtrAt(i int) *V {
	if i < 0 {
		return nil
	}

	return &m.backing.items[i].Value
}

// GetKeyValue returns the stored key along with its value.
func (m *Map[K, V]) GetKeyValue(key K) (K, V, bool) {
	return m.pairAt(m.index(key))
}

func (m *Map[K, V]) GetKeyValueFunc(match func(K) bool) (K, V, bool) {
	return m.pairAt(m.indexFunc(match))
}

func (m *Map[K, V]) pairAt(i int) (K, V, bool) {
	if i < 0 {
		var (
			k K
			v V
		)
		return k, v, false
	}

	p := m.backing.items[i]

	return p.Key, p.Value, true
}

func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.index(key) >= 0
}

func (m *Map[K, V]) ContainsKeyFunc(match func(K) bool) bool {
	return m.indexFunc(match) >= 0
}

// Remove deletes key and returns its value.
// The last pair is moved into the freed slot, so the order of the remaining
// pairs changes.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	_, v, ok := m.removeAt(m.index(key))
	return v, ok
}

func (m *Map[K, V]) RemoveFunc(match func(K) bool) (V, bool) {
	_, v, ok := m.removeAt(m.indexFunc(match))
	return v, ok
}

// RemoveEntry is like Remove, but returns the stored key as well.
func (m *Map[K, V]) RemoveEntry(key K) (K, V, bool) {
	return m.removeAt(m.index(key))
}

func (m *Map[K, V]) RemoveEntryFunc(match func(K) bool) (K, V, bool) {
	return m.removeAt(m.indexFunc(match))
}

func (m *Map[K, V]) removeAt(i int) (K, V, bool) {
	if i < 0 {
		var (
			k K
			v V
		)
		return k, v, false
	}

	p := m.backing.swapRemove(i)

	return p.Key, p.Value, true
}

// Retain keeps only the pairs for which keep returns true.
// keep is called once per pair and may modify the value.
func (m *Map[K, V]) Retain(keep func(key K, value *V) bool) {
	m.backing.retain(func(p *Pair[K, V]) bool { return keep(p.Key, &p.Value) })
}

// Clear removes all pairs, keeping the capacity.
func (m *Map[K, V]) Clear() {
	m.backing.clear()
}

// Drain removes all pairs, keeping the capacity, and returns them.
func (m *Map[K, V]) Drain() *Cursor[Pair[K, V]] {
	return newCursor(m.backing.drain(), derefPair[K, V])
}

// Reserve makes room for at least additional more pairs.
// It panics if the memory can't be allocated, see TryReserve.
func (m *Map[K, V]) Reserve(additional int) {
	m.backing.reserve(additional)
}

// TryReserve is like Reserve, but returns a *ReserveError instead of
// panicking.
func (m *Map[K, V]) TryReserve(additional int) error {
	return m.backing.tryReserve(additional)
}

// ShrinkTo lowers the capacity to the larger of Len and minCapacity.
func (m *Map[K, V]) ShrinkTo(minCapacity int) {
	m.backing.shrinkTo(minCapacity)
}

func (m *Map[K, V]) ShrinkToFit() {
	m.backing.shrinkToFit()
}

func (m *Map[K, V]) Iter() *Cursor[Pair[K, V]] {
	return newCursor(m.backing.items, derefPair[K, V])
}

func (m *Map[K, V]) IterMut() *Cursor[MutPair[K, V]] {
	return newCursor(m.backing.items, func(p *Pair[K, V]) MutPair[K, V] {
		return MutPair[K, V]{Key: p.Key, Value: &p.Value}
	})
}

func (m *Map[K, V]) Keys() *Cursor[K] {
	return newCursor(m.backing.items, func(p *Pair[K, V]) K { return p.Key })
}

func (m *Map[K, V]) Values() *Cursor[V] {
	return newCursor(m.backing.items, func(p *Pair[K, V]) V { return p.Value })
}

func (m *Map[K, V]) ValuesMut() *Cursor[*V] {
	return newCursor(m.backing.items, func(p *Pair[K, V]) *V { return &p.Value })
}

// IntoIter moves the pairs out of the map, leaving it empty and without
// capacity.
func (m *Map[K, V]) IntoIter() *Cursor[Pair[K, V]] {
	return newCursor(m.backing.take(), derefPair[K, V])
}

// All iterates over the pairs in order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range m.backing.items {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Backward iterates over the pairs in reverse order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := len(m.backing.items) - 1; i >= 0; i-- {
			p := m.backing.items[i]
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of the map with the capacity fitting its
// length.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		backing: m.backing.clone(),
		equal:   m.equal,
	}
}

// EqualFunc reports whether both maps hold the same keys with values equal
// under eq, regardless of order.
func (m *Map[K, V]) EqualFunc(other *Map[K, V], eq func(a, b V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}

	for _, p := range m.backing.items {
		v, ok := other.Get(p.Key)
		if !ok || !eq(p.Value, v) {
			return false
		}
	}

	return true
}

// EqualMaps reports whether a and b hold the same pairs, regardless of
// order.
func EqualMaps[K, V comparable](a, b *Map[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

func derefPair[K comparable, V any](p *Pair[K, V]) Pair[K, V] {
	return *p
}
