package vecmap

import "iter"

// Set is a set-like data structure backed by a slice of values.
// Values are compared with == unless WithEqualFunc is given, every lookup
// is a linear scan. The zero value is an empty set ready to use.
type Set[T comparable] struct {
	backing vec[T]
	equal   func(a, b T) bool
}

// Returns a new set with room for capacity values.
func NewSet[T comparable](capacity int, opts ...Option[T]) *Set[T] {
	var s Set[T]
	s.init(capacity, applyOptions(opts))

	return &s
}

func (s *Set[T]) init(capacity int, c config[T]) {
	s.backing.init(capacity)
	s.equal = c.equal
}

// SetOf builds a set from values. Duplicates keep the position of their
// first occurrence. The capacity of the result fits its length exactly.
func SetOf[T comparable](values ...T) *Set[T] {
	s := NewSet[T](len(values))
	for _, v := range values {
		s.Insert(v)
	}
	s.ShrinkToFit()

	return s
}

// CollectSet builds a set from a sequence, see SetOf.
func CollectSet[T comparable](seq iter.Seq[T], opts ...Option[T]) *Set[T] {
	s := NewSet[T](0, opts...)
	s.Extend(seq)
	s.ShrinkToFit()

	return s
}

func (s *Set[T]) index(value T) int {
	if s.equal == nil {
		return s.backing.indexFunc(func(v *T) bool { return *v == value })
	}

	return s.backing.indexFunc(func(v *T) bool { return s.equal(*v, value) })
}

func (s *Set[T]) indexFunc(match func(T) bool) int {
	return s.backing.indexFunc(func(v *T) bool { return match(*v) })
}

func (s *Set[T]) Len() int {
	return s.backing.len()
}

func (s *Set[T]) IsEmpty() bool {
	return s.backing.len() == 0
}

func (s *Set[T]) Capacity() int {
	return s.backing.cap()
}

func (s *Set[T]) Stats() Stats {
	return statsOf(&s.backing)
}

func (s *Set[T]) Contains(value T) bool {
	return s.index(value) >= 0
}

// ContainsFunc reports whether any value matches.
// It allows lookups by a view of the value without building a T.
func (s *Set[T]) ContainsFunc(match func(T) bool) bool {
	return s.indexFunc(match) >= 0
}

// Get returns the stored value equal to value.
func (s *Set[T]) Get(value T) (T, bool) {
	return s.valueAt(s.index(value))
}

func (s *Set[T]) GetFunc(match func(T) bool) (T, bool) {
	return s.valueAt(s.indexFunc(match))
}

func (s *Set[T]) valueAt(i int) (T, bool) {
	if i < 0 {
		var zero T
		return zero, false
	}

	return s.backing.items[i], true
}

// Insert appends value unless an equal one is present.
// Reports whether the value was added; the stored value is kept otherwise.
func (s *Set[T]) Insert(value T) bool {
	if s.index(value) >= 0 {
		return false
	}

	s.backing.push(value)

	return true
}

// Replace is like Insert, but an equal stored value is replaced by value
// and returned.
func (s *Set[T]) Replace(value T) (T, bool) {
	if i := s.index(value); i >= 0 {
		old := s.backing.items[i]
		s.backing.items[i] = value

		return old, true
	}

	s.backing.push(value)

	var zero T
	return zero, false
}

// GetOrInsert returns the stored value equal to value, inserting value
// first if there's none.
func (s *Set[T]) GetOrInsert(value T) T {
	i := s.index(value)
	if i < 0 {
		i = s.backing.push(value)
	}

	return s.backing.items[i]
}

// GetOrInsertFunc returns the first stored value matching, or inserts and
// returns the value built by create. create is called only on a miss, and
// its result must satisfy match.
func (s *Set[T]) GetOrInsertFunc(match func(T) bool, create func() T) T {
	i := s.indexFunc(match)
	if i < 0 {
		i = s.backing.push(create())
	}

	return s.backing.items[i]
}

// Remove deletes value and reports whether it was present.
// The last value is moved into the freed slot, so the order of the
// remaining values changes.
func (s *Set[T]) Remove(value T) bool {
	_, ok := s.takeAt(s.index(value))
	return ok
}

func (s *Set[T]) RemoveFunc(match func(T) bool) bool {
	_, ok := s.takeAt(s.indexFunc(match))
	return ok
}

// Take is like Remove, but returns the stored value.
func (s *Set[T]) Take(value T) (T, bool) {
	return s.takeAt(s.index(value))
}

func (s *Set[T]) TakeFunc(match func(T) bool) (T, bool) {
	return s.takeAt(s.indexFunc(match))
}

func (s *Set[T]) takeAt(i int) (T, bool) {
	if i < 0 {
		var zero T
		return zero, false
	}

	return s.backing.swapRemove(i), true
}

// Retain keeps only the values for which keep returns true.
func (s *Set[T]) Retain(keep func(value T) bool) {
	s.backing.retain(func(v *T) bool { return keep(*v) })
}

// Extend inserts every value of seq. Duplicates keep the position of their
// first occurrence.
func (s *Set[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		s.Insert(v)
	}
}

// Clear removes all values, keeping the capacity.
func (s *Set[T]) Clear() {
	s.backing.clear()
}

// Drain removes all values, keeping the capacity, and returns them.
func (s *Set[T]) Drain() *Cursor[T] {
	return newCursor(s.backing.drain(), deref[T])
}

// Reserve makes room for at least additional more values.
// It panics if the memory can't be allocated, see TryReserve.
func (s *Set[T]) Reserve(additional int) {
	s.backing.reserve(additional)
}

// TryReserve is like Reserve, but returns a *ReserveError instead of
// panicking.
func (s *Set[T]) TryReserve(additional int) error {
	return s.backing.tryReserve(additional)
}

// ShrinkTo lowers the capacity to the larger of Len and minCapacity.
func (s *Set[T]) ShrinkTo(minCapacity int) {
	s.backing.shrinkTo(minCapacity)
}

func (s *Set[T]) ShrinkToFit() {
	s.backing.shrinkToFit()
}

func (s *Set[T]) Iter() *Cursor[T] {
	return newCursor(s.backing.items, deref[T])
}

// IterMut yields pointers to the stored values. Changing a value so that it
// becomes equal to another one breaks the set.
func (s *Set[T]) IterMut() *Cursor[*T] {
	return newCursor(s.backing.items, func(v *T) *T { return v })
}

// IntoIter moves the values out of the set, leaving it empty and without
// capacity.
func (s *Set[T]) IntoIter() *Cursor[T] {
	return newCursor(s.backing.take(), deref[T])
}

// All iterates over the values in order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.backing.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward iterates over the values in reverse order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.backing.items) - 1; i >= 0; i-- {
			if !yield(s.backing.items[i]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of the set with the capacity fitting its
// length.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{
		backing: s.backing.clone(),
		equal:   s.equal,
	}
}

// IsDisjoint reports whether the sets have no value in common.
func (s *Set[T]) IsDisjoint(other *Set[T]) bool {
	_, found := s.Intersection(other).Next()
	return !found
}

// IsSubset reports whether every value of s is in other.
func (s *Set[T]) IsSubset(other *Set[T]) bool {
	if s.Len() > other.Len() {
		return false
	}

	_, found := s.Difference(other).Next()

	return !found
}

// IsSuperset reports whether every value of other is in s.
func (s *Set[T]) IsSuperset(other *Set[T]) bool {
	return other.IsSubset(s)
}

// Equal reports whether both sets hold the same values, regardless of
// order.
func (s *Set[T]) Equal(other *Set[T]) bool {
	return s.Len() == other.Len() && s.IsSubset(other)
}

func deref[T any](v *T) T {
	return *v
}
