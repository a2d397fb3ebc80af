package vecmap

import (
	"math"
	"slices"
	"unsafe"
)

// vec is the contiguous storage both containers are built on.
// It's a thin layer over a slice, the only thing it adds is a counter of
// structural modifications, which entry handles use to detect that the
// container changed under them.
type vec[T any] struct {
	items []T

	// Incremented on every change of length or capacity.
	mods uint64
}

func (v *vec[T]) init(capacity int) {
	if capacity > 0 {
		v.items = make([]T, 0, capacity)
	}
}

func (v *vec[T]) len() int {
	return len(v.items)
}

func (v *vec[T]) cap() int {
	return cap(v.items)
}

// push appends x and returns its index.
func (v *vec[T]) push(x T) int {
	v.items = append(v.items, x)
	v.mods++

	return len(v.items) - 1
}

// indexFunc returns the index of the first element matching, or -1.
func (v *vec[T]) indexFunc(match func(*T) bool) int {
	for i := range v.items {
		if match(&v.items[i]) {
			return i
		}
	}

	return -1
}

// swapRemove removes the element at i by moving the last element into its
// slot. It's O(1), but doesn't preserve order.
func (v *vec[T]) swapRemove(i int) T {
	var (
		last = len(v.items) - 1
		x    = v.items[i]
		zero T
	)

	v.items[i] = v.items[last]
	// Release the reference held by the vacated tail slot.
	v.items[last] = zero
	v.items = v.items[:last]
	v.mods++

	return x
}

// remove removes the element at i shifting the tail left, preserving order.
func (v *vec[T]) remove(i int) T {
	x := v.items[i]
	v.items = slices.Delete(v.items, i, i+1)
	v.mods++

	return x
}

func (v *vec[T]) clear() {
	clear(v.items)
	v.items = v.items[:0]
	v.mods++
}

// take detaches the elements from the storage, leaving it empty and
// without capacity.
func (v *vec[T]) take() []T {
	items := v.items
	v.items = nil
	v.mods++

	return items
}

// drain moves the elements out into a new slice and clears the storage,
// keeping its capacity.
func (v *vec[T]) drain() []T {
	items := slices.Clone(v.items)
	v.clear()

	return items
}

// retain keeps the elements for which keep returns true, in order.
// keep is called exactly once per element.
func (v *vec[T]) retain(keep func(*T) bool) {
	n := 0
	for i := range v.items {
		if !keep(&v.items[i]) {
			continue
		}

		if n != i {
			v.items[n] = v.items[i]
		}
		n++
	}

	if n == len(v.items) {
		return
	}

	clear(v.items[n:])
	v.items = v.items[:n]
	v.mods++
}

// reserve makes room for at least additional more elements.
// Like make, it panics if the resulting capacity can't be allocated.
func (v *vec[T]) reserve(additional int) {
	if additional <= cap(v.items)-len(v.items) {
		return
	}

	v.items = slices.Grow(v.items, additional)
	v.mods++
}

func (v *vec[T]) tryReserve(additional int) (err error) {
	if additional <= cap(v.items)-len(v.items) {
		return nil
	}

	required := len(v.items) + additional
	if required < 0 {
		return &ReserveError{Additional: additional, Err: ErrCapacityOverflow}
	}

	if size := unsafe.Sizeof(*new(T)); size > 0 {
		if uintptr(required) > uintptr(math.MaxInt)/size {
			return &ReserveError{Additional: additional, Err: ErrCapacityOverflow}
		}

		if uintptr(required)*size > maxAlloc {
			return &ReserveError{Additional: additional, Err: ErrAllocFailed}
		}
	}

	defer func() {
		if r := recover(); r != nil {
			err = &ReserveError{Additional: additional, Err: ErrAllocFailed}
		}
	}()

	v.reserve(additional)

	return nil
}

// shrinkTo lowers the capacity to max(len, minCapacity), reallocating if
// the current capacity is above it.
func (v *vec[T]) shrinkTo(minCapacity int) {
	target := max(len(v.items), minCapacity)
	if cap(v.items) <= target {
		return
	}

	items := make([]T, len(v.items), target)
	copy(items, v.items)

	v.items = items
	v.mods++
}

func (v *vec[T]) shrinkToFit() {
	v.shrinkTo(0)
}

func (v *vec[T]) clone() vec[T] {
	return vec[T]{items: slices.Clone(v.items)}
}
