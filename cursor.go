package vecmap

import "iter"

// Cursor is an iterator over the elements of a container.
//
// It can be consumed from both ends, always knows how many elements are
// left and, once exhausted, stays exhausted. A cursor walks the backing
// slice as it was when the cursor was created, its length never changes.
// The elements it yields after the container was modified are unspecified:
// removals move and zero slots of that slice.
type Cursor[T any] struct {
	at    func(i int) T
	front int
	back  int
}

func newCursor[E, T any](items []E, at func(e *E) T) *Cursor[T] {
	return &Cursor[T]{
		at:   func(i int) T { return at(&items[i]) },
		back: len(items),
	}
}

// Next returns the next element from the front.
func (c *Cursor[T]) Next() (T, bool) {
	if c.front >= c.back {
		var zero T
		return zero, false
	}

	x := c.at(c.front)
	c.front++

	return x, true
}

// NextBack returns the next element from the back.
func (c *Cursor[T]) NextBack() (T, bool) {
	if c.front >= c.back {
		var zero T
		return zero, false
	}

	c.back--

	return c.at(c.back), true
}

// Len returns the number of elements left.
func (c *Cursor[T]) Len() int {
	return c.back - c.front
}

// All consumes the cursor from the front.
func (c *Cursor[T]) All() iter.Seq[T] {
	return seqOf(c.Next)
}

// Backward consumes the cursor from the back.
func (c *Cursor[T]) Backward() iter.Seq[T] {
	return seqOf(c.NextBack)
}

// Collect consumes the rest of the cursor into a slice.
func (c *Cursor[T]) Collect() []T {
	out := make([]T, 0, c.Len())
	for x := range c.All() {
		out = append(out, x)
	}

	return out
}
