package vecmap

import "iter"

// filter walks a set and yields the values whose membership in other
// equals want.
type filter[T comparable] struct {
	iter  *Cursor[T]
	other *Set[T]
	want  bool
}

func (f *filter[T]) Next() (T, bool) {
	for {
		v, ok := f.iter.Next()
		if !ok || f.other.Contains(v) == f.want {
			return v, ok
		}
	}
}

func (f *filter[T]) NextBack() (T, bool) {
	for {
		v, ok := f.iter.NextBack()
		if !ok || f.other.Contains(v) == f.want {
			return v, ok
		}
	}
}

// SizeHint returns bounds on the number of values left.
// The lower bound is always 0: it's unknown how many values pass without
// scanning them.
func (f *filter[T]) SizeHint() (int, int) {
	return 0, f.iter.Len()
}

func (f *filter[T]) All() iter.Seq[T] {
	return seqOf(f.Next)
}

// Difference yields the values of one set absent from another.
type Difference[T comparable] struct {
	filter[T]
}

// Intersection yields the values of one set present in another.
type Intersection[T comparable] struct {
	filter[T]
}

// Difference returns the values of s that are not in other, in the order
// of s.
func (s *Set[T]) Difference(other *Set[T]) *Difference[T] {
	return &Difference[T]{filter[T]{iter: s.Iter(), other: other}}
}

// Intersection returns the values of s that are also in other, in the
// order of s.
func (s *Set[T]) Intersection(other *Set[T]) *Intersection[T] {
	return &Intersection[T]{filter[T]{iter: s.Iter(), other: other, want: true}}
}

// SymmetricDifference yields the values in exactly one of two sets.
type SymmetricDifference[T comparable] struct {
	a, b *Difference[T]
}

// SymmetricDifference returns the values of s not in other, followed by
// the values of other not in s.
func (s *Set[T]) SymmetricDifference(other *Set[T]) *SymmetricDifference[T] {
	return &SymmetricDifference[T]{a: s.Difference(other), b: other.Difference(s)}
}

func (d *SymmetricDifference[T]) Next() (T, bool) {
	if v, ok := d.a.Next(); ok {
		return v, true
	}

	return d.b.Next()
}

func (d *SymmetricDifference[T]) NextBack() (T, bool) {
	if v, ok := d.b.NextBack(); ok {
		return v, true
	}

	return d.a.NextBack()
}

func (d *SymmetricDifference[T]) SizeHint() (int, int) {
	_, ua := d.a.SizeHint()
	_, ub := d.b.SizeHint()

	return 0, ua + ub
}

func (d *SymmetricDifference[T]) All() iter.Seq[T] {
	return seqOf(d.Next)
}

// Union yields the values in either of two sets, each once.
type Union[T comparable] struct {
	a *Cursor[T]
	b *Difference[T]
}

// Union returns all values of s, followed by the values of other not in s.
// A value present in both comes from s.
func (s *Set[T]) Union(other *Set[T]) *Union[T] {
	return &Union[T]{a: s.Iter(), b: other.Difference(s)}
}

func (u *Union[T]) Next() (T, bool) {
	if v, ok := u.a.Next(); ok {
		return v, true
	}

	return u.b.Next()
}

func (u *Union[T]) NextBack() (T, bool) {
	if v, ok := u.b.NextBack(); ok {
		return v, true
	}

	return u.a.NextBack()
}

// SizeHint returns bounds on the number of values left. Every value of the
// receiver is yielded, so the lower bound is how many of them are left.
func (u *Union[T]) SizeHint() (int, int) {
	_, ub := u.b.SizeHint()
	return u.a.Len(), u.a.Len() + ub
}

func (u *Union[T]) All() iter.Seq[T] {
	return seqOf(u.Next)
}

// Or returns a new set holding the union of s and other.
func (s *Set[T]) Or(other *Set[T]) *Set[T] {
	return s.collect(s.Union(other).All())
}

// And returns a new set holding the intersection of s and other.
func (s *Set[T]) And(other *Set[T]) *Set[T] {
	return s.collect(s.Intersection(other).All())
}

// Xor returns a new set holding the symmetric difference of s and other.
func (s *Set[T]) Xor(other *Set[T]) *Set[T] {
	return s.collect(s.SymmetricDifference(other).All())
}

// Sub returns a new set holding the values of s not in other.
func (s *Set[T]) Sub(other *Set[T]) *Set[T] {
	return s.collect(s.Difference(other).All())
}

// collect builds a set with the same equivalence relation as s.
func (s *Set[T]) collect(seq iter.Seq[T]) *Set[T] {
	out := &Set[T]{equal: s.equal}
	out.Extend(seq)
	out.ShrinkToFit()

	return out
}

func seqOf[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
