package vecmap

import "unsafe"

type Stats struct {
	Size     int
	Capacity int
	// Slots allocated but not in use.
	Spare int
	// Bytes held by the backing slice, including spare slots.
	Bytes uintptr
}

func statsOf[T any](v *vec[T]) Stats {
	return Stats{
		Size:     v.len(),
		Capacity: v.cap(),
		Spare:    v.cap() - v.len(),
		Bytes:    uintptr(v.cap()) * unsafe.Sizeof(*new(T)),
	}
}
