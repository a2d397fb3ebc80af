package vecmap

import (
	"math/bits"
	"unsafe"
)

// maxAlloc approximates the largest single allocation the Go runtime
// accepts: 2^48 bytes on 64-bit platforms, 2^31 on 32-bit ones.
const maxAlloc = uintptr(1)<<(31+17*(bits.UintSize/64)) - 1

// Estimates capacity (number of elements) that fits the given memory size
// in bytes.
func CapacityFromSize[T any](size uintptr) int {
	sizeOfElem := unsafe.Sizeof(*new(T))
	if sizeOfElem == 0 {
		return 0
	}

	return int(size / sizeOfElem)
}

// Estimates capacity (number of key-value pairs) of a Map that fits the
// given memory size in bytes. The result can be passed to NewMap.
func MapCapacityFromSize[K comparable, V any](size uintptr) int {
	return CapacityFromSize[Pair[K, V]](size)
}
