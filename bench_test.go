package vecmap

import (
	"strconv"
	"testing"
)

// Linear scan only pays off for small collections, so the sizes stay small.
var sizes = []int{
	4,
	16,
	64,
	// 256,
}

func BenchmarkSetContains_Miss(b *testing.B) {
	b.Run("variant=stdSet", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStdSetContainsMiss[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdSetContainsMiss[uint64], genKeys[uint64]))
	})

	b.Run("variant=vecSet", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkVecSetContainsMiss[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkVecSetContainsMiss[uint64], genKeys[uint64]))
	})
}

func BenchmarkSetContains_Hit(b *testing.B) {
	b.Run("variant=stdSet", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStdSetContainsHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdSetContainsHit[uint64], genKeys[uint64]))
	})

	b.Run("variant=vecSet", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkVecSetContainsHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkVecSetContainsHit[uint64], genKeys[uint64]))
	})
}

func BenchmarkMapGet_Hit(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStdMapGetHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapGetHit[uint64], genKeys[uint64]))
	})

	b.Run("variant=vecMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkVecMapGetHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkVecMapGetHit[uint64], genKeys[uint64]))
	})
}

func BenchmarkMapBuild(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapBuild[uint64], genKeys[uint64]))
	})

	b.Run("variant=vecMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkVecMapBuild[uint64], genKeys[uint64]))
	})
}

func BenchmarkMapRemoveInsert(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapRemoveInsert[uint64], genKeys[uint64]))
	})

	b.Run("variant=vecMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkVecMapRemoveInsert[uint64], genKeys[uint64]))
	})
}

func benchmarkStdSetContainsMiss[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := make(map[K]struct{}, capacity)
	keys := genKeys(0, capacity)
	misses := genKeys(-capacity, 0)

	for _, k := range keys {
		m[k] = struct{}{}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[misses[i%len(misses)]]
	}
}

func benchmarkVecSetContainsMiss[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	s := NewSet[K](capacity)
	keys := genKeys(0, capacity)
	misses := genKeys(-capacity, 0)

	for _, k := range keys {
		s.Insert(k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Contains(misses[i%len(misses)])
	}
}

func benchmarkStdSetContainsHit[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := make(map[K]struct{}, capacity)
	keys := genKeys(0, capacity)
	for _, k := range keys {
		m[k] = struct{}{}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%len(keys)]]
	}
}

func benchmarkVecSetContainsHit[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	s := NewSet[K](capacity)
	keys := genKeys(0, capacity)

	for _, k := range keys {
		s.Insert(k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Contains(keys[i%len(keys)])
	}
}

func benchmarkStdMapGetHit[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := make(map[K]int, capacity)
	keys := genKeys(0, capacity)
	for i, k := range keys {
		m[k] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%len(keys)]]
	}
}

func benchmarkVecMapGetHit[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := NewMap[K, int](capacity)
	keys := genKeys(0, capacity)
	for i, k := range keys {
		m.Insert(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(keys[i%len(keys)])
	}
}

func benchmarkStdMapBuild[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	keys := genKeys(0, capacity)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := make(map[K]int, capacity)
		for j, k := range keys {
			m[k] = j
		}
	}
}

func benchmarkVecMapBuild[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	keys := genKeys(0, capacity)
	m := NewMap[K, int](capacity)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Clear()
		for j, k := range keys {
			m.Insert(k, j)
		}
	}
}

func benchmarkStdMapRemoveInsert[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := make(map[K]int, capacity)
	keys := genKeys(0, capacity)
	for i, k := range keys {
		m[k] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i%len(keys)]
		delete(m, k)
		m[k] = i
	}
}

func benchmarkVecMapRemoveInsert[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := NewMap[K, int](capacity)
	keys := genKeys(0, capacity)
	for i, k := range keys {
		m.Insert(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i%len(keys)]
		m.Remove(k)
		m.Insert(k, i)
	}
}

func genKeys[K comparable](start, end int) []K {
	var keys any

	switch any(*new(K)).(type) {
	case uint64:
		ks := make([]uint64, end-start)
		for i := range ks {
			ks[i] = uint64(start + i)
		}
		keys = ks
	case string:
		ks := make([]string, end-start)
		for i := range ks {
			ks[i] = strconv.Itoa(start + i)
		}
		keys = ks
	default:
		panic("not reached")
	}

	return keys.([]K)
}

func benchSimulateLoad[K comparable](
	benchFunc func(b *testing.B, capacity int, keysFunc func(start, end int) []K),
	keysFunc func(start, end int) []K,
) func(b *testing.B) {
	return func(b *testing.B) {
		for _, size := range sizes {
			b.Run("capacity="+strconv.Itoa(size), func(b *testing.B) {
				benchFunc(b, size, keysFunc)
			})
		}
	}
}
