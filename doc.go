// Package vecmap provides a map and a set backed by a single contiguous
// slice instead of a hash table.
//
// Lookups and inserts scan the slice linearly, so both containers are O(N).
// In exchange iteration order is deterministic, there is no hashing and no
// per-bucket indirection, which makes them a good fit for small collections
// and for code that must not depend on a random seed.
//
// Removal swaps the removed element with the last one. Iteration order is
// insertion order until the first removal.
//
// Neither container is safe for concurrent use.
package vecmap
