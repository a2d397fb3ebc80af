package vecmap

// Entry is a view into a single slot of a Map, either occupied or vacant.
// It's obtained from Map.Entry and lets the caller inspect and update the
// slot without looking the key up twice.
//
// While an entry (or the OccupiedEntry/VacantEntry taken from it) is in
// use, the map must not be modified through any other path. A handle used
// after such a modification, or after one of its terminal operations,
// panics.
type Entry[K comparable, V any] struct {
	m    *Map[K, V]
	key  K
	pos  int
	mods uint64
}

// Entry returns the entry for key.
func (m *Map[K, V]) Entry(key K) Entry[K, V] {
	return Entry[K, V]{
		m:    m,
		key:  key,
		pos:  m.index(key),
		mods: m.backing.mods,
	}
}

func (e Entry[K, V]) IsOccupied() bool {
	return e.pos >= 0
}

// Key returns the stored key of an occupied entry, or the key the entry
// was requested with.
func (e Entry[K, V]) Key() K {
	checkHandle(e.m, e.mods)

	if e.pos >= 0 {
		return e.m.backing.items[e.pos].Key
	}

	return e.key
}

func (e Entry[K, V]) Occupied() (*OccupiedEntry[K, V], bool) {
	if e.pos < 0 {
		return nil, false
	}

	checkHandle(e.m, e.mods)

	return &OccupiedEntry[K, V]{m: e.m, pos: e.pos, mods: e.mods}, true
}

func (e Entry[K, V]) Vacant() (*VacantEntry[K, V], bool) {
	if e.pos >= 0 {
		return nil, false
	}

	checkHandle(e.m, e.mods)

	return &VacantEntry[K, V]{m: e.m, key: e.key, mods: e.mods}, true
}

// AndModify calls f with the value of an occupied entry.
func (e Entry[K, V]) AndModify(f func(value *V)) Entry[K, V] {
	if o, ok := e.Occupied(); ok {
		f(o.GetMut())
	}

	return e
}

// OrInsert inserts value if the entry is vacant, and returns a pointer to
// the value in the entry. An existing value is never overwritten.
func (e Entry[K, V]) OrInsert(value V) *V {
	if o, ok := e.Occupied(); ok {
		return o.IntoMut()
	}

	v, _ := e.Vacant()

	return v.Insert(value)
}

// OrInsertWith is like OrInsert, but calls f only when the entry is vacant.
func (e Entry[K, V]) OrInsertWith(f func() V) *V {
	if o, ok := e.Occupied(); ok {
		return o.IntoMut()
	}

	v, _ := e.Vacant()

	return v.Insert(f())
}

// OrInsertWithKey is like OrInsertWith, but f receives the key.
func (e Entry[K, V]) OrInsertWithKey(f func(key K) V) *V {
	if o, ok := e.Occupied(); ok {
		return o.IntoMut()
	}

	v, _ := e.Vacant()

	return v.Insert(f(v.key))
}

// OrDefault inserts the zero value if the entry is vacant.
func (e Entry[K, V]) OrDefault() *V {
	var zero V
	return e.OrInsert(zero)
}

// OccupiedEntry is a handle to a slot holding a key.
type OccupiedEntry[K comparable, V any] struct {
	m    *Map[K, V]
	pos  int
	mods uint64
}

func (o *OccupiedEntry[K, V]) slot() *Pair[K, V] {
	checkHandle(o.m, o.mods)
	return &o.m.backing.items[o.pos]
}

func (o *OccupiedEntry[K, V]) Key() K {
	return o.slot().Key
}

func (o *OccupiedEntry[K, V]) Get() V {
	return o.slot().Value
}

func (o *OccupiedEntry[K, V]) GetMut() *V {
	return &o.slot().Value
}

// Insert replaces the value and returns the old one.
func (o *OccupiedEntry[K, V]) Insert(value V) V {
	p := o.slot()
	old := p.Value
	p.Value = value

	return old
}

// IntoMut returns a pointer to the value and releases the handle.
func (o *OccupiedEntry[K, V]) IntoMut() *V {
	v := o.GetMut()
	o.m = nil

	return v
}

// Remove removes the slot from the map and returns its value.
// Unlike Map.Remove, the order of the remaining pairs is preserved.
func (o *OccupiedEntry[K, V]) Remove() V {
	_, v := o.RemoveEntry()
	return v
}

// RemoveEntry is like Remove, but returns the stored key as well.
func (o *OccupiedEntry[K, V]) RemoveEntry() (K, V) {
	checkHandle(o.m, o.mods)

	p := o.m.backing.remove(o.pos)
	o.m = nil

	return p.Key, p.Value
}

// VacantEntry is a handle to a key absent from the map.
type VacantEntry[K comparable, V any] struct {
	m    *Map[K, V]
	key  K
	mods uint64
}

func (v *VacantEntry[K, V]) Key() K {
	return v.key
}

// IntoKey gives the key back without inserting it.
func (v *VacantEntry[K, V]) IntoKey() K {
	v.m = nil
	return v.key
}

// Insert appends the key with value to the map and returns a pointer to
// the stored value.
func (v *VacantEntry[K, V]) Insert(value V) *V {
	checkHandle(v.m, v.mods)

	m := v.m
	v.m = nil
	i := m.backing.push(Pair[K, V]{Key: v.key, Value: value})

	return &m.backing.items[i].Value
}

func checkHandle[K comparable, V any](m *Map[K, V], mods uint64) {
	if m == nil {
		panic("vecmap: entry used after it was consumed")
	}

	if m.backing.mods != mods {
		panic("vecmap: map modified while an entry was held")
	}
}
