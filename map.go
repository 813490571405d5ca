package fixedmap

// FixedMap associates string keys with values of type V. It is backed by
// a flat slot array allocated once at construction - it retains the
// capacity it was initialized with and never rehashes, so its memory
// footprint is fully predictable. Collisions are resolved through linear
// probing; once a probe cycle is saturated with other keys, Set simply
// reports failure and the caller decides what to evict or drop.
// No iteration API is provided.
//
// A FixedMap is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
type FixedMap[V any] struct {
	slots []slot[V]
	live  int

	hash hashFunc
}

// New returns a fixed map with the given number of slots. A capacity of
// zero is legal and yields a map that rejects every insert. Negative
// capacity panics.
func New[V any](capacity int) *FixedMap[V] {
	if capacity < 0 {
		panic("fixedmap: negative capacity")
	}

	return &FixedMap[V]{
		slots: make([]slot[V], capacity),
		hash:  defaultHash,
	}
}

// Set stores value under key, replacing the previous value if the key is
// already present. It returns false when the map cannot take the entry:
// the capacity is zero, or every slot on the key's probe cycle holds a
// different live key. A false return is a normal outcome under load, not
// an error. Set panics on an empty key.
func (fm *FixedMap[V]) Set(key string, value V) bool {
	checkKey(key)

	if len(fm.slots) == 0 {
		return false
	}

	for i, probe := 0, fm.index(key); i < len(fm.slots); i++ {
		s := &fm.slots[probe]

		// The first empty or tombstoned slot on the chain wins, even
		// over a possible match further along.
		if s.state != slotOccupied {
			s.state = slotOccupied
			s.key = key
			s.value = value
			fm.live++

			return true
		}

		if s.key == key {
			s.value = value
			return true
		}

		probe++
		if probe == len(fm.slots) {
			probe = 0
		}
	}

	// Probed a full cycle: every slot is occupied by another key.
	return false
}

// Get returns the value stored under key, if any. Panics on an empty key.
func (fm *FixedMap[V]) Get(key string) (V, bool) {
	checkKey(key)

	var zero V
	if len(fm.slots) == 0 {
		return zero, false
	}

	for i, probe := 0, fm.index(key); i < len(fm.slots); i++ {
		s := &fm.slots[probe]

		// An empty slot terminates the chain; a tombstone does not.
		if s.state == slotEmpty {
			return zero, false
		}

		if s.state == slotOccupied && s.key == key {
			return s.value, true
		}

		probe++
		if probe == len(fm.slots) {
			probe = 0
		}
	}

	return zero, false
}

// Has reports whether key is present. Panics on an empty key.
func (fm *FixedMap[V]) Has(key string) bool {
	_, ok := fm.Get(key)

	return ok
}

// Delete removes key from the map and returns the value it held. The
// slot is left as a tombstone to preserve the probe chain for keys
// stored past it. Panics on an empty key.
func (fm *FixedMap[V]) Delete(key string) (V, bool) {
	checkKey(key)

	var zero V
	if len(fm.slots) == 0 {
		return zero, false
	}

	for i, probe := 0, fm.index(key); i < len(fm.slots); i++ {
		s := &fm.slots[probe]

		if s.state == slotEmpty {
			return zero, false
		}

		if s.state == slotOccupied && s.key == key {
			value := s.value

			s.state = slotTombstone
			s.key = ""
			s.value = zero
			fm.live--

			return value, true
		}

		probe++
		if probe == len(fm.slots) {
			probe = 0
		}
	}

	return zero, false
}

// Load returns the ratio of live entries to capacity, in [0, 1]. A
// zero-capacity map reports 1: it is saturated by construction.
func (fm *FixedMap[V]) Load() float64 {
	if len(fm.slots) == 0 {
		return 1
	}

	return float64(fm.live) / float64(len(fm.slots))
}

// Len returns the number of live entries.
func (fm *FixedMap[V]) Len() int {
	return fm.live
}

// Cap returns the fixed capacity the map was created with.
func (fm *FixedMap[V]) Cap() int {
	return len(fm.slots)
}

// Reset returns every slot to empty, tombstones included.
func (fm *FixedMap[V]) Reset() {
	clear(fm.slots)
	fm.live = 0
}

// Stats returns a snapshot of the map's slot usage.
func (fm *FixedMap[V]) Stats() Stats {
	stats := Stats{
		Live:     fm.live,
		Capacity: len(fm.slots),
		Load:     fm.Load(),
	}

	for i := range fm.slots {
		if fm.slots[i].state == slotTombstone {
			stats.Tombstones++
		}
	}

	return stats
}

// index reduces the key hash to a slot index. The hash is unsigned, so
// the modulo is total - no abs() step, no negative remainder. Callers
// guard the zero-capacity case first; reaching this with no slots is a
// bug and panics on the division.
func (fm *FixedMap[V]) index(key string) int {
	return int(fm.hash(key) % uint64(len(fm.slots)))
}

func checkKey(key string) {
	if key == "" {
		panic("fixedmap: empty key")
	}
}
