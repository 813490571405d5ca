package fixedmap

import "github.com/cespare/xxhash/v2"

// hashFunc maps a key to a 64-bit hash. Unexported on purpose: slot
// placement is an implementation detail and the default is deterministic,
// so callers get reproducible capacity-exhaustion behavior across runs.
// Tests swap it to force collisions.
type hashFunc func(key string) uint64

func defaultHash(key string) uint64 {
	return xxhash.Sum64String(key)
}
