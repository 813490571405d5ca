package fixedmap

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

// slotState is the lifecycle tag of a single slot. A slot starts Empty,
// becomes Occupied on insert and turns into a Tombstone on delete.
// Tombstones keep the probe chain intact for keys stored past them and
// are reusable by later inserts; they never revert to Empty (only Reset
// clears them, wholesale).
type slotState uint8

// slot is one cell of the backing array, stored by value. Key and value
// are only meaningful while the state is slotOccupied; a tombstone
// retains neither.
type slot[V any] struct {
	key   string
	value V
	state slotState
}
