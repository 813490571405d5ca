package fixedmap

// Stats is a point-in-time snapshot of a map's slot usage.
type Stats struct {
	Live       int
	Tombstones int
	Capacity   int
	Load       float64
}
