// Package route defines the types, options, and sentinel errors for the
// road-map route-finding domain.
package route

import "errors"

// Sentinel errors for map construction and lookups.
var (
	// ErrEmptyEndpoint indicates a declared link with an empty From or To.
	ErrEmptyEndpoint = errors.New("route: link endpoint must be non-empty")

	// ErrNegativeDistance indicates a declared link with a negative distance.
	ErrNegativeDistance = errors.New("route: link distance must be non-negative")

	// ErrNoSuchLink indicates a distance lookup for a pair with no link.
	ErrNoSuchLink = errors.New("route: no such link")

	// ErrNilMap indicates a nil *Map was passed to a constructor.
	ErrNilMap = errors.New("route: map is nil")

	// ErrEmptyPlace indicates an empty place name where one is required.
	ErrEmptyPlace = errors.New("route: place name must be non-empty")
)

// defaultDistance is assumed for links declared without an explicit one.
const defaultDistance = 1.0

// Link declares one road between two places. Dist is the road length in
// whatever unit the map uses (kilometers for the canned datasets); a zero
// Dist means "no explicit distance" and defaults to 1.
//
// Declaration order is observable: it fixes the neighbor enumeration
// order of the resulting Map, and through it the tie-break order of
// breadth-first route searches.
type Link struct {
	From string
	To   string
	Dist float64
}

// Coord is a 2D location for a place, available as a heuristic hook for
// informed algorithms. Unused by breadth-first search.
type Coord struct {
	X float64
	Y float64
}

// MapOption configures a Map before its links are processed.
type MapOption func(*Map)

// WithDirected declares every link one-way, exactly as declared.
// By default links are two-way and the map is symmetrized.
func WithDirected() MapOption {
	return func(m *Map) { m.directed = true }
}

// WithLocations attaches 2D coordinates to places. Places absent from
// locs report the origin via Map.Location.
func WithLocations(locs map[string]Coord) MapOption {
	return func(m *Map) {
		for place, at := range locs {
			m.locations[place] = at
		}
	}
}
