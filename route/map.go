package route

import "fmt"

// ends is the ordered (from, to) key of one directed link.
type ends struct {
	from string
	to   string
}

// Map is a graph of places and weighted roads. It is immutable once built:
// NewMap derives every internal structure up front and no method mutates
// the receiver, so one Map may back any number of concurrent searches.
//
// Unless built with WithDirected, every declared link (v1, v2, d) induces
// the mirrored link (v2, v1, d): distances stay symmetric and neighbor
// lists are consistent in both directions.
type Map struct {
	// pairs holds every (from, to) link key in definition order:
	// all declared pairs first, then the mirrored pairs appended by
	// symmetrization. Neighbor lists group this sequence by from.
	pairs     []ends
	distances map[ends]float64
	neighbors map[string][]string
	vertices  []string
	locations map[string]Coord
	directed  bool
}

// NewMap builds a Map from declared links, applying any number of
// MapOptions. Links without an explicit distance get distance 1.
//
// Returns ErrEmptyEndpoint or ErrNegativeDistance (wrapped with the
// offending link) for malformed input.
func NewMap(links []Link, opts ...MapOption) (*Map, error) {
	m := &Map{
		pairs:     make([]ends, 0, 2*len(links)),
		distances: make(map[ends]float64, 2*len(links)),
		neighbors: make(map[string][]string),
		locations: make(map[string]Coord),
	}
	for _, opt := range opts {
		opt(m)
	}

	// declared pass
	var dist float64
	for i, ln := range links {
		if ln.From == "" || ln.To == "" {
			return nil, fmt.Errorf("%w: link #%d (%q→%q)", ErrEmptyEndpoint, i, ln.From, ln.To)
		}
		dist = ln.Dist
		if dist < 0 {
			return nil, fmt.Errorf("%w: link #%d (%q→%q) distance=%v", ErrNegativeDistance, i, ln.From, ln.To, dist)
		}
		if dist == 0 {
			dist = defaultDistance
		}
		m.setDistance(ends{ln.From, ln.To}, dist)
	}

	// symmetrization pass: mirror each declared pair, in declared order,
	// after all declared pairs. A mirror of a pair that was itself
	// declared overwrites its value in place rather than reordering it.
	if !m.directed {
		declared := make([]ends, len(m.pairs))
		copy(declared, m.pairs)
		for _, p := range declared {
			m.setDistance(ends{p.to, p.from}, m.distances[p])
		}
	}

	// derive ordered neighbor multimap and vertex roster
	seen := make(map[string]struct{}, len(m.pairs))
	addVertex := func(v string) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			m.vertices = append(m.vertices, v)
		}
	}
	for _, p := range m.pairs {
		m.neighbors[p.from] = append(m.neighbors[p.from], p.to)
		addVertex(p.from)
		addVertex(p.to)
	}

	return m, nil
}

// setDistance records key→dist, appending key to the ordered pair
// sequence only on first sight (re-declaration overwrites in place).
func (m *Map) setDistance(key ends, dist float64) {
	if _, ok := m.distances[key]; !ok {
		m.pairs = append(m.pairs, key)
	}
	m.distances[key] = dist
}

// Neighbors returns the places reachable from place by one road, in link
// definition order. Unknown places yield an empty list, never an error.
func (m *Map) Neighbors(place string) []string {
	nbrs := m.neighbors[place]
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out
}

// Distance returns the length of the road from one place to the next, or
// ErrNoSuchLink (wrapped with the pair) when no such road exists.
func (m *Map) Distance(from, to string) (float64, error) {
	dist, ok := m.distances[ends{from, to}]
	if !ok {
		return 0, fmt.Errorf("%w: %q→%q", ErrNoSuchLink, from, to)
	}

	return dist, nil
}

// HasLink reports whether a road runs from one place to the next.
func (m *Map) HasLink(from, to string) bool {
	_, ok := m.distances[ends{from, to}]

	return ok
}

// Vertices returns every place on the map, in first-appearance order.
func (m *Map) Vertices() []string {
	out := make([]string, len(m.vertices))
	copy(out, m.vertices)

	return out
}

// Location returns the 2D coordinate of place, or the origin when none
// was supplied.
func (m *Map) Location(place string) Coord {
	return m.locations[place]
}

// Directed reports whether links were declared one-way.
func (m *Map) Directed() bool {
	return m.directed
}
