package route

import (
	"fmt"

	"github.com/Saran408/BreadthFirstSearch/search"
)

// RouteProblem is a search.Problem over a Map: states and actions are both
// place names, an action being the destination place of one road. The Map
// is shared and read-only for the problem's lifetime.
type RouteProblem struct {
	search.Base[string, string]

	roads *Map
}

// compile-time contract check
var _ search.Problem[string, string] = (*RouteProblem)(nil)

// NewRouteProblem builds a route-finding problem from start to goal over
// roads. Start and goal need not be known to the map: an unknown start
// simply has no applicable actions.
//
// Returns ErrNilMap or ErrEmptyPlace for invalid input.
func NewRouteProblem(start, goal string, roads *Map) (*RouteProblem, error) {
	if roads == nil {
		return nil, ErrNilMap
	}
	if start == "" || goal == "" {
		return nil, fmt.Errorf("%w: start=%q goal=%q", ErrEmptyPlace, start, goal)
	}

	return &RouteProblem{
		Base:  search.Base[string, string]{Start: start, Goal: goal},
		roads: roads,
	}, nil
}

// Actions returns the map's neighbor list for place: every place one road
// away, in link definition order. Empty for unknown places.
func (p *RouteProblem) Actions(place string) []string {
	return p.roads.Neighbors(place)
}

// Result returns via if a road runs from place to via, otherwise place
// unchanged: an illegal move is silently absorbed as a no-op self-loop,
// not a failure.
func (p *RouteProblem) Result(place, via string) string {
	if p.roads.HasLink(place, via) {
		return via
	}

	return place
}

// ActionCost returns the road distance from one place to the next.
//
// The pair must exist on the map. search.Expand guarantees that, since
// actions are always drawn from Actions; only a malformed caller can
// reach the panic, which marks a programming error rather than a
// recoverable condition.
func (p *RouteProblem) ActionCost(from, via, to string) float64 {
	dist, err := p.roads.Distance(from, to)
	if err != nil {
		panic(fmt.Sprintf("route: ActionCost on unlinked pair: %v", err))
	}

	return dist
}
