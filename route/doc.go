// Package route is a concrete search domain over weighted road maps: a
// Map of places and distances, and a RouteProblem that plugs straight
// into search.BreadthFirstSearch.
//
// What
//
//   - Link: one declared road (From, To, Dist); Dist 0 defaults to 1.
//   - Map: immutable once built. NewMap validates the links, symmetrizes
//     them unless WithDirected, and derives the ordered neighbor multimap
//     that fixes search tie-breaking. Queries: Neighbors, Distance,
//     HasLink, Vertices, Location.
//   - RouteProblem: states and actions are both place names. Actions is
//     the neighbor list (empty for unknown places), Result absorbs
//     illegal moves as no-op self-loops, ActionCost is the road distance.
//   - ThanjavurMap / ThanjavurLinks / ThanjavurLocations: a canned
//     23-road district dataset to search over.
//
// Ordering
//
//	Neighbor lists follow link declaration order, with mirrored links
//	appended after every declared one. Re-declaring a pair overwrites its
//	distance without moving it. The order is part of the Map's contract:
//	it decides which of two equally-short routes a breadth-first search
//	reports.
//
// Weighted caveat
//
//	Distances ride along but do not steer: BreadthFirstSearch over a
//	RouteProblem returns the fewest-road route and sums its distances,
//	which need not be the shortest route in kilometers.
//
// Concurrency
//
//	A Map never mutates after NewMap returns, so one Map may safely back
//	many RouteProblems and many concurrent searches.
//
// Usage
//
//	m := route.ThanjavurMap()
//	p, err := route.NewRouteProblem("Thanjavur", "Thiruvarur", m)
//	if err != nil {
//	    // ErrNilMap or ErrEmptyPlace
//	}
//	res, err := search.BreadthFirstSearch[string, string](p)
//	fmt.Println(res.Path(), res.Cost())
//
// Errors
//
//   - ErrEmptyEndpoint / ErrNegativeDistance   from NewMap on bad links.
//   - ErrNoSuchLink                            from Map.Distance.
//   - ErrNilMap / ErrEmptyPlace                from NewRouteProblem.
//
// RouteProblem.ActionCost panics on a pair with no link: that cannot be
// reached through search.Expand and marks a malformed caller.
package route
