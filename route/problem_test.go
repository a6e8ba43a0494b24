package route_test

import (
	"math"
	"testing"

	"github.com/Saran408/BreadthFirstSearch/route"
	"github.com/Saran408/BreadthFirstSearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustProblem builds a RouteProblem or fails the test.
func mustProblem(t *testing.T, start, goal string, m *route.Map) *route.RouteProblem {
	t.Helper()
	p, err := route.NewRouteProblem(start, goal, m)
	require.NoError(t, err)

	return p
}

// TestNewRouteProblem_Validation covers the constructor sentinels.
func TestNewRouteProblem_Validation(t *testing.T) {
	_, err := route.NewRouteProblem("A", "B", nil)
	assert.ErrorIs(t, err, route.ErrNilMap)

	m := buildTriangle(t)
	_, err = route.NewRouteProblem("", "B", m)
	assert.ErrorIs(t, err, route.ErrEmptyPlace)
	_, err = route.NewRouteProblem("A", "", m)
	assert.ErrorIs(t, err, route.ErrEmptyPlace)
}

// TestRouteProblem_ResultAbsorbsIllegalMove checks the no-op self-loop:
// an action that is not a registered neighbor returns the state unchanged.
func TestRouteProblem_ResultAbsorbsIllegalMove(t *testing.T) {
	m := buildTriangle(t)
	p := mustProblem(t, "A", "C", m)

	assert.Equal(t, "B", p.Result("A", "B"))
	assert.Equal(t, "A", p.Result("A", "Nowhere"))
	assert.Equal(t, "Nowhere", p.Result("Nowhere", "Nowhere")) // unknown states self-loop too
	assert.Empty(t, p.Actions("Nowhere"))
}

// TestRouteProblem_ActionCostPanics checks the programming-error class:
// a cost lookup on an unlinked pair must fail fatally.
func TestRouteProblem_ActionCostPanics(t *testing.T) {
	m := buildTriangle(t)
	p := mustProblem(t, "A", "C", m)

	assert.Equal(t, 1.0, p.ActionCost("A", "B", "B"))
	assert.Panics(t, func() { p.ActionCost("A", "Nowhere", "Nowhere") })
}

// TestSearch_ChainScenario runs the 4-vertex chain {A–B:2, B–C:3, C–D:1}
// and expects the full chain with summed cost 6.
func TestSearch_ChainScenario(t *testing.T) {
	m, err := route.NewMap([]route.Link{
		{From: "A", To: "B", Dist: 2},
		{From: "B", To: "C", Dist: 3},
		{From: "C", To: "D", Dist: 1},
	})
	require.NoError(t, err)
	p := mustProblem(t, "A", "D", m)

	res, err := search.BreadthFirstSearch[string, string](p)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path())
	assert.Equal(t, 6.0, res.Cost())
}

// TestSearch_GoalAtStart expects an immediate zero-cost root result.
func TestSearch_GoalAtStart(t *testing.T) {
	p := mustProblem(t, "A", "A", buildTriangle(t))

	res, err := search.BreadthFirstSearch[string, string](p)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Zero(t, res.Cost())
	assert.Equal(t, []string{"A"}, res.Path())
}

// TestSearch_NoRoute expects the not-found outcome across disconnected
// components: infinite cost, empty path, no error.
func TestSearch_NoRoute(t *testing.T) {
	m, err := route.NewMap([]route.Link{
		{From: "A", To: "B", Dist: 2},
		{From: "C", To: "D", Dist: 2},
	})
	require.NoError(t, err)
	p := mustProblem(t, "A", "D", m)

	res, err := search.BreadthFirstSearch[string, string](p)
	require.NoError(t, err)
	assert.Equal(t, search.OutcomeNotFound, res.Outcome)
	assert.True(t, math.IsInf(res.Cost(), 1))
	assert.Empty(t, res.Path())
}

// TestSearch_Thanjavur runs the two canonical district-map scenarios.
func TestSearch_Thanjavur(t *testing.T) {
	m := route.ThanjavurMap()

	p := mustProblem(t, "Thanjavur", "Thiruvarur", m)
	res, err := search.BreadthFirstSearch[string, string](p)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, []string{
		"Thanjavur", "Ayyampettai", "Papanasam", "Thirukarukkavur",
		"Palayur", "Kudavasal", "Mallakalyanam", "Thiruvarur",
	}, res.Path())
	assert.Equal(t, 91.0, res.Cost())

	back := mustProblem(t, "Thiruvarur", "Papanasam", m)
	res, err = search.BreadthFirstSearch[string, string](back)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, []string{
		"Thiruvarur", "Mallakalyanam", "Kudavasal", "Palayur",
		"Thirukarukkavur", "Papanasam",
	}, res.Path())
	assert.Equal(t, 61.0, res.Cost())
}

// TestSearch_FewestRoadsNotFewestKm pins the unweighted-BFS property: the
// 2-road route wins over a far cheaper 3-road route, and the reported
// cost is whatever lies along the fewest-road route.
func TestSearch_FewestRoadsNotFewestKm(t *testing.T) {
	m, err := route.NewMap([]route.Link{
		{From: "A", To: "B", Dist: 10},
		{From: "B", To: "D", Dist: 10},
		{From: "A", To: "C", Dist: 1},
		{From: "C", To: "E", Dist: 1},
		{From: "E", To: "D", Dist: 1},
	})
	require.NoError(t, err)
	p := mustProblem(t, "A", "D", m)

	res, err := search.BreadthFirstSearch[string, string](p)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, res.Path())
	assert.Equal(t, 20.0, res.Cost())
}

// TestSearch_PathRoundTrip replays the returned actions through Result
// and expects the returned states, action count = state count − 1.
func TestSearch_PathRoundTrip(t *testing.T) {
	m := route.ThanjavurMap()
	p := mustProblem(t, "Thanjavur", "Thiruvarur", m)

	res, err := search.BreadthFirstSearch[string, string](p)
	require.NoError(t, err)
	require.True(t, res.Found())

	states, actions := res.Path(), res.Actions()
	require.Len(t, actions, len(states)-1)

	cur := p.Initial()
	replayed := []string{cur}
	for _, act := range actions {
		cur = p.Result(cur, act)
		replayed = append(replayed, cur)
	}
	assert.Equal(t, states, replayed)
}

// TestSearch_ReachedAdmission asserts no town joins the frontier twice
// across a full district-map search.
func TestSearch_ReachedAdmission(t *testing.T) {
	p := mustProblem(t, "Thanjavur", "Absent", route.ThanjavurMap())

	enqueued := make(map[string]int)
	res, err := search.BreadthFirstSearch[string, string](p,
		search.WithOnEnqueue[string](func(s string, _ int) { enqueued[s]++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, search.OutcomeNotFound, res.Outcome)
	for town, n := range enqueued {
		assert.Equalf(t, 1, n, "town %q enqueued %d times", town, n)
	}
	assert.Len(t, enqueued, 24) // every town reachable exactly once
}
