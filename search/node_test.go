package search_test

import (
	"testing"

	"github.com/Saran408/BreadthFirstSearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// costedProblem layers explicit per-pair costs over netProblem.
type costedProblem struct {
	netProblem

	costs map[[2]string]float64
}

func (p costedProblem) ActionCost(from, via, to string) float64 {
	return p.costs[[2]string{from, to}]
}

// buildCosted returns a costed chain A→B→C with costs 2 and 3 plus a
// side branch A→X with cost 5.
func buildCosted() costedProblem {
	return costedProblem{
		netProblem: netProblem{
			Base: search.Base[string, string]{Start: "A", Goal: "C"},
			adj: map[string][]string{
				"A": {"B", "X"},
				"B": {"C"},
			},
		},
		costs: map[[2]string]float64{
			{"A", "B"}: 2,
			{"A", "X"}: 5,
			{"B", "C"}: 3,
		},
	}
}

// TestNewNode_Root checks the pure value construction of a root node.
func TestNewNode_Root(t *testing.T) {
	root := search.NewNode[string, string]("A")
	assert.Equal(t, "A", root.State)
	assert.Nil(t, root.Parent)
	assert.Zero(t, root.Action)
	assert.Zero(t, root.PathCost)
	assert.Equal(t, 0, root.Depth())
}

// TestNode_Less checks the shared cost-ascending ordering contract.
func TestNode_Less(t *testing.T) {
	cheap := &search.Node[string, string]{State: "A", PathCost: 1}
	dear := &search.Node[string, string]{State: "B", PathCost: 4}
	assert.True(t, cheap.Less(dear))
	assert.False(t, dear.Less(cheap))
	assert.False(t, cheap.Less(cheap)) // strict ordering
}

// TestExpand_OrderAndCosts verifies children follow the Actions
// enumeration order exactly and accumulate the parent's cost.
func TestExpand_OrderAndCosts(t *testing.T) {
	p := buildCosted()
	root := search.NewNode[string, string]("A")

	children := search.Expand[string, string](p, root)
	require.Len(t, children, 2)

	assert.Equal(t, "B", children[0].State)
	assert.Equal(t, "B", children[0].Action)
	assert.Equal(t, 2.0, children[0].PathCost)
	assert.Same(t, root, children[0].Parent)

	assert.Equal(t, "X", children[1].State)
	assert.Equal(t, 5.0, children[1].PathCost)

	// grandchild cost accumulates along the chain
	grand := search.Expand[string, string](p, children[0])
	require.Len(t, grand, 1)
	assert.Equal(t, "C", grand[0].State)
	assert.Equal(t, 5.0, grand[0].PathCost)
	assert.Equal(t, 2, grand[0].Depth())
}

// TestExpand_Restartable verifies re-invoking Expand recomputes fresh
// nodes from scratch: no caching, no shared children.
func TestExpand_Restartable(t *testing.T) {
	p := buildCosted()
	root := search.NewNode[string, string]("A")

	first := search.Expand[string, string](p, root)
	second := search.Expand[string, string](p, root)
	require.Len(t, second, len(first))
	for i := range first {
		assert.NotSame(t, first[i], second[i])
		assert.Equal(t, first[i].State, second[i].State)
		assert.Equal(t, first[i].PathCost, second[i].PathCost)
	}
}

// TestPathReconstruction covers PathStates/PathActions over a chain,
// the root case, and the defensive nil guard.
func TestPathReconstruction(t *testing.T) {
	p := buildCosted()
	root := search.NewNode[string, string]("A")
	b := search.Expand[string, string](p, root)[0]
	c := search.Expand[string, string](p, b)[0]

	assert.Equal(t, []string{"A", "B", "C"}, search.PathStates(c))
	assert.Equal(t, []string{"B", "C"}, search.PathActions(c))
	assert.Len(t, search.PathActions(c), len(search.PathStates(c))-1)

	// root yields a single-state path and no actions
	assert.Equal(t, []string{"A"}, search.PathStates(root))
	assert.Empty(t, search.PathActions(root))

	// nil node: defensive empty sequences
	assert.Empty(t, search.PathStates[string, string](nil))
	assert.Empty(t, search.PathActions[string, string](nil))
}
