package search

// Node represents one point in the search tree: a state paired with the
// parent chain used to reach it and that path's accumulated cost.
//
// Nodes are immutable after construction. Parent is nil at the root, and
// Action holds the zero value there. A state may appear in multiple nodes
// when revisited via different paths, until the reached-set suppresses it;
// a node stays alive exactly as long as some reachable node holds it as an
// ancestor.
type Node[S comparable, A any] struct {
	// State is the position in the search space this node stands for.
	State S

	// Parent is the node this one was expanded from; nil at the root.
	Parent *Node[S, A]

	// Action is the move taken from Parent to reach State; zero at the root.
	Action A

	// PathCost is the cumulative cost from the root to this node.
	// Non-decreasing along any parent chain when action costs are
	// non-negative.
	PathCost float64
}

// NewNode returns a root node for state: no parent, no action, cost 0.
func NewNode[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{State: state}
}

// Depth returns the number of ancestors of n; a root has depth 0.
func (n *Node[S, A]) Depth() int {
	d := 0
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		d++
	}

	return d
}

// Less orders nodes by PathCost alone, ascending. BreadthFirstSearch never
// consults it; cost-priority algorithms share this contract.
func (n *Node[S, A]) Less(other *Node[S, A]) bool {
	return n.PathCost < other.PathCost
}

// Expand produces the child nodes of n under p: one child per action in
// p.Actions(n.State), in that exact enumeration order, each carrying the
// successor state and the parent's cost plus the action's cost.
//
// Expand recomputes from scratch on every call (no caching) and has no
// side effects beyond node allocation; neither p nor n is mutated.
func Expand[S comparable, A any](p Problem[S, A], n *Node[S, A]) []*Node[S, A] {
	actions := p.Actions(n.State)
	children := make([]*Node[S, A], 0, len(actions))
	var next S
	for _, act := range actions {
		next = p.Result(n.State, act)
		children = append(children, &Node[S, A]{
			State:    next,
			Parent:   n,
			Action:   act,
			PathCost: n.PathCost + p.ActionCost(n.State, act, next),
		})
	}

	return children
}

// PathActions returns the ordered actions from the tree root to n; a root
// yields an empty sequence, as does a nil node. The walk is iterative to
// stay safe on arbitrarily deep trees. O(depth).
func PathActions[S comparable, A any](n *Node[S, A]) []A {
	if n == nil {
		return nil
	}
	// collect root→n in reverse, then flip in place
	actions := make([]A, 0, n.Depth())
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		actions = append(actions, cur.Action)
	}
	reverse(actions)

	return actions
}

// PathStates returns the ordered states from the tree root to n; a nil
// node yields an empty sequence, guarding against termination outcomes
// being passed through. O(depth).
func PathStates[S comparable, A any](n *Node[S, A]) []S {
	if n == nil {
		return nil
	}
	states := make([]S, 0, n.Depth()+1)
	for cur := n; cur != nil; cur = cur.Parent {
		states = append(states, cur.State)
	}
	reverse(states)

	return states
}

// reverse flips s in place.
func reverse[E any](s []E) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
