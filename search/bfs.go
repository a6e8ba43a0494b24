// Package search implements breadth-first search over any Problem,
// with FIFO-frontier and reached-set bookkeeping.
package search

// queueItem pairs a frontier node with its depth from the start.
type queueItem[S comparable, A any] struct {
	node  *Node[S, A]
	depth int
}

// walker encapsulates mutable BFS state for a single run.
type walker[S comparable, A any] struct {
	problem  Problem[S, A]
	opts     Options[S]
	frontier []queueItem[S, A]
	reached  map[S]struct{}
}

// BreadthFirstSearch explores p's state space in non-decreasing depth from
// the initial state, applying any number of functional Options.
//
// Semantics:
//   - If the initial state already satisfies IsGoal, the root node is
//     returned immediately with cost 0.
//   - Otherwise nodes are dequeued FIFO and expanded; every generated
//     child is goal-tested on generation, so the first goal found is the
//     earliest-generated one on a shortest-in-edges path.
//   - A reached-set of states bars re-enqueueing: the first-discovered
//     path to a state wins, which under level-order exploration is the
//     shallowest.
//   - An exhausted frontier yields OutcomeNotFound (a normal result, not
//     an error); Result.Cost is then +Inf and Result.Path empty.
//
// BreadthFirstSearch guarantees the returned path is shortest in edge
// count only. Against a weighted domain the reported cost is the sum of
// the weights along that fewest-edge path, not necessarily the
// cheapest-weight path; use a cost-ordered algorithm when weights matter.
//
// Terminates whenever the state space reachable from the initial state is
// finite. Complexity: O(V + E) — each state is enqueued at most once and
// each action examined at most once per enqueued state; memory O(V).
//
// Returns ErrNilProblem for a nil problem, or the context's error if the
// supplied context is cancelled mid-run.
func BreadthFirstSearch[S comparable, A any](p Problem[S, A], opts ...Option[S]) (*Result[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}

	// goal-at-start short-circuit
	root := NewNode[S, A](p.Initial())
	if p.IsGoal(root.State) {
		return &Result[S, A]{Outcome: OutcomeFound, Node: root}, nil
	}

	w := &walker[S, A]{
		problem: p,
		opts:    o,
		reached: map[S]struct{}{root.State: {}},
	}
	w.enqueue(root, 0)

	return w.loop()
}

// loop processes the frontier until a goal is generated, the frontier
// empties, or the context is cancelled.
func (w *walker[S, A]) loop() (*Result[S, A], error) {
	for len(w.frontier) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		for _, child := range Expand(w.problem, item.node) {
			// goal check on generation, not on dequeue
			if w.problem.IsGoal(child.State) {
				return &Result[S, A]{Outcome: OutcomeFound, Node: child}, nil
			}
			if _, ok := w.reached[child.State]; ok {
				continue
			}
			w.reached[child.State] = struct{}{}
			w.enqueue(child, item.depth+1)
		}
	}

	return &Result[S, A]{Outcome: OutcomeNotFound}, nil
}

// enqueue calls OnEnqueue and appends n at the tail of the frontier.
func (w *walker[S, A]) enqueue(n *Node[S, A], depth int) {
	w.opts.OnEnqueue(n.State, depth)
	w.frontier = append(w.frontier, queueItem[S, A]{node: n, depth: depth})
}

// dequeue pops the oldest item (FIFO head), invoking OnDequeue.
func (w *walker[S, A]) dequeue() queueItem[S, A] {
	item := w.frontier[0]
	w.frontier = w.frontier[1:]
	w.opts.OnDequeue(item.node.State, item.depth)

	return item
}
