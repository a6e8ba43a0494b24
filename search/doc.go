// Package search provides a generic framework for uninformed search: a
// Problem contract any domain can satisfy, a parent-linked search-tree
// Node, a generic Expand operator, and BreadthFirstSearch over the lot.
//
// What
//
//   - Problem[S, A]: Initial, IsGoal, Actions, Result, ActionCost — the
//     full capability set a search domain must expose.
//   - Base[S, A]: embeddable config record (Start, Goal) supplying the
//     default equality goal test and unit action cost.
//   - Node[S, A]: immutable-after-construction tree element with State,
//     Parent link, Action taken, and cumulative PathCost; PathStates and
//     PathActions reconstruct the root→node path iteratively.
//   - Expand(p, n): one child per action, in Actions enumeration order,
//     child cost = parent cost + ActionCost.
//   - BreadthFirstSearch(p, opts...): FIFO frontier seeded with the root,
//     reached-set of states seeded with the initial state, goal test on
//     generation, goal-at-start short-circuit.
//   - Result[S, A]: tagged outcome {Found, NotFound, Cutoff} with Cost
//     (+Inf when nothing was found), Path, and Actions accessors.
//
// Why
//
//   - Separate the traversal from the domain: the algorithm only ever
//     talks to the Problem interface, so route maps, puzzles, and toy
//     networks all reuse the same ninety lines of bookkeeping.
//   - Make tie-breaking reproducible: Actions enumeration order is the
//     only source of ordering, so equal runs give equal paths.
//
// Determinism
//
//	BreadthFirstSearch enqueues children strictly in the order Actions
//	enumerates them and dequeues strictly FIFO, so the visit sequence and
//	the returned path are fully reproducible for deterministic domains.
//
// Weighted domains
//
//	BreadthFirstSearch is unweighted: it guarantees the fewest-edge path,
//	and reports whatever the weights along that path sum to. It is *not*
//	a weighted shortest-path algorithm and deliberately never becomes
//	one — reach for a cost-ordered algorithm when weights must be
//	minimal.
//
// Complexity (V = |states reachable|, E = |actions examined|)
//
//   - Time:   O(V + E)   (each state enqueued at most once)
//   - Memory: O(V)       (frontier, reached set, surviving node chains)
//
// Concurrency
//
//	A run is single-threaded and synchronous. All mutable state (frontier,
//	reached set) is private to the run, so any number of searches may run
//	concurrently over one shared, read-only Problem.
//
// Usage
//
//	res, err := search.BreadthFirstSearch[string, string](problem,
//	    search.WithContext[string](ctx),
//	    search.WithOnEnqueue[string](func(s string, d int) { /* ... */ }),
//	)
//	if err != nil {
//	    // ErrNilProblem or a context error
//	}
//	if !res.Found() {
//	    // OutcomeNotFound: res.Cost() == +Inf, res.Path() empty
//	}
//	fmt.Println(res.Path(), res.Cost())
//
// Errors
//
//   - ErrNilProblem        if the problem is nil.
//   - context.Canceled /   if the supplied context ends mid-run.
//     context.DeadlineExceeded
//
// A missing path is not an error: it is the OutcomeNotFound result.
package search
