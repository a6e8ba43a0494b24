// Package search defines the Problem contract, tunable options, and
// result types shared by the uninformed search algorithms.
package search

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned if a nil Problem is passed to an algorithm.
	ErrNilProblem = errors.New("search: problem is nil")
)

// Problem is the contract any search domain must satisfy.
//
// S is the state type: an opaque, comparable value identifying a position
// in the search space. A is the action type: an opaque value identifying a
// move available from a state.
//
// Actions must be deterministic and finite for BreadthFirstSearch to
// terminate; its enumeration order defines the tie-break order among
// equally-short paths (earlier-enumerated actions are explored first
// within a level). Result must be deterministic. ActionCost must be
// non-negative for the uninformed algorithms to behave correctly; the
// type system does not enforce this, callers do.
type Problem[S comparable, A any] interface {
	// Initial returns the fixed start state.
	Initial() S

	// IsGoal reports whether state satisfies the goal condition.
	IsGoal(state S) bool

	// Actions enumerates every action applicable at state.
	Actions(state S) []A

	// Result returns the deterministic successor of state under via.
	Result(state S, via A) S

	// ActionCost returns the cost of moving from one state to the next
	// via the given action.
	ActionCost(from S, via A, to S) float64
}

// Base carries the required configuration every search problem shares: a
// fixed start state and a fixed goal state, immutable for the problem's
// lifetime. Embed it in a domain problem to inherit the default goal test
// (equality against Goal) and the default unit action cost; the domain
// itself must still provide Actions and Result, which the compiler
// enforces through the Problem interface.
type Base[S comparable, A any] struct {
	// Start is the initial state of the search.
	Start S

	// Goal is the target state compared by the default goal test.
	Goal S
}

// Initial returns the fixed start state.
func (b Base[S, A]) Initial() S { return b.Start }

// IsGoal compares state to the fixed Goal by equality. Domains with
// predicate-style goals override this method.
func (b Base[S, A]) IsGoal(state S) bool { return state == b.Goal }

// ActionCost is the default unit-cost model: every action costs 1.
func (b Base[S, A]) ActionCost(from S, via A, to S) float64 { return 1 }

// Outcome tags the result of a search run.
type Outcome int

const (
	// OutcomeFound means a goal node was reached; Result.Node holds it.
	OutcomeFound Outcome = iota

	// OutcomeNotFound means the frontier was exhausted without reaching
	// a goal. Not an error: callers must check for it.
	OutcomeNotFound

	// OutcomeCutoff means a depth-limited search was truncated before
	// the frontier was exhausted. Reserved for depth-limited variants;
	// BreadthFirstSearch never produces it.
	OutcomeCutoff
)

// Result is the tagged outcome of a search run.
// Node is non-nil exactly when Outcome == OutcomeFound.
type Result[S comparable, A any] struct {
	Outcome Outcome
	Node    *Node[S, A]
}

// Found reports whether a goal node was reached.
func (r *Result[S, A]) Found() bool { return r.Outcome == OutcomeFound && r.Node != nil }

// Cost returns the accumulated path cost of the goal node,
// or +Inf when no goal was found.
func (r *Result[S, A]) Cost() float64 {
	if !r.Found() {
		return math.Inf(1)
	}

	return r.Node.PathCost
}

// Path returns the ordered states from the start to the goal node,
// or nil when no goal was found.
func (r *Result[S, A]) Path() []S {
	if !r.Found() {
		return nil
	}

	return PathStates(r.Node)
}

// Actions returns the ordered actions from the start to the goal node,
// or nil when no goal was found.
func (r *Result[S, A]) Actions() []A {
	if !r.Found() {
		return nil
	}

	return PathActions(r.Node)
}

// Option configures search behavior via functional arguments.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize a search run.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node joins the frontier.
	// Receives the node's state and its depth from the start.
	OnEnqueue func(state S, depth int)

	// OnDequeue is called when a node leaves the frontier for expansion.
	OnDequeue func(state S, depth int)
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op hooks (OnEnqueue, OnDequeue).
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:       context.Background(),
		OnEnqueue: func(S, int) {},
		OnDequeue: func(S, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run when a node joins the frontier.
func WithOnEnqueue[S comparable](fn func(state S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a node leaves the frontier.
func WithOnDequeue[S comparable](fn func(state S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
