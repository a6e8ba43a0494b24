// Package breadthfirstsearch is a small, generic search framework built
// around uninformed breadth-first search, plus a ready-made route-finding
// domain over weighted road maps.
//
// 🚀 What is it?
//
//	Two focused subpackages that fit together:
//		• search/ — the abstract machinery: a Problem interface, parent-linked
//		  search-tree Nodes, a generic Expand operator, and BreadthFirstSearch
//		  with its frontier/reached-set bookkeeping
//		• route/  — a concrete Problem over a weighted undirected Map of
//		  places and road distances, with a canned Thanjavur–Nagapattinam
//		  district dataset to play with
//
// ✨ Why choose it?
//
//   - Generic – plug in any domain with comparable states; the traversal
//     never learns what a "place" is
//   - Predictable – deterministic neighbor enumeration fixes tie-breaking,
//     so every run reproduces the same path
//   - Honest – BFS returns the fewest-edge path, and the API says so; it
//     never silently upgrades to a weighted shortest-path algorithm
//   - Extensible – enqueue/dequeue hooks and context cancellation in the
//     traversal, tagged outcomes instead of magic sentinel values
//
// Quick ASCII example:
//
//	    A──2──B
//	           \
//	            3
//	             \
//	    D──1──────C
//
//	BreadthFirstSearch from A to D walks A→B→C→D with path cost 6.
//
// Dive into search/doc.go and route/doc.go for contracts, complexity and
// worked examples, or run the demos under examples/.
package breadthfirstsearch
