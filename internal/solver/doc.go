// Package solver finds a path from a start node to any goal node using a
// fork/join parallel depth-first search.
//
// # Algorithm
//
// A search is a dynamic tree of tasks. Every task walks its own private
// LIFO frontier. Each time a task's step counter is a positive multiple of
// the fork threshold, the unvisited neighbors of the node it just expanded
// are handed to new child tasks instead of its own frontier. After
// expanding a node the task joins its children in spawn order and adopts
// the first path one of them returns.
//
// Tasks share exactly three things, all held in a searchstate.State:
//
//   - the visited set, claimed atomically so a node is expanded once
//   - the predecessor map, first discoverer wins
//   - the goal flag, checked at the top of every iteration
//
// Paths are rebuilt from the predecessor map, so a path found deep inside a
// forked subtree still starts at the search's start node.
//
// # Scheduling
//
// Every task runs on its own goroutine inside one errgroup.Group. A join
// waits on the child's done channel. Solve waits for the whole tree, so no
// task outlives the call. Recursion depth is bounded by the graph, not by
// the native stack: a fork is a new goroutine, never a nested call.
//
// # Cancellation
//
// Cooperative only. Once the goal flag is raised, tasks stop popping
// their frontiers but still finish in-flight joins. A cancelled context or
// a fatal error in any task (see ErrInvalidPredecessorChain) cancels the
// group context, which every task also observes.
package solver
