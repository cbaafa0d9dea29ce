// Package searchstate holds the mutable state shared by every task of a
// single parallel maze search.
//
// # Purpose
//
// A search forks into a dynamic tree of tasks. Each task keeps its own
// private frontier, so the only cross-task state is:
//
//   - **visited:** the set of nodes already claimed by some task
//   - **predecessor:** the node that first discovered each node
//   - **foundGoal:** a flag raised once any task reaches a goal
//
// # Concurrency Model
//
// The visited set and the predecessor map use sync.Map, the same way the
// engine's node state stores do: the key space grows as the search
// advances, each key is written once and then only read, and writes come
// from many goroutines touching unrelated keys. LoadOrStore provides the
// single atomic check-and-insert both containers need. The goal flag is an
// atomic.Bool flipped with CompareAndSwap.
//
// # Lifecycle
//
//  1. **Creation:** one State per top-level search
//  2. **Sharing:** the same pointer is handed to every forked task
//  3. **Disposal:** dropped when the search returns; never reset or reused
package searchstate
