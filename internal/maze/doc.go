// Package maze provides the graphs that searches run on.
//
// Two implementations are available:
//
//   - Grid: a rectangular maze parsed from a text layout, one node per cell.
//   - Adjacency: an explicit node set with ordered neighbor lists.
//
// Both are immutable once built, so Neighbors and HasGoal may be called from
// any number of goroutines. Both embed a player.Registry that records where
// each search task is standing.
package maze
