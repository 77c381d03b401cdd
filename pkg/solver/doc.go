// Package solver implements the A* search that produces both a
// reasoning trace (the ordered sequence of close/create events used as
// supervised training signal) and the final plan. The open set is a
// plain linear scan rather than a heap, so the "smallest index wins"
// tie-break required by spec is exact and observable.
package solver
