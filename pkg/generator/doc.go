// Package generator implements the six maze-generation algorithms (dfs,
// kruskal, wilson, searchformer, drunkards_walk, cellular_automata).
// Every algorithm is a pure function of (rows, cols, shared PRNG,
// params): all of its randomized choices are drawn from the one *prng.RNG
// passed in, in the exact order fixed by the spec, so that a run is
// byte-identical across platforms and invocations. Implementations
// register themselves with Register so the pipeline can look them up by
// name.
package generator
