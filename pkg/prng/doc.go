// Package prng provides the single deterministic randomness source shared
// by every generator in this module. It is a 32-bit linear congruential
// generator (LCG), not Go's math/rand: every randomized decision in the
// dataset pipeline must reproduce byte-for-byte across platforms and
// invocations, which rules out math/rand's algorithm-version churn and
// its larger, non-normative state.
package prng
