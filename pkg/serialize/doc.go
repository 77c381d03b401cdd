// Package serialize renders a solved maze example into the token-stream
// line format consumed by downstream training: a single JSON object of
// the form {"text":"<tokens>"}\n, where tokens describe the query, the
// wall layout, the solver's reasoning trace, and the final plan.
package serialize
