// Package errs defines the fatal error kinds raised by the dataset
// pipeline, so callers can distinguish a bad invocation from a bug in
// generation or solving.
package errs

import "fmt"

// ConfigError reports a bad invocation: an unknown generator/solver name,
// a malformed numeric option, or a generator parameter that cannot be
// satisfied (e.g. a coverage that leaves fewer than two floor cells).
// ConfigError is always detected before any generation starts.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Msg)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError builds a ConfigError with no underlying cause.
func NewConfigError(msg string) *ConfigError {
	return &ConfigError{Msg: msg}
}

// GeneratorError reports that a generator algorithm could not satisfy
// its contract for one example. FirstIdx/LastIdx give the failing index
// range within the run, so the operator can tell which examples to
// discard or regenerate.
type GeneratorError struct {
	Generator string
	FirstIdx  int
	LastIdx   int
	Err       error
}

func (e *GeneratorError) Error() string {
	return fmt.Sprintf("generator %q failed for examples [%d,%d]: %v", e.Generator, e.FirstIdx, e.LastIdx, e.Err)
}

func (e *GeneratorError) Unwrap() error { return e.Err }

// SolverError reports that the solver returned no plan for a maze the
// pipeline expects to be solvable. This indicates an upstream bug (a
// disconnected maze escaping generation), not ordinary data loss.
type SolverError struct {
	Idx int
	Err error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver failed for example %d: %v", e.Idx, e.Err)
}

func (e *SolverError) Unwrap() error { return e.Err }

// TransportError reports a worker crash or a lost batch. There is no
// automatic restart; the run is fatal.
type TransportError struct {
	BatchStart int
	Err        error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failed for batch starting at %d: %v", e.BatchStart, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
