// Package invariants adapts the teacher's validation Report/Errors/Passed
// idiom (pkg/validation/report.go) to the dataset pipeline's own
// testable properties: grid well-formedness, plan validity, reasoning
// structure, batch ordering, and dynamic-batching monotonicity.
package invariants

import (
	"fmt"

	"github.com/dshills/mazetrace/pkg/maze"
)

// Report collects every violation a check found; Passed is true iff
// Errors is empty.
type Report struct {
	Passed bool
	Errors []string
}

func newReport() *Report {
	return &Report{Passed: true}
}

func (r *Report) fail(format string, args ...interface{}) {
	r.Passed = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// CheckGridWellFormed verifies start/goal are distinct in-bounds passage
// cells.
func CheckGridWellFormed(spec *maze.MazeSpec) *Report {
	r := newReport()
	g := spec.Grid

	if !g.InBounds(spec.Start.X, spec.Start.Y) {
		r.fail("start %v is out of bounds for a %dx%d grid", spec.Start, g.Cols, g.Rows)
	} else if g.At(spec.Start.X, spec.Start.Y) != maze.Passage {
		r.fail("start %v is not a passage cell", spec.Start)
	}

	if !g.InBounds(spec.Goal.X, spec.Goal.Y) {
		r.fail("goal %v is out of bounds for a %dx%d grid", spec.Goal, g.Cols, g.Rows)
	} else if g.At(spec.Goal.X, spec.Goal.Y) != maze.Passage {
		r.fail("goal %v is not a passage cell", spec.Goal)
	}

	if spec.Start == spec.Goal {
		r.fail("start and goal must be distinct, both are %v", spec.Start)
	}

	return r
}

// CheckPlanValid verifies plan endpoints equal start/goal, consecutive
// cells are 4-connected, and every cell is a passage.
func CheckPlanValid(spec *maze.MazeSpec, plan []maze.Point) *Report {
	r := newReport()
	if len(plan) == 0 {
		r.fail("plan is empty")
		return r
	}

	if plan[0] != spec.Start {
		r.fail("plan must start at %v, got %v", spec.Start, plan[0])
	}
	if plan[len(plan)-1] != spec.Goal {
		r.fail("plan must end at %v, got %v", spec.Goal, plan[len(plan)-1])
	}

	for i, p := range plan {
		if !spec.Grid.IsPassage(p.X, p.Y) {
			r.fail("plan[%d]=%v is not a passage cell", i, p)
		}
		if i == 0 {
			continue
		}
		prev := plan[i-1]
		dx := absInt(p.X - prev.X)
		dy := absInt(p.Y - prev.Y)
		if dx+dy != 1 {
			r.fail("plan[%d]=%v is not 4-connected to plan[%d]=%v", i, p, i-1, prev)
		}
	}
	return r
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// CheckReasoningStructure verifies the first close targets start, the
// last close targets goal (when a plan exists), and close events are
// monotone non-decreasing in g+h up to the goal — the admissibility
// corollary of an admissible heuristic.
func CheckReasoningStructure(spec *maze.MazeSpec, trace *maze.Trace) *Report {
	r := newReport()

	var closes []maze.ReasoningEvent
	for _, ev := range trace.Reasoning {
		if ev.Tag == maze.EventClose {
			closes = append(closes, ev)
		}
	}
	if len(closes) == 0 {
		r.fail("no close events recorded")
		return r
	}

	first := closes[0]
	if (maze.Point{X: first.X, Y: first.Y}) != spec.Start {
		r.fail("first close event targets %v, want start %v", maze.Point{X: first.X, Y: first.Y}, spec.Start)
	}

	if trace.Plan != nil {
		last := closes[len(closes)-1]
		if (maze.Point{X: last.X, Y: last.Y}) != spec.Goal {
			r.fail("last close event targets %v, want goal %v", maze.Point{X: last.X, Y: last.Y}, spec.Goal)
		}
	}

	prevF := -1
	for i, ev := range closes {
		f := ev.G + ev.H
		if prevF >= 0 && f < prevF {
			r.fail("close event %d has f=%d, less than previous f=%d (admissibility violated)", i, f, prevF)
		}
		prevF = f
	}
	return r
}

// CheckBatchOrdering verifies consumer-visible indices form 0..n-1 with
// no gaps or repeats.
func CheckBatchOrdering(indices []int) *Report {
	r := newReport()
	for i, idx := range indices {
		if idx != i {
			r.fail("index %d out of order, saw %d", i, idx)
		}
	}
	return r
}

// CheckBatchSizeMonotonic verifies a dispatcher's observed batch-size
// sequence is non-decreasing and bounded by maxBatchSize.
func CheckBatchSizeMonotonic(sizes []int, maxBatchSize int) *Report {
	r := newReport()
	prev := 0
	for i, size := range sizes {
		if size < prev {
			r.fail("batch size decreased at step %d: %d < %d", i, size, prev)
		}
		if size > maxBatchSize {
			r.fail("batch size %d at step %d exceeds maxBatchSize %d", size, i, maxBatchSize)
		}
		prev = size
	}
	return r
}
