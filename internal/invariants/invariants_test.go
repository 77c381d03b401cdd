package invariants

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/mazetrace/pkg/generator"
	"github.com/dshills/mazetrace/pkg/maze"
	"github.com/dshills/mazetrace/pkg/prng"
	"github.com/dshills/mazetrace/pkg/solver"
)

func TestGridWellFormed_AcrossGeneratorsAndSeeds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.SampledFrom(generator.List()).Draw(t, "generator")
		rows := rapid.IntRange(2, 20).Draw(t, "rows")
		cols := rapid.IntRange(2, 20).Draw(t, "cols")
		seed := rapid.Uint64().Draw(t, "seed")

		if rows == 1 && cols == 1 {
			return
		}

		gen := generator.Get(name)
		r := prng.New(seed)
		spec, err := gen.Generate(rows, cols, r, generator.Params{})
		if err != nil {
			return
		}

		report := CheckGridWellFormed(spec)
		if !report.Passed {
			t.Fatalf("generator %q produced an ill-formed grid: %v", name, report.Errors)
		}
	})
}

func TestPlanValid_AcrossSolvedMazes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.SampledFrom(generator.List()).Draw(t, "generator")
		rows := rapid.IntRange(3, 15).Draw(t, "rows")
		cols := rapid.IntRange(3, 15).Draw(t, "cols")
		seed := rapid.Uint64().Draw(t, "seed")

		gen := generator.Get(name)
		r := prng.New(seed)
		spec, err := gen.Generate(rows, cols, r, generator.Params{})
		if err != nil {
			return
		}

		slv := solver.Get("astar")
		trace, err := slv.Solve(spec, solver.Manhattan)
		if err != nil || trace.Plan == nil {
			return
		}

		report := CheckPlanValid(spec, trace.Plan)
		if !report.Passed {
			t.Fatalf("generator %q produced an invalid plan: %v", name, report.Errors)
		}

		reasoningReport := CheckReasoningStructure(spec, trace)
		if !reasoningReport.Passed {
			t.Fatalf("generator %q produced an inconsistent reasoning trace: %v", name, reasoningReport.Errors)
		}
	})
}

func TestBatchOrdering_AcceptsContiguousSequence(t *testing.T) {
	indices := []int{0, 1, 2, 3, 4}
	if report := CheckBatchOrdering(indices); !report.Passed {
		t.Fatalf("expected contiguous sequence to pass, got %v", report.Errors)
	}
}

func TestBatchOrdering_RejectsGap(t *testing.T) {
	indices := []int{0, 1, 3}
	if report := CheckBatchOrdering(indices); report.Passed {
		t.Fatal("expected a gap to fail")
	}
}

func TestBatchSizeMonotonic_AcceptsDoublingSequence(t *testing.T) {
	sizes := []int{500, 500, 500, 1000, 2000, 2000}
	if report := CheckBatchSizeMonotonic(sizes, 2000); !report.Passed {
		t.Fatalf("expected doubling sequence to pass, got %v", report.Errors)
	}
}

func TestBatchSizeMonotonic_RejectsShrink(t *testing.T) {
	sizes := []int{500, 1000, 750}
	if report := CheckBatchSizeMonotonic(sizes, 2000); report.Passed {
		t.Fatal("expected a shrinking sequence to fail")
	}
}

func TestGridWellFormed_RejectsSameStartGoal(t *testing.T) {
	g := maze.NewGrid(2, 2)
	g.Set(0, 0, maze.Passage)
	spec := &maze.MazeSpec{Grid: g, Start: maze.Point{X: 0, Y: 0}, Goal: maze.Point{X: 0, Y: 0}}
	if report := CheckGridWellFormed(spec); report.Passed {
		t.Fatal("expected identical start/goal to fail")
	}
}
