package solver

import (
	"testing"

	"github.com/dshills/mazetrace/pkg/maze"
)

func gridFromRows(rows []string) *maze.Grid {
	g := maze.NewGrid(len(rows), len(rows[0]))
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				g.Set(x, y, maze.Wall)
			} else {
				g.Set(x, y, maze.Passage)
			}
		}
	}
	return g
}

func TestSolveSync_FindsShortestPathInOpenGrid(t *testing.T) {
	g := gridFromRows([]string{
		"...",
		"...",
		"...",
	})
	trace, err := SolveSync(3, 3, g, maze.Point{X: 0, Y: 0}, maze.Point{X: 2, Y: 2}, Manhattan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trace.Plan) != 5 {
		t.Fatalf("expected plan of length 5 (manhattan distance 4 + 1 cells), got %d: %v", len(trace.Plan), trace.Plan)
	}
	if trace.Plan[0] != (maze.Point{X: 0, Y: 0}) {
		t.Fatalf("plan must start at start cell, got %v", trace.Plan[0])
	}
	if trace.Plan[len(trace.Plan)-1] != (maze.Point{X: 2, Y: 2}) {
		t.Fatalf("plan must end at goal cell, got %v", trace.Plan[len(trace.Plan)-1])
	}
}

func TestSolveSync_NoPathReturnsNilPlan(t *testing.T) {
	g := gridFromRows([]string{
		"...",
		"###",
		"...",
	})
	trace, err := SolveSync(3, 3, g, maze.Point{X: 0, Y: 0}, maze.Point{X: 0, Y: 2}, Manhattan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trace.Plan != nil {
		t.Fatalf("expected nil plan for unreachable goal, got %v", trace.Plan)
	}
	if len(trace.Reasoning) == 0 {
		t.Fatal("expected reasoning events even when no path is found")
	}
}

func TestSolveSync_StartEqualsGoal(t *testing.T) {
	g := gridFromRows([]string{"."})
	trace, err := SolveSync(1, 1, g, maze.Point{X: 0, Y: 0}, maze.Point{X: 0, Y: 0}, Manhattan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trace.Plan) != 1 {
		t.Fatalf("expected single-cell plan, got %v", trace.Plan)
	}
}

func TestSolveSync_ReasoningEventsStartWithClose(t *testing.T) {
	g := gridFromRows([]string{"..", ".."})
	trace, err := SolveSync(2, 2, g, maze.Point{X: 0, Y: 0}, maze.Point{X: 1, Y: 1}, Manhattan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trace.Reasoning[0].Tag != maze.EventClose {
		t.Fatalf("expected first reasoning event to close the start cell, got %v", trace.Reasoning[0])
	}
}

func TestManhattan(t *testing.T) {
	if got := Manhattan(0, 0, 3, 4); got != 7 {
		t.Fatalf("Manhattan(0,0,3,4) = %d, want 7", got)
	}
}

func TestAstarSolver_RegisteredAndUsable(t *testing.T) {
	s := Get("astar")
	if s == nil {
		t.Fatal("expected astar solver to be registered")
	}
	g := gridFromRows([]string{"..", ".."})
	spec := &maze.MazeSpec{Grid: g, Start: maze.Point{X: 0, Y: 0}, Goal: maze.Point{X: 1, Y: 1}}
	trace, err := s.Solve(spec, Manhattan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trace.Plan == nil {
		t.Fatal("expected a plan for a fully open grid")
	}
}
