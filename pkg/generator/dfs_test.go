package generator

import (
	"testing"

	"github.com/dshills/mazetrace/pkg/maze"
	"github.com/dshills/mazetrace/pkg/prng"
)

func TestDFS_ProducesWellFormedGrid(t *testing.T) {
	gen := Get("dfs")
	spec, err := gen.Generate(9, 11, prng.New(42), Params{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	assertWellFormed(t, spec)
}

func TestDFS_DeterministicAcrossSameSeed(t *testing.T) {
	gen := Get("dfs")
	a, err := gen.Generate(10, 10, prng.New(7), Params{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	b, err := gen.Generate(10, 10, prng.New(7), Params{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	assertSpecsEqual(t, a, b)
}

func TestDFS_EveryCellReachableFromOrigin(t *testing.T) {
	gen := Get("dfs")
	spec, err := gen.Generate(8, 8, prng.New(1), Params{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	// A recursive backtracker carves a perfect (fully-connected,
	// cycle-free) maze: every passage must be reachable from (0,0).
	reachable := floodFill(spec.Grid, maze.Point{X: 0, Y: 0})
	for y := 0; y < spec.Grid.Rows; y++ {
		for x := 0; x < spec.Grid.Cols; x++ {
			if spec.Grid.At(x, y) == maze.Passage && !reachable[maze.Point{X: x, Y: y}] {
				t.Fatalf("passage (%d,%d) unreachable from origin in a perfect maze", x, y)
			}
		}
	}
}

// floodFill returns the set of passage cells reachable from start via
// 4-connected passage-to-passage moves.
func floodFill(g *maze.Grid, start maze.Point) map[maze.Point]bool {
	seen := map[maze.Point]bool{start: true}
	stack := []maze.Point{start}
	offsets := [4]maze.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, off := range offsets {
			next := maze.Point{X: cur.X + off.X, Y: cur.Y + off.Y}
			if !g.InBounds(next.X, next.Y) || g.At(next.X, next.Y) != maze.Passage || seen[next] {
				continue
			}
			seen[next] = true
			stack = append(stack, next)
		}
	}
	return seen
}

func assertWellFormed(t *testing.T, spec *maze.MazeSpec) {
	t.Helper()
	if spec.Start == spec.Goal {
		t.Fatalf("start and goal must differ, both %v", spec.Start)
	}
	if spec.Grid.At(spec.Start.X, spec.Start.Y) != maze.Passage {
		t.Fatalf("start %v is not a passage", spec.Start)
	}
	if spec.Grid.At(spec.Goal.X, spec.Goal.Y) != maze.Passage {
		t.Fatalf("goal %v is not a passage", spec.Goal)
	}
}

func assertSpecsEqual(t *testing.T, a, b *maze.MazeSpec) {
	t.Helper()
	if a.Start != b.Start || a.Goal != b.Goal {
		t.Fatalf("start/goal diverged: (%v,%v) vs (%v,%v)", a.Start, a.Goal, b.Start, b.Goal)
	}
	if a.Grid.Rows != b.Grid.Rows || a.Grid.Cols != b.Grid.Cols {
		t.Fatalf("grid dimensions diverged")
	}
	for y := 0; y < a.Grid.Rows; y++ {
		for x := 0; x < a.Grid.Cols; x++ {
			if a.Grid.At(x, y) != b.Grid.At(x, y) {
				t.Fatalf("cell (%d,%d) diverged: %v vs %v", x, y, a.Grid.At(x, y), b.Grid.At(x, y))
			}
		}
	}
}
