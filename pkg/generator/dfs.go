package generator

import (
	"github.com/dshills/mazetrace/pkg/maze"
	"github.com/dshills/mazetrace/pkg/prng"
)

func init() {
	Register("dfs", dfsGenerator{})
}

// dfsNeighborOffsets fixes the recursive backtracker's candidate order:
// up, right, down, left, each two cells away so the intermediate wall
// can be carved.
var dfsNeighborOffsets = [4]maze.Point{
	{X: 0, Y: -2},
	{X: 2, Y: 0},
	{X: 0, Y: 2},
	{X: -2, Y: 0},
}

type dfsGenerator struct{}

func (dfsGenerator) Name() string { return "dfs" }

// Generate carves a perfect maze with a recursive backtracker: an
// explicit LIFO stack avoids recursion depth limits on large grids.
func (dfsGenerator) Generate(rows, cols int, r *prng.RNG, _ Params) (*maze.MazeSpec, error) {
	g := maze.NewGrid(rows, cols)
	g.Set(0, 0, maze.Passage)

	stack := []maze.Point{{X: 0, Y: 0}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var candidates []maze.Point
		for _, off := range dfsNeighborOffsets {
			nx, ny := cur.X+off.X, cur.Y+off.Y
			if g.InBounds(nx, ny) && g.At(nx, ny) == maze.Wall {
				candidates = append(candidates, maze.Point{X: nx, Y: ny})
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[r.Intn(len(candidates))]
		mx, my := (cur.X+next.X)/2, (cur.Y+next.Y)/2
		g.Set(mx, my, maze.Passage)
		g.Set(next.X, next.Y, maze.Passage)
		stack = append(stack, next)
	}

	start, goal := pickStartGoalLoop(g, r)
	return &maze.MazeSpec{Grid: g, Start: start, Goal: goal}, nil
}
