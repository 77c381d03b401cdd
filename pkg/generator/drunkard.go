package generator

import (
	"fmt"

	"github.com/dshills/mazetrace/pkg/maze"
	"github.com/dshills/mazetrace/pkg/prng"
)

func init() {
	Register("drunkards_walk", drunkardGenerator{})
}

// drunkardDirections fixes the walker's step order: left, right, up, down.
var drunkardDirections = [4]maze.Point{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

type drunkardGenerator struct{}

func (drunkardGenerator) Name() string { return "drunkards_walk" }

// Generate carves passages with a random walker until the configured
// coverage fraction of the grid is passage. The walk never backtracks
// out of bounds — each step is re-rolled among only the in-bounds
// directions from the current cell.
func (drunkardGenerator) Generate(rows, cols int, r *prng.RNG, params Params) (*maze.MazeSpec, error) {
	coverage := params.Float64("coverage", 0.5)
	total := rows * cols

	target := int(float64(total) * coverage)
	if target > total {
		target = total
	}
	if target < 2 {
		target = 2
	}

	g := maze.NewGrid(rows, cols)
	x, y := r.Intn(cols), r.Intn(rows)
	g.Set(x, y, maze.Passage)
	carved := 1

	for carved < target {
		var candidates []maze.Point
		for _, d := range drunkardDirections {
			nx, ny := x+d.X, y+d.Y
			if g.InBounds(nx, ny) {
				candidates = append(candidates, maze.Point{X: nx, Y: ny})
			}
		}
		next := candidates[r.Intn(len(candidates))]
		x, y = next.X, next.Y
		if g.At(x, y) == maze.Wall {
			g.Set(x, y, maze.Passage)
			carved++
		}
	}

	passages := collectPassages(g)
	if len(passages) < 2 {
		return nil, fmt.Errorf("drunkards_walk: coverage %v produced fewer than two passage cells on a %dx%d grid", coverage, rows, cols)
	}

	start, goal := pickStartGoalFromList(passages, r)
	return &maze.MazeSpec{Grid: g, Start: start, Goal: goal}, nil
}
