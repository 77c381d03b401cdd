package generator

import (
	"fmt"

	"github.com/dshills/mazetrace/pkg/maze"
	"github.com/dshills/mazetrace/pkg/prng"
)

func init() {
	Register("cellular_automata", cellularGenerator{})
}

type cellularGenerator struct{}

func (cellularGenerator) Name() string { return "cellular_automata" }

// Generate fills the grid randomly, then smooths it with a standard
// cave-generation cellular automaton: cells outside the grid count as
// alive (wall), so the border tends to stay solid. The headless path
// does not verify connectivity, so start and goal can land in separate
// caverns with no path between them.
func (cellularGenerator) Generate(rows, cols int, r *prng.RNG, params Params) (*maze.MazeSpec, error) {
	fillProbability := params.Float64("fillProbability", 0.45)
	survivalThreshold := params.Int("survivalThreshold", 4)
	birthThreshold := params.Int("birthThreshold", 5)
	iterations := params.Int("iterations", 3)

	g := maze.NewGrid(rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if r.Float64() < fillProbability {
				g.Set(x, y, maze.Wall)
			} else {
				g.Set(x, y, maze.Passage)
			}
		}
	}

	for i := 0; i < iterations; i++ {
		g = stepCellularAutomaton(g, survivalThreshold, birthThreshold)
	}

	passages := collectPassages(g)
	if len(passages) < 2 {
		return nil, fmt.Errorf("cellular_automata: smoothing left fewer than two passage cells on a %dx%d grid", rows, cols)
	}

	start, goal := pickStartGoalFromList(passages, r)
	return &maze.MazeSpec{Grid: g, Start: start, Goal: goal}, nil
}

// stepCellularAutomaton computes one synchronous CA generation: every
// cell's next value is derived entirely from the previous grid, never
// from cells already updated in the same pass.
func stepCellularAutomaton(g *maze.Grid, survivalThreshold, birthThreshold int) *maze.Grid {
	next := maze.NewGrid(g.Rows, g.Cols)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			alive := countAliveNeighbors(g, x, y)
			if g.At(x, y) == maze.Wall {
				if alive < survivalThreshold {
					next.Set(x, y, maze.Passage)
				} else {
					next.Set(x, y, maze.Wall)
				}
			} else {
				if alive > birthThreshold {
					next.Set(x, y, maze.Wall)
				} else {
					next.Set(x, y, maze.Passage)
				}
			}
		}
	}
	return next
}

// countAliveNeighbors counts wall ("alive") cells in the 8-neighborhood
// of (x,y), treating any out-of-grid neighbor as alive.
func countAliveNeighbors(g *maze.Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				count++
				continue
			}
			if g.At(nx, ny) == maze.Wall {
				count++
			}
		}
	}
	return count
}
