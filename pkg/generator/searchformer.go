package generator

import (
	"github.com/dshills/mazetrace/pkg/maze"
	"github.com/dshills/mazetrace/pkg/prng"
	"github.com/dshills/mazetrace/pkg/solver"
)

func init() {
	Register("searchformer", searchformerGenerator{})
}

type searchformerGenerator struct{}

func (searchformerGenerator) Name() string { return "searchformer" }

// Generate samples a random wall mask, then a random start/goal pair,
// and keeps only configurations whose optimal plan is at least
// max(rows, cols) long — biasing the dataset toward mazes that actually
// require search rather than a near-trivial hop. It reuses the
// synchronous A* solver directly as its own acceptance test.
func (searchformerGenerator) Generate(rows, cols int, r *prng.RNG, _ Params) (*maze.MazeSpec, error) {
	total := rows * cols
	base := total / 10
	minWalls := 3 * base
	maxWalls := 5 * base
	minPathLen := rows
	if cols > minPathLen {
		minPathLen = cols
	}

	for {
		cellOrder := make([]int, total)
		for i := range cellOrder {
			cellOrder[i] = i
		}
		r.Shuffle(total, func(i, j int) { cellOrder[i], cellOrder[j] = cellOrder[j], cellOrder[i] })

		numWalls := minWalls + r.Intn(maxWalls-minWalls+1)

		g := maze.NewGrid(rows, cols)
		var free []int
		for i, cellIdx := range cellOrder {
			x, y := cellIdx%cols, cellIdx/cols
			if i < numWalls {
				continue // already a wall by NewGrid's zero value
			}
			g.Set(x, y, maze.Passage)
			free = append(free, cellIdx)
		}

		if spec, ok := trySearchformerPair(rows, cols, g, free, minPathLen, r); ok {
			return spec, nil
		}
		// 100 inner attempts exhausted without a long-enough plan:
		// resample the wall mask and try again.
	}
}

func trySearchformerPair(rows, cols int, g *maze.Grid, free []int, minPathLen int, r *prng.RNG) (*maze.MazeSpec, bool) {
	for attempt := 0; attempt < 100; attempt++ {
		r.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
		if len(free) < 2 {
			continue
		}

		startIdx, goalIdx := free[0], free[1]
		start := maze.Point{X: startIdx % cols, Y: startIdx / cols}
		goal := maze.Point{X: goalIdx % cols, Y: goalIdx / cols}

		trace, err := solver.SolveSync(rows, cols, g, start, goal, solver.Manhattan)
		if err != nil || trace.Plan == nil {
			continue
		}
		if len(trace.Plan) >= minPathLen {
			return &maze.MazeSpec{Grid: g, Start: start, Goal: goal}, true
		}
	}
	return nil, false
}
