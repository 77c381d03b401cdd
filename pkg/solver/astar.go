package solver

import (
	"math"

	"github.com/dshills/mazetrace/pkg/maze"
)

func init() {
	Register("astar", astarSolver{})
}

// astarNeighborOffsets fixes the order neighbors are considered in:
// up, right, down, left. The emitted reasoning trace depends on this
// exact order being stable across runs.
var astarNeighborOffsets = [4]maze.Point{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// Manhattan is the canonical heuristic: |x1-x2| + |y1-y2|.
func Manhattan(x1, y1, x2, y2 int) int {
	return absInt(x1-x2) + absInt(y1-y2)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type astarSolver struct{}

func (astarSolver) Name() string { return "astar" }

func (astarSolver) Solve(spec *maze.MazeSpec, h Heuristic) (*maze.Trace, error) {
	return SolveSync(spec.Grid.Rows, spec.Grid.Cols, spec.Grid, spec.Start, spec.Goal, h)
}

const infCost = math.MaxInt32

// SolveSync is the synchronous A* search itself, exposed directly so
// generators that need to test solvability (searchformer) can call it
// without going through the registry.
//
// The open set is scanned linearly every iteration rather than kept in a
// heap: ties in fScore are broken by "smallest index in the open set",
// which only a linear scan observes exactly the way spec requires.
func SolveSync(rows, cols int, grid *maze.Grid, start, goal maze.Point, h Heuristic) (*maze.Trace, error) {
	gScore := newIntGrid(rows, cols, infCost)
	fScore := newIntGrid(rows, cols, infCost)
	cameFrom := make([][]*maze.Point, rows)
	closed := make([][]bool, rows)
	inOpen := make([][]bool, rows)
	for y := 0; y < rows; y++ {
		cameFrom[y] = make([]*maze.Point, cols)
		closed[y] = make([]bool, cols)
		inOpen[y] = make([]bool, cols)
	}

	gScore[start.Y][start.X] = 0
	fScore[start.Y][start.X] = h(start.X, start.Y, goal.X, goal.Y)
	inOpen[start.Y][start.X] = true

	open := []maze.Point{start}
	var reasoning []maze.ReasoningEvent

	for {
		if len(open) == 0 {
			return &maze.Trace{Reasoning: reasoning, Plan: nil}, nil
		}

		bestIdx := 0
		bestF := fScore[open[0].Y][open[0].X]
		for i := 1; i < len(open); i++ {
			f := fScore[open[i].Y][open[i].X]
			if f < bestF {
				bestF = f
				bestIdx = i
			}
		}

		current := open[bestIdx]
		open = append(open[:bestIdx], open[bestIdx+1:]...)
		inOpen[current.Y][current.X] = false

		curG := gScore[current.Y][current.X]
		curH := h(current.X, current.Y, goal.X, goal.Y)
		reasoning = append(reasoning, maze.ReasoningEvent{Tag: maze.EventClose, X: current.X, Y: current.Y, G: curG, H: curH})

		if current == goal {
			plan := reconstructPlan(cameFrom, start, goal)
			return &maze.Trace{Reasoning: reasoning, Plan: plan}, nil
		}
		closed[current.Y][current.X] = true

		for _, d := range astarNeighborOffsets {
			nx, ny := current.X+d.X, current.Y+d.Y
			if !grid.InBounds(nx, ny) || grid.At(nx, ny) == maze.Wall || closed[ny][nx] {
				continue
			}

			tentative := curG + 1
			if tentative >= gScore[ny][nx] {
				continue
			}

			cameFrom[ny][nx] = &maze.Point{X: current.X, Y: current.Y}
			gScore[ny][nx] = tentative
			nh := h(nx, ny, goal.X, goal.Y)
			fScore[ny][nx] = tentative + nh

			if !inOpen[ny][nx] {
				open = append(open, maze.Point{X: nx, Y: ny})
				inOpen[ny][nx] = true
			}
			reasoning = append(reasoning, maze.ReasoningEvent{Tag: maze.EventCreate, X: nx, Y: ny, G: tentative, H: nh})
		}
	}
}

func newIntGrid(rows, cols, fill int) [][]int {
	g := make([][]int, rows)
	for y := range g {
		g[y] = make([]int, cols)
		for x := range g[y] {
			g[y][x] = fill
		}
	}
	return g
}

// reconstructPlan walks cameFrom from goal back to start, stopping when
// a back-pointer is missing (which happens exactly at start), then
// appends start explicitly and reverses.
func reconstructPlan(cameFrom [][]*maze.Point, start, goal maze.Point) []maze.Point {
	var plan []maze.Point
	cur := goal
	for {
		prev := cameFrom[cur.Y][cur.X]
		if prev == nil {
			break
		}
		plan = append(plan, cur)
		cur = *prev
	}
	plan = append(plan, start)

	for i, j := 0, len(plan)-1; i < j; i, j = i+1, j-1 {
		plan[i], plan[j] = plan[j], plan[i]
	}
	return plan
}
