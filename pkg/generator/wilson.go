package generator

import (
	"github.com/dshills/mazetrace/pkg/maze"
	"github.com/dshills/mazetrace/pkg/prng"
)

func init() {
	Register("wilson", wilsonGenerator{})
}

// wilsonDirs fixes the random walk's step order: right, left, down, up,
// each two cells so the step lands on another room.
var wilsonDirs = [4]maze.Point{
	{X: 2, Y: 0},
	{X: -2, Y: 0},
	{X: 0, Y: 2},
	{X: 0, Y: -2},
}

type wilsonGenerator struct{}

func (wilsonGenerator) Name() string { return "wilson" }

// Generate runs Wilson's loop-erased random walk over the same
// parity-offset room lattice kruskal uses. Unlike kruskal, rooms start
// as walls and only become passages once a walk carries them into the
// maze.
func (wilsonGenerator) Generate(rows, cols int, r *prng.RNG, _ Params) (*maze.MazeSpec, error) {
	offset := 1
	if r.Bool() {
		offset = 0
	}

	g := maze.NewGrid(rows, cols)

	var rooms []maze.Point
	roomIndex := make(map[maze.Point]int)
	for y := offset; y < rows; y += 2 {
		for x := offset; x < cols; x += 2 {
			p := maze.Point{X: x, Y: y}
			roomIndex[p] = len(rooms)
			rooms = append(rooms, p)
		}
	}

	inMaze := make([]bool, len(rooms))
	seedIdx := r.Intn(len(rooms))
	inMaze[seedIdx] = true
	g.Set(rooms[seedIdx].X, rooms[seedIdx].Y, maze.Passage)
	remaining := len(rooms) - 1

	for remaining > 0 {
		// Pick a random room not yet in the maze by rejection sampling,
		// consistent with every other random-cell selection in this spec.
		var rootIdx int
		for {
			rootIdx = r.Intn(len(rooms))
			if !inMaze[rootIdx] {
				break
			}
		}
		root := rooms[rootIdx]

		path := []maze.Point{root}
		pathIndex := map[maze.Point]int{root: 0}

		for {
			cur := path[len(path)-1]
			dir := wilsonDirs[r.Intn(4)]
			nx, ny := cur.X+dir.X, cur.Y+dir.Y
			if !g.InBounds(nx, ny) {
				continue
			}

			neighbor := maze.Point{X: nx, Y: ny}
			// A step of ±2 along one axis always preserves the room
			// parity, so neighbor is always a registered room.
			nIdx := roomIndex[neighbor]

			if inMaze[nIdx] {
				path = append(path, neighbor)
				break
			}
			if idx, ok := pathIndex[neighbor]; ok {
				path = path[:idx+1]
				pathIndex = make(map[maze.Point]int, len(path))
				for i, p := range path {
					pathIndex[p] = i
				}
				continue
			}
			pathIndex[neighbor] = len(path)
			path = append(path, neighbor)
		}

		for i, p := range path {
			idx := roomIndex[p]
			if !inMaze[idx] {
				inMaze[idx] = true
				remaining--
			}
			g.Set(p.X, p.Y, maze.Passage)
			if i > 0 {
				prev := path[i-1]
				wx, wy := (prev.X+p.X)/2, (prev.Y+p.Y)/2
				g.Set(wx, wy, maze.Passage)
			}
		}
	}

	start, goal := pickStartGoalOnceMore(g, r)
	return &maze.MazeSpec{Grid: g, Start: start, Goal: goal}, nil
}
