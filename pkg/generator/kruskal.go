package generator

import (
	"github.com/dshills/mazetrace/pkg/maze"
	"github.com/dshills/mazetrace/pkg/prng"
)

func init() {
	Register("kruskal", kruskalGenerator{})
}

type kruskalGenerator struct{}

func (kruskalGenerator) Name() string { return "kruskal" }

// kruskalEdge connects two parity-offset "rooms" through the wall cell
// halfway between them.
type kruskalEdge struct {
	roomA, roomB int
	wallX, wallY int
}

// Generate runs randomized Kruskal's algorithm over a room lattice:
// rooms sit at parity-offset coordinates, edges join adjacent rooms
// through the intermediate wall, and a shuffled edge list is unioned
// into a single spanning tree.
func (kruskalGenerator) Generate(rows, cols int, r *prng.RNG, _ Params) (*maze.MazeSpec, error) {
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
			g.Set(x, y, maze.Passage)
		}
	}

	var edges []kruskalEdge
	for _, room := range rooms {
		x, y := room.X, room.Y
		if x+2 < cols {
			if j, ok := roomIndex[maze.Point{X: x + 2, Y: y}]; ok {
				edges = append(edges, kruskalEdge{roomA: roomIndex[room], roomB: j, wallX: x + 1, wallY: y})
			}
		}
		if y+2 < rows {
			if j, ok := roomIndex[maze.Point{X: x, Y: y + 2}]; ok {
				edges = append(edges, kruskalEdge{roomA: roomIndex[room], roomB: j, wallX: x, wallY: y + 1})
			}
		}
	}

	r.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	uf := newUnionFind(len(rooms))
	for _, e := range edges {
		if uf.connected(e.roomA, e.roomB) {
			continue
		}
		uf.union(e.roomA, e.roomB)
		g.Set(e.wallX, e.wallY, maze.Passage)
	}

	start, goal := pickStartGoalOnceMore(g, r)
	return &maze.MazeSpec{Grid: g, Start: start, Goal: goal}, nil
}
