package generator

import (
	"github.com/dshills/mazetrace/pkg/maze"
	"github.com/dshills/mazetrace/pkg/prng"
)

// pickPassage draws a random (x,y) pair by rejection sampling: draw
// rand_int(cols), rand_int(rows) and retry until the cell is a passage.
func pickPassage(g *maze.Grid, r *prng.RNG) maze.Point {
	for {
		x := r.Intn(g.Cols)
		y := r.Intn(g.Rows)
		if g.At(x, y) == maze.Passage {
			return maze.Point{X: x, Y: y}
		}
	}
}

// pickStartGoalLoop picks start by rejection, then loops picking goal by
// rejection until it differs from start. Used by dfs.
func pickStartGoalLoop(g *maze.Grid, r *prng.RNG) (start, goal maze.Point) {
	start = pickPassage(g, r)
	for {
		goal = pickPassage(g, r)
		if goal != start {
			return start, goal
		}
	}
}

// pickStartGoalOnceMore picks start and goal by rejection; if they
// collide, it draws exactly one more goal candidate and keeps it even if
// it still collides (on a 1x1 grid this can leave start == goal; 1x1
// grids are rejected before generation ever starts). Used by kruskal and
// wilson.
func pickStartGoalOnceMore(g *maze.Grid, r *prng.RNG) (start, goal maze.Point) {
	start = pickPassage(g, r)
	goal = pickPassage(g, r)
	if goal == start {
		goal = pickPassage(g, r)
	}
	return start, goal
}

// collectPassages lists every passage cell, scanning row-major (y outer,
// x inner), for the index-based start/goal pickers below.
func collectPassages(g *maze.Grid) []maze.Point {
	var cells []maze.Point
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if g.At(x, y) == maze.Passage {
				cells = append(cells, maze.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// pickStartGoalFromList draws index a := rand_int(len(cells)), then loops
// drawing index b := rand_int(len(cells)) until b != a. Used by
// drunkards_walk and cellular_automata, whose spec clauses pick start/goal
// by index into an enumerated passage list rather than by coordinate
// rejection.
func pickStartGoalFromList(cells []maze.Point, r *prng.RNG) (start, goal maze.Point) {
	a := r.Intn(len(cells))
	for {
		b := r.Intn(len(cells))
		if b != a {
			return cells[a], cells[b]
		}
	}
}
