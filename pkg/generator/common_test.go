package generator

import (
	"testing"

	"github.com/dshills/mazetrace/pkg/maze"
	"github.com/dshills/mazetrace/pkg/prng"
)

func TestPickPassage_OnlyReturnsPassageCells(t *testing.T) {
	g := maze.NewGrid(5, 5)
	g.Set(2, 2, maze.Passage)
	g.Set(3, 3, maze.Passage)

	r := prng.New(1)
	for i := 0; i < 50; i++ {
		p := pickPassage(g, r)
		if g.At(p.X, p.Y) != maze.Passage {
			t.Fatalf("pickPassage returned non-passage cell %v", p)
		}
	}
}

func TestPickStartGoalLoop_AlwaysDistinct(t *testing.T) {
	g := maze.NewGrid(3, 3)
	g.Set(0, 0, maze.Passage)
	g.Set(1, 0, maze.Passage)

	r := prng.New(4)
	for i := 0; i < 20; i++ {
		start, goal := pickStartGoalLoop(g, r)
		if start == goal {
			t.Fatalf("start and goal must differ, both %v", start)
		}
	}
}

func TestCollectPassages_RowMajorOrder(t *testing.T) {
	g := maze.NewGrid(2, 3)
	g.Set(0, 0, maze.Passage)
	g.Set(2, 0, maze.Passage)
	g.Set(1, 1, maze.Passage)

	got := collectPassages(g)
	want := []maze.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}}
	if len(got) != len(want) {
		t.Fatalf("collectPassages = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("collectPassages[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPickStartGoalFromList_AlwaysDistinctIndices(t *testing.T) {
	cells := []maze.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	r := prng.New(8)
	for i := 0; i < 20; i++ {
		start, goal := pickStartGoalFromList(cells, r)
		if start == goal {
			t.Fatalf("start and goal must differ, both %v", start)
		}
	}
}
