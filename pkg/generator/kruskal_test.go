package generator

import (
	"testing"

	"github.com/dshills/mazetrace/pkg/prng"
)

func TestKruskal_ProducesWellFormedGrid(t *testing.T) {
	gen := Get("kruskal")
	spec, err := gen.Generate(9, 11, prng.New(3), Params{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	assertWellFormed(t, spec)
}

func TestKruskal_DeterministicAcrossSameSeed(t *testing.T) {
	gen := Get("kruskal")
	a, err := gen.Generate(10, 10, prng.New(55), Params{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	b, err := gen.Generate(10, 10, prng.New(55), Params{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	assertSpecsEqual(t, a, b)
}

func TestKruskal_AllRoomsConnected(t *testing.T) {
	gen := Get("kruskal")
	spec, err := gen.Generate(12, 14, prng.New(9), Params{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	// A minimum spanning tree over the room lattice connects every room
	// cell in a single component.
	reachable := floodFill(spec.Grid, spec.Start)
	if !reachable[spec.Goal] {
		t.Fatal("goal unreachable from start: kruskal's spanning tree left rooms disconnected")
	}
}

func TestKruskalEdge_ConnectsAdjacentRooms(t *testing.T) {
	e := kruskalEdge{roomA: 0, roomB: 1, wallX: 1, wallY: 0}
	if e.wallX != 1 || e.wallY != 0 {
		t.Fatalf("unexpected wall coordinates: (%d,%d)", e.wallX, e.wallY)
	}
}

func TestUnionFind_UnionConnectsSets(t *testing.T) {
	uf := newUnionFind(5)
	if uf.connected(0, 1) {
		t.Fatal("0 and 1 should start disconnected")
	}
	uf.union(0, 1)
	if !uf.connected(0, 1) {
		t.Fatal("0 and 1 should be connected after union")
	}
	uf.union(1, 2)
	if !uf.connected(0, 2) {
		t.Fatal("transitive union should connect 0 and 2")
	}
	if uf.connected(0, 3) {
		t.Fatal("0 and 3 were never unioned")
	}
}
