package generator

import (
	"testing"

	"github.com/dshills/mazetrace/pkg/maze"
	"github.com/dshills/mazetrace/pkg/prng"
)

func TestDrunkardsWalk_ProducesWellFormedGrid(t *testing.T) {
	gen := Get("drunkards_walk")
	spec, err := gen.Generate(10, 10, prng.New(5), Params{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	assertWellFormed(t, spec)
}

func TestDrunkardsWalk_DeterministicAcrossSameSeed(t *testing.T) {
	gen := Get("drunkards_walk")
	a, err := gen.Generate(10, 10, prng.New(5), Params{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	b, err := gen.Generate(10, 10, prng.New(5), Params{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	assertSpecsEqual(t, a, b)
}

func TestDrunkardsWalk_RespectsCoverageFloor(t *testing.T) {
	gen := Get("drunkards_walk")
	rows, cols := 10, 10
	coverage := 0.3
	spec, err := gen.Generate(rows, cols, prng.New(17), Params{"coverage": "0.3"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	carved := 0
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if spec.Grid.At(x, y) == maze.Passage {
				carved++
			}
		}
	}
	want := int(float64(rows*cols) * coverage)
	if carved < want {
		t.Fatalf("carved %d passages, want at least %d for coverage %v", carved, want, coverage)
	}
}

func TestDrunkardsWalk_DefaultCoverageIsHalf(t *testing.T) {
	p := Params{}
	if got := p.Float64("coverage", 0.5); got != 0.5 {
		t.Fatalf("default coverage = %v, want 0.5", got)
	}
}
