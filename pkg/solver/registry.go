package solver

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/mazetrace/pkg/maze"
)

// Heuristic estimates the cost from (x1,y1) to (x2,y2).
type Heuristic func(x1, y1, x2, y2 int) int

// Solver is the interface every registered search strategy implements.
type Solver interface {
	// Solve runs the search against spec and returns its reasoning trace
	// and final plan. A nil Plan means no path was found.
	Solve(spec *maze.MazeSpec, h Heuristic) (*maze.Trace, error)

	// Name returns the solver's registration identifier.
	Name() string
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Solver)
)

// Register adds a solver to the global registry. Panics if name is
// already registered.
func Register(name string, s Solver) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("solver: %q already registered", name))
	}
	registry[name] = s
}

// Get retrieves a registered solver by name, or nil if not found.
func Get(name string) Solver {
	mu.RLock()
	defer mu.RUnlock()

	return registry[name]
}

// List returns all registered solver names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
