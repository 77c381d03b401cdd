package generator

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/mazetrace/pkg/maze"
	"github.com/dshills/mazetrace/pkg/prng"
)

// Generator is the interface every maze-generation algorithm implements.
// Generate must consume randomness only via r, in the order its spec
// clause defines; two calls with the same rows/cols/params against two
// RNGs holding equal state must return byte-identical specs.
type Generator interface {
	// Generate produces one maze from rows x cols cells, using r for
	// every randomized decision and params for the algorithm's own
	// tunables (see each implementation for the keys it reads).
	Generate(rows, cols int, r *prng.RNG, params Params) (*maze.MazeSpec, error)

	// Name returns the generator's registration identifier.
	Name() string
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Generator)
)

// Register adds a generator to the global registry. Panics if name is
// already registered, since that indicates two packages both trying to
// own the same generator identifier.
func Register(name string, g Generator) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("generator: %q already registered", name))
	}
	registry[name] = g
}

// Get retrieves a registered generator by name, or nil if not found.
func Get(name string) Generator {
	mu.RLock()
	defer mu.RUnlock()

	return registry[name]
}

// List returns all registered generator names, sorted, for error
// messages and --help output.
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
