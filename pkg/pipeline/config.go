// Package pipeline implements the producer/worker-pool/consumer
// orchestrator that turns a Config into an ordered stream of serialized
// examples: one producer draws mazes from the shared PRNG, a pool of
// solver workers solves and serializes batches in parallel, and a
// consumer drains completed batches in strict index order.
package pipeline

import (
	"crypto/sha256"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/dshills/mazetrace/internal/errs"
	"github.com/dshills/mazetrace/pkg/generator"
	"github.com/dshills/mazetrace/pkg/solver"
)

// Mode selects which half of the PRNG seed space a run draws from.
type Mode string

const (
	ModeTrain Mode = "train"
	ModeTest  Mode = "test"
)

const (
	defaultBatchSize      = 500
	defaultProducerBuffer = 9
	defaultMaxBatchSize   = 2000
)

// Config is the immutable run description. Every field except BatchSize
// is fixed for the lifetime of a run; BatchSize is the initial value
// that the dispatcher may grow (never shrink) during dynamic batching.
type Config struct {
	Generator string            `yaml:"generator"`
	Solver    string            `yaml:"solver"`
	Rows      int               `yaml:"rows"`
	Cols      int               `yaml:"cols"`
	Mode      Mode              `yaml:"mode"`
	Seed      uint64            `yaml:"seed"`
	Count     int               `yaml:"count"`
	BatchSize int               `yaml:"batchSize"`
	Params    map[string]string `yaml:"params,omitempty"`

	// Ambient fields: these tune execution, never the deterministic
	// output stream (spec binds byte-identity across all of them).
	ConfigPath     string `yaml:"-"`
	DebugSVGPath   string `yaml:"debugSVGPath,omitempty"`
	Workers        int    `yaml:"workers,omitempty"`
	ProducerBuffer int    `yaml:"producerBuffer,omitempty"`
	MaxBatchSize   int    `yaml:"maxBatchSize,omitempty"`
	OutputPath     string `yaml:"outputPath,omitempty"`
	LogLevel       string `yaml:"logLevel,omitempty"`
}

// LoadConfig reads a YAML side file. Fields left zero-valued are filled
// with defaults by ApplyDefaults, not here, so CLI flag overrides applied
// after loading see the same zero-value-means-unset convention flags do.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewConfigError(fmt.Sprintf("reading config file %q: %v", path, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errs.NewConfigError(fmt.Sprintf("parsing YAML config %q: %v", path, err))
	}
	cfg.ConfigPath = path
	return &cfg, nil
}

// ApplyDefaults fills every zero-valued ambient field with its documented
// default. It never touches Generator, Solver, Rows, Cols, Mode, Seed,
// Count, or Params — those have no safe default and must be supplied.
func (c *Config) ApplyDefaults() {
	if c.BatchSize == 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.ProducerBuffer == 0 {
		c.ProducerBuffer = defaultProducerBuffer
	}
	if c.MaxBatchSize == 0 {
		c.MaxBatchSize = defaultMaxBatchSize
	}
	if c.LogLevel == "" {
		c.LogLevel = "warning"
	}
}

// Validate checks the configuration against the generator/solver
// registries and the grid/mode/batching constraints the pipeline
// requires, returning a *errs.ConfigError describing the first failure.
func (c *Config) Validate() error {
	if generator.Get(c.Generator) == nil {
		return errs.NewConfigError(fmt.Sprintf("unknown generator %q; available: %v", c.Generator, generator.List()))
	}
	if solver.Get(c.Solver) == nil {
		return errs.NewConfigError(fmt.Sprintf("unknown solver %q; available: %v", c.Solver, solver.List()))
	}
	if c.Rows < 1 || c.Cols < 1 {
		return errs.NewConfigError(fmt.Sprintf("rows and cols must be >= 1, got %dx%d", c.Rows, c.Cols))
	}
	if c.Rows == 1 && c.Cols == 1 {
		return errs.NewConfigError("1x1 grids are unsupported: start and goal cannot be distinct")
	}
	if c.Mode != ModeTrain && c.Mode != ModeTest {
		return errs.NewConfigError(fmt.Sprintf("mode must be %q or %q, got %q", ModeTrain, ModeTest, c.Mode))
	}
	if c.Count < 1 {
		return errs.NewConfigError(fmt.Sprintf("count must be >= 1, got %d", c.Count))
	}
	if c.BatchSize < 1 {
		return errs.NewConfigError(fmt.Sprintf("batchSize must be >= 1, got %d", c.BatchSize))
	}
	if c.MaxBatchSize < c.BatchSize {
		return errs.NewConfigError(fmt.Sprintf("maxBatchSize (%d) must be >= batchSize (%d)", c.MaxBatchSize, c.BatchSize))
	}
	if c.ProducerBuffer < 1 {
		return errs.NewConfigError(fmt.Sprintf("producerBuffer must be >= 1, got %d", c.ProducerBuffer))
	}
	return nil
}

// EffectiveSeed folds Mode into Seed so train and test splits drawn from
// the same base seed never collide:
// (seed*2 + (mode=="test"?1:0)) mod 2^32.
func (c *Config) EffectiveSeed() uint64 {
	parity := uint64(0)
	if c.Mode == ModeTest {
		parity = 1
	}
	return (c.Seed*2 + parity) % (1 << 32)
}

// NumWorkers resolves the worker-pool size:
// max(1, min(count, requested ?? cpus-2)), capped to 2 when count < 100,
// so a small run never pays for idle workers.
func (c *Config) NumWorkers() int {
	requested := c.Workers
	if requested <= 0 {
		requested = runtime.NumCPU() - 2
		if requested < 1 {
			requested = 1
		}
	}
	n := requested
	if c.Count < n {
		n = c.Count
	}
	if c.Count < 100 && n > 2 {
		n = 2
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Hash computes a diagnostic fingerprint of the configuration, used only
// for run logging/identification. It never feeds the PRNG: the seed
// derivation normative to output is EffectiveSeed, not this hash.
func (c *Config) Hash() []byte {
	data, err := yaml.Marshal(c)
	if err != nil {
		h := sha256.Sum256([]byte(fmt.Sprintf("%d", c.Seed)))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}
