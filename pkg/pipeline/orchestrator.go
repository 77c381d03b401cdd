package pipeline

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/dshills/mazetrace/internal/errs"
	"github.com/dshills/mazetrace/pkg/generator"
	"github.com/dshills/mazetrace/pkg/maze"
	"github.com/dshills/mazetrace/pkg/prng"
	"github.com/dshills/mazetrace/pkg/serialize"
	"github.com/dshills/mazetrace/pkg/solver"
)

// batchJob is a contiguous range of encoded specs handed from the
// producer to the dispatcher, tagged with its starting example index.
type batchJob struct {
	start int
	specs []maze.EncodedSpec
}

// batchResult is a dispatched batch's serialized output (or the error
// that aborted it), keyed by the same starting index.
type batchResult struct {
	start int
	lines [][]byte
	err   error
}

// batcher owns the mutable dispatch state: the current batch size, the
// warm-up counter, and worker occupancy, all under one mutex since every
// field changes together on the dispatcher's hot path.
type batcher struct {
	mu               sync.Mutex
	currentBatchSize int
	maxBatchSize     int
	dispatched       int
	warmupBatches    int
	activeWorkers    int
	numWorkers       int
}

func newBatcher(initialSize, maxSize, numWorkers int) *batcher {
	return &batcher{
		currentBatchSize: initialSize,
		maxBatchSize:     maxSize,
		warmupBatches:    numWorkers + 1,
		numWorkers:       numWorkers,
	}
}

func (b *batcher) size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentBatchSize
}

// afterDispatch records one more dispatched batch and, once warm-up has
// elapsed and every worker is idle (generation is the bottleneck),
// doubles currentBatchSize up to maxBatchSize. Called with no workers
// holding the dispatch mutex, immediately after handing a batch off.
func (b *batcher) afterDispatch() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dispatched++
	if b.dispatched <= b.warmupBatches {
		return
	}
	if b.activeWorkers == 0 && b.currentBatchSize < b.maxBatchSize {
		b.currentBatchSize *= 2
		if b.currentBatchSize > b.maxBatchSize {
			b.currentBatchSize = b.maxBatchSize
		}
	}
}

func (b *batcher) workerStarted() {
	b.mu.Lock()
	b.activeWorkers++
	b.mu.Unlock()
}

func (b *batcher) workerFinished() {
	b.mu.Lock()
	b.activeWorkers--
	b.mu.Unlock()
}

// Run executes one full dataset generation: it produces mazes
// sequentially from a single PRNG, solves and serializes them across a
// pool of workers, and writes the resulting lines to out in strict
// example-index order. Run blocks until the entire count is emitted or
// an error aborts the run.
func Run(ctx context.Context, cfg *Config, out io.Writer, log *logging.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	gen := generator.Get(cfg.Generator)
	slv := solver.Get(cfg.Solver)
	rng := prng.New(cfg.EffectiveSeed())
	numWorkers := cfg.NumWorkers()

	b := newBatcher(cfg.BatchSize, cfg.MaxBatchSize, numWorkers)
	credits := semaphore.NewWeighted(int64(cfg.ProducerBuffer))
	workerGate := semaphore.NewWeighted(int64(numWorkers))

	jobs := make(chan batchJob)
	results := make(chan batchResult, numWorkers)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(jobs)
		return produce(ctx, cfg, gen, rng, b, credits, jobs)
	})

	eg.Go(func() error {
		var workers sync.WaitGroup
		defer workers.Wait()

		for job := range jobs {
			credits.Release(1)
			b.afterDispatch()
			log.Debugf("dispatching batch start=%d size=%d currentBatchSize=%d", job.start, len(job.specs), b.size())

			if err := workerGate.Acquire(ctx, 1); err != nil {
				return err
			}
			b.workerStarted()
			workers.Add(1)
			go func(job batchJob) {
				defer workers.Done()
				defer workerGate.Release(1)
				defer b.workerFinished()

				res := solveBatch(job, slv, cfg.Generator)
				select {
				case results <- res:
				case <-ctx.Done():
				}
			}(job)
		}
		return nil
	})

	eg.Go(func() error {
		return consume(ctx, cfg.Count, results, out, log)
	})

	return eg.Wait()
}

// produce generates every batch sequentially, consuming one credit per
// batch before drawing from the shared PRNG, and hands each completed
// batch to the dispatcher over jobs.
func produce(ctx context.Context, cfg *Config, gen generator.Generator, rng *prng.RNG, b *batcher, credits *semaphore.Weighted, jobs chan<- batchJob) error {
	start := 0
	for start < cfg.Count {
		if err := credits.Acquire(ctx, 1); err != nil {
			return err
		}

		size := b.size()
		if start+size > cfg.Count {
			size = cfg.Count - start
		}

		specs := make([]maze.EncodedSpec, 0, size)
		for i := 0; i < size; i++ {
			spec, err := gen.Generate(cfg.Rows, cfg.Cols, rng, generator.Params(cfg.Params))
			if err != nil {
				return &errs.GeneratorError{Generator: cfg.Generator, FirstIdx: start, LastIdx: start + size - 1, Err: err}
			}
			specs = append(specs, maze.Encode(spec))
		}

		select {
		case jobs <- batchJob{start: start, specs: specs}:
		case <-ctx.Done():
			return ctx.Err()
		}

		start += size
	}
	return nil
}

// unconnectedGenerators names generators whose output is not guaranteed
// to connect start and goal: cellular_automata's cave smoothing can
// partition the grid into disconnected caverns, and a goal landing in a
// different cavern than start has no plan. Every other generator either
// carves a spanning tree/perfect maze (dfs, kruskal, wilson), grows
// passages one connected step at a time (drunkards_walk), or resamples
// until it finds a solvable configuration itself (searchformer).
var unconnectedGenerators = map[string]bool{
	"cellular_automata": true,
}

// solveBatch decodes, solves, and serializes every example in a batch. A
// solver returning no plan is a fatal SolverError for generators that are
// supposed to always hand astar a solvable maze; for generators that can
// legitimately produce an unreachable goal, it is instead serialized as
// an example with an empty plan.
func solveBatch(job batchJob, slv solver.Solver, generatorName string) batchResult {
	lines := make([][]byte, 0, len(job.specs))
	for i, encoded := range job.specs {
		idx := job.start + i

		spec, err := maze.Decode(encoded)
		if err != nil {
			return batchResult{start: job.start, err: &errs.TransportError{BatchStart: job.start, Err: err}}
		}

		trace, err := slv.Solve(spec, solver.Manhattan)
		if err != nil {
			return batchResult{start: job.start, err: &errs.SolverError{Idx: idx, Err: err}}
		}
		if trace.Plan == nil && !unconnectedGenerators[generatorName] {
			return batchResult{start: job.start, err: &errs.SolverError{Idx: idx, Err: fmt.Errorf("no plan found for a maze expected to be solvable")}}
		}

		lines = append(lines, serialize.Line(serialize.Example{Spec: spec, Trace: trace}))
	}
	return batchResult{start: job.start, lines: lines}
}

// consume implements the promise-queue ordering contract: it buffers
// completed batches keyed by start index and writes out only the
// contiguous prefix beginning at the next expected index.
func consume(ctx context.Context, count int, results <-chan batchResult, out io.Writer, log *logging.Logger) error {
	pending := make(map[int][][]byte)
	next := 0

	for next < count {
		select {
		case res, ok := <-results:
			if !ok {
				return fmt.Errorf("pipeline: result stream closed before all %d examples were emitted", count)
			}
			if res.err != nil {
				return res.err
			}
			pending[res.start] = res.lines

			for {
				lines, ready := pending[next]
				if !ready {
					break
				}
				for _, line := range lines {
					if _, err := out.Write(line); err != nil {
						return fmt.Errorf("writing output: %w", err)
					}
				}
				log.Debugf("yielded batch start=%d count=%d", next, len(lines))
				delete(pending, next)
				next += len(lines)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
