package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/dshills/mazetrace/internal/errs"
	"github.com/dshills/mazetrace/internal/renderdebug"
	"github.com/dshills/mazetrace/internal/runlog"
	"github.com/dshills/mazetrace/internal/sink"
	"github.com/dshills/mazetrace/pkg/generator"
	"github.com/dshills/mazetrace/pkg/pipeline"
	"github.com/dshills/mazetrace/pkg/prng"
	"github.com/dshills/mazetrace/pkg/solver"
)

const version = "1.0.0"

// knownFlagNames lists every flag main registers against the standard
// flag package, by every alias. Anything else on the command line is a
// generator parameter, collected before flag.Parse ever sees it.
var knownFlagNames = map[string]bool{
	"generator": true, "g": true,
	"solver": true, "s": true,
	"rows": true, "r": true,
	"cols": true, "c": true,
	"mode": true, "m": true,
	"seed": true,
	"count": true, "n": true,
	"batch-size":       true,
	"output":           true, "o": true,
	"config":           true,
	"workers":          true,
	"producer-buffer":  true,
	"max-batch-size":   true,
	"debug-svg":        true,
	"log-level":        true,
	"help":             true,
	"version":          true,
}

func main() {
	args, genParams := splitGeneratorParams(os.Args[1:], knownFlagNames)

	fs := flag.NewFlagSet("mazetrace", flag.ContinueOnError)

	var (
		generatorName string
		solverName    string
		rows, cols    int
		mode          string
		seed          uint64
		count         int
		batchSize     int
		outputPath    string
		configPath    string
		workers       int
		producerBuf   int
		maxBatchSize  int
		debugSVGPath  string
		logLevel      string
		showHelp      bool
		showVersion   bool
	)

	fs.StringVar(&generatorName, "generator", "", "Generator name (see --help for the list)")
	fs.StringVar(&generatorName, "g", "", "Alias for --generator")
	fs.StringVar(&solverName, "solver", "astar", "Solver name; must be astar")
	fs.StringVar(&solverName, "s", "astar", "Alias for --solver")
	fs.IntVar(&rows, "rows", 30, "Grid rows")
	fs.IntVar(&rows, "r", 30, "Alias for --rows")
	fs.IntVar(&cols, "cols", 30, "Grid cols")
	fs.IntVar(&cols, "c", 30, "Alias for --cols")
	fs.StringVar(&mode, "mode", "train", "train or test")
	fs.StringVar(&mode, "m", "train", "Alias for --mode")
	fs.Uint64Var(&seed, "seed", 42, "Base seed")
	fs.IntVar(&count, "count", 1, "Number of examples to emit")
	fs.IntVar(&count, "n", 1, "Alias for --count")
	fs.IntVar(&batchSize, "batch-size", 500, "Initial batch size")
	fs.StringVar(&outputPath, "output", "", "Output file path; empty means stdout")
	fs.StringVar(&outputPath, "o", "", "Alias for --output")
	fs.StringVar(&configPath, "config", "", "Optional YAML config file; flags override it")
	fs.IntVar(&workers, "workers", 0, "Explicit worker-pool size override")
	fs.IntVar(&producerBuf, "producer-buffer", 0, "Producer credit buffer (default 9)")
	fs.IntVar(&maxBatchSize, "max-batch-size", 0, "Dynamic batching ceiling (default 2000)")
	fs.StringVar(&debugSVGPath, "debug-svg", "", "Render example 0's maze+plan to this SVG path")
	fs.StringVar(&logLevel, "log-level", "warning", "go-logging level: debug, info, warning, error, critical")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Printf("mazetrace version %s\n", version)
		os.Exit(0)
	}
	if showHelp {
		printHelp()
		os.Exit(0)
	}

	cfg, err := buildConfig(configPath, generatorName, solverName, rows, cols, mode, seed, count, batchSize, workers, producerBuf, maxBatchSize, outputPath, debugSVGPath, logLevel, genParams, fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig loads an optional YAML file, then applies every
// explicitly-set flag on top of it (flags win), matching the teacher's
// "load config, then override with flags" precedence.
func buildConfig(configPath, generatorName, solverName string, rows, cols int, mode string, seed uint64, count, batchSize, workers, producerBuf, maxBatchSize int, outputPath, debugSVGPath, logLevel string, genParams map[string]string, fs *flag.FlagSet) (*pipeline.Config, error) {
	var cfg *pipeline.Config
	if configPath != "" {
		loaded, err := pipeline.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = &pipeline.Config{}
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["generator"] || set["g"] || cfg.Generator == "" {
		cfg.Generator = generatorName
	}
	if set["solver"] || set["s"] || cfg.Solver == "" {
		cfg.Solver = solverName
	}
	if set["rows"] || set["r"] || cfg.Rows == 0 {
		cfg.Rows = rows
	}
	if set["cols"] || set["c"] || cfg.Cols == 0 {
		cfg.Cols = cols
	}
	if set["mode"] || set["m"] || cfg.Mode == "" {
		cfg.Mode = pipeline.Mode(mode)
	}
	if set["seed"] || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if set["count"] || set["n"] || cfg.Count == 0 {
		cfg.Count = count
	}
	if set["batch-size"] || cfg.BatchSize == 0 {
		cfg.BatchSize = batchSize
	}
	if set["output"] || set["o"] {
		cfg.OutputPath = outputPath
	}
	if set["workers"] {
		cfg.Workers = workers
	}
	if set["producer-buffer"] {
		cfg.ProducerBuffer = producerBuf
	}
	if set["max-batch-size"] {
		cfg.MaxBatchSize = maxBatchSize
	}
	if set["debug-svg"] {
		cfg.DebugSVGPath = debugSVGPath
	}
	if set["log-level"] || cfg.LogLevel == "" {
		cfg.LogLevel = logLevel
	}
	if len(genParams) > 0 {
		if cfg.Params == nil {
			cfg.Params = make(map[string]string, len(genParams))
		}
		for k, v := range genParams {
			cfg.Params[k] = v
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *pipeline.Config) error {
	log := runlog.New(cfg.LogLevel)
	log.Infof("starting run generator=%s solver=%s rows=%d cols=%d mode=%s seed=%d count=%d config-hash=%x",
		cfg.Generator, cfg.Solver, cfg.Rows, cfg.Cols, cfg.Mode, cfg.Seed, cfg.Count, cfg.Hash())

	out, err := sink.Open(cfg.OutputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := pipeline.Run(context.Background(), cfg, out, log); err != nil {
		logConfigError(log, err)
		return err
	}

	if cfg.DebugSVGPath != "" {
		if err := renderFirstExample(cfg); err != nil {
			return fmt.Errorf("rendering debug SVG: %w", err)
		}
	}

	return nil
}

// renderFirstExample regenerates example 0 deterministically (the PRNG
// is a pure function of its seed and draw index, so replaying from the
// same seed reproduces it) purely to feed the non-normative SVG render;
// it is never part of the dataset stream.
func renderFirstExample(cfg *pipeline.Config) error {
	gen := generator.Get(cfg.Generator)
	slv := solver.Get(cfg.Solver)
	rng := prng.New(cfg.EffectiveSeed())

	spec, err := gen.Generate(cfg.Rows, cfg.Cols, rng, generator.Params(cfg.Params))
	if err != nil {
		return err
	}
	trace, err := slv.Solve(spec, solver.Manhattan)
	if err != nil {
		return err
	}
	return renderdebug.SaveToFile(spec, trace, renderdebug.DefaultOptions(), cfg.DebugSVGPath)
}

// logConfigError logs the sorted generator/solver name lists when the
// run failed with any *errs.ConfigError; other error kinds are not logged
// here.
func logConfigError(log *logging.Logger, err error) {
	var cfgErr *errs.ConfigError
	if errors.As(err, &cfgErr) {
		log.Errorf("config error: %v; available generators=%v solvers=%v", cfgErr, generator.List(), solver.List())
	}
}

// splitGeneratorParams pulls every --name/-name value pair whose name is
// not in known out of args, returning the remaining args (safe to hand
// to flag.Parse) and the pulled pairs as generator parameters, so any
// option a generator defines is forwarded to it by name without main
// needing to know about it.
func splitGeneratorParams(args []string, known map[string]bool) ([]string, map[string]string) {
	rest := make([]string, 0, len(args))
	params := make(map[string]string)

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := parseFlagToken(arg)
		if name == "" || known[name] {
			rest = append(rest, arg)
			continue
		}

		if hasValue {
			params[name] = value
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			params[name] = args[i+1]
			i++
		} else {
			params[name] = "true"
		}
	}
	return rest, params
}

// parseFlagToken splits "--name=value", "-name=value", "--name", or
// "-name" into its flag name and, if present, its inline value.
func parseFlagToken(arg string) (name, value string, hasValue bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", "", false
	}
	trimmed := strings.TrimLeft(arg, "-")
	if eq := strings.IndexByte(trimmed, '='); eq >= 0 {
		return trimmed[:eq], trimmed[eq+1:], true
	}
	return trimmed, "", false
}

func printHelp() {
	fmt.Printf("mazetrace version %s\n\n", version)
	fmt.Println("Generates reproducible maze + A* reasoning-trace datasets.")
	fmt.Println("\nUsage:")
	fmt.Println("  mazetrace --generator <name> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  --generator, -g string   Generator name")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  --solver, -s string      Solver name (default: astar)")
	fmt.Println("  --rows, -r int           Grid rows (default: 30)")
	fmt.Println("  --cols, -c int           Grid cols (default: 30)")
	fmt.Println("  --mode, -m string        train or test (default: train)")
	fmt.Println("  --seed uint              Base seed (default: 42)")
	fmt.Println("  --count, -n int          Number of examples (default: 1)")
	fmt.Println("  --batch-size int         Initial batch size (default: 500)")
	fmt.Println("  --output, -o string      Output file path (default: stdout)")
	fmt.Println("  --config string          YAML config file")
	fmt.Println("  --workers int            Worker-pool size override")
	fmt.Println("  --producer-buffer int    Producer credit buffer (default: 9)")
	fmt.Println("  --max-batch-size int     Dynamic batching ceiling (default: 2000)")
	fmt.Println("  --debug-svg string       Render example 0 to an SVG file")
	fmt.Println("  --log-level string       debug|info|warning|error|critical (default: warning)")
	fmt.Println("  --version                Print version and exit")
	fmt.Println("  --help                   Show this help message")
	fmt.Println("\nAvailable generators:", generator.List())
	fmt.Println("Available solvers:", solver.List())
	fmt.Println("\nAny other --name value pair is passed to the generator as a parameter.")
}
