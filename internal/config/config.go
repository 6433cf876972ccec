// Package config resolves the junction runner's settings.
//
// Precedence, lowest first: built-in defaults, an optional dotenv file,
// process environment, command-line flags.
//
//	JUNCTION_EDGES    capacity K for shortest-K clustering (default 1000)
//	JUNCTION_WORKERS  goroutines scanning pairs (default 1)
//	JUNCTION_OUTPUT   answer file (default output.txt)
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvEdges   = "JUNCTION_EDGES"
	EnvWorkers = "JUNCTION_WORKERS"
	EnvOutput  = "JUNCTION_OUTPUT"
)

// Defaults.
const (
	DefaultEdges   = 1000
	DefaultWorkers = 1
	DefaultOutput  = "output.txt"
	DefaultEnvFile = ".env"
)

// Parts.
const (
	PartCluster = 1 // product of the three largest circuits after K links
	PartFinal   = 2 // X product of the final spanning link
)

var (
	// ErrInput indicates a missing input path.
	ErrInput = errors.New("config: input path is required")

	// ErrPart indicates a part other than 1 or 2.
	ErrPart = errors.New("config: part must be 1 or 2")

	// ErrEdges indicates a negative or non-numeric edge capacity.
	ErrEdges = errors.New("config: edges must be a non-negative integer")

	// ErrWorkers indicates a worker count below one or non-numeric.
	ErrWorkers = errors.New("config: workers must be a positive integer")
)

// Config is the resolved runner configuration.
type Config struct {
	Input   string // points file, one "x,y,z" per line
	Part    int    // PartCluster or PartFinal
	Edges   int    // K for PartCluster
	Workers int    // pair-scan goroutines for PartCluster
	Output  string // answer file
	EnvFile string // dotenv file consulted before the process environment
}

// LookupFunc reads one environment variable; os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Part:    PartCluster,
		Edges:   DefaultEdges,
		Workers: DefaultWorkers,
		Output:  DefaultOutput,
		EnvFile: DefaultEnvFile,
	}
}

// Load resolves the configuration from args (without the program name), the
// dotenv file and lookup. A missing dotenv file is ignored unless -env named it.
// flag.ErrHelp is returned as-is when -h or -help is given.
func Load(args []string, lookup LookupFunc, usage io.Writer) (Config, error) {
	cfg := Default()

	fset := flag.NewFlagSet("junction", flag.ContinueOnError)
	fset.SetOutput(usage)
	var fl Config
	fset.StringVar(&fl.Input, "input", "", "points file, one x,y,z per line")
	fset.StringVar(&fl.Input, "i", "", "shorthand for -input")
	fset.IntVar(&fl.Part, "part", cfg.Part, "part to solve: 1 (clusters) or 2 (final link)")
	fset.IntVar(&fl.Part, "p", cfg.Part, "shorthand for -part")
	fset.IntVar(&fl.Edges, "edges", cfg.Edges, "number of shortest links for part 1 (env "+EnvEdges+")")
	fset.IntVar(&fl.Workers, "workers", cfg.Workers, "goroutines scanning pairs for part 1 (env "+EnvWorkers+")")
	fset.StringVar(&fl.Output, "output", cfg.Output, "answer file (env "+EnvOutput+")")
	fset.StringVar(&fl.Output, "o", cfg.Output, "shorthand for -output")
	fset.StringVar(&fl.EnvFile, "env", cfg.EnvFile, "dotenv file")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg.EnvFile = fl.EnvFile
	env, err := readEnvFile(cfg.EnvFile, set["env"])
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(env, lookup); err != nil {
		return Config{}, err
	}

	cfg.Input = fl.Input
	if set["part"] || set["p"] {
		cfg.Part = fl.Part
	}
	if set["edges"] {
		cfg.Edges = fl.Edges
	}
	if set["workers"] {
		cfg.Workers = fl.Workers
	}
	if set["output"] || set["o"] {
		cfg.Output = fl.Output
	}

	return cfg, cfg.Validate()
}

// Validate checks the resolved values.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return ErrInput
	case c.Part != PartCluster && c.Part != PartFinal:
		return fmt.Errorf("%w: got %d", ErrPart, c.Part)
	case c.Edges < 0:
		return fmt.Errorf("%w: got %d", ErrEdges, c.Edges)
	case c.Workers < 1:
		return fmt.Errorf("%w: got %d", ErrWorkers, c.Workers)
	}

	return nil
}

func readEnvFile(path string, required bool) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err == nil {
		return env, nil
	}
	if !required && errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}

	return nil, fmt.Errorf("config: read %s: %w", path, err)
}

// applyEnv overlays values from the dotenv file, then from the process environment.
func (c *Config) applyEnv(file map[string]string, lookup LookupFunc) error {
	get := func(key string) (string, bool) {
		if lookup != nil {
			if v, ok := lookup(key); ok {
				return v, true
			}
		}
		v, ok := file[key]
		return v, ok
	}

	if v, ok := get(EnvEdges); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrEdges, EnvEdges, v)
		}
		c.Edges = n
	}
	if v, ok := get(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrWorkers, EnvWorkers, v)
		}
		c.Workers = n
	}
	if v, ok := get(EnvOutput); ok && v != "" {
		c.Output = v
	}

	return nil
}
