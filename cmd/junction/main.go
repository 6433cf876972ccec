// Command junction reads 3-D points and writes one puzzle answer to a file.
//
// Usage:
//
//	junction -i points.txt [-p 1|2] [-edges K] [-workers W] [-o output.txt]
//
// Part 1 writes the product of the three largest circuits after joining the K
// shortest links. Part 2 writes the product of the X coordinates of the link
// that completes a single circuit, or 0 for fewer than two points.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/katalvlaran/junction/circuit"
	"github.com/katalvlaran/junction/edge"
	"github.com/katalvlaran/junction/internal/config"
	"github.com/katalvlaran/junction/point"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("junction: ")

	err := run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return
	case err != nil:
		log.Fatal(err)
	}
}

func run(args []string, lookup config.LookupFunc, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args, lookup, stderr)
	if err != nil {
		return err
	}

	cloud, err := load(cfg.Input)
	if err != nil {
		return err
	}

	answer, err := solve(cloud, cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output, []byte(answer), 0o644); err != nil {
		return fmt.Errorf("write answer: %w", err)
	}
	fmt.Fprintf(stdout, "Successfully determined solution %s -> %s\n", cfg.Input, cfg.Output)

	return nil
}

func load(path string) (point.Cloud, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return point.Parse(fh)
}

// solve renders the answer for cfg.Part as decimal text.
func solve(cloud point.Cloud, cfg config.Config) (string, error) {
	switch cfg.Part {
	case config.PartCluster:
		p, err := circuit.ClusterProduct(cloud, cfg.Edges, edge.WithWorkers(cfg.Workers))
		if err != nil {
			return "", err
		}
		return strconv.Itoa(p), nil
	case config.PartFinal:
		return strconv.FormatInt(circuit.FinalLinkProduct(cloud), 10), nil
	default:
		return "", fmt.Errorf("%w: got %d", config.ErrPart, cfg.Part)
	}
}
