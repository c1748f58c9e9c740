// Command rnni generates random ranked trees and benchmarks the RNNI
// distance between them.
package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/treedist/rnni"
)

func main() {
	app := &cli.App{
		Name:  "rnni",
		Usage: "ranked nearest neighbour interchange distance tools",
	}

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:  "leaves",
			Usage: "number of leaves per tree",
			Value: 50,
		},
		&cli.Uint64Flag{
			Name:  "seed1",
			Usage: "first PCG seed word",
			Value: 12,
		},
		&cli.Uint64Flag{
			Name:  "seed2",
			Usage: "second PCG seed word",
			Value: 34,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug logging",
		},
	}
	app.Commands = []*cli.Command{
		&cli.Command{
			Name:  "bench",
			Usage: "average the distance over many random tree pairs",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "reps",
					Usage: "number of tree pairs to sample",
					Value: 100000,
				},
			},
			Action: runBench,
		},
		&cli.Command{
			Name:   "print",
			Usage:  "generate one random tree and print its cluster rows",
			Action: runPrint,
		},
	}
	app.RunAndExitOnError()
}

func setupLogger(cctx *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if cctx.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func runBench(cctx *cli.Context) error {
	logger := setupLogger(cctx)

	n := cctx.Int("leaves")
	reps := cctx.Int("reps")
	if reps < 1 {
		return fmt.Errorf("reps must be positive")
	}

	rng := rand.New(rand.NewPCG(cctx.Uint64("seed1"), cctx.Uint64("seed2")))
	logger.Debug("sampling tree pairs", "leaves", n, "reps", reps)

	total := 0
	for i := 0; i < reps; i++ {
		t, err := rnni.Generate(n, rng)
		if err != nil {
			return err
		}
		r, err := rnni.Generate(n, rng)
		if err != nil {
			return err
		}
		d, err := rnni.Distance(t, r)
		if err != nil {
			return err
		}
		total += d
	}

	logger.Info("benchmark complete", "leaves", n, "reps", reps, "total", total)
	fmt.Printf("%f\n", float64(total)/float64(reps))
	return nil
}

func runPrint(cctx *cli.Context) error {
	setupLogger(cctx)

	rng := rand.New(rand.NewPCG(cctx.Uint64("seed1"), cctx.Uint64("seed2")))
	t, err := rnni.Generate(cctx.Int("leaves"), rng)
	if err != nil {
		return err
	}

	fmt.Println(t)
	return nil
}
