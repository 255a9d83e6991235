package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-sparse-gol/model"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	live, g := initializeGame(config, os.Stdout)

	var (
		eg         errgroup.Group
		done       = make(chan struct{})
		final      *model.LiveSet
		generation uint64
	)

	eg.Go(func() error {
		defer close(done)
		var runErr error
		final, generation, runErr = g.run(ctx, live)
		return runErr
	})

	eg.Go(func() error {
		select {
		case <-ctx.Done():
			fmt.Fprintln(os.Stderr, "\nShutting down gracefully...")
		case <-done:
		}
		return nil
	})

	err = eg.Wait()
	switch {
	case errors.Is(err, context.Canceled):
		displayFinalStats(os.Stderr, final, generation, g.stats)
	case err != nil:
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	default:
		if _, reason := checkEndConditions(final.Len(), generation, config); reason == endMaxGenerations {
			fmt.Fprintf(os.Stderr, "Reached maximum generations limit (%d)\n", config.MaxGenerations)
			displayFinalStats(os.Stderr, final, generation, g.stats)
		}
	}
}
