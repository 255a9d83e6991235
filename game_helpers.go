package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/model"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

const (
	endExtinction     = "extinction"
	endMaxGenerations = "maximum generations reached"
)

// game owns everything the driving loop needs besides the live set itself
type game struct {
	config   utils.Config
	pool     *model.LiveSetPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	sleep    func(time.Duration)
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*model.LiveSet, *game) {
	var pool *model.LiveSetPool
	if config.UseMemoryPool {
		pool = model.NewLiveSetPool()
	}

	viewport := model.Viewport{Width: config.Width, Height: config.Height}
	live := model.Seed(model.NewRNG(config.RandomSeed()), viewport)

	return live, &game{
		config:   config,
		pool:     pool,
		renderer: model.NewTerminalRenderer(out, viewport),
		stats:    utils.NewStats(),
		sleep:    time.Sleep,
	}
}

// run renders and advances generations until the live set dies out, the
// generation limit is hit, or ctx is cancelled. It returns the last rendered
// generation and its number.
func (g *game) run(ctx context.Context, live *model.LiveSet) (*model.LiveSet, uint64, error) {
	var (
		generation    uint64
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-ctx.Done():
			return live, generation, ctx.Err()
		default:
		}

		frameStart := time.Now()
		if err := g.renderer.Display(live, generation); err != nil {
			return live, generation, errors.Wrap(err, "[run] failed to render")
		}
		g.stats.Update(generation, live.Len(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if done, _ := checkEndConditions(live.Len(), generation, g.config); done {
			return live, generation, nil
		}

		next := model.Advance(live, g.pool)
		model.SetToPool(live, g.pool)
		live = next
		generation++

		g.sleep(g.config.FrameRate)
	}
}

// checkEndConditions determines if the game should stop after the current frame
func checkEndConditions(livingCells int, generation uint64, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, endExtinction
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, endMaxGenerations
	}
	return false, ""
}

// displayFinalStats shows a short summary once the game stops early
func displayFinalStats(w io.Writer, live *model.LiveSet, generation uint64, stats *utils.Stats) {
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n",
		generation, stats.Runtime().Seconds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)

	if bounds, ok := live.Bounds(); ok {
		fmt.Fprintf(w, "Bounding box: (%d,%d)-(%d,%d), %d cells\n",
			bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY, bounds.Area())
	}
}
