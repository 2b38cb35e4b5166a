package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-colony-life/model"
	"github.com/sheikhrachel/go-colony-life/rules"
	"github.com/sheikhrachel/go-colony-life/utils"
)

const stdinName = "-"

// boardRun is one input board and what became of it
type boardRun struct {
	name          string
	board         []byte
	result        []byte
	passedThrough bool
	stats         *utils.Stats
}

// boardInputs returns the board sources named on the command line, stdin when none are given
func boardInputs(args []string) []string {
	if len(args) == 0 {
		return []string{stdinName}
	}
	return args
}

// readBoards loads every named board, reading "-" from stdin
func readBoards(names []string, stdin io.Reader) ([]*boardRun, error) {
	runs := make([]*boardRun, 0, len(names))
	for _, name := range names {
		var (
			data []byte
			err  error
		)
		if name == stdinName {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "[readBoards] failed to read board: %+v", name)
		}
		runs = append(runs, &boardRun{name: name, board: data})
	}
	return runs, nil
}

// randomSourceFor gives each board its own stream when a seed is configured
func randomSourceFor(config utils.Config, index int) rules.RandomSource {
	if config.Seed == 0 {
		return rules.GlobalRandom()
	}
	return rules.NewSeededRandom(config.Seed + int64(index))
}

// runBoard steps a board through the configured number of generations
func runBoard(ctx context.Context, stepper *model.Stepper, run *boardRun, generations int, rng rules.RandomSource) error {
	run.stats = utils.NewStats()
	run.result = run.board

	grid, ok := model.ParseBoard(run.board, stepper.MaxBoardSize())
	if !ok {
		run.passedThrough = true
		return nil
	}
	run.stats.Population = grid.CountLivingCells()

	for range generations {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "[runBoard] stopped after %d generations: %+v", run.stats.Generations, run.name)
		}

		next, tally, ok := stepper.Step(run.result, rng)
		if !ok {
			break
		}
		run.result = next
		run.stats.Update(tally.Survivors+tally.Births, tally.Survivors, tally.Births, tally.Deaths, tally.Ties)
	}
	return nil
}

// runBoards steps every board concurrently; boards share nothing but the grid pool
func runBoards(ctx context.Context, config utils.Config, runs []*boardRun) error {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}
	stepper := model.NewStepper(config.MaxBoardSize, pool)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(config.Workers)

	for i, run := range runs {
		rng := randomSourceFor(config, i)
		eg.Go(func() error {
			return runBoard(egCtx, stepper, run, config.Generations, rng)
		})
	}

	return eg.Wait()
}

// displayRunStatus shows the outcome of one board
func displayRunStatus(out io.Writer, run *boardRun) {
	if run.passedThrough {
		fmt.Fprintf(out, "Board: %s | Passed through unchanged (%d bytes)\n", run.name, len(run.board))
		return
	}
	fmt.Fprintf(out, "Board: %s | Gen: %d | Living: %d | Births: %d | Deaths: %d | Ties: %d | %.1f gen/sec\n",
		run.name, run.stats.Generations, run.stats.Population,
		run.stats.Births, run.stats.Deaths, run.stats.Ties, run.stats.GenerationsPerSecond)
}

// displayRuns writes the status and final board of every run, in input order
func displayRuns(out io.Writer, config utils.Config, runs []*boardRun) error {
	renderer := model.NewTextRenderer(out, config.ShowCensus)
	for _, run := range runs {
		displayRunStatus(out, run)

		grid, ok := model.ParseBoard(run.result, config.MaxBoardSize)
		if run.passedThrough || !ok {
			if err := renderer.DisplayRaw(run.result); err != nil {
				return errors.Wrapf(err, "[displayRuns] failed to write board: %+v", run.name)
			}
			continue
		}
		if err := renderer.Display(grid); err != nil {
			return errors.Wrapf(err, "[displayRuns] failed to write board: %+v", run.name)
		}
	}
	return nil
}
