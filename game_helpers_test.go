package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sheikhrachel/go-colony-life/model"
	"github.com/sheikhrachel/go-colony-life/utils"
)

const (
	horizontalBlinker = "     \n     \n OOO \n     \n     "
	verticalBlinker   = "     \n  O  \n  O  \n  O  \n     "
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Seed = 11
	config.Workers = 2
	return config
}

func TestBoardInputs(t *testing.T) {
	if got := boardInputs(nil); len(got) != 1 || got[0] != stdinName {
		t.Errorf("boardInputs(nil) = %v", got)
	}
	if got := boardInputs([]string{"a", "b"}); len(got) != 2 {
		t.Errorf("boardInputs(a, b) = %v", got)
	}
}

func TestReadBoards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block.txt")
	if err := os.WriteFile(path, []byte("OO\nOO"), 0o600); err != nil {
		t.Fatal(err)
	}

	runs, err := readBoards([]string{path, stdinName}, strings.NewReader(horizontalBlinker))
	if err != nil {
		t.Fatal(err)
	}
	if string(runs[0].board) != "OO\nOO" || string(runs[1].board) != horizontalBlinker {
		t.Errorf("boards read incorrectly: %q, %q", runs[0].board, runs[1].board)
	}

	if _, err = readBoards([]string{filepath.Join(t.TempDir(), "missing")}, nil); err == nil {
		t.Error("expected an error for a missing board")
	}
}

func TestRunBoards(t *testing.T) {
	config := testConfig()
	config.Generations = 3
	runs := []*boardRun{
		{name: "blinker", board: []byte(horizontalBlinker)},
		{name: "empty", board: []byte{}},
		{name: "block", board: []byte("OO\nOO")},
	}

	if err := runBoards(context.Background(), config, runs); err != nil {
		t.Fatal(err)
	}

	if got := string(runs[0].result); got != verticalBlinker {
		t.Errorf("blinker after 3 generations = %q", got)
	}
	if runs[0].stats.Generations != 3 || runs[0].stats.Population != 3 || runs[0].stats.Births != 6 {
		t.Errorf("blinker stats = %+v", runs[0].stats)
	}
	if !runs[1].passedThrough || len(runs[1].result) != 0 {
		t.Errorf("empty board should pass through")
	}
	if got := string(runs[2].result); got != "OO\nOO" || runs[2].stats.Deaths != 0 {
		t.Errorf("block = %q, stats %+v", got, runs[2].stats)
	}
}

func TestRunBoardSeededTieBreaksRepeat(t *testing.T) {
	config := testConfig()
	config.Generations = 2
	tie := "       \n  XYZ  \n       \n       "

	first := []*boardRun{{name: "a", board: []byte(tie)}}
	second := []*boardRun{{name: "a", board: []byte(tie)}}
	for _, runs := range [][]*boardRun{first, second} {
		if err := runBoards(context.Background(), config, runs); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(first[0].result, second[0].result) {
		t.Errorf("same seed gave %q and %q", first[0].result, second[0].result)
	}
}

func TestRunBoardsOutputNeverLeavesTheBound(t *testing.T) {
	config := testConfig()
	config.MaxBoardSize = 10
	config.Generations = 2
	runs := []*boardRun{
		{name: "short rows", board: []byte("OOOOO\n\n")},
		{name: "fits", board: []byte("OO\nOO")},
	}

	if err := runBoards(context.Background(), config, runs); err != nil {
		t.Fatal(err)
	}

	if !runs[0].passedThrough || runs[0].stats.Generations != 0 || string(runs[0].result) != "OOOOO\n\n" {
		t.Errorf("short rows: passedThrough=%v gen=%d result=%q",
			runs[0].passedThrough, runs[0].stats.Generations, runs[0].result)
	}
	if runs[1].passedThrough || runs[1].stats.Generations != 2 || runs[1].stats.Population != 4 {
		t.Errorf("fits: passedThrough=%v gen=%d population=%d",
			runs[1].passedThrough, runs[1].stats.Generations, runs[1].stats.Population)
	}
}

func TestRunBoardCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run := &boardRun{name: "blinker", board: []byte(horizontalBlinker)}
	err := runBoard(ctx, model.NewStepper(0, nil), run, 5, nil)
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if run.stats.Generations != 0 {
		t.Errorf("ran %d generations after cancellation", run.stats.Generations)
	}
}

func TestDisplayRuns(t *testing.T) {
	config := testConfig()
	runs := []*boardRun{
		{name: "blinker", board: []byte(horizontalBlinker)},
		{name: "bad", board: []byte("\n\n")},
	}
	if err := runBoards(context.Background(), config, runs); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := displayRuns(&out, config, runs); err != nil {
		t.Fatal(err)
	}

	text := out.String()
	for _, want := range []string{
		"Board: blinker | Gen: 1 | Living: 3 | Births: 2 | Deaths: 2 | Ties: 0",
		verticalBlinker + "\n",
		"Colony 'O': 3",
		"Board: bad | Passed through unchanged (2 bytes)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}
