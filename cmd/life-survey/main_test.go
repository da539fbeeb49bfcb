package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"life-table/internal/seed"
)

func TestRunScenarioStillLife(t *testing.T) {
	res, err := runScenario(context.Background(), scenario{name: "block", pattern: "block"}, 10, 10, 50, 3)
	if err != nil {
		t.Fatalf("runScenario: %v", err)
	}
	if res.settledAt != 0 || res.period != 1 {
		t.Fatalf("settled at %d with period %d, expected 0 and 1", res.settledAt, res.period)
	}
	if res.initialPop != 4 || res.finalPop != 4 || res.peakPop != 4 {
		t.Fatalf("unexpected populations %+v", res)
	}
	if !strings.Contains(formatResult(res), "still life from gen 0") {
		t.Fatalf("summary %q", formatResult(res))
	}
}

func TestRunScenarioOscillator(t *testing.T) {
	res, err := runScenario(context.Background(), scenario{name: "blinker", pattern: "blinker"}, 9, 9, 50, 3)
	if err != nil {
		t.Fatalf("runScenario: %v", err)
	}
	if res.period != 2 || res.settledAt != 0 || res.generations != 2 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRunScenarioExtinction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.txt")
	if err := os.WriteFile(path, []byte("OO\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := runScenario(context.Background(), scenario{name: "pair", file: path}, 6, 6, 50, 3)
	if err != nil {
		t.Fatalf("runScenario: %v", err)
	}
	if res.finalPop != 0 || res.hasBounds {
		t.Fatalf("expected extinction, got %+v", res)
	}
	if !strings.Contains(formatResult(res), "extinct at gen 1") {
		t.Fatalf("summary %q", formatResult(res))
	}
}

func TestRunScenarioGliderKeepsMoving(t *testing.T) {
	res, err := runScenario(context.Background(), scenario{name: "glider", pattern: "glider"}, 40, 40, 20, 3)
	if err != nil {
		t.Fatalf("runScenario: %v", err)
	}
	if res.settledAt != -1 || res.generations != 20 || res.finalPop != 5 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRunScenarioErrors(t *testing.T) {
	_, err := runScenario(context.Background(), scenario{name: "gun", pattern: "gosper-glider-gun"}, 10, 10, 5, 3)
	if !errors.Is(err, seed.ErrPatternTooLarge) {
		t.Fatalf("err=%v, expected ErrPatternTooLarge", err)
	}

	res, err := runScenario(context.Background(), scenario{name: "missing", file: filepath.Join(t.TempDir(), "nope")}, 30, 30, 5, 3)
	if err != nil {
		t.Fatalf("missing seed file should fall back to the default pattern, got %v", err)
	}
	if res.initialPop != 20 {
		t.Fatalf("initial population %d, expected the 20-cell default line", res.initialPop)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := runScenario(ctx, scenario{name: "block", pattern: "block"}, 10, 10, 5, 3); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, expected context.Canceled", err)
	}
}

func TestWorkerReusesGridAcrossScenarios(t *testing.T) {
	wk, err := newWorker(12, 12, 3)
	if err != nil {
		t.Fatalf("newWorker: %v", err)
	}
	first, err := wk.run(context.Background(), scenario{name: "glider", pattern: "glider"}, 7)
	if err != nil {
		t.Fatalf("glider: %v", err)
	}
	if first.finalPop != 5 {
		t.Fatalf("glider population %d, expected 5", first.finalPop)
	}

	second, err := wk.run(context.Background(), scenario{name: "block", pattern: "block"}, 50)
	if err != nil {
		t.Fatalf("block: %v", err)
	}
	fresh, err := runScenario(context.Background(), scenario{name: "block", pattern: "block"}, 12, 12, 50, 3)
	if err != nil {
		t.Fatalf("block on a fresh grid: %v", err)
	}
	if second != fresh {
		t.Fatalf("reused worker gave %+v, fresh grid gave %+v", second, fresh)
	}
}
