package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Trigger-Step/internal/game"
)

const fixedDt = 1.0 / 60.0

// scenarioStep drives the scripted character for a tick range.
type scenarioStep struct {
	untilTick int
	forward   float64
	strafe    float64
	run       bool
	crouch    bool
	// fireEvery pulls the trigger every N ticks (0 = never).
	fireEvery int
	// reloadOnDry reloads as soon as the magazine empties.
	reloadOnDry bool
}

// scenarios maps a name to its movement/fire script. The step climber
// course in "assault-course" matches the stairs the interactive host
// builds.
var scenarios = map[string][]scenarioStep{
	"firing-range": {
		{untilTick: 1 << 30, fireEvery: 10, reloadOnDry: true},
	},
	"assault-course": {
		{untilTick: 300, forward: 1},
		{untilTick: 600, forward: 1, run: true, fireEvery: 20, reloadOnDry: true},
		{untilTick: 900, forward: 1, crouch: true, fireEvery: 30, reloadOnDry: true},
		{untilTick: 1 << 30, forward: 1, run: true},
	},
}

func scenarioWorld(name string) []game.SimOption {
	if name != "assault-course" {
		return nil
	}
	return []game.SimOption{
		game.WithBox(game.Vec3{X: -2, Y: 0, Z: 3}, game.Vec3{X: 2, Y: 0.3, Z: 4}),
		game.WithBox(game.Vec3{X: -2, Y: 0, Z: 4}, game.Vec3{X: 2, Y: 0.6, Z: 5}),
		game.WithBox(game.Vec3{X: -2, Y: 0, Z: 5}, game.Vec3{X: 2, Y: 0.9, Z: 6}),
		game.WithBox(game.Vec3{X: -6, Y: 0, Z: 10}, game.Vec3{X: 6, Y: 2.5, Z: 10.5}),
	}
}

func runOnce(name string, seed int64, ticks int, tuning game.Tuning, verbose bool) game.RunReport {
	opts := []game.SimOption{
		game.WithTuning(tuning),
		game.WithSeed(seed),
		game.WithVerbose(verbose),
	}
	opts = append(opts, scenarioWorld(name)...)
	ts := game.NewTestSim(opts...)

	script := scenarios[name]
	stepIdx := 0
	for tick := 0; tick < ticks; tick++ {
		for stepIdx < len(script)-1 && tick >= script[stepIdx].untilTick {
			stepIdx++
		}
		step := script[stepIdx]

		ts.Character.Forward = step.forward
		ts.Character.Strafe = step.strafe
		ts.Character.Run = step.run
		ts.Character.Crouch = step.crouch

		if step.fireEvery > 0 && tick%step.fireEvery == 0 {
			ts.Rifle.Fire(1.0)
		}
		if step.reloadOnDry && !ts.Rifle.HasAmmo() {
			ts.Rifle.Reload()
		}

		ts.FixedTick(fixedDt)
		ts.Sim.VariableTick(fixedDt)
	}
	return game.BuildRunReport(ts.Log, ticks, ts.Rifle)
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string
	var configPath string
	var verbose bool
	var copyOut bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "assault-course", "scenario name")
	flag.StringVar(&configPath, "config", "", "optional tuning config file")
	flag.BoolVar(&verbose, "verbose", false, "record per-tick sim log entries")
	flag.BoolVar(&copyOut, "copy", false, "copy the report to the clipboard")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if runs <= 0 {
		log.Fatal().Msg("-runs must be > 0")
	}
	if _, ok := scenarios[scenario]; !ok {
		names := make([]string, 0, len(scenarios))
		for n := range scenarios {
			names = append(names, n)
		}
		log.Fatal().Str("scenario", scenario).Strs("known", names).Msg("unknown scenario")
	}

	tuning := game.DefaultTuning()
	if configPath != "" {
		t, err := game.LoadTuning(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load tuning")
		}
		tuning = t
	}

	var b strings.Builder
	agg := game.AggregateReport{}
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		log.Info().Int("run", i+1).Int64("seed", seed).Msg("running")
		report := runOnce(scenario, seed, ticks, tuning, verbose)
		agg.Runs = append(agg.Runs, report)
		fmt.Fprintf(&b, "--- run %d (seed %d) ---\n%s\n", i+1, seed, report)
	}
	fmt.Fprintf(&b, "=== aggregate: %s ===\n%s", scenario, agg)

	fmt.Print(b.String())
	if copyOut {
		if err := clipboard.WriteAll(b.String()); err != nil {
			log.Warn().Err(err).Msg("clipboard copy failed")
		} else {
			log.Info().Msg("report copied to clipboard")
		}
	}
}
