package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"battlesim/internal/combat"
	"battlesim/internal/config"
	"battlesim/internal/report"
	"battlesim/internal/util"
)

var (
	errEmptyTeam      = errors.New("no known characters in team")
	errUnknownStage   = errors.New("unknown stage")
	errNothingToFight = errors.New("no stage and no enemies given")
	errNoEnemies      = errors.New("no known enemies given")
)

type options struct {
	ConfigDir        string
	StageID          string
	Team             []string
	Level            int
	Enemies          []string
	EnemyLevel       int
	Seed             int64
	Runs             int
	Workers          int
	MaxTurns         int
	HealBetweenWaves bool
	Out              string
	DBPath           string
}

// content is the loaded, read-only data shared by every run.
type content struct {
	skills *combat.SkillBook
	units  *config.UnitsConfig
	stage  *config.StageDef
}

// outcome is what one simulation contributes to a batch.
type outcome struct {
	Won      bool
	Turns    int
	Duration float64
}

func run(ctx context.Context, opts options, log *slog.Logger) error {
	c, err := loadContent(opts, log)
	if err != nil {
		return err
	}
	if opts.Runs <= 1 {
		return runSingle(opts, c, log)
	}

	sum, err := runBatch(ctx, opts, c, log)
	if err != nil {
		return err
	}
	if opts.DBPath != "" {
		store, err := report.Open(opts.DBPath)
		if err != nil {
			return fmt.Errorf("open report store: %w", err)
		}
		defer store.Close()
		if sum, err = store.SaveSummary(ctx, sum); err != nil {
			return fmt.Errorf("save summary: %w", err)
		}
		log.Info("summary stored", "id", sum.ID, "db", opts.DBPath)
	}

	out := map[string]any{
		"id":           sum.ID,
		"stage":        sum.StageID,
		"team":         sum.Team,
		"seed":         sum.Seed,
		"runs":         sum.Runs,
		"wins":         sum.Wins,
		"win_rate":     sum.WinRate(),
		"avg_turns":    sum.AvgTurns(),
		"avg_duration": sum.AvgDuration(),
	}
	if err := os.WriteFile(opts.Out, combat.MarshalPretty(out), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	log.Info("batch finished", "runs", sum.Runs, "win_rate", sum.WinRate(), "avg_turns", sum.AvgTurns(), "out", opts.Out)
	return nil
}

func loadContent(opts options, log *slog.Logger) (*content, error) {
	skillsCfg, unitsCfg, stagesCfg, err := config.LoadAll(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if err := config.Validate(skillsCfg, unitsCfg, stagesCfg); err != nil {
		log.Warn("content has dangling references", "error", err)
	}

	c := &content{skills: combat.NewSkillBook(skillsCfg), units: unitsCfg}
	log.Debug("content loaded", "dir", opts.ConfigDir, "skills", c.skills.Len(),
		"characters", len(unitsCfg.Characters), "enemies", len(unitsCfg.Enemies))
	if len(combat.BuildTeam(unitsCfg, opts.Team, opts.Level)) == 0 {
		return nil, errEmptyTeam
	}
	switch {
	case opts.StageID != "":
		st, ok := stagesCfg.Stage(opts.StageID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", errUnknownStage, opts.StageID)
		}
		c.stage = &st
	case len(opts.Enemies) == 0:
		return nil, errNothingToFight
	case len(combat.BuildWave(unitsCfg, enemyWave(opts))) == 0:
		return nil, fmt.Errorf("%w: %v", errNoEnemies, opts.Enemies)
	}
	return c, nil
}

// simulate builds fresh rosters and fights them once with seed.
func simulate(opts options, c *content, seed int64, record bool, log *slog.Logger) (outcome, any) {
	team := combat.BuildTeam(c.units, opts.Team, opts.Level)
	if c.stage != nil {
		res := combat.RunStage(team, combat.BuildStageWaves(c.units, *c.stage), c.skills, combat.StageOptions{
			Seed:             seed,
			MaxTurns:         opts.MaxTurns,
			HealBetweenWaves: opts.HealBetweenWaves,
			Record:           record,
			Logger:           log,
		})
		o := outcome{Won: res.Won}
		for _, w := range res.Waves {
			o.Turns += w.Turns
			o.Duration += w.Duration
		}
		return o, res
	}

	b := combat.NewBattle(c.skills, &combat.Env{Rng: util.New(seed)},
		combat.WithLogger(log), combat.WithRecording(record))
	res := b.Run(team, combat.BuildWave(c.units, enemyWave(opts)), opts.MaxTurns)
	return outcome{Won: res.Win, Turns: res.Turns, Duration: res.Duration}, res
}

func enemyWave(opts options) []config.WaveUnit {
	wave := make([]config.WaveUnit, 0, len(opts.Enemies))
	for _, id := range opts.Enemies {
		wave = append(wave, config.WaveUnit{Enemy: id, Level: opts.EnemyLevel})
	}
	return wave
}

func runSingle(opts options, c *content, log *slog.Logger) error {
	o, res := simulate(opts, c, opts.Seed, true, log)
	if err := os.WriteFile(opts.Out, combat.MarshalPretty(res), 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	log.Info("single simulation finished", "win", o.Won, "turns", o.Turns, "time", o.Duration, "out", opts.Out)
	return nil
}

// runBatch fans opts.Runs simulations out over opts.Workers goroutines. Run i
// is seeded from its index only, so totals depend on neither scheduling nor
// the worker count.
func runBatch(ctx context.Context, opts options, c *content, log *slog.Logger) (report.Summary, error) {
	workers := max(1, opts.Workers)
	sum := report.Summary{Team: opts.Team, Seed: opts.Seed}
	if c.stage != nil {
		sum.StageID = c.stage.ID
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.Runs; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seed := util.DeriveSeed(opts.Seed, i)
			o, _ := simulate(opts, c, seed, false, nil)
			mu.Lock()
			sum.Add(o.Won, o.Turns, o.Duration)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.Summary{}, fmt.Errorf("batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return report.Summary{}, fmt.Errorf("batch: %w", err)
	}
	log.Debug("batch aggregated", "runs", sum.Runs, "wins", sum.Wins)
	return sum, nil
}
