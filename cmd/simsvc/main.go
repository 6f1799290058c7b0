package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"battlesim/internal/config"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var opts options
	var team, enemies string
	flag.StringVar(&opts.ConfigDir, "config", settings.ConfigDir, "content dir (skills.yaml, units.yaml, stages.yaml)")
	flag.StringVar(&opts.StageID, "stage", "s_1_1", "stage id; empty to fight -enemies instead")
	flag.StringVar(&team, "team", "morel_knight,bog_witch,frost_puff,chef_shiitake", "comma separated character ids")
	flag.IntVar(&opts.Level, "level", 1, "team level")
	flag.StringVar(&enemies, "enemies", "", "comma separated enemy ids used when -stage is empty")
	flag.IntVar(&opts.EnemyLevel, "enemy-level", 1, "level of -enemies")
	flag.Int64Var(&opts.Seed, "seed", settings.Seed, "seed")
	flag.IntVar(&opts.Runs, "n", settings.Runs, "number of simulations")
	flag.IntVar(&opts.Workers, "workers", settings.Workers, "batch workers")
	flag.IntVar(&opts.MaxTurns, "max-turns", settings.MaxTurns, "turn cap per battle")
	flag.BoolVar(&opts.HealBetweenWaves, "heal", false, "heal survivors between stage waves")
	flag.StringVar(&opts.Out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.StringVar(&opts.DBPath, "db", settings.DBPath, "sqlite file to store batch summaries in")
	logLevel := flag.String("log", settings.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	opts.Team = splitIDs(team)
	opts.Enemies = splitIDs(enemies)
	settings.LogLevel = *logLevel

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.SlogLevel()}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.Error("simsvc failed", "error", err)
		os.Exit(1)
	}
}

func splitIDs(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
