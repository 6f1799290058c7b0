package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battlesim/internal/report"
)

func testOptions(t *testing.T) options {
	t.Helper()
	return options{
		ConfigDir:  filepath.Join("..", "..", "assets"),
		StageID:    "s_1_1",
		Team:       []string{"morel_knight", "bog_witch", "frost_puff", "chef_shiitake"},
		Level:      1,
		EnemyLevel: 1,
		Seed:       12345,
		Runs:       1,
		Workers:    4,
		MaxTurns:   200,
		Out:        filepath.Join(t.TempDir(), "out.json"),
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestLoadContentErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*options)
		want   error
	}{
		{"unknown stage", func(o *options) { o.StageID = "nope" }, errUnknownStage},
		{"empty team", func(o *options) { o.Team = []string{"ghost"} }, errEmptyTeam},
		{"nothing to fight", func(o *options) { o.StageID = "" }, errNothingToFight},
		{"unknown enemies", func(o *options) {
			o.StageID = ""
			o.Enemies = []string{"ghost", "phantom"}
		}, errNoEnemies},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(t)
			tt.mutate(&opts)
			_, err := loadContent(opts, quietLogger())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadContentMissingDir(t *testing.T) {
	opts := testOptions(t)
	opts.ConfigDir = t.TempDir()
	_, err := loadContent(opts, quietLogger())
	assert.Error(t, err)
}

func TestRunSingleWritesRecordedStage(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, run(context.Background(), opts, quietLogger()))

	raw, err := os.ReadFile(opts.Out)
	require.NoError(t, err)
	var res struct {
		WaveCount int `json:"wave_count"`
		Waves     []struct {
			Events []json.RawMessage `json:"events"`
		} `json:"waves"`
	}
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Positive(t, res.WaveCount)
	require.NotEmpty(t, res.Waves)
	assert.NotEmpty(t, res.Waves[0].Events)
}

func TestRunSingleEnemiesOnly(t *testing.T) {
	opts := testOptions(t)
	opts.StageID = ""
	opts.Enemies = []string{"rot_beetle", "marsh_leech"}
	require.NoError(t, run(context.Background(), opts, quietLogger()))

	raw, err := os.ReadFile(opts.Out)
	require.NoError(t, err)
	var res struct {
		Turns int `json:"turns"`
	}
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Positive(t, res.Turns)
}

func TestRunBatchIsDeterministic(t *testing.T) {
	opts := testOptions(t)
	opts.Runs = 24
	c, err := loadContent(opts, quietLogger())
	require.NoError(t, err)

	first, err := runBatch(context.Background(), opts, c, quietLogger())
	require.NoError(t, err)
	opts.Workers = 1
	second, err := runBatch(context.Background(), opts, c, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, 24, first.Runs)
	assert.Equal(t, "s_1_1", first.StageID)
	assert.Equal(t, first.Wins, second.Wins)
	assert.Equal(t, first.TotalTurns, second.TotalTurns)
	assert.InDelta(t, first.TotalDuration, second.TotalDuration, 1e-9)
}

func TestRunBatchCanceled(t *testing.T) {
	opts := testOptions(t)
	opts.Runs = 10
	c, err := loadContent(opts, quietLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runBatch(ctx, opts, c, quietLogger())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBatchStoresSummary(t *testing.T) {
	opts := testOptions(t)
	opts.Runs = 5
	opts.DBPath = filepath.Join(t.TempDir(), "reports.db")
	require.NoError(t, run(context.Background(), opts, quietLogger()))

	store, err := report.Open(opts.DBPath)
	require.NoError(t, err)
	defer store.Close()
	list, err := store.ListSummaries(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5, list[0].Runs)
	assert.Equal(t, opts.Team, list[0].Team)

	raw, err := os.ReadFile(opts.Out)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, list[0].ID, out["id"])
}

func TestSplitIDs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitIDs(" a, ,b ,"))
	assert.Nil(t, splitIDs(""))
}
