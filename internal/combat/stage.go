package combat

import (
	"log/slog"

	"battlesim/internal/util"
)

// HealBetweenWavesFraction of max hp is restored to survivors between waves
// when StageOptions.HealBetweenWaves is set.
const HealBetweenWavesFraction = 0.25

type StageOptions struct {
	Seed             int64
	MaxTurns         int
	HealBetweenWaves bool
	Record           bool
	Logger           *slog.Logger
}

type StageResult struct {
	Won          bool        `json:"won"`
	WavesCleared int         `json:"waves_cleared"`
	WaveCount    int         `json:"wave_count"`
	Waves        []SimResult `json:"waves"`
}

// RunStage fights waves in order with the same team and stops at the first
// wave that is not won. A wave with no enemies is treated as lost. Every wave
// gets its own battle seeded from a stage-level source, so the whole stage is
// reproducible from opts.Seed.
func RunStage(team []*Unit, waves [][]*Unit, skills SkillLookup, opts StageOptions) StageResult {
	res := StageResult{WaveCount: len(waves)}
	if len(waves) == 0 || !anyAlive(team) {
		return res
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	seeds := util.New(opts.Seed)

	for i, wave := range waves {
		if len(wave) == 0 {
			log.Warn("stage wave has no enemies", "wave", i+1)
			return res
		}
		env := &Env{Rng: util.New(seeds.Int63())}
		b := NewBattle(skills, env, WithLogger(log), WithRecording(opts.Record))
		wr := b.Run(team, wave, opts.MaxTurns)
		res.Waves = append(res.Waves, wr)
		log.Debug("wave finished", "wave", i+1, "win", wr.Win, "turns", wr.Turns)

		if !wr.Win {
			return res
		}
		res.WavesCleared++
		if opts.HealBetweenWaves && i < len(waves)-1 {
			restBetweenWaves(team)
		}
	}
	res.Won = true
	return res
}

func restBetweenWaves(team []*Unit) {
	for _, u := range team {
		if !u.Alive() {
			continue
		}
		Heal(u, roundInt(float64(u.MaxHP)*HealBetweenWavesFraction))
		u.Statuses = nil
	}
}
