package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strongTeam() []*Unit {
	p := newTestUnit("hero", SidePlayer, "kitchen")
	p.Atk, p.Spd, p.MaxHP, p.HP = 5000, 500, 5000, 5000
	p.BasicSkill = "atk_basic"
	return []*Unit{p}
}

func weakWave(n int) []*Unit {
	out := make([]*Unit, n)
	for i := range out {
		e := newTestUnit("grunt", SideEnemy, "kitchen")
		e.Atk, e.Spd, e.MaxHP, e.HP = 10, 50, 200, 200
		e.BasicSkill = "atk_basic"
		out[i] = e
	}
	return out
}

func TestRunStage_ClearsAllWaves(t *testing.T) {
	book := testBook(basicAttack())
	res := RunStage(strongTeam(), [][]*Unit{weakWave(2), weakWave(3)}, book, StageOptions{Seed: 5, MaxTurns: 200})

	assert.True(t, res.Won)
	assert.Equal(t, 2, res.WavesCleared)
	assert.Equal(t, 2, res.WaveCount)
	require.Len(t, res.Waves, 2)
}

func TestRunStage_StopsAtFirstLoss(t *testing.T) {
	book := testBook(basicAttack())
	weak := weakWave(1)
	weak[0].Side = SidePlayer
	boss := strongTeam()[0]
	boss.Side = SideEnemy

	res := RunStage(weak, [][]*Unit{{boss}, weakWave(1)}, book, StageOptions{Seed: 5, MaxTurns: 200})

	assert.False(t, res.Won)
	assert.Equal(t, 0, res.WavesCleared)
	assert.Len(t, res.Waves, 1)
}

func TestRunStage_EmptyInputs(t *testing.T) {
	book := testBook(basicAttack())

	res := RunStage(strongTeam(), nil, book, StageOptions{MaxTurns: 100})
	assert.False(t, res.Won)

	res = RunStage(strongTeam(), [][]*Unit{weakWave(1), {}}, book, StageOptions{MaxTurns: 100})
	assert.False(t, res.Won)
	assert.Equal(t, 1, res.WavesCleared)

	res = RunStage(nil, [][]*Unit{weakWave(1)}, book, StageOptions{MaxTurns: 100})
	assert.False(t, res.Won)
	assert.Empty(t, res.Waves)
}

func TestRunStage_Deterministic(t *testing.T) {
	book := testBook(basicAttack(), poisonUlt())
	run := func() ([]int, StageResult) {
		team := samplePlayerTeam()
		waves := [][]*Unit{sampleEnemyTeam(), sampleEnemyTeam()}
		res := RunStage(team, waves, book, StageOptions{Seed: 77, MaxTurns: 120, HealBetweenWaves: true})
		return hpOf(team), res
	}
	hpA, resA := run()
	hpB, resB := run()
	assert.Equal(t, hpA, hpB)
	assert.Equal(t, resA, resB)
}

func TestRestBetweenWaves(t *testing.T) {
	alive := newTestUnit("alive", SidePlayer, "forest")
	alive.HP = 100
	alive.Statuses = []*Status{{Kind: "poison", RemainingTurns: 3, Stacks: 2}}
	nearlyFull := newTestUnit("full", SidePlayer, "forest")
	nearlyFull.HP = 900
	dead := newTestUnit("dead", SidePlayer, "forest")
	dead.HP = 0
	dead.Statuses = []*Status{{Kind: "burn", RemainingTurns: 1, Stacks: 1}}

	restBetweenWaves([]*Unit{alive, nearlyFull, dead})

	assert.Equal(t, 350, alive.HP)
	assert.Empty(t, alive.Statuses)
	assert.Equal(t, 1000, nearlyFull.HP)
	assert.Equal(t, 0, dead.HP)
	assert.Len(t, dead.Statuses, 1)
}
