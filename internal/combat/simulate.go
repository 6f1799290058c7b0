package combat

import (
	"encoding/json"
	"log/slog"
	"math"
	"math/rand"

	"battlesim/internal/util"
)

// Env holds the clock and the random source of one battle. The source must
// not be shared with another battle that runs at the same time.
type Env struct {
	Time float64
	Rng  *rand.Rand
}

type SimResult struct {
	Win      bool    `json:"win"`
	Turns    int     `json:"turns"`
	Duration float64 `json:"duration"`
	Events   []Event `json:"events,omitempty"`
	Meta     SimMeta `json:"meta"`
}

type SimMeta struct {
	Units []SimUnitMeta `json:"units"`
}

type SimUnitMeta struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Side  string `json:"side"`
	Biome string `json:"biome"`
	MaxHP int    `json:"max_hp"`
	Spd   int    `json:"spd"`
}

type Battle struct {
	skills SkillLookup
	env    *Env
	log    *slog.Logger
	record bool
	events []Event
}

type Option func(*Battle)

func WithLogger(l *slog.Logger) Option {
	return func(b *Battle) {
		if l != nil {
			b.log = l
		}
	}
}

// WithRecording keeps the event log in SimResult.Events.
func WithRecording(on bool) Option {
	return func(b *Battle) { b.record = on }
}

func NewBattle(skills SkillLookup, env *Env, opts ...Option) *Battle {
	if env == nil {
		env = &Env{}
	}
	if env.Rng == nil {
		env.Rng = util.New(0)
	}
	b := &Battle{
		skills: skills,
		env:    env,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RunBattle simulates one encounter with a freshly seeded battle and returns
// whether the player side won along with the mutated rosters.
func RunBattle(player, enemy []*Unit, skills SkillLookup, maxTurns int, seed int64) (bool, []*Unit, []*Unit) {
	b := NewBattle(skills, &Env{Rng: util.New(seed)})
	res := b.Run(player, enemy, maxTurns)
	return res.Win, player, enemy
}

// Run drives the encounter until one roster is wiped or maxTurns actors have
// been elected. The player wins only if it has a survivor and the enemy has
// none.
func (b *Battle) Run(player, enemy []*Unit, maxTurns int) SimResult {
	b.events = nil
	res := SimResult{Meta: buildMeta(player, enemy)}

	for _, u := range append(aliveOf(player), aliveOf(enemy)...) {
		b.emit("Spawn", map[string]any{
			"id": u.ID, "side": u.Side.String(), "hp": u.HP, "max_hp": u.MaxHP, "shield": u.Shield,
		})
	}

	turn := 0
	for turn < maxTurns && anyAlive(player) && anyAlive(enemy) {
		actor := b.nextActor(player, enemy)
		if actor == nil {
			break
		}
		turn++
		b.takeTurn(actor, player, enemy, turn)
	}

	res.Win = anyAlive(player) && !anyAlive(enemy)
	res.Turns = turn
	res.Duration = b.env.Time
	if b.record {
		res.Events = b.events
	}
	b.log.Debug("battle finished", "win", res.Win, "turns", turn, "time", b.env.Time)
	return res
}

func (b *Battle) takeTurn(actor *Unit, player, enemy []*Unit, turn int) {
	actor.ActionGauge = math.Max(0, actor.ActionGauge-ActionGaugeThreshold)
	actor.GainEnergy(StartTurnEnergyGain)
	tickUltCooldown(actor)
	b.emit("Turn", map[string]any{
		"turn": turn, "actor": actor.ID, "energy": actor.Energy, "ult_cd": actor.UltCooldown,
	})

	if b.applyStartOfTurnStatuses(actor) {
		b.emit("Skip", map[string]any{"actor": actor.ID, "hp": actor.HP})
		b.log.Debug("turn skipped", "turn", turn, "actor", actor.ID, "hp", actor.HP)
		return
	}

	allies, opponents := player, enemy
	if actor.Side == SideEnemy {
		allies, opponents = enemy, player
	}
	if !anyAlive(opponents) {
		return
	}

	skill, usedUlt, ok := b.selectSkill(actor)
	if !ok {
		b.log.Debug("no usable skill", "actor", actor.ID, "basic", actor.BasicSkill, "ult", actor.UltSkill)
		return
	}
	if usedUlt {
		b.payForUlt(actor, skill)
	}
	b.log.Debug("actor casts", "turn", turn, "actor", actor.ID, "skill", skill.ID, "ult", usedUlt)
	b.executeSkill(actor, allies, opponents, skill)
}

func (b *Battle) defeated(u *Unit, by string) {
	b.emit("Defeat", map[string]any{"id": u.ID, "by": by})
	b.log.Debug("unit defeated", "id", u.ID, "side", u.Side.String(), "by", by)
}

func (b *Battle) emit(kind string, payload map[string]any) {
	if !b.record {
		return
	}
	b.events = append(b.events, Event{T: b.env.Time, Type: kind, Payload: payload})
}

func buildMeta(player, enemy []*Unit) SimMeta {
	var meta SimMeta
	for _, team := range [][]*Unit{player, enemy} {
		for _, u := range team {
			if u == nil {
				continue
			}
			meta.Units = append(meta.Units, SimUnitMeta{
				ID: u.ID, Name: u.Name, Side: u.Side.String(),
				Biome: u.Biome, MaxHP: u.MaxHP, Spd: u.Spd,
			})
		}
	}
	return meta
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
