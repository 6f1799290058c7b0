package combat

import (
	"testing"

	"battlesim/internal/util"
)

func newTestUnit(id string, side Side, biome string) *Unit {
	return &Unit{
		Side: side, ID: id, Name: id, Level: 1, Biome: biome,
		MaxHP: 1000, HP: 1000, Atk: 100, Def: 0, Spd: 100, Pot: 0,
		MaxEnergy: 100,
	}
}

func testBook(defs ...*SkillDef) *SkillBook {
	sb := NewSkillBook(nil)
	for _, d := range defs {
		sb.Add(d)
	}
	return sb
}

func newTestBattle(t *testing.T, skills SkillLookup, seed int64) *Battle {
	t.Helper()
	return NewBattle(skills, &Env{Rng: util.New(seed)}, WithRecording(true))
}

func basicAttack() *SkillDef {
	return &SkillDef{
		ID: "atk_basic", Target: TargetEnemyFront,
		Effects: []EffectDef{{Type: EffectDamage, Scale: 1}},
	}
}

func poisonUlt() *SkillDef {
	return &SkillDef{
		ID: "ult_poison", Target: TargetAllEnemies, Cooldown: 3, EnergyCost: 100,
		Effects: []EffectDef{
			{Type: EffectDamage, Scale: 0.7},
			{Type: EffectApplyStatus, Status: "Poison", Chance: 0.4, Duration: 2, Potency: 0.05},
		},
	}
}

func samplePlayerTeam() []*Unit {
	return []*Unit{
		{Side: SidePlayer, ID: "p1", Name: "p1", Biome: "Forest", MaxHP: 900, HP: 900, Atk: 120, Def: 40, Spd: 150, Pot: 80,
			BasicSkill: "atk_basic", UltSkill: "ult_poison", MaxEnergy: 100},
		{Side: SidePlayer, ID: "p2", Name: "p2", Biome: "Kitchen", MaxHP: 800, HP: 800, Atk: 90, Def: 55, Spd: 110, Pot: 50,
			BasicSkill: "atk_basic", UltSkill: "atk_basic", MaxEnergy: 100},
	}
}

func sampleEnemyTeam() []*Unit {
	return []*Unit{
		{Side: SideEnemy, ID: "e1", Name: "e1", Biome: "Wetlands", MaxHP: 950, HP: 950, Atk: 95, Def: 50, Spd: 120, Pot: 45,
			BasicSkill: "atk_basic", UltSkill: "atk_basic", MaxEnergy: 100},
		{Side: SideEnemy, ID: "e2", Name: "e2", Biome: "Decay", MaxHP: 700, HP: 700, Atk: 110, Def: 35, Spd: 140, Pot: 40,
			BasicSkill: "atk_basic", UltSkill: "atk_basic", MaxEnergy: 100},
	}
}

func hpOf(teams ...[]*Unit) []int {
	var out []int
	for _, team := range teams {
		for _, u := range team {
			out = append(out, u.HP)
		}
	}
	return out
}

func eventTypes(events []Event) map[string]int {
	out := map[string]int{}
	for _, ev := range events {
		out[ev.Type]++
	}
	return out
}
