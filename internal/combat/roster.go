package combat

import (
	"battlesim/internal/config"
)

// ScaleStat is max(1, round(base + growth*(level-1))).
func ScaleStat(base int, growth float64, level int) int {
	return max(1, roundInt(float64(base)+growth*float64(level-1)))
}

func scaled(base config.StatBlock, g config.StatGrowth, level int) (hp, atk, def, spd, pot int) {
	return ScaleStat(base.HP, g.HP, level),
		ScaleStat(base.Atk, g.Atk, level),
		ScaleStat(base.Def, g.Def, level),
		ScaleStat(base.Spd, g.Spd, level),
		ScaleStat(base.Pot, g.Pot, level)
}

func NewCharacterUnit(def config.CharacterDef, side Side, level int) *Unit {
	level = max(1, level)
	hp, atk, dfn, spd, pot := scaled(def.BaseStats, def.Growth, level)
	return &Unit{
		Side:       side,
		ID:         def.ID,
		Name:       def.Name,
		Level:      level,
		Biome:      def.Biome,
		Class:      def.Class,
		Role:       def.Role,
		MaxHP:      hp,
		HP:         hp,
		Atk:        atk,
		Def:        dfn,
		Spd:        spd,
		Pot:        pot,
		BasicSkill: def.Skills.Basic,
		UltSkill:   def.Skills.Ult,
		MaxEnergy:  maxEnergyOr(def.MaxEnergy),
	}
}

func NewEnemyUnit(def config.EnemyDef, level int) *Unit {
	level = max(1, level)
	growth := config.DefaultEnemyGrowth()
	if def.Growth != nil {
		growth = *def.Growth
	}
	hp, atk, dfn, spd, pot := scaled(def.BaseStats, growth, level)
	return &Unit{
		Side:       SideEnemy,
		ID:         def.ID,
		Name:       def.Name,
		Level:      level,
		Biome:      def.Biome,
		Class:      def.Class,
		Role:       def.Role,
		MaxHP:      hp,
		HP:         hp,
		Atk:        atk,
		Def:        dfn,
		Spd:        spd,
		Pot:        pot,
		BasicSkill: def.Skills.Basic,
		UltSkill:   def.Skills.Ult,
		MaxEnergy:  maxEnergyOr(def.MaxEnergy),
	}
}

func maxEnergyOr(v int) int {
	if v <= 0 {
		return config.DefaultMaxEnergy
	}
	return v
}

// BuildTeam builds player units for ids at level. Unknown ids are skipped.
func BuildTeam(uc *config.UnitsConfig, ids []string, level int) []*Unit {
	team := make([]*Unit, 0, len(ids))
	for _, id := range ids {
		def, ok := uc.Character(id)
		if !ok {
			continue
		}
		team = append(team, NewCharacterUnit(def, SidePlayer, level))
	}
	return team
}

// BuildWave builds the enemy roster of one wave. Unknown enemies are skipped.
func BuildWave(uc *config.UnitsConfig, wave []config.WaveUnit) []*Unit {
	out := make([]*Unit, 0, len(wave))
	for _, wu := range wave {
		def, ok := uc.Enemy(wu.Enemy)
		if !ok {
			continue
		}
		out = append(out, NewEnemyUnit(def, wu.Level))
	}
	return out
}

func BuildStageWaves(uc *config.UnitsConfig, stage config.StageDef) [][]*Unit {
	waves := make([][]*Unit, len(stage.Waves))
	for i, w := range stage.Waves {
		waves[i] = BuildWave(uc, w)
	}
	return waves
}
