package combat

import "math"

const (
	StartTurnEnergyGain  = 20
	DealDamageEnergyGain = 5
	TakeDamageEnergyGain = 10
	KillEnergyGain       = 15

	potencyBonusDivisor      = 1000.0
	potencyResistanceDivisor = 2000.0
)

func (b *Battle) executeSkill(actor *Unit, allies, enemies []*Unit, skill *SkillDef) {
	targets := b.selectTargets(skill.Target, actor, allies, enemies)
	if len(targets) == 0 || len(skill.Effects) == 0 {
		return
	}
	ids := make([]string, len(targets))
	for i, t := range targets {
		ids[i] = t.ID
	}
	b.emit("Cast", map[string]any{"caster": actor.ID, "skill": skill.ID, "targets": ids})

	for _, eff := range skill.Effects {
		for _, t := range targets {
			b.applyEffect(actor, t, eff)
		}
	}
}

func (b *Battle) applyEffect(actor, target *Unit, eff EffectDef) {
	if !target.Alive() {
		return
	}

	switch eff.Type {
	case EffectDamage:
		dmg := CalcDamage(actor, target, eff.Scale)
		res := DealDamage(target, dmg)
		if res.Total() > 0 {
			target.GainEnergy(TakeDamageEnergyGain)
			if res.Killed {
				actor.GainEnergy(KillEnergyGain)
			} else {
				actor.GainEnergy(DealDamageEnergyGain)
			}
		}
		b.emit("Hit", map[string]any{
			"caster": actor.ID, "target": target.ID, "dmg": res.Total(),
			"absorbed": res.Absorbed, "hp": target.HP, "shield": target.Shield,
		})
		if res.Killed {
			b.defeated(target, actor.ID)
		}
	case EffectHeal:
		amt := roundInt(float64(max(1, actor.Pot)) * eff.Scale)
		healed := Heal(target, amt)
		b.emit("Heal", map[string]any{"caster": actor.ID, "target": target.ID, "amount": healed, "hp": target.HP})
	case EffectShield:
		amt := roundInt(float64(target.MaxHP) * eff.Scale)
		target.Shield = max(0, target.Shield+amt)
		b.emit("Shield", map[string]any{"caster": actor.ID, "target": target.ID, "amount": amt, "shield": target.Shield})
	case EffectApplyStatus:
		chance := effectiveStatusChance(actor, target, eff)
		if roll := b.env.Rng.Float64(); roll > chance {
			b.emit("Resist", map[string]any{"caster": actor.ID, "target": target.ID, "status": eff.Status})
			return
		}
		st := applyStatus(target, eff)
		if st == nil {
			return
		}
		b.emit("ApplyStatus", map[string]any{
			"caster": actor.ID, "target": target.ID, "status": st.Kind,
			"dur": st.RemainingTurns, "stacks": st.Stacks,
		})
	}
}

// effectiveStatusChance raises the base chance by the caster's pot and lowers
// it by the target's. A non-positive base chance means "always".
func effectiveStatusChance(actor, target *Unit, eff EffectDef) float64 {
	base := eff.Chance
	if base <= 0 {
		base = 1
	}
	bonus := float64(max(0, actor.Pot)) / potencyBonusDivisor
	resist := float64(max(0, target.Pot)) / potencyResistanceDivisor
	return clamp01(base + bonus - resist)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
