package combat

func (b *Battle) lookupSkill(id string) *SkillDef {
	if b.skills == nil || id == "" {
		return nil
	}
	def, ok := b.skills.Skill(id)
	if !ok {
		return nil
	}
	return def
}

// selectSkill picks the ultimate when it is off cooldown, affordable and the
// actor is not silenced; otherwise the basic skill. An actor with no basic
// skill falls back to its ultimate regardless of gating.
func (b *Battle) selectSkill(actor *Unit) (skill *SkillDef, usedUlt bool, ok bool) {
	basic := b.lookupSkill(actor.BasicSkill)
	ult := b.lookupSkill(actor.UltSkill)
	if basic == nil && ult == nil {
		return nil, false, false
	}

	canCastUlt := ult != nil &&
		!actor.HasStatus(StatusSilence) &&
		actor.UltCooldown <= 0 &&
		actor.Energy >= max(0, ult.EnergyCost)
	if canCastUlt {
		return ult, true, true
	}
	if basic != nil {
		return basic, false, true
	}
	return ult, false, true
}

func (b *Battle) payForUlt(actor *Unit, ult *SkillDef) {
	cost := ult.EnergyCost
	if cost <= 0 {
		cost = actor.MaxEnergy
	}
	actor.SpendEnergy(cost)
	actor.UltCooldown = max(0, ult.Cooldown)
}

func tickUltCooldown(u *Unit) {
	if u.UltCooldown > 0 {
		u.UltCooldown--
	}
}
