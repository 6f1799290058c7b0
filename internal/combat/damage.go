package combat

import "math"

// DefenseConstant is the defense value at which incoming damage is halved.
const DefenseConstant = 3000.0

type DamageResult struct {
	Absorbed int
	HPLoss   int
	Killed   bool
}

func (r DamageResult) Total() int { return r.Absorbed + r.HPLoss }

func roundInt(v float64) int {
	return int(math.RoundToEven(v))
}

// CalcDamage applies the defense curve and biome multiplier to atk*scale.
// The result is never below 1.
func CalcDamage(attacker, defender *Unit, scale float64) int {
	raw := float64(attacker.Atk) * scale
	mitigated := raw * (DefenseConstant / (DefenseConstant + float64(max(0, defender.Def))))
	dmg := roundInt(mitigated * BiomeMultiplier(attacker.Biome, defender.Biome))
	return max(1, dmg)
}

// DealDamage spends shield first, then hp (floored at 0).
func DealDamage(target *Unit, dmg int) DamageResult {
	var res DamageResult
	if dmg <= 0 {
		return res
	}
	wasAlive := target.HP > 0
	if target.Shield > 0 {
		res.Absorbed = min(target.Shield, dmg)
		target.Shield -= res.Absorbed
		dmg -= res.Absorbed
	}
	if dmg > 0 {
		before := target.HP
		target.HP = max(0, target.HP-dmg)
		res.HPLoss = before - target.HP
	}
	res.Killed = wasAlive && target.HP <= 0
	return res
}

// dealPure ignores defense but still hits shield first.
func dealPure(target *Unit, dmg int) DamageResult {
	return DealDamage(target, max(1, dmg))
}

// Heal restores hp up to MaxHP and returns the amount actually restored.
func Heal(target *Unit, amount int) int {
	before := target.HP
	target.HP = min(target.MaxHP, target.HP+max(0, amount))
	return target.HP - before
}
