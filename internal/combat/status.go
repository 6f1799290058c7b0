package combat

import "slices"

const (
	StatusPoison  = "poison"
	StatusBurn    = "burn"
	StatusBleed   = "bleed"
	StatusRegen   = "regen"
	StatusFreeze  = "freeze"
	StatusStun    = "stun"
	StatusSilence = "silence"
	StatusThorns  = "thorns"
)

var stackableKinds = map[string]bool{
	StatusPoison: true,
	StatusBurn:   true,
	StatusBleed:  true,
	StatusRegen:  true,
}

func IsStackable(kind string) bool {
	return stackableKinds[normalizeKind(kind)]
}

func isDamageOverTime(kind string) bool {
	return kind == StatusPoison || kind == StatusBurn || kind == StatusBleed
}

// applyStatus creates or merges a status on target and returns the live
// instance, or nil when the effect names no status.
func applyStatus(target *Unit, eff EffectDef) *Status {
	if normalizeKind(eff.Status) == "" {
		return nil
	}
	existing := target.findStatus(eff.Status)
	if existing == nil {
		st := &Status{
			Kind:           eff.Status,
			RemainingTurns: max(1, eff.Duration),
			Potency:        eff.Potency,
			Stacks:         1,
		}
		target.Statuses = append(target.Statuses, st)
		return st
	}
	existing.RemainingTurns = max(existing.RemainingTurns, eff.Duration)
	if IsStackable(eff.Status) {
		existing.Stacks = max(1, existing.Stacks) + 1
		existing.Potency += eff.Potency
		return existing
	}
	existing.Potency = max(existing.Potency, eff.Potency)
	return existing
}

// applyStartOfTurnStatuses ticks every status on u in insertion order and
// reports whether u loses its action this turn. All statuses are processed
// before the decision, so a lethal DoT still lands on a frozen unit. Regen does
// not heal a unit that died earlier in the same tick.
func (b *Battle) applyStartOfTurnStatuses(u *Unit) bool {
	skip := false
	for _, s := range slices.Clone(u.Statuses) {
		kind := normalizeKind(s.Kind)
		stacks := max(1, s.Stacks)
		amount := roundInt(float64(u.MaxHP) * s.Potency * float64(stacks))

		switch {
		case kind == StatusRegen:
			if !u.Alive() {
				break
			}
			healed := Heal(u, amount)
			b.emit("StatusTick", map[string]any{
				"target": u.ID, "status": s.Kind, "heal": healed, "hp": u.HP,
			})
		case isDamageOverTime(kind):
			res := dealPure(u, amount)
			b.emit("StatusTick", map[string]any{
				"target": u.ID, "status": s.Kind, "dmg": res.Total(), "hp": u.HP, "shield": u.Shield,
			})
			if res.Killed {
				b.defeated(u, s.Kind)
			}
		case kind == StatusFreeze || kind == StatusStun:
			skip = true
		}

		s.RemainingTurns--
		if s.RemainingTurns <= 0 {
			b.emit("Expire", map[string]any{"target": u.ID, "status": s.Kind})
		}
	}
	u.Statuses = slices.DeleteFunc(u.Statuses, func(s *Status) bool { return s.RemainingTurns <= 0 })
	return skip || !u.Alive()
}
