package combat

import "math"

// ActionGaugeThreshold is the gauge value at which a unit may act.
const ActionGaugeThreshold = 1000.0

func effectiveSpeed(u *Unit) int { return max(1, u.Spd) }

func ticksUntilAction(u *Unit) int {
	needed := math.Max(0, ActionGaugeThreshold-u.ActionGauge)
	return max(1, int(math.Ceil(needed/float64(effectiveSpeed(u)))))
}

// actsBefore orders ready units: higher gauge, then higher speed, then the
// player side.
func actsBefore(a, b *Unit) bool {
	if a.ActionGauge != b.ActionGauge {
		return a.ActionGauge > b.ActionGauge
	}
	if a.Spd != b.Spd {
		return a.Spd > b.Spd
	}
	return a.Side < b.Side
}

// nextActor advances every living unit's gauge just far enough for someone to
// become ready, then elects the first unit by actsBefore. Full ties keep
// roster order, players first.
func (b *Battle) nextActor(player, enemy []*Unit) *Unit {
	alive := append(aliveOf(player), aliveOf(enemy)...)
	if len(alive) == 0 {
		return nil
	}

	highest := alive[0].ActionGauge
	for _, u := range alive[1:] {
		highest = math.Max(highest, u.ActionGauge)
	}
	if highest < ActionGaugeThreshold {
		ticks := math.MaxInt
		for _, u := range alive {
			ticks = min(ticks, ticksUntilAction(u))
		}
		for _, u := range alive {
			u.ActionGauge += float64(effectiveSpeed(u) * ticks)
		}
		b.env.Time += float64(ticks)
	}

	best := alive[0]
	for _, u := range alive[1:] {
		if actsBefore(u, best) {
			best = u
		}
	}
	return best
}
