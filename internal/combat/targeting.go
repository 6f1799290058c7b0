package combat

import "battlesim/internal/util"

const (
	TargetSelf         = "Self"
	TargetAllEnemies   = "AllEnemies"
	TargetAllAllies    = "AllAllies"
	TargetEnemyFront   = "EnemyFront"
	TargetRandomEnemy2 = "RandomEnemy2"
)

// selectTargets resolves rule against the alive members of allies and enemies.
// Unknown rules behave like EnemyFront.
func (b *Battle) selectTargets(rule string, actor *Unit, allies, enemies []*Unit) []*Unit {
	liveEnemies := aliveOf(enemies)
	liveAllies := aliveOf(allies)

	switch rule {
	case TargetSelf:
		return []*Unit{actor}
	case TargetAllEnemies:
		return liveEnemies
	case TargetAllAllies:
		return liveAllies
	case TargetRandomEnemy2:
		return util.SampleN(b.env.Rng, liveEnemies, 2)
	default:
		if len(liveEnemies) == 0 {
			return nil
		}
		return liveEnemies[:1]
	}
}
