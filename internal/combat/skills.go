package combat

import "battlesim/internal/config"

const (
	EffectDamage      = "Damage"
	EffectHeal        = "Heal"
	EffectShield      = "Shield"
	EffectApplyStatus = "ApplyStatus"
)

type EffectDef struct {
	Type     string
	Scale    float64
	Status   string
	Chance   float64
	Duration int
	Potency  float64
}

type SkillDef struct {
	ID         string
	Name       string
	Target     string
	Cooldown   int
	EnergyCost int
	Effects    []EffectDef
}

// SkillLookup resolves skill ids. Implementations must be safe to read while a
// battle runs and must not change underneath it.
type SkillLookup interface {
	Skill(id string) (*SkillDef, bool)
}

type SkillBook struct {
	byID map[string]*SkillDef
}

func NewSkillBook(cfg *config.SkillsConfig) *SkillBook {
	sb := &SkillBook{byID: map[string]*SkillDef{}}
	if cfg == nil {
		return sb
	}
	for _, s := range cfg.Skills {
		def := &SkillDef{
			ID:         s.ID,
			Name:       s.Name,
			Target:     s.Target,
			Cooldown:   s.Cooldown,
			EnergyCost: s.EnergyCost,
		}
		if len(s.Effects) > 0 {
			def.Effects = make([]EffectDef, len(s.Effects))
			for i, e := range s.Effects {
				def.Effects[i] = EffectDef{
					Type:     e.Type,
					Scale:    e.Scale,
					Status:   e.Status,
					Chance:   e.Chance,
					Duration: e.Duration,
					Potency:  e.Potency,
				}
			}
		}
		sb.Add(def)
	}
	return sb
}

// Add registers def, replacing any skill with the same id.
func (sb *SkillBook) Add(def *SkillDef) {
	if def == nil || def.ID == "" {
		return
	}
	sb.byID[def.ID] = def
}

func (sb *SkillBook) Skill(id string) (*SkillDef, bool) {
	if sb == nil || id == "" {
		return nil, false
	}
	def, ok := sb.byID[id]
	return def, ok
}

func (sb *SkillBook) Len() int {
	if sb == nil {
		return 0
	}
	return len(sb.byID)
}
