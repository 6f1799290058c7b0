package config

type SkillsConfig struct {
	Skills []Skill `yaml:"skills"`
}

type Skill struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Target     string   `yaml:"target"`
	Cooldown   int      `yaml:"cooldown"`
	EnergyCost int      `yaml:"energy_cost"`
	Effects    []Effect `yaml:"effects"`
	Note       string   `yaml:"note"`
}

// Effect is one step of a skill. Scale is relative to the caster's atk for
// damage, pot for heals and the target's max hp for shields.
type Effect struct {
	Type     string  `yaml:"type"`
	Scale    float64 `yaml:"scale"`
	Status   string  `yaml:"status"`
	Chance   float64 `yaml:"chance"`
	Duration int     `yaml:"duration"`
	Potency  float64 `yaml:"potency"`
}
