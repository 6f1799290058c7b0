package config

type UnitsConfig struct {
	Characters []CharacterDef `yaml:"characters"`
	Enemies    []EnemyDef     `yaml:"enemies"`
}

type StatBlock struct {
	HP  int `yaml:"hp"`
	Atk int `yaml:"atk"`
	Def int `yaml:"def"`
	Spd int `yaml:"spd"`
	Pot int `yaml:"pot"`
}

type StatGrowth struct {
	HP  float64 `yaml:"hp"`
	Atk float64 `yaml:"atk"`
	Def float64 `yaml:"def"`
	Spd float64 `yaml:"spd"`
	Pot float64 `yaml:"pot"`
}

type SkillRefs struct {
	Basic string `yaml:"basic"`
	Ult   string `yaml:"ult"`
}

type CharacterDef struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Rarity      int        `yaml:"rarity"`
	Biome       string     `yaml:"biome"`
	Class       string     `yaml:"class"`
	Role        string     `yaml:"role"`
	SynergyTags []string   `yaml:"synergy_tags"`
	BaseStats   StatBlock  `yaml:"base_stats"`
	Growth      StatGrowth `yaml:"growth"`
	Skills      SkillRefs  `yaml:"skills"`
	MaxEnergy   int        `yaml:"max_energy"`
	Note        string     `yaml:"note"`
}

// EnemyDef has no authored growth in most content; DefaultEnemyGrowth fills it.
type EnemyDef struct {
	ID        string      `yaml:"id"`
	Name      string      `yaml:"name"`
	Biome     string      `yaml:"biome"`
	Class     string      `yaml:"class"`
	Role      string      `yaml:"role"`
	BaseStats StatBlock   `yaml:"base_stats"`
	Growth    *StatGrowth `yaml:"growth"`
	Skills    SkillRefs   `yaml:"skills"`
	MaxEnergy int         `yaml:"max_energy"`
	Note      string      `yaml:"note"`
}

const DefaultMaxEnergy = 100

func DefaultEnemyGrowth() StatGrowth {
	return StatGrowth{HP: 10, Atk: 2, Def: 2, Spd: 1, Pot: 1}
}

func (uc *UnitsConfig) Character(id string) (CharacterDef, bool) {
	if uc == nil {
		return CharacterDef{}, false
	}
	for _, c := range uc.Characters {
		if c.ID == id {
			return c, true
		}
	}
	return CharacterDef{}, false
}

func (uc *UnitsConfig) Enemy(id string) (EnemyDef, bool) {
	if uc == nil {
		return EnemyDef{}, false
	}
	for _, e := range uc.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return EnemyDef{}, false
}
