package config

type StagesConfig struct {
	Stages []StageDef `yaml:"stages"`
}

type StageDef struct {
	ID               string       `yaml:"id"`
	Name             string       `yaml:"name"`
	RecommendedPower int          `yaml:"recommended_power"`
	Waves            [][]WaveUnit `yaml:"waves"`
	Rewards          RewardDef    `yaml:"rewards"`
	Note             string       `yaml:"note"`
}

type WaveUnit struct {
	Enemy string `yaml:"enemy"`
	Level int    `yaml:"level"`
}

type RewardDef struct {
	Gold      int `yaml:"gold"`
	Spores    int `yaml:"spores"`
	AccountXP int `yaml:"account_xp"`
}

func (sc *StagesConfig) Stage(id string) (StageDef, bool) {
	if sc == nil {
		return StageDef{}, false
	}
	for _, s := range sc.Stages {
		if s.ID == id {
			return s, true
		}
	}
	return StageDef{}, false
}
