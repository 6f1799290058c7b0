package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownEnemy = errors.New("unknown enemy")
	ErrUnknownSkill = errors.New("unknown skill")
	ErrDuplicateID  = errors.New("duplicate id")
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// LoadAll reads skills.yaml, units.yaml and stages.yaml from dir.
// A missing stages.yaml yields an empty table.
func LoadAll(dir string) (*SkillsConfig, *UnitsConfig, *StagesConfig, error) {
	var sc SkillsConfig
	var uc UnitsConfig
	var stc StagesConfig
	if err := loadYAML(filepath.Join(dir, "skills.yaml"), &sc); err != nil {
		return nil, nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, "units.yaml"), &uc); err != nil {
		return nil, nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, "stages.yaml"), &stc); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, nil, nil, err
	}
	applyUnitDefaults(&uc)
	return &sc, &uc, &stc, nil
}

func applyUnitDefaults(uc *UnitsConfig) {
	for i := range uc.Characters {
		if uc.Characters[i].MaxEnergy <= 0 {
			uc.Characters[i].MaxEnergy = DefaultMaxEnergy
		}
	}
	for i := range uc.Enemies {
		if uc.Enemies[i].MaxEnergy <= 0 {
			uc.Enemies[i].MaxEnergy = DefaultMaxEnergy
		}
		if uc.Enemies[i].Growth == nil {
			g := DefaultEnemyGrowth()
			uc.Enemies[i].Growth = &g
		}
	}
}

// Validate reports authoring problems. The simulator tolerates every one of
// them, so callers usually log the result instead of aborting.
func Validate(sc *SkillsConfig, uc *UnitsConfig, stc *StagesConfig) error {
	var errs []error

	skillIDs := map[string]bool{}
	if sc != nil {
		for _, s := range sc.Skills {
			if skillIDs[s.ID] {
				errs = append(errs, fmt.Errorf("skill %q: %w", s.ID, ErrDuplicateID))
			}
			skillIDs[s.ID] = true
		}
	}
	checkRefs := func(owner string, refs SkillRefs) {
		for _, id := range []string{refs.Basic, refs.Ult} {
			if id != "" && !skillIDs[id] {
				errs = append(errs, fmt.Errorf("%s references skill %q: %w", owner, id, ErrUnknownSkill))
			}
		}
	}
	if uc != nil {
		seen := map[string]bool{}
		for _, c := range uc.Characters {
			if seen[c.ID] {
				errs = append(errs, fmt.Errorf("character %q: %w", c.ID, ErrDuplicateID))
			}
			seen[c.ID] = true
			checkRefs("character "+c.ID, c.Skills)
		}
		seen = map[string]bool{}
		for _, e := range uc.Enemies {
			if seen[e.ID] {
				errs = append(errs, fmt.Errorf("enemy %q: %w", e.ID, ErrDuplicateID))
			}
			seen[e.ID] = true
			checkRefs("enemy "+e.ID, e.Skills)
		}
	}
	if stc != nil {
		for _, st := range stc.Stages {
			for w, wave := range st.Waves {
				for _, wu := range wave {
					if _, ok := uc.Enemy(wu.Enemy); !ok {
						errs = append(errs, fmt.Errorf("stage %q wave %d enemy %q: %w", st.ID, w+1, wu.Enemy, ErrUnknownEnemy))
					}
				}
			}
		}
	}
	return errors.Join(errs...)
}
