package combat

import "strings"

type Event struct {
	T       float64        `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "player"
}

// Status is one active effect on a unit. It is removed on the turn its
// RemainingTurns reaches 0.
type Status struct {
	Kind           string  `json:"kind"`
	RemainingTurns int     `json:"remaining_turns"`
	Potency        float64 `json:"potency"`
	Stacks         int     `json:"stacks"`
}

// Unit is one fielded participant. The simulator mutates it in place for the
// whole encounter; the caller reads it back afterwards.
type Unit struct {
	Side  Side   `json:"side"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
	Biome string `json:"biome"`
	Class string `json:"class,omitempty"`
	Role  string `json:"role,omitempty"`

	MaxHP int `json:"max_hp"`
	HP    int `json:"hp"`
	Atk   int `json:"atk"`
	Def   int `json:"def"`
	Spd   int `json:"spd"`
	Pot   int `json:"pot"`

	BasicSkill  string `json:"basic_skill"`
	UltSkill    string `json:"ult_skill"`
	UltCooldown int    `json:"ult_cooldown"`

	Energy      int     `json:"energy"`
	MaxEnergy   int     `json:"max_energy"`
	ActionGauge float64 `json:"action_gauge"`
	Shield      int     `json:"shield"`

	Statuses []*Status `json:"statuses,omitempty"`
}

func (u *Unit) Alive() bool { return u != nil && u.HP > 0 }

func (u *Unit) GainEnergy(amount int) {
	u.Energy = min(u.MaxEnergy, u.Energy+max(0, amount))
}

func (u *Unit) SpendEnergy(amount int) {
	u.Energy = max(0, u.Energy-max(0, amount))
}

func (u *Unit) HasStatus(kind string) bool {
	return u.findStatus(kind) != nil
}

func (u *Unit) findStatus(kind string) *Status {
	key := normalizeKind(kind)
	for _, s := range u.Statuses {
		if normalizeKind(s.Kind) == key {
			return s
		}
	}
	return nil
}

func (u *Unit) Clone() *Unit {
	if u == nil {
		return nil
	}
	c := *u
	c.Statuses = make([]*Status, len(u.Statuses))
	for i, s := range u.Statuses {
		cp := *s
		c.Statuses[i] = &cp
	}
	return &c
}

func CloneUnits(units []*Unit) []*Unit {
	out := make([]*Unit, len(units))
	for i, u := range units {
		out[i] = u.Clone()
	}
	return out
}

func anyAlive(team []*Unit) bool {
	for _, u := range team {
		if u.Alive() {
			return true
		}
	}
	return false
}

func aliveOf(team []*Unit) []*Unit {
	out := make([]*Unit, 0, len(team))
	for _, u := range team {
		if u.Alive() {
			out = append(out, u)
		}
	}
	return out
}

func normalizeKind(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
