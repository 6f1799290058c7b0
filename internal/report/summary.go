// Package report aggregates batch simulation outcomes and stores them.
package report

import "time"

// Summary is the aggregate of a batch of simulations that share content,
// team and base seed.
type Summary struct {
	ID            string    `json:"id"`
	StageID       string    `json:"stage_id,omitempty"`
	Team          []string  `json:"team"`
	Seed          int64     `json:"seed"`
	Runs          int       `json:"runs"`
	Wins          int       `json:"wins"`
	TotalTurns    int       `json:"total_turns"`
	TotalDuration float64   `json:"total_duration"`
	CreatedAt     time.Time `json:"created_at"`
}

// Add records one finished simulation.
func (s *Summary) Add(won bool, turns int, duration float64) {
	s.Runs++
	if won {
		s.Wins++
	}
	s.TotalTurns += turns
	s.TotalDuration += duration
}

// Merge folds other into s. Identity fields of s are kept.
func (s *Summary) Merge(other Summary) {
	s.Runs += other.Runs
	s.Wins += other.Wins
	s.TotalTurns += other.TotalTurns
	s.TotalDuration += other.TotalDuration
}

func (s Summary) WinRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Runs)
}

func (s Summary) AvgTurns() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Runs)
}

func (s Summary) AvgDuration() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.TotalDuration / float64(s.Runs)
}
