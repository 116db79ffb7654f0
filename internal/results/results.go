// Package results defines the race result record model and the CSV loader
// that turns an input file into validated records.
package results

import "fmt"

// Record is one driver's result in one race of one season. Position is nil
// for non-finishes and for values that could not be parsed as an integer.
type Record struct {
	Season      int     `json:"season"`
	Driver      string  `json:"driver"`
	Constructor string  `json:"constructor"`
	Position    *int    `json:"position"`
	Points      float64 `json:"points"`
}

// OnPodium reports whether the record is a 1st, 2nd or 3rd place finish.
func (r Record) OnPodium() bool {
	return r.Position != nil && *r.Position >= 1 && *r.Position <= 3
}

// LoadSummary describes one completed ingest run.
type LoadSummary struct {
	RunID       string `json:"run_id"`
	Rows        int    `json:"rows"`
	FirstSeason int    `json:"first_season"`
	LastSeason  int    `json:"last_season"`
}

func (s LoadSummary) String() string {
	return fmt.Sprintf("run %s: %d race results from %d to %d",
		s.RunID, s.Rows, s.FirstSeason, s.LastSeason)
}
