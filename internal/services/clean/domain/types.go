// Package domain holds the data structures and ports of the clean service
package domain

import (
	"time"

	"bitextclean/internal/core/tally"
)

// Result describes one finished (or aborted) cleaning run
type Result struct {
	RunID    string         `json:"run_id" yaml:"run_id"`
	Input    string         `json:"input" yaml:"input"`
	Output   string         `json:"output" yaml:"output"`
	DryRun   bool           `json:"dry_run" yaml:"dry_run"`
	Workers  int            `json:"workers" yaml:"workers"`
	Started  time.Time      `json:"started" yaml:"started"`
	Finished time.Time      `json:"finished" yaml:"finished"`
	Bytes    int64          `json:"bytes_read" yaml:"bytes_read"`
	Tally    tally.Snapshot `json:"tally" yaml:"tally"`
}

// Elapsed returns the wall time of the run
func (r Result) Elapsed() time.Duration { return r.Finished.Sub(r.Started) }
