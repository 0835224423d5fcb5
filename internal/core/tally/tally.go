// Package tally counts row outcomes for a cleaning run.
// Kept is always derived as total - malformed - rejected, never stored
package tally

import "bitextclean/internal/core/pipeline"

// Tally is a per-run (or per-worker) set of counters. Not safe for concurrent use;
// give each worker its own Tally and Merge them afterwards
type Tally struct {
	total     int
	malformed int
	reasons   [pipeline.NumReasons]int
}

// New returns a zeroed Tally
func New() *Tally { return &Tally{} }

// RecordTotal counts one row read, whatever its outcome
func (t *Tally) RecordTotal() { t.total++ }

// RecordMalformed counts one row with too few fields
func (t *Tally) RecordMalformed() { t.malformed++ }

// RecordReason counts one rejected row under r; out of range reasons are ignored
func (t *Tally) RecordReason(r pipeline.Reason) {
	if r < pipeline.NumReasons {
		t.reasons[r]++
	}
}

// Record counts one row and its verdict
func (t *Tally) Record(v pipeline.Verdict) {
	t.RecordTotal()
	switch v.Outcome {
	case pipeline.Malformed:
		t.RecordMalformed()
	case pipeline.Rejected:
		t.RecordReason(v.Reason)
	}
}

// Total returns the number of rows read
func (t *Tally) Total() int { return t.total }

// Malformed returns the number of rows skipped for having too few fields
func (t *Tally) Malformed() int { return t.malformed }

// Count returns the number of rows rejected for r
func (t *Tally) Count(r pipeline.Reason) int {
	if r >= pipeline.NumReasons {
		return 0
	}
	return t.reasons[r]
}

// Rejected returns the number of rows rejected for any reason
func (t *Tally) Rejected() int {
	n := 0
	for _, c := range t.reasons {
		n += c
	}
	return n
}

// Kept returns the number of accepted rows
func (t *Tally) Kept() int { return t.total - t.malformed - t.Rejected() }

// Merge adds o's counters into t
func (t *Tally) Merge(o *Tally) {
	if o == nil {
		return
	}
	t.total += o.total
	t.malformed += o.malformed
	for i := range t.reasons {
		t.reasons[i] += o.reasons[i]
	}
}

// ReasonCount is one reason line of a Snapshot
type ReasonCount struct {
	Code  string `json:"code" yaml:"code"`
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Snapshot is an immutable copy of a Tally for reporting; Reasons are in pipeline order
type Snapshot struct {
	Total     int           `json:"total" yaml:"total"`
	Malformed int           `json:"malformed" yaml:"malformed"`
	Rejected  int           `json:"rejected" yaml:"rejected"`
	Kept      int           `json:"kept" yaml:"kept"`
	Reasons   []ReasonCount `json:"reasons" yaml:"reasons"`
}

// Snapshot copies the current counters
func (t *Tally) Snapshot() Snapshot {
	s := Snapshot{
		Total:     t.total,
		Malformed: t.malformed,
		Rejected:  t.Rejected(),
		Kept:      t.Kept(),
		Reasons:   make([]ReasonCount, 0, pipeline.NumReasons),
	}
	for _, r := range pipeline.Reasons() {
		s.Reasons = append(s.Reasons, ReasonCount{Code: r.String(), Label: r.Label(), Count: t.reasons[r]})
	}
	return s
}

// Count returns the count for a reason code, 0 when the code is unknown
func (s Snapshot) Count(code string) int {
	for _, rc := range s.Reasons {
		if rc.Code == code {
			return rc.Count
		}
	}
	return 0
}
