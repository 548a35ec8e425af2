package domain

import "time"

// RunEntry records one task execution in the run journal.
// Fields are ordered to minimize memory padding.
type RunEntry struct {
	Time       time.Time `json:"time"`
	RunID      string    `json:"run_id"`
	Project    string    `json:"project"`
	Task       string    `json:"task"`
	Branch     string    `json:"branch"`
	Kind       string    `json:"kind"`
	Message    string    `json:"message"`
	Level      string    `json:"level"`
	ExitCode   int       `json:"exit_code"`
	DurationMS int64     `json:"duration_ms"`
}

// Failed reports whether the run did not finish with exit code 0.
func (e RunEntry) Failed() bool {
	return e.ExitCode != 0 || e.Level == "error"
}
