package domain

import "time"

// RunEntry is one recorded lint run.
type RunEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Commit    string    `json:"commit,omitempty"`
	Paths     []string  `json:"paths"`
	Checked   int       `json:"checked"`
	Offenses  int       `json:"offenses"`
	Pass      bool      `json:"pass"`
}
