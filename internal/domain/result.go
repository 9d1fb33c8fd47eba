package domain

// PathStat summarizes one manifest's outcome within a run.
type PathStat struct {
	Path         string `json:"path"`
	Dependencies int    `json:"dependencies"`
	Sources      int    `json:"sources"`
	Offenses     int    `json:"offenses"`
}

// LintResult aggregates a whole run: every offense in path order, with
// the generator's order preserved inside each path.
type LintResult struct {
	Offenses []Offense
	Stats    []PathStat
}

// Pass reports whether the run produced no offenses at all.
func (r *LintResult) Pass() bool { return len(r.Offenses) == 0 }

// Checked returns the total number of declarations checked.
func (r *LintResult) Checked() int {
	total := 0
	for _, s := range r.Stats {
		total += s.Dependencies + s.Sources
	}
	return total
}

// Records returns the serializable form of the offenses.
func (r *LintResult) Records() []OffenseRecord {
	out := make([]OffenseRecord, len(r.Offenses))
	for i, o := range r.Offenses {
		out[i] = RecordOf(o)
	}
	return out
}
