package build

import "time"

// Outcome is the typed enumeration of final build result states.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// Report captures high-level metrics about a single build run.
type Report struct {
	Start          time.Time
	End            time.Time
	FilesCopied    int
	PagesRendered  int
	StageDurations map[string]time.Duration
	FailedStage    string // empty on success
	Outcome        Outcome
}

func newReport() *Report {
	return &Report{
		Start:          time.Now(),
		StageDurations: make(map[string]time.Duration),
	}
}

// finish stamps the end time and derives the outcome.
func (r *Report) finish(err error) {
	r.End = time.Now()
	if err != nil {
		r.Outcome = OutcomeFailed
		return
	}
	r.Outcome = OutcomeSuccess
}

// Duration returns the wall-clock time of the run.
func (r *Report) Duration() time.Duration {
	return r.End.Sub(r.Start)
}
