package build

import (
	"log/slog"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// Stage is a discrete unit of work in the site build.
type Stage struct {
	Name string
	Run  func(st *State) error
}

// runStages executes stages in order, recording per-stage timing and stopping
// at the first failure. There is no retry and no partial-success mode: the
// first error aborts the build and the output tree is left as-is.
func runStages(st *State, stages []Stage) error {
	for _, stage := range stages {
		t0 := time.Now()
		err := stage.Run(st)
		dur := time.Since(t0)
		st.Report.StageDurations[stage.Name] = dur
		if err != nil {
			st.Report.FailedStage = stage.Name
			slog.Debug("stage failed",
				logfields.Stage(stage.Name),
				logfields.DurationMS(float64(dur.Microseconds())/1000),
				logfields.Error(err))
			return err
		}
		slog.Debug("stage complete",
			logfields.Stage(stage.Name),
			logfields.DurationMS(float64(dur.Microseconds())/1000))
	}
	return nil
}
