// Package telemetry wraps hclog.Logger with the handful of
// structured-field calls cmd/ljoinbench needs to log run timings and
// result counts. It exists so the benchmark harness logs through one
// small seam instead of importing hclog directly in several places.
package telemetry

import (
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Logger is a structured logger scoped to one ljoinbench run.
type Logger struct {
	hclog.Logger
	runID string
}

// New builds a Logger named "ljoinbench" at the given level (e.g.
// "info", "debug"), tagged with runID on every subsequent call.
func New(level, runID string) *Logger {
	l := hclog.New(&hclog.LoggerOptions{
		Name:   "ljoinbench",
		Level:  hclog.LevelFromString(level),
		Output: os.Stderr,
	})
	return &Logger{Logger: l, runID: runID}
}

// RunStarted logs the start of a query run.
func (l *Logger) RunStarted(numVariables, numClauses int) {
	l.Info("run started", "run_id", l.runID, "num_variables", numVariables, "num_clauses", numClauses)
}

// RunFinished logs a completed run's timing and result count.
func (l *Logger) RunFinished(elapsed time.Duration, numResults int) {
	l.Info("run finished", "run_id", l.runID, "elapsed", elapsed.String(), "num_results", numResults)
}

// RunFailed logs a query run that returned an error.
func (l *Logger) RunFailed(err error) {
	l.Error("run failed", "run_id", l.runID, "error", err)
}
