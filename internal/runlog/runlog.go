// Package runlog configures the run-level diagnostic logger: batch
// dispatch, worker lifecycle, and dynamic batch-size changes. It never
// touches the deterministic dataset stream itself.
package runlog

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:-8.8s} %{message}`,
)

// New builds a leveled, formatted stderr logger for the pipeline
// orchestrator, following the teacher pack's getSearchTraceLog setup.
func New(level string) *logging.Logger {
	log := logging.MustGetLogger("mazetrace")

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(backendFormatter)
	leveled.SetLevel(parseLevel(level), "")

	logging.SetBackend(leveled)
	return log
}

func parseLevel(level string) logging.Level {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return logging.WARNING
	}
	return lvl
}
