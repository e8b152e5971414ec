// Package errreport defines the fire-and-forget error-reporting collaborator
// used by the record store adapter. Reports carry a short context label; no
// return value is consumed and reporting must never fail the caller.
package errreport

import (
	"github.com/rs/zerolog"
)

// Reporter accepts (context, error) pairs.
type Reporter interface {
	Report(context string, err error)
}

// ZerologReporter writes reports as structured error logs.
type ZerologReporter struct {
	logger zerolog.Logger
}

// NewZerologReporter wraps the given logger.
func NewZerologReporter(logger zerolog.Logger) *ZerologReporter {
	return &ZerologReporter{logger: logger}
}

func (r *ZerologReporter) Report(context string, err error) {
	r.logger.Error().Err(err).Str("context", context).Msg("reported error")
}

// Nop discards all reports.
type Nop struct{}

func (Nop) Report(string, error) {}
