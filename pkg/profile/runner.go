package profile

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
)

// Runner executes all registered checks against a table.
type Runner struct {
	logger *slog.Logger
}

// NewRunner returns a Runner. A nil logger discards log output.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{logger: logger}
}

// Run normalizes the table's date columns and executes every registered
// check in section order. The input table is never modified; checks see a
// copy with date columns converted to UTC timestamps.
//
// The first check error aborts the run; no partial report is returned.
func (r *Runner) Run(t *dataset.Table) (*Report, error) {
	normalized, err := dataset.NormalizeDates(t, DateColumns...)
	if err != nil {
		return nil, fmt.Errorf("normalizing date columns: %w", err)
	}

	report := &Report{TableName: t.Name}
	for _, def := range All() {
		r.logger.Debug("running check", "id", def.ID, "name", def.Name)

		finding, err := def.Check(normalized)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", def.ID, err)
		}

		finding.CheckID = def.ID
		finding.Section = def.Section
		finding.Title = def.Title
		report.Findings = append(report.Findings, finding)
	}
	return report, nil
}
