package pipeline

import (
	"log/slog"
)

// YearSink receives one fully processed year (reconciled table plus its
// fill log) so per-year outputs can be written inside the year loop.
type YearSink func(t *YearTable, fills []FillEntry) error

// RunResult is the outcome of a full processing run.
type RunResult struct {
	ProcessedYears []int
	SkippedYears   []int
	Fills          []FillEntry // (year ascending, day ascending)
	Assembler      *Assembler
}

// Runner folds the consolidate -> reconcile -> aggregate pipeline over the
// configured year range. One failing year is skipped and reported without
// disturbing the other years or the multi-year assembly.
type Runner struct {
	consolidator *Consolidator
	logger       *slog.Logger
}

// NewRunner creates a runner over a configured consolidator.
func NewRunner(consolidator *Consolidator, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{consolidator: consolidator, logger: logger}
}

// Run processes the years strictly in the given ascending order. The sink is
// invoked per successful year; a sink error is reported but does not stop
// the run (the year stays in the assembly, matching the source data).
func (r *Runner) Run(years []int, sink YearSink) *RunResult {
	result := &RunResult{Assembler: NewAssembler()}

	for _, year := range years {
		r.logger.Info("processing year", slog.Int("year", year))

		table, err := r.consolidator.Consolidate(year)
		if err != nil {
			r.logger.Warn("skipping year",
				slog.Int("year", year),
				slog.String("error", err.Error()))
			result.SkippedYears = append(result.SkippedYears, year)
			continue
		}

		fills := Reconcile(table)
		AppendMeanRow(table)

		if err := result.Assembler.Add(year, table.Trade); err != nil {
			r.logger.Error("failed to assemble year",
				slog.Int("year", year),
				slog.String("error", err.Error()))
			result.SkippedYears = append(result.SkippedYears, year)
			continue
		}
		result.Fills = append(result.Fills, fills...)
		result.ProcessedYears = append(result.ProcessedYears, year)

		r.logger.Info("year processed",
			slog.Int("year", year),
			slog.Int("days", table.NumDays()),
			slog.Int("fills", len(fills)))

		if sink != nil {
			if err := sink(table, fills); err != nil {
				r.logger.Error("failed to write outputs for year",
					slog.Int("year", year),
					slog.String("error", err.Error()))
			}
		}
	}

	return result
}
