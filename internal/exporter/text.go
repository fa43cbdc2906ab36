package exporter

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"climcli/internal/errors"
	"climcli/internal/pipeline"
)

// WriteTradeTXT writes trade_data_{year}.txt: tab-separated Day_of_Year and
// Trade columns, one row per day, Mean row excluded. A missing Trade value
// leaves the second field empty.
func (e *Exporter) WriteTradeTXT(t *pipeline.YearTable) (string, error) {
	path := e.path(fmt.Sprintf("trade_data_%d.txt", t.Year))

	file, err := os.Create(path)
	if err != nil {
		return "", errors.NewStorageError(fmt.Sprintf("failed to create trade TXT for year %d", t.Year), err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%s\t%s\n", pipeline.DayColumn, pipeline.TradeColumn)
	for i, day := range t.Days {
		fmt.Fprintf(w, "%d\t%s\n", day, formatValue(t.Trade[i]))
	}

	if err := w.Flush(); err != nil {
		return "", errors.NewStorageError(fmt.Sprintf("failed to write trade TXT for year %d", t.Year), err)
	}

	e.logger.Info("wrote trade TXT",
		slog.Int("year", t.Year),
		slog.String("path", path))
	return path, nil
}

// WriteFillLog writes overall_trade_log.txt: one line per fill across all
// years in (year ascending, day ascending) order, identifying the year, the
// day and the value used to fill the primary station's gap.
func (e *Exporter) WriteFillLog(startYear, endYear int, primary string, fills []pipeline.FillEntry) (string, error) {
	path := e.path("overall_trade_log.txt")

	file, err := os.Create(path)
	if err != nil {
		return "", errors.NewStorageError("failed to create fill log", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "Overall Trade Log for Climate Data Processing (%d-%d)\n", startYear, endYear)
	fmt.Fprintln(w, "----------------------------------------------------------")
	fmt.Fprintln(w)

	if len(fills) == 0 {
		fmt.Fprintln(w, "No 'trade' operations (filling of last station's gaps) occurred across all years.")
	}
	for _, fill := range fills {
		fmt.Fprintf(w, "Year: %d, Day: %d - Filled '%s' with %s: %.2f\n",
			fill.Year, fill.Day, pipeline.StationColumn(primary), pipeline.AverageColumn, fill.Value)
	}

	if err := w.Flush(); err != nil {
		return "", errors.NewStorageError("failed to write fill log", err)
	}

	e.logger.Info("wrote fill log",
		slog.String("path", path),
		slog.Int("fills", len(fills)))
	return path, nil
}
