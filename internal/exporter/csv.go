package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"climcli/internal/errors"
	"climcli/internal/pipeline"
)

// WriteCombinedCSV writes the long-form combined Trade table across all
// processed years, indexed by day: one (Day, Year, Trade) row per pair.
// The filename carries the size of the configured year range, e.g.
// "30 best from 0730 c.csv".
func (e *Exporter) WriteCombinedCSV(primary string, numYears int, a *pipeline.Assembler) (string, error) {
	path := e.path(fmt.Sprintf("%d best from %s c.csv", numYears, primary))

	file, err := os.Create(path)
	if err != nil {
		return "", errors.NewStorageError("failed to create combined CSV", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Day", "Year", pipeline.TradeColumn}); err != nil {
		return "", errors.NewStorageError("failed to write combined CSV header", err)
	}

	rows := a.Long()
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Day),
			strconv.Itoa(r.Year),
			formatValue(r.Value),
		}
		if err := writer.Write(record); err != nil {
			return "", errors.NewStorageError("failed to write combined CSV row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", errors.NewStorageError("failed to flush combined CSV", err)
	}

	e.logger.Info("wrote combined CSV",
		slog.String("path", path),
		slog.Int("rows", len(rows)))
	return path, nil
}
