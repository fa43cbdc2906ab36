package exporter

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"climcli/internal/errors"
	"climcli/internal/pipeline"
	"climcli/internal/station"
)

const sheetName = "Sheet1"

// WriteYearWorkbook writes processed_climate_data_{year}.xlsx: the full
// augmented year table (day column, one column per station, the peer
// average and the Trade column) plus the appended Mean row. Missing values
// stay as empty cells.
func (e *Exporter) WriteYearWorkbook(t *pipeline.YearTable) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	header := []string{pipeline.DayColumn}
	for _, name := range t.Stations {
		header = append(header, pipeline.StationColumn(name))
	}
	header = append(header, pipeline.AverageColumn, pipeline.TradeColumn)

	for col, title := range header {
		if err := setCell(f, col+1, 1, title); err != nil {
			return "", err
		}
	}

	for i, day := range t.Days {
		row := i + 2
		if err := setCell(f, 1, row, day); err != nil {
			return "", err
		}
		values := make([]station.Value, 0, len(t.Stations)+2)
		for _, name := range t.Stations {
			values = append(values, t.Column(name)[i])
		}
		values = append(values, t.Average[i], t.Trade[i])
		if err := setRow(f, 2, row, values); err != nil {
			return "", err
		}
	}

	if t.Mean != nil {
		row := len(t.Days) + 2
		if err := setCell(f, 1, row, "Mean"); err != nil {
			return "", err
		}
		values := make([]station.Value, 0, len(t.Stations)+2)
		for _, name := range t.Stations {
			values = append(values, t.Mean.Stations[name])
		}
		values = append(values, t.Mean.Average, t.Mean.Trade)
		if err := setRow(f, 2, row, values); err != nil {
			return "", err
		}
	}

	path := e.path(fmt.Sprintf("processed_climate_data_%d.xlsx", t.Year))
	if err := f.SaveAs(path); err != nil {
		return "", errors.NewStorageError(fmt.Sprintf("failed to save workbook for year %d", t.Year), err)
	}

	e.logger.Info("wrote year workbook",
		slog.Int("year", t.Year),
		slog.String("path", path),
		slog.Int("days", t.NumDays()))
	return path, nil
}

// WriteConsolidatedWorkbook writes {primary}c.xlsx: a station-name column,
// the Days column and one Trade column per processed year.
func (e *Exporter) WriteConsolidatedWorkbook(primary string, a *pipeline.Assembler) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	years := a.Years()

	if err := setCell(f, 1, 1, primary); err != nil {
		return "", err
	}
	if err := setCell(f, 2, 1, "Days"); err != nil {
		return "", err
	}
	for i, year := range years {
		if err := setCell(f, i+3, 1, year); err != nil {
			return "", err
		}
	}

	for _, wide := range a.Wide() {
		row := wide.Day + 1
		if err := setCell(f, 1, row, primary); err != nil {
			return "", err
		}
		if err := setCell(f, 2, row, wide.Day); err != nil {
			return "", err
		}
		if err := setRow(f, 3, row, wide.Values); err != nil {
			return "", err
		}
	}

	path := e.path(primary + "c.xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", errors.NewStorageError("failed to save consolidated workbook", err)
	}

	e.logger.Info("wrote consolidated workbook",
		slog.String("path", path),
		slog.Int("years", len(years)),
		slog.Int("days", a.MaxDay()))
	return path, nil
}

// setCell writes one value at 1-based (col, row) coordinates.
func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.NewStorageError("invalid cell coordinates", err)
	}
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to set cell %s", cell), err)
	}
	return nil
}

// setRow writes a run of measurements starting at startCol, leaving missing
// values as empty cells.
func setRow(f *excelize.File, startCol, row int, values []station.Value) error {
	for i, v := range values {
		if !v.Valid {
			continue
		}
		if err := setCell(f, startCol+i, row, v.Float64); err != nil {
			return err
		}
	}
	return nil
}
