package pipeline

import (
	"fmt"
	"log/slog"

	"climcli/internal/errors"
	"climcli/internal/files"
	"climcli/internal/station"
)

// Consolidator gathers each configured station's series for one target year
// and aligns them into a YearTable.
type Consolidator struct {
	discovery *files.Discovery
	stations  []string
	startYear int
	endYear   int
	logger    *slog.Logger
}

// NewConsolidator creates a consolidator over the configured stations. The
// year bounds drive the filename century heuristic.
func NewConsolidator(discovery *files.Discovery, stations []string, startYear, endYear int, logger *slog.Logger) *Consolidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consolidator{
		discovery: discovery,
		stations:  stations,
		startYear: startYear,
		endYear:   endYear,
		logger:    logger,
	}
}

// Consolidate builds the YearTable for targetYear. A station with no usable
// files contributes an all-missing column; if every station comes up empty
// the year is skipped and a NO_FILES_FOR_STATION_YEAR error is returned.
func (c *Consolidator) Consolidate(targetYear int) (*YearTable, error) {
	columns := make(map[string]station.Series, len(c.stations))
	anyData := false

	for _, name := range c.stations {
		series := c.gatherStation(name, targetYear)
		columns[name] = series
		if len(series) > 0 {
			anyData = true
		}
	}

	if !anyData {
		return nil, errors.NewAppError(errors.ErrTypeNoFiles,
			fmt.Sprintf("no station contributed data for year %d", targetYear), nil).
			WithContext("year", targetYear)
	}

	return NewYearTable(targetYear, c.stations, columns)
}

// gatherStation reads every file of one station that resolves to targetYear,
// concatenating multiple matches in name order.
func (c *Consolidator) gatherStation(name string, targetYear int) station.Series {
	if !c.discovery.HasStationDir(name) {
		c.logger.Warn("station directory not found, station contributes no data",
			slog.String("station", name),
			slog.String("dir", c.discovery.StationDir(name)))
		return nil
	}

	found, err := c.discovery.FindStationFiles(name)
	if err != nil {
		c.logger.Error("failed to list station files",
			slog.String("station", name),
			slog.String("error", err.Error()))
		return nil
	}

	var series station.Series
	matches := 0

	for _, f := range found {
		year, err := station.ResolveYear(f.Name, c.startYear, c.endYear)
		if err != nil {
			if errors.IsType(err, errors.ErrTypeMalformedFilename) {
				c.logger.Debug("skipping file without year suffix",
					slog.String("station", name),
					slog.String("file", f.Name))
			} else {
				c.logger.Warn("skipping file with out-of-range year",
					slog.String("station", name),
					slog.String("file", f.Name),
					slog.String("error", err.Error()))
			}
			continue
		}
		if year != targetYear {
			continue
		}

		matches++
		if matches > 1 {
			// Duplicate match for the same resolved year: concatenated in
			// name order rather than silently dropped, and reported.
			c.logger.Warn("duplicate file for station year, concatenating",
				slog.String("station", name),
				slog.String("file", f.Name),
				slog.Int("year", targetYear),
				slog.String("condition", string(errors.ErrTypeDuplicateFile)))
		}

		part, err := station.ReadSeries(f.Path)
		if err != nil {
			c.logger.Error("failed to read station file",
				slog.String("station", name),
				slog.String("file", f.Name),
				slog.Int("year", targetYear),
				slog.String("error", err.Error()))
			continue
		}

		c.logger.Info("read station file",
			slog.String("station", name),
			slog.String("file", f.Name),
			slog.Int("year", targetYear),
			slog.Int("rows", len(part)))
		series = append(series, part...)
	}

	if matches == 0 {
		c.logger.Warn("no files for station year",
			slog.String("station", name),
			slog.Int("year", targetYear),
			slog.String("condition", string(errors.ErrTypeNoFiles)))
	}

	return series
}
