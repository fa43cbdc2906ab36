package pipeline

import (
	"fmt"

	"climcli/internal/station"
)

// Column names appended to every year table by the reconciler and
// aggregator. Station columns are named "{station}_Data".
const (
	DayColumn     = "Day_of_Year"
	AverageColumn = "Average_Other_Stations"
	TradeColumn   = "Trade"
)

// StationColumn returns the table column name for a station.
func StationColumn(name string) string {
	return name + "_Data"
}

// YearTable holds one target year's aligned station series, keyed by
// day of year. The day index is the 1-based row position, identical for
// every column; shorter stations are padded with the missing sentinel.
type YearTable struct {
	Year     int
	Stations []string // configured order; last entry is the primary station
	Days     []int    // 1..N where N is the longest station series

	columns map[string]station.Series

	// Derived columns, populated by Reconcile.
	Average station.Series
	Trade   station.Series

	// Summary row, populated by AppendMeanRow. Never part of the day
	// sequence and excluded from day-indexed joins.
	Mean *MeanRow
}

// MeanRow is the per-column arithmetic mean over the day rows.
type MeanRow struct {
	Stations map[string]station.Value
	Average  station.Value
	Trade    station.Value
}

// NewYearTable aligns the per-station series into a single table. Every
// configured station must have an entry in columns (possibly empty); the
// mapping is validated at construction so downstream code never deals with
// absent columns.
func NewYearTable(year int, stations []string, columns map[string]station.Series) (*YearTable, error) {
	if len(stations) == 0 {
		return nil, fmt.Errorf("year table for %d needs at least one station", year)
	}

	maxLen := 0
	for _, name := range stations {
		series, ok := columns[name]
		if !ok {
			return nil, fmt.Errorf("no series for station %s in year %d", name, year)
		}
		if len(series) > maxLen {
			maxLen = len(series)
		}
	}

	padded := make(map[string]station.Series, len(stations))
	for _, name := range stations {
		padded[name] = columns[name].PadTo(maxLen)
	}

	days := make([]int, maxLen)
	for i := range days {
		days[i] = i + 1
	}

	return &YearTable{
		Year:     year,
		Stations: append([]string(nil), stations...),
		Days:     days,
		columns:  padded,
	}, nil
}

// Primary returns the primary (Trade source) station: the last configured.
func (t *YearTable) Primary() string {
	return t.Stations[len(t.Stations)-1]
}

// Column returns a station's aligned series.
func (t *YearTable) Column(name string) station.Series {
	return t.columns[name]
}

// NumDays returns the number of day rows.
func (t *YearTable) NumDays() int {
	return len(t.Days)
}
