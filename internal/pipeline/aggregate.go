package pipeline

import (
	"climcli/internal/station"
)

// AppendMeanRow computes the column-wise arithmetic mean over the day rows
// and attaches it to the table as its summary row. Missing values are
// skipped; a column with no present values gets a missing mean. The mean row
// itself never enters its own computation and is excluded from the day
// sequence.
func AppendMeanRow(t *YearTable) {
	mean := &MeanRow{
		Stations: make(map[string]station.Value, len(t.Stations)),
	}

	for _, name := range t.Stations {
		mean.Stations[name] = t.Column(name).Mean()
	}
	mean.Average = t.Average.Mean()
	mean.Trade = t.Trade.Mean()

	t.Mean = mean
}
