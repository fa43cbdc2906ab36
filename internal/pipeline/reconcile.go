package pipeline

import (
	"climcli/internal/station"
)

// FillEntry records one gap fill: the primary station was missing at Day and
// Trade took the peer average Value instead. One entry exists exactly when
// the primary value was missing and the average was present.
type FillEntry struct {
	Year  int
	Day   int
	Value float64
}

// Reconcile derives the Average_Other_Stations and Trade columns on the
// table and returns the fill log for the year in ascending day order.
//
// Average[d] is the mean of the present non-primary values at day d, missing
// when none are present. Trade starts as the primary column; each missing
// primary value with a present average is overwritten by that average.
func Reconcile(t *YearTable) []FillEntry {
	primary := t.Primary()
	others := t.Stations[:len(t.Stations)-1]

	n := t.NumDays()
	average := make(station.Series, n)
	trade := make(station.Series, n)
	primaryCol := t.Column(primary)

	var fills []FillEntry

	for i := 0; i < n; i++ {
		var sum float64
		var count int
		for _, name := range others {
			if v := t.Column(name)[i]; v.Valid {
				sum += v.Float64
				count++
			}
		}
		if count > 0 {
			average[i] = station.Num(sum / float64(count))
		}

		trade[i] = primaryCol[i]
		if !trade[i].Valid && average[i].Valid {
			trade[i] = average[i]
			fills = append(fills, FillEntry{
				Year:  t.Year,
				Day:   t.Days[i],
				Value: average[i].Float64,
			})
		}
	}

	t.Average = average
	t.Trade = trade
	return fills
}
