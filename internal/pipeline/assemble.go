package pipeline

import (
	"fmt"

	"climcli/internal/station"
)

// Assembler accumulates each processed year's Trade series across the year
// loop and produces the multi-year wide and long tables. It is an explicit
// accumulator threaded through the run, never ambient state; years must be
// added in ascending order.
type Assembler struct {
	years  []int
	trades map[int]station.Series
	maxDay int
}

// NewAssembler creates an empty assembler.
func NewAssembler() *Assembler {
	return &Assembler{
		trades: make(map[int]station.Series),
	}
}

// Add records one year's Trade series (day rows only, no summary row).
// Years must arrive in strictly ascending order.
func (a *Assembler) Add(year int, trade station.Series) error {
	if n := len(a.years); n > 0 && year <= a.years[n-1] {
		return fmt.Errorf("year %d added out of order after %d", year, a.years[n-1])
	}

	a.years = append(a.years, year)
	a.trades[year] = append(station.Series(nil), trade...)
	if len(trade) > a.maxDay {
		a.maxDay = len(trade)
	}
	return nil
}

// Years returns the processed years in ascending order.
func (a *Assembler) Years() []int {
	return append([]int(nil), a.years...)
}

// MaxDay returns the longest Trade series seen.
func (a *Assembler) MaxDay() int {
	return a.maxDay
}

// TradeAt returns one year's Trade value at a 1-based day, missing where the
// year has no such day.
func (a *Assembler) TradeAt(year, day int) station.Value {
	return a.trades[year].At(day)
}

// WideRow is one day across all processed years.
type WideRow struct {
	Day    int
	Values []station.Value // indexed like Years()
}

// Wide builds the wide-form table: one row per day 1..MaxDay, one column per
// processed year.
func (a *Assembler) Wide() []WideRow {
	rows := make([]WideRow, 0, a.maxDay)
	for day := 1; day <= a.maxDay; day++ {
		row := WideRow{Day: day, Values: make([]station.Value, len(a.years))}
		for i, year := range a.years {
			row.Values[i] = a.trades[year].At(day)
		}
		rows = append(rows, row)
	}
	return rows
}

// LongRow is one (day, year, trade) triple of the combined table.
type LongRow struct {
	Day   int
	Year  int
	Value station.Value
}

// Long builds the long-form combined table, ordered by day then year.
func (a *Assembler) Long() []LongRow {
	var rows []LongRow
	for day := 1; day <= a.maxDay; day++ {
		for _, year := range a.years {
			rows = append(rows, LongRow{
				Day:   day,
				Year:  year,
				Value: a.trades[year].At(day),
			})
		}
	}
	return rows
}
