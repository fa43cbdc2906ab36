package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climcli/internal/station"
)

func buildTable(t *testing.T, year int, stations []string, columns map[string]station.Series) *YearTable {
	t.Helper()
	table, err := NewYearTable(year, stations, columns)
	require.NoError(t, err)
	return table
}

// The end-to-end scenario from the reconciliation contract: station A
// [10, missing, 12], primary B [20, 22, missing].
func TestReconcile_FillsPrimaryGapFromAverage(t *testing.T) {
	table := buildTable(t, 1995, []string{"A", "B"}, map[string]station.Series{
		"A": {station.Num(10), station.Missing, station.Num(12)},
		"B": {station.Num(20), station.Num(22), station.Missing},
	})

	fills := Reconcile(table)

	assert.Equal(t, station.Series{station.Num(10), station.Missing, station.Num(12)}, table.Average)
	assert.Equal(t, station.Series{station.Num(20), station.Num(22), station.Num(12)}, table.Trade)

	require.Len(t, fills, 1)
	assert.Equal(t, FillEntry{Year: 1995, Day: 3, Value: 12}, fills[0])
}

func TestReconcile_NoFillWhenPrimaryPresent(t *testing.T) {
	table := buildTable(t, 1995, []string{"A", "B"}, map[string]station.Series{
		"A": {station.Num(10)},
		"B": {station.Num(20)},
	})

	fills := Reconcile(table)

	assert.Equal(t, station.Num(20), table.Trade[0])
	assert.Empty(t, fills)
}

func TestReconcile_BothMissingStaysMissing(t *testing.T) {
	table := buildTable(t, 1995, []string{"A", "B"}, map[string]station.Series{
		"A": {station.Missing},
		"B": {station.Missing},
	})

	fills := Reconcile(table)

	assert.Equal(t, station.Missing, table.Average[0])
	assert.Equal(t, station.Missing, table.Trade[0])
	assert.Empty(t, fills)
}

func TestReconcile_AverageSkipsMissingPeers(t *testing.T) {
	table := buildTable(t, 1995, []string{"A", "B", "C"}, map[string]station.Series{
		"A": {station.Num(10), station.Missing},
		"B": {station.Num(20), station.Num(30)},
		"C": {station.Missing, station.Missing},
	})

	fills := Reconcile(table)

	// Day 1: mean(10, 20) = 15; day 2: only B present, mean = 30.
	assert.Equal(t, station.Num(15), table.Average[0])
	assert.Equal(t, station.Num(30), table.Average[1])

	require.Len(t, fills, 2)
	assert.Equal(t, FillEntry{Year: 1995, Day: 1, Value: 15}, fills[0])
	assert.Equal(t, FillEntry{Year: 1995, Day: 2, Value: 30}, fills[1])
	assert.Equal(t, station.Series{station.Num(15), station.Num(30)}, table.Trade)
}

func TestReconcile_SingleStationHasNoAverage(t *testing.T) {
	table := buildTable(t, 1995, []string{"B"}, map[string]station.Series{
		"B": {station.Num(20), station.Missing},
	})

	fills := Reconcile(table)

	assert.Equal(t, station.Missing, table.Average[0])
	assert.Equal(t, station.Missing, table.Average[1])
	assert.Equal(t, station.Num(20), table.Trade[0])
	assert.Equal(t, station.Missing, table.Trade[1])
	assert.Empty(t, fills)
}

func TestReconcile_FillsInAscendingDayOrder(t *testing.T) {
	table := buildTable(t, 1982, []string{"A", "B"}, map[string]station.Series{
		"A": {station.Num(1), station.Num(2), station.Num(3), station.Num(4)},
		"B": {station.Missing, station.Num(9), station.Missing, station.Missing},
	})

	fills := Reconcile(table)

	require.Len(t, fills, 3)
	assert.Equal(t, []int{1, 3, 4}, []int{fills[0].Day, fills[1].Day, fills[2].Day})
}

func TestAppendMeanRow(t *testing.T) {
	table := buildTable(t, 1995, []string{"A", "B"}, map[string]station.Series{
		"A": {station.Num(10), station.Missing, station.Num(12)},
		"B": {station.Num(20), station.Num(22), station.Missing},
	})
	Reconcile(table)

	AppendMeanRow(table)

	require.NotNil(t, table.Mean)
	assert.Equal(t, station.Num(11), table.Mean.Stations["A"]) // mean(10, 12)
	assert.Equal(t, station.Num(21), table.Mean.Stations["B"]) // mean(20, 22)
	assert.Equal(t, station.Num(11), table.Mean.Average)       // mean(10, 12)
	assert.Equal(t, station.Num(18), table.Mean.Trade)         // mean(20, 22, 12)

	// The summary row never extends the day sequence.
	assert.Equal(t, 3, table.NumDays())
}

func TestAppendMeanRow_AllMissingColumn(t *testing.T) {
	table := buildTable(t, 1995, []string{"A", "B"}, map[string]station.Series{
		"A": {station.Missing},
		"B": {station.Num(5)},
	})
	Reconcile(table)

	AppendMeanRow(table)

	assert.Equal(t, station.Missing, table.Mean.Stations["A"])
	assert.Equal(t, station.Missing, table.Mean.Average)
	assert.Equal(t, station.Num(5), table.Mean.Trade)
}
