package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climcli/internal/station"
)

// Trade tables for 1981 (3 days) and 1982 (2 days) combine into a wide table
// with day rows 1..3 and a missing 1982 value at day 3.
func TestAssembler_Wide(t *testing.T) {
	a := NewAssembler()
	require.NoError(t, a.Add(1981, station.Series{station.Num(1), station.Num(2), station.Num(3)}))
	require.NoError(t, a.Add(1982, station.Series{station.Num(4), station.Num(5)}))

	rows := a.Wide()

	require.Len(t, rows, 3)
	assert.Equal(t, []int{1981, 1982}, a.Years())

	assert.Equal(t, 1, rows[0].Day)
	assert.Equal(t, []station.Value{station.Num(1), station.Num(4)}, rows[0].Values)
	assert.Equal(t, []station.Value{station.Num(2), station.Num(5)}, rows[1].Values)
	assert.Equal(t, []station.Value{station.Num(3), station.Missing}, rows[2].Values)
}

func TestAssembler_Long(t *testing.T) {
	a := NewAssembler()
	require.NoError(t, a.Add(1981, station.Series{station.Num(1), station.Num(2)}))
	require.NoError(t, a.Add(1982, station.Series{station.Num(4)}))

	rows := a.Long()

	require.Len(t, rows, 4)
	assert.Equal(t, LongRow{Day: 1, Year: 1981, Value: station.Num(1)}, rows[0])
	assert.Equal(t, LongRow{Day: 1, Year: 1982, Value: station.Num(4)}, rows[1])
	assert.Equal(t, LongRow{Day: 2, Year: 1981, Value: station.Num(2)}, rows[2])
	assert.Equal(t, LongRow{Day: 2, Year: 1982, Value: station.Missing}, rows[3])
}

func TestAssembler_RejectsOutOfOrderYears(t *testing.T) {
	a := NewAssembler()
	require.NoError(t, a.Add(1982, station.Series{station.Num(1)}))

	assert.Error(t, a.Add(1981, station.Series{station.Num(2)}))
	assert.Error(t, a.Add(1982, station.Series{station.Num(2)}))
}

func TestAssembler_Empty(t *testing.T) {
	a := NewAssembler()

	assert.Empty(t, a.Wide())
	assert.Empty(t, a.Long())
	assert.Empty(t, a.Years())
	assert.Equal(t, 0, a.MaxDay())
}

func TestAssembler_TradeAt(t *testing.T) {
	a := NewAssembler()
	require.NoError(t, a.Add(1981, station.Series{station.Num(7)}))

	assert.Equal(t, station.Num(7), a.TradeAt(1981, 1))
	assert.Equal(t, station.Missing, a.TradeAt(1981, 2))
	assert.Equal(t, station.Missing, a.TradeAt(1999, 1))
}
