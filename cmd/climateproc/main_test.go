package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStations(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"0610,0620,0730", []string{"0610", "0620", "0730"}},
		{" 0610 , 0730 ", []string{"0610", "0730"}},
		{"0730", []string{"0730"}},
		{"0610,,0730", []string{"0610", "0730"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitStations(tt.input))
		})
	}
}

func TestPromptStations(t *testing.T) {
	in := strings.NewReader("2\n0610\n0730\n")
	var out bytes.Buffer

	names, err := promptStations(in, &out)
	require.NoError(t, err)

	assert.Equal(t, []string{"0610", "0730"}, names)
	assert.Contains(t, out.String(), "How many stations?")
}

func TestPromptStations_RetriesBadCount(t *testing.T) {
	in := strings.NewReader("abc\n-1\n0\n1\n0730\n")
	var out bytes.Buffer

	names, err := promptStations(in, &out)
	require.NoError(t, err)

	assert.Equal(t, []string{"0730"}, names)
	assert.Contains(t, out.String(), "Invalid input!")
	assert.Contains(t, out.String(), "positive number")
}

func TestPromptStations_RejectsEmptyName(t *testing.T) {
	in := strings.NewReader("1\n\n   \n0730\n")
	var out bytes.Buffer

	names, err := promptStations(in, &out)
	require.NoError(t, err)

	assert.Equal(t, []string{"0730"}, names)
	assert.Contains(t, out.String(), "cannot be empty")
}

func TestPromptStations_EOF(t *testing.T) {
	in := strings.NewReader("2\n0610\n")
	var out bytes.Buffer

	_, err := promptStations(in, &out)
	assert.Error(t, err)
}

func TestPrintStationTable(t *testing.T) {
	var out bytes.Buffer

	printStationTable(&out, []string{"0610", "0730"})

	assert.Contains(t, out.String(), "Confirmed Stations")
	assert.Contains(t, out.String(), "0610")
	assert.Contains(t, out.String(), "0730  (primary)")
}
