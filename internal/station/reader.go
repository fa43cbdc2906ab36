package station

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"climcli/internal/errors"
)

// ReadSeries parses one whitespace-separated station file into a Series.
// Each row must have at least two columns; only the second column is kept.
// A second column that does not coerce to a number becomes the missing
// sentinel for that row rather than failing the read, so "present but
// unparsable" stays distinct from "file invalid".
func ReadSeries(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewUnreadableFileError(path, err)
	}
	defer f.Close()

	var series Series
	row := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row++

		if len(fields) < 2 {
			return nil, errors.NewInsufficientColumnsError(path, row)
		}

		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			series = append(series, Missing)
			continue
		}
		series = append(series, Num(v))
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.NewUnreadableFileError(path, err)
	}

	return series, nil
}
