package station

import (
	"regexp"
	"strconv"

	"climcli/internal/errors"
)

// yearSuffixPattern matches a two-digit year suffix at the end of a filename,
// optionally followed by one trailing extension (e.g. "AS010319.92" or
// "AS010319.92.txt").
var yearSuffixPattern = regexp.MustCompile(`\.(\d{2})(?:\.[^.]*)?$`)

// ResolveYear extracts the two-digit year suffix from filename and infers the
// full four-digit year against the configured [startYear, endYear] bounds:
// 1900+suffix is chosen if it falls inside the bounds, otherwise 2000+suffix.
// For the 1981-2010 range this maps suffix 81-99 to 1981-1999 and 00-10 to
// 2000-2010.
func ResolveYear(filename string, startYear, endYear int) (int, error) {
	m := yearSuffixPattern.FindStringSubmatch(filename)
	if m == nil {
		return 0, errors.NewMalformedFilenameError(filename)
	}

	suffix, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, errors.NewMalformedFilenameError(filename)
	}

	if year := 1900 + suffix; year >= startYear && year <= endYear {
		return year, nil
	}
	if year := 2000 + suffix; year >= startYear && year <= endYear {
		return year, nil
	}

	// Report the century the heuristic would have picked without bounds.
	year := 2000 + suffix
	if 1900+suffix >= startYear {
		year = 1900 + suffix
	}
	return 0, errors.NewYearOutOfRangeError(filename, year)
}
