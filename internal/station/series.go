package station

// Value is one measurement from a station file. Valid is false where the
// source row existed but its second column did not coerce to a number, or
// where a shorter station was padded to the table length.
type Value struct {
	Float64 float64
	Valid   bool
}

// Missing is the sentinel for an absent or unparsable measurement.
var Missing = Value{}

// Num returns a present value.
func Num(v float64) Value {
	return Value{Float64: v, Valid: true}
}

// Series is an ordered sequence of measurements. The day of year is the
// 1-based position in the series, assigned by row order in the source file,
// never parsed from file content.
type Series []Value

// At returns the value at 1-based day d, or Missing past the end.
func (s Series) At(d int) Value {
	if d < 1 || d > len(s) {
		return Missing
	}
	return s[d-1]
}

// PadTo extends the series to n values with the missing sentinel.
func (s Series) PadTo(n int) Series {
	for len(s) < n {
		s = append(s, Missing)
	}
	return s
}

// Mean returns the arithmetic mean over the present values, or Missing if
// none are present.
func (s Series) Mean() Value {
	var sum float64
	var count int
	for _, v := range s {
		if v.Valid {
			sum += v.Float64
			count++
		}
	}
	if count == 0 {
		return Missing
	}
	return Num(sum / float64(count))
}
