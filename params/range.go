package params

import "strconv"

// Range is a "low,high" filter value as the camptocamp API expects it. Either
// side may be open, in which case it serializes to an empty string on that
// side (e.g. a lower bound of 300 without upper bound becomes "300,"). Bounds
// are not validated locally, the API is the authority on filter values.
type Range struct {
	low  string
	high string
	raw  string
}

// NewRange creates a range between two enum or pre-formatted bounds. An empty
// string leaves that side open.
func NewRange(low string, high string) *Range {
	return &Range{low: low, high: high}
}

// RangeFrom creates a range with only a lower bound.
func RangeFrom(low string) *Range {
	return &Range{low: low}
}

// RangeTo creates a range with only an upper bound.
func RangeTo(high string) *Range {
	return &Range{high: high}
}

// NumRange creates a range between two numeric bounds.
func NumRange(low float64, high float64) *Range {
	return &Range{low: formatNumber(low), high: formatNumber(high)}
}

// NumRangeFrom creates a numeric range with only a lower bound.
func NumRangeFrom(low float64) *Range {
	return &Range{low: formatNumber(low)}
}

// NumRangeTo creates a numeric range with only an upper bound.
func NumRangeTo(high float64) *Range {
	return &Range{high: formatNumber(high)}
}

// RawRange wraps an already formatted "low,high" string, which is passed
// through to the API unchanged.
func RawRange(value string) *Range {
	return &Range{raw: value}
}

func (r *Range) String() string {
	if r.raw != "" {
		return r.raw
	}
	return r.low + "," + r.high
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
