package tsz

import "math"

// DataPoint is an immutable (timestamp, value) pair, the unit the codec
// encodes and decodes.
type DataPoint struct {
	t uint64
	v float64
}

// NewDataPoint constructs a DataPoint from a Unix-style timestamp and a
// floating-point value.
func NewDataPoint(t uint64, v float64) DataPoint {
	return DataPoint{t: t, v: v}
}

// Timestamp returns the data point's timestamp.
func (dp DataPoint) Timestamp() uint64 {
	return dp.t
}

// Value returns the data point's value.
func (dp DataPoint) Value() float64 {
	return dp.v
}

// Equal reports whether dp and other carry the same timestamp and the same
// value bit pattern. Equality is bitwise on the value, not IEEE-754
// equality: two NaNs with identical bit patterns compare equal, and +0.0
// and -0.0 compare unequal.
func (dp DataPoint) Equal(other DataPoint) bool {
	return dp.t == other.t && math.Float64bits(dp.v) == math.Float64bits(other.v)
}
