package column

import "math"

// Encoding is the columnar form of a record: one ordered column per leaf kind.
//
// Values appear in pre-order, depth-first traversal order of the record's leaves.
// Aggregates (structs and tuples) contribute nothing of their own, and no names,
// type tags or lengths are stored, so a consumer must already know the shape.
type Encoding struct {
	Floats []float64
	Ints   []int64
	Bools  []bool
}

// Counts returns the length of each column.
func (e Encoding) Counts() (floats, ints, bools int) {
	return len(e.Floats), len(e.Ints), len(e.Bools)
}

// Equal reports whether both encodings hold the same values in the same order.
//
// Floats are compared by bit pattern, so NaN equals an identical NaN and 0.0 does
// not equal -0.0. A nil column equals an empty one.
func (e Encoding) Equal(other Encoding) bool {
	if len(e.Floats) != len(other.Floats) || len(e.Ints) != len(other.Ints) || len(e.Bools) != len(other.Bools) {
		return false
	}

	for i, f := range e.Floats {
		if math.Float64bits(f) != math.Float64bits(other.Floats[i]) {
			return false
		}
	}

	for i, v := range e.Ints {
		if v != other.Ints[i] {
			return false
		}
	}

	for i, b := range e.Bools {
		if b != other.Bools[i] {
			return false
		}
	}

	return true
}
