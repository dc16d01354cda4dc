// Package column converts records into a columnar Encoding and back.
//
// An Encoding holds three ordered columns: floats, ints and bools. Encoding a value
// walks its leaves depth-first in declaration order and appends each one to the
// column of its kind. Decoding walks the target's shape in the same order and pulls
// the next value of the requested kind from the matching column, with one cursor per
// column.
//
// Nothing but the values is stored. Encode and decode only agree because both sides
// traverse the same shape in the same order; decoding into a different shape either
// fails or silently yields different values.
//
// # Supported Shapes
//
//   - float64, int64 and bool leaves (named types of those kinds included)
//   - structs: exported fields in declaration order, `column:"-"` skips a field
//   - fixed-size arrays, treated as tuples
//   - any type implementing Marshaler / Unmarshaler
//
// Every other kind (narrower or unsigned integers, int, float32, strings, slices,
// maps, pointers, interfaces, empty structs) is rejected with
// *errs.UnsupportedKindError before anything is written for it.
//
// # Basic Usage
//
//	type Sample struct {
//	    Temp  float64
//	    Count int64
//	    OK    bool
//	}
//
//	enc, err := column.Encode(Sample{Temp: 1.0, Count: 2, OK: true})
//	// enc == Encoding{Floats: []float64{1}, Ints: []int64{2}, Bools: []bool{true}}
//
//	s, err := column.DecodeAs[Sample](enc)
//
// # Custom Traversals
//
// A type can drive the traversal itself. The two methods must visit leaves in the
// same order. Arrays already encode as tuples; a heterogeneous pair is written by
// hand:
//
//	func (p Pair) MarshalColumns(w column.Writer) error {
//	    if err := w.BeginTuple(2); err != nil {
//	        return err
//	    }
//	    if err := w.WriteFloat64(p.X); err != nil {
//	        return err
//	    }
//	    if err := w.WriteInt64(p.N); err != nil {
//	        return err
//	    }
//	    return w.End()
//	}
//
//	func (p *Pair) UnmarshalColumns(r column.Reader) error {
//	    fields, err := r.ReadTuple(2)
//	    if err != nil {
//	        return err
//	    }
//	    if _, err := fields.Next(func(r column.Reader) (err error) { p.X, err = r.ReadFloat64(); return err }); err != nil {
//	        return err
//	    }
//	    _, err = fields.Next(func(r column.Reader) (err error) { p.N, err = r.ReadInt64(); return err })
//	    return err
//	}
//
// Serializer and Deserializer are single-use and not safe for concurrent use.
package column
