package column

import (
	"fmt"
	"reflect"

	"github.com/arloliu/encodable/errs"
)

// Encode converts v into its columnar Encoding.
//
// Errors raised by caller-supplied Marshaler code that are not part of the errs
// taxonomy are returned as *errs.MessageError.
//
// Parameters:
//   - v: Value to traverse; top-level pointers are followed
//
// Returns:
//   - Encoding: The columns in traversal order
//   - error: *errs.UnsupportedKindError, errs.ErrAggregateLength, errs.ErrUnbalancedAggregate
//     or *errs.MessageError
func Encode(v any) (Encoding, error) {
	s := NewSerializer()
	if err := WriteValue(s, v); err != nil {
		return Encoding{}, errs.Wrap(errs.SideSer, err)
	}

	if open := len(s.stack); open != 0 {
		return Encoding{}, fmt.Errorf("%w: %d aggregate(s) left open", errs.ErrAggregateLength, open)
	}

	return s.Consume(), nil
}

// Decode rebuilds the value target points to from enc.
//
// The shape of target decides what is pulled from each column. Pulling past the
// end of a column fails with the matching index-out-of-bounds error; finishing the
// traversal with values left in any column fails with errs.ErrIncomplete. On error
// target may be partially written.
//
// Parameters:
//   - enc: Columns to read from; they are not modified
//   - target: Non-nil pointer; nil pointers behind it are allocated
//
// Returns:
//   - error: errs.ErrInvalidTarget, an index-out-of-bounds error, errs.ErrIncomplete,
//     *errs.UnsupportedKindError or *errs.MessageError
func Decode(enc Encoding, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errs.ErrInvalidTarget
	}

	d := NewDeserializer(enc)
	if err := readValue(d, allocPointers(rv.Elem())); err != nil {
		return errs.Wrap(errs.SideDe, err)
	}

	if !d.Completed() {
		return errs.ErrIncomplete
	}

	return nil
}

// DecodeAs decodes enc into a new value of type T.
func DecodeAs[T any](enc Encoding) (T, error) {
	var v T
	if err := Decode(enc, &v); err != nil {
		var zero T
		return zero, err
	}

	return v, nil
}
