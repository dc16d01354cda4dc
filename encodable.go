// Package encodable flattens records of floats, ints and bools into three
// columns and rebuilds them from those columns.
//
// A record is traversed depth-first in field order. Every float64 leaf is appended
// to the float column, every int64 leaf to the int column and every bool leaf to
// the bool column. Structs and fixed-size arrays only shape the traversal; they
// contribute nothing to the columns. Decoding replays the same traversal and pulls
// each leaf from the front of its column.
//
// # Core Features
//
//   - Plain Go structs and arrays, no code generation
//   - Hand-written column.Marshaler / column.Unmarshaler for custom types
//   - Typed errors for unsupported kinds, exhausted columns and surplus values
//   - Optional binary blobs with Raw, Gorilla and Delta encodings
//   - Optional compression (None, Zstd, S2, LZ4) and xxHash64 checksums
//
// # Basic Usage
//
//	type Bar struct {
//	    A float64
//	    B int64
//	    C bool
//	}
//
//	type Foo struct {
//	    A   int64
//	    Bar Bar
//	    C   bool
//	}
//
//	enc, err := encodable.Encode(Foo{A: 1, Bar: Bar{A: 2, B: 3, C: false}, C: true})
//	// enc.Floats == [2], enc.Ints == [1 3], enc.Bools == [false true]
//
//	foo, err := encodable.Decode[Foo](enc)
//
// Storing the columns as bytes:
//
//	data, err := encodable.Marshal(foo)
//	foo, err = encodable.Unmarshal[Foo](data)
//
// # Package Structure
//
// This package wraps the column and blob packages for the common cases. Use column
// to drive a Serializer or Deserializer directly and blob for control over the
// binary layout.
package encodable

import (
	"github.com/arloliu/encodable/blob"
	"github.com/arloliu/encodable/column"
	"github.com/arloliu/encodable/format"
)

var defaultBlobOptions = []blob.EncoderOption{
	blob.WithLittleEndian(),
	blob.WithFloatEncoding(format.TypeGorilla),
	blob.WithIntEncoding(format.TypeDelta),
	blob.WithCompression(format.CompressionNone),
	blob.WithChecksum(true),
}

// Encode flattens v into a column.Encoding.
//
// See column.Encode for the supported shapes and errors.
//
// Parameters:
//   - v: Value to flatten; a struct, array, leaf or column.Marshaler, optionally behind pointers
//
// Returns:
//   - column.Encoding: The float, int and bool columns in traversal order
//   - error: *errs.UnsupportedKindError, errs.ErrAggregateLength, or *errs.MessageError from a Marshaler
func Encode(v any) (column.Encoding, error) {
	return column.Encode(v)
}

// Decode rebuilds a T from enc.
//
// It fails with errs.ErrIncomplete when a column holds more values than T consumes.
//
// Parameters:
//   - enc: Columns produced by Encode or decoded from a blob
//
// Returns:
//   - T: The rebuilt value, or the zero value on error
//   - error: An index-out-of-bounds error when a column runs short, errs.ErrIncomplete,
//     *errs.UnsupportedKindError, or *errs.MessageError from an Unmarshaler
func Decode[T any](enc column.Encoding) (T, error) {
	return column.DecodeAs[T](enc)
}

// DecodeInto rebuilds the value target points to from enc.
func DecodeInto(enc column.Encoding, target any) error {
	return column.Decode(enc, target)
}

// Marshal encodes v and writes the columns as a blob.
//
// Without options the blob uses Gorilla floats, Delta ints, no compression and a
// checksum. Options are applied after those defaults, so passing only
// blob.WithCompression(format.CompressionZstd) keeps the other defaults.
//
// Parameters:
//   - v: Value to encode, as accepted by Encode
//   - opts: Blob options overriding the defaults
//
// Returns:
//   - []byte: The blob, owned by the caller
//   - error: Any Encode error, an invalid option, or errs.ErrTooManyValues
func Marshal(v any, opts ...blob.EncoderOption) ([]byte, error) {
	enc, err := column.Encode(v)
	if err != nil {
		return nil, err
	}

	return MarshalEncoding(enc, opts...)
}

// MarshalEncoding writes enc as a blob using the same defaults as Marshal.
func MarshalEncoding(enc column.Encoding, opts ...blob.EncoderOption) ([]byte, error) {
	allOpts := make([]blob.EncoderOption, 0, len(defaultBlobOptions)+len(opts))
	allOpts = append(allOpts, defaultBlobOptions...)
	allOpts = append(allOpts, opts...)

	encoder, err := blob.NewEncoder(allOpts...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(enc)
}

// Unmarshal decodes a blob produced by Marshal into a T.
//
// Parameters:
//   - data: Blob bytes; any header options are accepted
//
// Returns:
//   - T: The rebuilt value, or the zero value on error
//   - error: A blob error such as errs.ErrChecksumMismatch, or any Decode error
func Unmarshal[T any](data []byte) (T, error) {
	var zero T

	enc, err := blob.Decode(data)
	if err != nil {
		return zero, err
	}

	return column.DecodeAs[T](enc)
}

// UnmarshalInto decodes a blob produced by Marshal into the value target points to.
func UnmarshalInto(data []byte, target any) error {
	enc, err := blob.Decode(data)
	if err != nil {
		return err
	}

	return column.Decode(enc, target)
}
