package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/encodable/errs"
)

// ColumnarEncoder encodes one column of values of type T.
type ColumnarEncoder[T any] interface {
	// Write encodes a single value.
	Write(v T)

	// WriteSlice encodes values in order. It is equivalent to calling Write for each
	// value.
	WriteSlice(values []T)

	// Bytes returns the encoded section. The slice may alias the internal buffer and
	// is only valid until the next Write, WriteSlice, Reset or Finish.
	Bytes() []byte

	// Len returns the number of values written since the last Reset.
	Len() int

	// Reset discards everything written so the encoder can be reused.
	Reset()

	// Finish returns the internal buffer to its pool. The encoder must not be used
	// afterwards.
	Finish()
}

// ColumnarDecoder decodes a section produced by the matching encoder.
type ColumnarDecoder[T any] interface {
	// All yields up to count values decoded from data. It stops early when data is
	// too short or malformed.
	All(data []byte, count int) iter.Seq[T]
}

// Collect decodes exactly count values from data.
//
// Parameters:
//   - dec: Decoder matching the encoding that produced data
//   - data: Encoded column section, already decompressed
//   - count: Number of values the section must hold
//
// Returns:
//   - []T: The decoded values
//   - error: errs.ErrInvalidColumnPayload if data holds fewer than count values
func Collect[T any](dec ColumnarDecoder[T], data []byte, count int) ([]T, error) {
	if count == 0 {
		return nil, nil
	}

	out := make([]T, 0, count)
	for v := range dec.All(data, count) {
		out = append(out, v)
	}

	if len(out) != count {
		return nil, fmt.Errorf("%w: decoded %d of %d values", errs.ErrInvalidColumnPayload, len(out), count)
	}

	return out, nil
}
