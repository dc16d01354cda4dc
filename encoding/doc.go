// Package encoding implements the binary codecs for the three columns of a blob.
//
// Each column of a column.Encoding is written to its own section with one of the
// encoders below, then optionally compressed (see the compress package):
//
//	Column  Encoding      Layout
//	------  ------------  ---------------------------------------------------------
//	floats  TypeRaw       8 bytes per value, IEEE 754 bits in the blob byte order
//	floats  TypeGorilla   XOR with the previous value, leading/trailing zero blocks
//	ints    TypeRaw       8 bytes per value, two's complement in the blob byte order
//	ints    TypeDelta     zigzag varint of the first value, then of each difference
//	bools   (always)      bit-packed, 8 values per byte, least significant bit first
//
// Sections carry no count: the blob header stores the length of every column and
// decoders are told how many values to produce.
//
// # Encoders
//
// All encoders satisfy ColumnarEncoder. They borrow a pooled buffer that must be
// handed back with Finish once the bytes have been copied out:
//
//	enc := encoding.NewFloatGorillaEncoder()
//	defer enc.Finish()
//
//	enc.WriteSlice(values)
//	section := bytes.Clone(enc.Bytes())
//
// # Decoders
//
// Decoders satisfy ColumnarDecoder. All yields at most count values and stops early
// on malformed input; Collect turns a short read into errs.ErrInvalidColumnPayload.
//
//	values, err := encoding.Collect(encoding.NewFloatGorillaDecoder(), section, count)
package encoding
