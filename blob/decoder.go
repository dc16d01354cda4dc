package blob

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/encodable/column"
	"github.com/arloliu/encodable/compress"
	"github.com/arloliu/encodable/encoding"
	"github.com/arloliu/encodable/endian"
	"github.com/arloliu/encodable/errs"
	"github.com/arloliu/encodable/format"
	"github.com/arloliu/encodable/internal/hash"
	"github.com/arloliu/encodable/section"
)

// Decoder reads blobs written by Encoder.
type Decoder struct{}

func NewDecoder() Decoder {
	return Decoder{}
}

// Decode parses data and returns the column encoding it holds.
//
// The header, section offsets and, when present, the checksum are validated before
// any section is decoded. Every column must decode to exactly the number of values
// recorded in the header.
//
// Parameters:
//   - data: Complete blob, header included
//
// Returns:
//   - column.Encoding: The decoded columns
//   - error: ErrInvalidHeaderSize, ErrInvalidHeaderFlags, ErrInvalidOffsets,
//     ErrChecksumMismatch, ErrDecompressLimit, ErrInvalidColumnPayload or a codec error
func (d Decoder) Decode(data []byte) (column.Encoding, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return column.Encoding{}, err
	}

	if err := header.ValidateOffsets(len(data)); err != nil {
		return column.Encoding{}, err
	}

	if header.Flag.HasChecksum() && hash.Checksum(data[section.HeaderSize:]) != header.Checksum {
		return column.Encoding{}, errs.ErrChecksumMismatch
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return column.Encoding{}, err
	}

	engine := header.Flag.GetEndianEngine()

	floatSection, err := decompress(codec, data[section.FloatOffsetOffset:header.IntOffset], header.FloatCount)
	if err != nil {
		return column.Encoding{}, fmt.Errorf("failed to decompress float section: %w", err)
	}

	intSection, err := decompress(codec, data[header.IntOffset:header.BoolOffset], header.IntCount)
	if err != nil {
		return column.Encoding{}, fmt.Errorf("failed to decompress int section: %w", err)
	}

	boolSection, err := decompress(codec, data[header.BoolOffset:], header.BoolCount)
	if err != nil {
		return column.Encoding{}, fmt.Errorf("failed to decompress bool section: %w", err)
	}

	var enc column.Encoding

	enc.Floats, err = collect(floatDecoder(header.Flag.FloatEncoding(), engine), floatSection, header.FloatCount)
	if err != nil {
		return column.Encoding{}, fmt.Errorf("float section: %w", err)
	}

	enc.Ints, err = collect(intDecoder(header.Flag.IntEncoding(), engine), intSection, header.IntCount)
	if err != nil {
		return column.Encoding{}, fmt.Errorf("int section: %w", err)
	}

	enc.Bools, err = collect[bool](encoding.NewBoolPackedDecoder(), boolSection, header.BoolCount)
	if err != nil {
		return column.Encoding{}, fmt.Errorf("bool section: %w", err)
	}

	return enc, nil
}

// Decode decodes data with a default Decoder.
func Decode(data []byte) (column.Encoding, error) {
	return NewDecoder().Decode(data)
}

// ParseHeader parses and validates the header of a blob without decoding its
// sections.
//
// Parameters:
//   - data: Blob bytes; only the header is read, but offsets are checked against len(data)
//
// Returns:
//   - section.Header: The parsed header
//   - error: ErrInvalidHeaderSize, ErrInvalidHeaderFlags or ErrInvalidOffsets
func ParseHeader(data []byte) (section.Header, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return section.Header{}, err
	}

	if err := header.ValidateOffsets(len(data)); err != nil {
		return section.Header{}, err
	}

	return header, nil
}

// maxValueSize is the most bytes any column encoding spends on one value: a 64-bit
// zigzag varint in the delta encoding.
const maxValueSize = binary.MaxVarintLen64

// decompress inflates one section, refusing output larger than count values can
// occupy in any encoding.
func decompress(codec compress.Codec, data []byte, count uint32) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	limit := uint64(count)*maxValueSize + 16
	if limit > math.MaxInt {
		limit = math.MaxInt
	}

	return codec.DecompressLimit(data, int(limit))
}

// collect decodes count values from data. Every value takes at least one bit, which
// bounds count before anything is allocated.
func collect[T any](dec encoding.ColumnarDecoder[T], data []byte, count uint32) ([]T, error) {
	if uint64(count) > uint64(len(data))*8 {
		return nil, fmt.Errorf("%w: %d values in %d bytes", errs.ErrInvalidColumnPayload, count, len(data))
	}

	if count == 0 && len(data) > 0 {
		return nil, fmt.Errorf("%w: %d bytes for an empty column", errs.ErrInvalidColumnPayload, len(data))
	}

	return encoding.Collect(dec, data, int(count))
}

func floatDecoder(enc format.EncodingType, engine endian.EndianEngine) encoding.ColumnarDecoder[float64] {
	if enc == format.TypeGorilla {
		return encoding.NewFloatGorillaDecoder()
	}

	return encoding.NewFloatRawDecoder(engine)
}

func intDecoder(enc format.EncodingType, engine endian.EndianEngine) encoding.ColumnarDecoder[int64] {
	if enc == format.TypeDelta {
		return encoding.NewIntDeltaDecoder()
	}

	return encoding.NewIntRawDecoder(engine)
}
