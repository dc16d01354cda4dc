package section

import (
	"encoding/binary"

	"github.com/arloliu/encodable/errs"
)

// Header is the fixed-size header at the start of a column blob.
type Header struct {
	// FloatCount is the number of values in the float column.
	FloatCount uint32 // byte offset 4-7
	// IntCount is the number of values in the int column.
	IntCount uint32 // byte offset 8-11
	// BoolCount is the number of values in the bool column.
	BoolCount uint32 // byte offset 12-15
	// IntOffset is the byte offset of the int section. It follows the float section.
	IntOffset uint32 // byte offset 16-19
	// BoolOffset is the byte offset of the bool section. It follows the int section
	// and runs to the end of the blob.
	BoolOffset uint32 // byte offset 20-23
	// Checksum is the xxHash64 of every byte after the header, or 0 when the
	// checksum flag is not set.
	Checksum uint64 // byte offset 24-31

	Flag Flag // byte offset 0-3
}

// NewHeader creates a header with the default flag. Counts, offsets and the
// checksum are filled in by the encoder.
func NewHeader() *Header {
	return &Header{
		Flag:       NewFlag(),
		IntOffset:  FloatOffsetOffset,
		BoolOffset: FloatOffsetOffset,
	}
}

// Parse parses the header from a byte slice of exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// options word is always little-endian
	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.EncodingType = data[2]
	h.Flag.CompressionType = data[3]

	engine := h.Flag.GetEndianEngine()

	h.FloatCount = engine.Uint32(data[4:8])
	h.IntCount = engine.Uint32(data[8:12])
	h.BoolCount = engine.Uint32(data[12:16])
	h.IntOffset = engine.Uint32(data[16:20])
	h.BoolOffset = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return h.Flag.Validate()
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	binary.LittleEndian.PutUint16(b[0:2], h.Flag.Options)
	b[2] = h.Flag.EncodingType
	b[3] = h.Flag.CompressionType
	engine.PutUint32(b[4:8], h.FloatCount)
	engine.PutUint32(b[8:12], h.IntCount)
	engine.PutUint32(b[12:16], h.BoolCount)
	engine.PutUint32(b[16:20], h.IntOffset)
	engine.PutUint32(b[20:24], h.BoolOffset)
	engine.PutUint64(b[24:32], h.Checksum)

	return b
}

// ValidateOffsets checks that the section offsets are ordered and lie within a
// blob of size bytes.
//
// Parameters:
//   - size: Total blob length, header included
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize if size is shorter than a header,
//     errs.ErrInvalidOffsets if the offsets are out of order or out of range
func (h *Header) ValidateOffsets(size int) error {
	if size < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	if h.IntOffset < FloatOffsetOffset || h.BoolOffset < h.IntOffset || int64(h.BoolOffset) > int64(size) {
		return errs.ErrInvalidOffsets
	}

	return nil
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
