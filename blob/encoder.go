package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/encodable/column"
	"github.com/arloliu/encodable/encoding"
	"github.com/arloliu/encodable/errs"
	"github.com/arloliu/encodable/format"
	"github.com/arloliu/encodable/internal/hash"
	"github.com/arloliu/encodable/internal/options"
	"github.com/arloliu/encodable/internal/pool"
	"github.com/arloliu/encodable/section"
)

// Encoder writes column encodings as blobs.
type Encoder struct {
	*EncoderConfig
}

// NewEncoder creates an Encoder. Without options it writes little-endian raw
// sections with no compression and no checksum.
//
// Parameters:
//   - opts: Optional configuration (endianness, column encodings, compression, checksum)
//
// Returns:
//   - *Encoder: Encoder ready for use; it can encode any number of blobs
//   - error: Configuration error if an option carries an invalid value
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := cfg.setCodec(); err != nil {
		return nil, err
	}

	return &Encoder{EncoderConfig: cfg}, nil
}

// Encode writes enc as a blob. The returned slice is owned by the caller.
//
// Parameters:
//   - enc: Columns to write
//
// Returns:
//   - []byte: Header followed by the float, int and bool sections
//   - error: errs.ErrTooManyValues if a column does not fit a uint32 count, or a
//     compression failure
func (e *Encoder) Encode(enc column.Encoding) ([]byte, error) {
	if uint64(len(enc.Floats)) > math.MaxUint32 || uint64(len(enc.Ints)) > math.MaxUint32 || uint64(len(enc.Bools)) > math.MaxUint32 {
		return nil, errs.ErrTooManyValues
	}

	floatPayload, err := e.compress(e.encodeFloats(enc.Floats))
	if err != nil {
		return nil, fmt.Errorf("failed to compress float section: %w", err)
	}

	intPayload, err := e.compress(e.encodeInts(enc.Ints))
	if err != nil {
		return nil, fmt.Errorf("failed to compress int section: %w", err)
	}

	boolPayload, err := e.compress(e.encodeBools(enc.Bools))
	if err != nil {
		return nil, fmt.Errorf("failed to compress bool section: %w", err)
	}

	header := *e.header
	header.FloatCount = uint32(len(enc.Floats)) //nolint:gosec
	header.IntCount = uint32(len(enc.Ints))     //nolint:gosec
	header.BoolCount = uint32(len(enc.Bools))   //nolint:gosec

	intOffset := section.FloatOffsetOffset + len(floatPayload)
	boolOffset := intOffset + len(intPayload)
	if int64(boolOffset)+int64(len(boolPayload)) > math.MaxUint32 {
		return nil, errs.ErrTooManyValues
	}
	header.IntOffset = uint32(intOffset)   //nolint:gosec
	header.BoolOffset = uint32(boolOffset) //nolint:gosec

	if header.Flag.HasChecksum() {
		header.Checksum = hash.ChecksumParts(floatPayload, intPayload, boolPayload)
	}

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.Grow(boolOffset + len(boolPayload))
	_, _ = buf.Write(header.Bytes())
	_, _ = buf.Write(floatPayload)
	_, _ = buf.Write(intPayload)
	_, _ = buf.Write(boolPayload)

	return buf.Clone(), nil
}

// compress copies section out of its pooled buffer, compressing it when a codec is
// configured. Empty sections stay empty.
func (e *Encoder) compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if e.header.Flag.Compression() == format.CompressionNone {
		return append([]byte(nil), data...), nil
	}

	return e.codec.Compress(data)
}

func (e *Encoder) encodeFloats(values []float64) []byte {
	var enc encoding.ColumnarEncoder[float64]
	if e.header.Flag.FloatEncoding() == format.TypeGorilla {
		enc = encoding.NewFloatGorillaEncoder()
	} else {
		enc = encoding.NewFloatRawEncoder(e.engine)
	}

	return finish(enc, values)
}

func (e *Encoder) encodeInts(values []int64) []byte {
	var enc encoding.ColumnarEncoder[int64]
	if e.header.Flag.IntEncoding() == format.TypeDelta {
		enc = encoding.NewIntDeltaEncoder()
	} else {
		enc = encoding.NewIntRawEncoder(e.engine)
	}

	return finish(enc, values)
}

func (e *Encoder) encodeBools(values []bool) []byte {
	return finish(encoding.NewBoolPackedEncoder(), values)
}

// finish encodes values and returns a copy of the section, releasing the encoder's
// pooled buffer.
func finish[T any](enc encoding.ColumnarEncoder[T], values []T) []byte {
	defer enc.Finish()

	enc.WriteSlice(values)
	data := enc.Bytes()
	if len(data) == 0 {
		return nil
	}

	return append([]byte(nil), data...)
}
