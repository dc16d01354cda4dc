package section

import (
	"github.com/arloliu/encodable/endian"
	"github.com/arloliu/encodable/errs"
	"github.com/arloliu/encodable/format"
)

// Flag holds the first four bytes of the header.
type Flag struct {
	// Options packs the endianness bit, the checksum bit and the magic number.
	Options uint16

	// EncodingType holds the float encoding in bits 0-3 and the int encoding in
	// bits 4-7.
	EncodingType uint8

	// CompressionType is the compression applied to all three sections.
	CompressionType uint8
}

var (
	validFloatEncodings = map[format.EncodingType]struct{}{
		format.TypeRaw:     {},
		format.TypeGorilla: {},
	}

	validIntEncodings = map[format.EncodingType]struct{}{
		format.TypeRaw:   {},
		format.TypeDelta: {},
	}

	validCompressions = map[format.CompressionType]struct{}{
		format.CompressionNone: {},
		format.CompressionZstd: {},
		format.CompressionS2:   {},
		format.CompressionLZ4:  {},
	}
)

// NewFlag returns the default flag: little-endian, raw floats, raw ints, no
// compression and no checksum.
func NewFlag() Flag {
	return Flag{
		Options:         MagicColumnV1Opt,
		EncodingType:    FloatTypeRaw | IntTypeRaw,
		CompressionType: uint8(format.CompressionNone),
	}
}

func (f Flag) IsLittleEndian() bool {
	return f.Options&EndiannessMask == 0
}

func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// HasChecksum reports whether the header carries a checksum of the payload.
func (f Flag) HasChecksum() bool {
	return f.Options&ChecksumMask != 0
}

func (f *Flag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// FloatEncoding returns the float encoding from bits 0-3 of EncodingType.
func (f Flag) FloatEncoding() format.EncodingType {
	return format.EncodingType(f.EncodingType & 0x0F)
}

func (f *Flag) SetFloatEncoding(enc format.EncodingType) {
	f.EncodingType &^= 0x0F
	f.EncodingType |= uint8(enc) & 0x0F
}

// IntEncoding returns the int encoding from bits 4-7 of EncodingType.
func (f Flag) IntEncoding() format.EncodingType {
	return format.EncodingType((f.EncodingType >> 4) & 0x0F)
}

func (f *Flag) SetIntEncoding(enc format.EncodingType) {
	f.EncodingType &^= 0xF0
	f.EncodingType |= (uint8(enc) & 0x0F) << 4
}

func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

func (f *Flag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// Validate checks the magic number, reserved bits, encodings and compression.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicColumnV1Opt {
		return errs.ErrInvalidHeaderFlags
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validFloatEncodings[f.FloatEncoding()]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validIntEncodings[f.IntEncoding()]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.Compression()]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	return endian.GetEngine(f.IsBigEndian())
}
