package section

import "github.com/arloliu/encodable/format"

const (
	// Bit masks of the options word
	EndiannessMask   = 0x0001 // bit 0: 0=little, 1=big
	ChecksumMask     = 0x0002 // bit 1: checksum present
	ReservedBitsMask = 0x000C // bits 2-3, must be 0
	MagicNumberMask  = 0xFFF0 // bits 4-15

	// MagicColumnV1Opt identifies version 1 of the column blob format.
	MagicColumnV1Opt = 0xEC10

	// Float encodings (bits 0-3)
	FloatTypeRaw     = uint8(format.TypeRaw)
	FloatTypeGorilla = uint8(format.TypeGorilla)

	// Int encodings (bits 4-7)
	IntTypeRaw   = uint8(format.TypeRaw) << 4
	IntTypeDelta = uint8(format.TypeDelta) << 4
)

const (
	HeaderSize        = 32         // fixed header size in bytes
	FloatOffsetOffset = HeaderSize // byte offset where the float section starts
)
