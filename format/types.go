package format

type (
	EncodingType    uint8
	CompressionType uint8
	Kind            uint8
)

const (
	TypeRaw     EncodingType = 0x1 // TypeRaw represents fixed-width values with no format.
	TypeDelta   EncodingType = 0x2 // TypeDelta represents zigzag varint delta encoding (ints only).
	TypeGorilla EncodingType = 0x3 // TypeGorilla represents Gorilla XOR encoding (floats only).

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Kinds of values a traversal may visit. Only KindFloat64, KindInt64 and KindBool
// are leaves of an encoding; KindStruct and KindTuple are aggregates. Everything
// else is rejected.
const (
	KindInvalid Kind = iota
	KindFloat64
	KindInt64
	KindBool
	KindStruct
	KindTuple
	KindInt8
	KindInt16
	KindInt32
	KindInt
	KindInt128
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint
	KindUint128
	KindFloat32
	KindString
	KindChar
	KindBytes
	KindOption
	KindUnit
	KindSeq
	KindMap
	KindEnum
	KindComplex
	KindFunc
	KindChan
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindFloat64: "float64",
	KindInt64:   "int64",
	KindBool:    "bool",
	KindStruct:  "struct",
	KindTuple:   "tuple",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt:     "int",
	KindInt128:  "int128",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindUint:    "uint",
	KindUint128: "uint128",
	KindFloat32: "float32",
	KindString:  "string",
	KindChar:    "char",
	KindBytes:   "bytes",
	KindOption:  "option",
	KindUnit:    "unit",
	KindSeq:     "sequence",
	KindMap:     "map",
	KindEnum:    "enum",
	KindComplex: "complex",
	KindFunc:    "func",
	KindChan:    "chan",
}

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeDelta:
		return "Delta"
	case TypeGorilla:
		return "Gorilla"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// IsLeaf reports whether k is stored in one of the three columns.
func (k Kind) IsLeaf() bool {
	return k == KindFloat64 || k == KindInt64 || k == KindBool
}

// IsAggregate reports whether k is a record or a tuple.
func (k Kind) IsAggregate() bool {
	return k == KindStruct || k == KindTuple
}

// IsSupported reports whether k can take part in an encoding.
func (k Kind) IsSupported() bool {
	return k.IsLeaf() || k.IsAggregate()
}
