package compress

import (
	"fmt"

	"github.com/arloliu/encodable/errs"
	"github.com/arloliu/encodable/format"
)

// Compressor compresses one encoded column section.
//
// The returned slice is owned by the caller; the input is not modified, although
// the no-op compressor returns it as is.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm. It returns an error when
// data is corrupted or was produced by another algorithm.
//
// DecompressLimit fails with errs.ErrDecompressLimit instead of producing more than
// limit bytes. Implementations check the size before allocating where the format
// records it.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
	DecompressLimit(data []byte, limit int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns a new Codec for compressionType.
//
// Parameters:
//   - compressionType: Algorithm to create
//   - target: Name of the column being configured, used only in errors
//
// Returns:
//   - Codec: A new codec instance
//   - error: If compressionType is not a known algorithm
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

func limitError(size, limit int) error {
	return fmt.Errorf("%w: %d > %d bytes", errs.ErrDecompressLimit, size, limit)
}
