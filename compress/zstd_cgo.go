//go:build gozstd && cgo

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/valyala/gozstd"

	"github.com/arloliu/encodable/errs"
)

const zstdLevel = 3

// Compress compresses data with the cgo zstd binding.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses data with the cgo zstd binding.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

// DecompressLimit streams the frame and stops one byte past limit.
func (c ZstdCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	out, err := io.ReadAll(io.LimitReader(zr, int64(limit)+1))
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	if len(out) > limit {
		return nil, fmt.Errorf("%w: zstd frame larger than %d bytes", errs.ErrDecompressLimit, limit)
	}

	return out, nil
}
