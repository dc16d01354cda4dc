//go:build !gozstd || !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/encodable/errs"
)

// zstdMaxDecompressedSize bounds the memory a pooled decoder may use for one frame.
const zstdMaxDecompressedSize = 128 * 1024 * 1024

// Encoders and decoders are expensive to create and allocation-free once warm,
// so they are pooled.
var (
	zstdDecoderPool = sync.Pool{
		New: func() any {
			decoder, err := zstd.NewReader(nil,
				zstd.WithDecoderConcurrency(1),
				zstd.WithDecoderLowmem(false),
				zstd.WithDecoderMaxMemory(zstdMaxDecompressedSize),
			)
			if err != nil {
				panic(fmt.Sprintf("failed to create zstd decoder: %v", err))
			}

			return decoder
		},
	}

	zstdEncoderPool = sync.Pool{
		New: func() any {
			encoder, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.SpeedDefault),
				zstd.WithEncoderCRC(false),
			)
			if err != nil {
				panic(fmt.Sprintf("failed to create zstd encoder: %v", err))
			}

			return encoder
		},
	}
)

// Compress compresses data with a pooled encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses data with a pooled decoder.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

// DecompressLimit rejects frames whose header declares more than limit bytes before
// decoding, and checks the decoded size of frames that do not declare one.
func (c ZstdCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	if header.HasFCS && header.FrameContentSize > uint64(limit) {
		return nil, fmt.Errorf("%w: zstd frame declares %d > %d bytes", errs.ErrDecompressLimit, header.FrameContentSize, limit)
	}

	out, err := c.Decompress(data)
	if err != nil {
		return nil, err
	}

	if len(out) > limit {
		return nil, limitError(len(out), limit)
	}

	return out, nil
}
