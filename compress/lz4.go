package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/encodable/errs"
)

// lz4MaxDecompressedSize bounds the buffer Decompress is willing to allocate.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses sections as raw LZ4 blocks.
//
// Blocks do not record their decompressed size, so Decompress starts with a buffer
// four times the input and doubles it until the block fits.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	// Incompressible input yields n == 0; store it as a literal-only block instead.
	if n == 0 {
		return literalBlock(data), nil
	}

	return dst[:n], nil
}

func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	out, err := c.DecompressLimit(data, lz4MaxDecompressedSize)
	if errors.Is(err, errs.ErrDecompressLimit) {
		return nil, lz4.ErrInvalidSourceShortBuffer
	}

	return out, err
}

// DecompressLimit grows the output buffer up to limit bytes, never past
// lz4MaxDecompressedSize.
func (c LZ4Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	limit = min(limit, lz4MaxDecompressedSize)
	size := min(len(data)*4, limit)
	for {
		buf := make([]byte, size)

		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}

		if size >= limit {
			return nil, fmt.Errorf("%w: lz4 block larger than %d bytes", errs.ErrDecompressLimit, limit)
		}
		size = min(size*2, limit)
	}
}

// literalBlock encodes data as a single LZ4 sequence made only of literals.
func literalBlock(data []byte) []byte {
	n := len(data)
	out := make([]byte, 0, n+n/255+16)

	if n < 15 {
		out = append(out, byte(n<<4))
	} else {
		out = append(out, 0xF0)
		rest := n - 15
		for rest >= 255 {
			out = append(out, 255)
			rest -= 255
		}
		out = append(out, byte(rest))
	}

	return append(out, data...)
}
