package encoding

import (
	"iter"
	"math"
	"math/bits"

	"github.com/arloliu/encodable/internal/pool"
)

// gorillaMaxLeading is the largest leading zero count a 5-bit field can hold.
const gorillaMaxLeading = 31

// FloatGorillaEncoder compresses float64 values with the Gorilla XOR scheme
// (https://www.vldb.org/pvldb/vol8/p1816-teller.pdf):
//  1. The first value is stored as its 64 raw bits.
//  2. Each following value is XORed with its predecessor:
//     - XOR == 0: a single 0 bit
//     - otherwise a 1 bit, then either
//     a. 0 and the meaningful bits, when they fit the previous block, or
//     b. 1, 5 bits of leading zeros, 6 bits of block size minus one, and the
//     meaningful bits.
//
// Consecutive fields of a record rarely repeat, but arrays of samples and
// slowly changing measurements compress well.
type FloatGorillaEncoder struct {
	w            bitWriter
	prev         uint64
	prevLeading  int
	prevTrailing int
	count        int
}

var _ ColumnarEncoder[float64] = (*FloatGorillaEncoder)(nil)

func NewFloatGorillaEncoder() *FloatGorillaEncoder {
	return &FloatGorillaEncoder{
		w:            bitWriter{buf: pool.GetColumnBuffer()},
		prevLeading:  -1,
		prevTrailing: -1,
	}
}

func (e *FloatGorillaEncoder) Write(v float64) {
	valBits := math.Float64bits(v)
	e.count++

	if e.count == 1 {
		e.prev = valBits
		e.w.writeBits(valBits, 64)

		return
	}

	xor := valBits ^ e.prev
	e.prev = valBits

	if xor == 0 {
		e.w.writeBit(false)
		return
	}
	e.w.writeBit(true)

	leading := min(bits.LeadingZeros64(xor), gorillaMaxLeading)
	trailing := bits.TrailingZeros64(xor)

	if e.prevLeading >= 0 && leading >= e.prevLeading && trailing >= e.prevTrailing {
		// fits the previous block
		e.w.writeBit(false)
		blockSize := 64 - e.prevLeading - e.prevTrailing
		e.w.writeBits(xor>>e.prevTrailing, blockSize)

		return
	}

	blockSize := 64 - leading - trailing
	e.w.writeBit(true)
	e.w.writeBits(uint64(leading), 5)     //nolint:gosec
	e.w.writeBits(uint64(blockSize-1), 6) //nolint:gosec
	e.w.writeBits(xor>>trailing, blockSize)

	e.prevLeading, e.prevTrailing = leading, trailing
}

func (e *FloatGorillaEncoder) WriteSlice(values []float64) {
	for _, v := range values {
		e.Write(v)
	}
}

func (e *FloatGorillaEncoder) Bytes() []byte {
	return e.w.bytes()
}

func (e *FloatGorillaEncoder) Len() int {
	return e.count
}

func (e *FloatGorillaEncoder) Reset() {
	e.w.reset()
	e.prev = 0
	e.prevLeading, e.prevTrailing = -1, -1
	e.count = 0
}

func (e *FloatGorillaEncoder) Finish() {
	pool.PutColumnBuffer(e.w.buf)
	e.w.buf = nil
}

// FloatGorillaDecoder reads sections written by FloatGorillaEncoder.
type FloatGorillaDecoder struct{}

var _ ColumnarDecoder[float64] = FloatGorillaDecoder{}

func NewFloatGorillaDecoder() FloatGorillaDecoder {
	return FloatGorillaDecoder{}
}

func (d FloatGorillaDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if count <= 0 {
			return
		}

		r := bitReader{data: data}

		prev, ok := r.readBits(64)
		if !ok || !yield(math.Float64frombits(prev)) {
			return
		}

		leading, trailing := -1, -1

		for i := 1; i < count; i++ {
			changed, ok := r.readBit()
			if !ok {
				return
			}

			if changed {
				newBlock, ok := r.readBit()
				if !ok {
					return
				}

				if newBlock {
					l, ok1 := r.readBits(5)
					size, ok2 := r.readBits(6)
					if !ok1 || !ok2 {
						return
					}
					leading = int(l)
					trailing = 64 - leading - int(size) - 1
					if trailing < 0 {
						return
					}
				} else if leading < 0 {
					// block reuse before any block was defined
					return
				}

				blockSize := 64 - leading - trailing
				meaningful, ok := r.readBits(blockSize)
				if !ok {
					return
				}
				prev ^= meaningful << trailing
			}

			if !yield(math.Float64frombits(prev)) {
				return
			}
		}
	}
}
