package encoding

import (
	"iter"
	"math"

	"github.com/arloliu/encodable/endian"
	"github.com/arloliu/encodable/internal/pool"
)

// FloatRawEncoder stores each float64 as its 8-byte IEEE 754 bit pattern.
type FloatRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[float64] = (*FloatRawEncoder)(nil)

// NewFloatRawEncoder creates a raw float encoder writing in engine's byte order.
func NewFloatRawEncoder(engine endian.EndianEngine) *FloatRawEncoder {
	return &FloatRawEncoder{
		buf:    pool.GetColumnBuffer(),
		engine: engine,
	}
}

func (e *FloatRawEncoder) Write(v float64) {
	e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(v))
	e.count++
}

func (e *FloatRawEncoder) WriteSlice(values []float64) {
	e.buf.Grow(len(values) * 8)
	for _, v := range values {
		e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(v))
	}
	e.count += len(values)
}

func (e *FloatRawEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

func (e *FloatRawEncoder) Len() int {
	return e.count
}

func (e *FloatRawEncoder) Reset() {
	e.buf.Reset()
	e.count = 0
}

func (e *FloatRawEncoder) Finish() {
	pool.PutColumnBuffer(e.buf)
	e.buf = nil
}

// FloatRawDecoder reads sections written by FloatRawEncoder.
type FloatRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float64] = FloatRawDecoder{}

func NewFloatRawDecoder(engine endian.EndianEngine) FloatRawDecoder {
	return FloatRawDecoder{engine: engine}
}

func (d FloatRawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := 0; i < count && (i+1)*8 <= len(data); i++ {
			if !yield(math.Float64frombits(d.engine.Uint64(data[i*8:]))) {
				return
			}
		}
	}
}
