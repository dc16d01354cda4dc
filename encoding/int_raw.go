package encoding

import (
	"iter"

	"github.com/arloliu/encodable/endian"
	"github.com/arloliu/encodable/internal/pool"
)

// IntRawEncoder stores each int64 as 8 bytes.
type IntRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[int64] = (*IntRawEncoder)(nil)

// NewIntRawEncoder creates a raw int encoder writing in engine's byte order.
func NewIntRawEncoder(engine endian.EndianEngine) *IntRawEncoder {
	return &IntRawEncoder{
		buf:    pool.GetColumnBuffer(),
		engine: engine,
	}
}

func (e *IntRawEncoder) Write(v int64) {
	e.buf.B = e.engine.AppendUint64(e.buf.B, uint64(v)) //nolint:gosec
	e.count++
}

func (e *IntRawEncoder) WriteSlice(values []int64) {
	e.buf.Grow(len(values) * 8)
	for _, v := range values {
		e.buf.B = e.engine.AppendUint64(e.buf.B, uint64(v)) //nolint:gosec
	}
	e.count += len(values)
}

func (e *IntRawEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

func (e *IntRawEncoder) Len() int {
	return e.count
}

func (e *IntRawEncoder) Reset() {
	e.buf.Reset()
	e.count = 0
}

func (e *IntRawEncoder) Finish() {
	pool.PutColumnBuffer(e.buf)
	e.buf = nil
}

// IntRawDecoder reads sections written by IntRawEncoder.
type IntRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[int64] = IntRawDecoder{}

func NewIntRawDecoder(engine endian.EndianEngine) IntRawDecoder {
	return IntRawDecoder{engine: engine}
}

func (d IntRawDecoder) All(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := 0; i < count && (i+1)*8 <= len(data); i++ {
			if !yield(int64(d.engine.Uint64(data[i*8:]))) { //nolint:gosec
				return
			}
		}
	}
}
