package encoding

import (
	"encoding/binary"
	"iter"

	"github.com/arloliu/encodable/internal/pool"
)

// IntDeltaEncoder stores the first value, then the difference to the previous
// value, each as a zigzag varint.
//
// Columns of counters or ids that change by small steps shrink to one or two bytes
// per value. Differences wrap around on overflow and are restored exactly.
type IntDeltaEncoder struct {
	buf   *pool.ByteBuffer
	prev  int64
	count int
}

var _ ColumnarEncoder[int64] = (*IntDeltaEncoder)(nil)

func NewIntDeltaEncoder() *IntDeltaEncoder {
	return &IntDeltaEncoder{buf: pool.GetColumnBuffer()}
}

func (e *IntDeltaEncoder) Write(v int64) {
	delta := v
	if e.count > 0 {
		delta = v - e.prev
	}
	e.buf.B = binary.AppendVarint(e.buf.B, delta)
	e.prev = v
	e.count++
}

func (e *IntDeltaEncoder) WriteSlice(values []int64) {
	for _, v := range values {
		e.Write(v)
	}
}

func (e *IntDeltaEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

func (e *IntDeltaEncoder) Len() int {
	return e.count
}

func (e *IntDeltaEncoder) Reset() {
	e.buf.Reset()
	e.prev = 0
	e.count = 0
}

func (e *IntDeltaEncoder) Finish() {
	pool.PutColumnBuffer(e.buf)
	e.buf = nil
}

// IntDeltaDecoder reads sections written by IntDeltaEncoder.
type IntDeltaDecoder struct{}

var _ ColumnarDecoder[int64] = IntDeltaDecoder{}

func NewIntDeltaDecoder() IntDeltaDecoder {
	return IntDeltaDecoder{}
}

func (d IntDeltaDecoder) All(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		var prev int64
		offset := 0

		for range count {
			delta, n := binary.Varint(data[offset:])
			if n <= 0 {
				return
			}
			offset += n
			prev += delta

			if !yield(prev) {
				return
			}
		}
	}
}
