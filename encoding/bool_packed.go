package encoding

import (
	"iter"

	"github.com/arloliu/encodable/internal/pool"
)

// BoolPackedEncoder packs eight bools per byte, least significant bit first. The
// last byte is padded with zero bits.
type BoolPackedEncoder struct {
	buf   *pool.ByteBuffer
	acc   byte
	count int
}

var _ ColumnarEncoder[bool] = (*BoolPackedEncoder)(nil)

func NewBoolPackedEncoder() *BoolPackedEncoder {
	return &BoolPackedEncoder{buf: pool.GetColumnBuffer()}
}

func (e *BoolPackedEncoder) Write(v bool) {
	if v {
		e.acc |= 1 << (e.count & 7)
	}
	e.count++

	if e.count&7 == 0 {
		_ = e.buf.WriteByte(e.acc)
		e.acc = 0
	}
}

func (e *BoolPackedEncoder) WriteSlice(values []bool) {
	e.buf.Grow(len(values)/8 + 1)
	for _, v := range values {
		e.Write(v)
	}
}

// Bytes returns the packed section including a partially filled last byte.
func (e *BoolPackedEncoder) Bytes() []byte {
	b := e.buf.Bytes()
	if e.count&7 == 0 {
		return b
	}

	return append(b[:len(b):len(b)], e.acc)
}

func (e *BoolPackedEncoder) Len() int {
	return e.count
}

func (e *BoolPackedEncoder) Reset() {
	e.buf.Reset()
	e.acc = 0
	e.count = 0
}

func (e *BoolPackedEncoder) Finish() {
	pool.PutColumnBuffer(e.buf)
	e.buf = nil
}

// BoolPackedDecoder reads sections written by BoolPackedEncoder.
type BoolPackedDecoder struct{}

var _ ColumnarDecoder[bool] = BoolPackedDecoder{}

func NewBoolPackedDecoder() BoolPackedDecoder {
	return BoolPackedDecoder{}
}

func (d BoolPackedDecoder) All(data []byte, count int) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < count && i>>3 < len(data); i++ {
			if !yield(data[i>>3]&(1<<(i&7)) != 0) {
				return
			}
		}
	}
}
