package encoding

import "github.com/arloliu/encodable/internal/pool"

// bitWriter appends bits to a buffer, most significant bit first.
type bitWriter struct {
	buf *pool.ByteBuffer
	acc byte // pending bits, aligned to the most significant end
	n   int  // number of pending bits, 0-7
}

func (w *bitWriter) writeBit(bit bool) {
	if bit {
		w.acc |= 0x80 >> w.n
	}
	w.n++

	if w.n == 8 {
		_ = w.buf.WriteByte(w.acc)
		w.acc, w.n = 0, 0
	}
}

// writeBits writes the low nbits of v, most significant first.
func (w *bitWriter) writeBits(v uint64, nbits int) {
	for nbits > 0 {
		free := 8 - w.n
		take := min(free, nbits)
		chunk := byte((v >> (nbits - take)) & (1<<take - 1))
		w.acc |= chunk << (free - take)
		w.n += take
		nbits -= take

		if w.n == 8 {
			_ = w.buf.WriteByte(w.acc)
			w.acc, w.n = 0, 0
		}
	}
}

// bytes returns the written bits, padding the last byte with zeros. The writer
// state is left untouched so writing can continue.
func (w *bitWriter) bytes() []byte {
	b := w.buf.Bytes()
	if w.n == 0 {
		return b
	}

	return append(b[:len(b):len(b)], w.acc)
}

func (w *bitWriter) reset() {
	w.buf.Reset()
	w.acc, w.n = 0, 0
}

// bitReader reads bits written by bitWriter.
type bitReader struct {
	data []byte
	pos  int // bit position
}

func (r *bitReader) readBit() (bool, bool) {
	if r.pos >= len(r.data)*8 {
		return false, false
	}
	bit := r.data[r.pos>>3]&(0x80>>(r.pos&7)) != 0
	r.pos++

	return bit, true
}

func (r *bitReader) readBits(nbits int) (uint64, bool) {
	if r.pos+nbits > len(r.data)*8 {
		return 0, false
	}

	var v uint64
	for nbits > 0 {
		avail := 8 - r.pos&7
		take := min(avail, nbits)
		chunk := (uint64(r.data[r.pos>>3]) >> (avail - take)) & (1<<take - 1)
		v = v<<take | chunk
		r.pos += take
		nbits -= take
	}

	return v, true
}
