package compress

import (
	"encoding/binary"
	"math"
	"testing"
)

func benchmarkSection() []byte {
	buf := make([]byte, 0, 8*1024)
	for i := range 1024 {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(20+float64(i%7)*0.5))
	}

	return buf
}

func BenchmarkCompress(b *testing.B) {
	data := benchmarkSection()

	for _, ct := range allCompressions {
		codec, _ := GetCodec(ct)
		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				_, _ = codec.Compress(data)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := benchmarkSection()

	for _, ct := range allCompressions {
		codec, _ := GetCodec(ct)
		packed, _ := codec.Compress(data)
		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				_, _ = codec.Decompress(packed)
			}
		})
	}
}
