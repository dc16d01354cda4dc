package encoding

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/encodable/endian"
	"github.com/arloliu/encodable/errs"
)

func intCodecs() map[string]struct {
	enc func() ColumnarEncoder[int64]
	dec ColumnarDecoder[int64]
} {
	return map[string]struct {
		enc func() ColumnarEncoder[int64]
		dec ColumnarDecoder[int64]
	}{
		"raw little-endian": {
			enc: func() ColumnarEncoder[int64] { return NewIntRawEncoder(endian.GetLittleEndianEngine()) },
			dec: NewIntRawDecoder(endian.GetLittleEndianEngine()),
		},
		"raw big-endian": {
			enc: func() ColumnarEncoder[int64] { return NewIntRawEncoder(endian.GetBigEndianEngine()) },
			dec: NewIntRawDecoder(endian.GetBigEndianEngine()),
		},
		"delta": {
			enc: func() ColumnarEncoder[int64] { return NewIntDeltaEncoder() },
			dec: NewIntDeltaDecoder(),
		},
	}
}

func TestIntCodecs_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	random := make([]int64, 300)
	for i := range random {
		random[i] = rng.Int64() - rng.Int64()
	}

	counter := make([]int64, 300)
	for i := range counter {
		counter[i] = 1_700_000_000 + int64(i)
	}

	inputs := map[string][]int64{
		"single":    {-7},
		"extremes":  {math.MaxInt64, math.MinInt64, 0, math.MinInt64, math.MaxInt64},
		"random":    random,
		"counter":   counter,
		"alternate": {1, -1, 1, -1, 1},
	}

	for codecName, codec := range intCodecs() {
		for inputName, values := range inputs {
			t.Run(codecName+"/"+inputName, func(t *testing.T) {
				enc := codec.enc()
				defer enc.Finish()

				enc.WriteSlice(values)
				require.Equal(t, len(values), enc.Len())

				decoded, err := Collect(codec.dec, enc.Bytes(), len(values))
				require.NoError(t, err)
				require.Equal(t, values, decoded)
			})
		}
	}
}

func TestIntCodecs_Reset(t *testing.T) {
	for name, codec := range intCodecs() {
		t.Run(name, func(t *testing.T) {
			enc := codec.enc()
			defer enc.Finish()

			enc.WriteSlice([]int64{100, 200})
			enc.Reset()
			require.Equal(t, 0, enc.Len())

			enc.WriteSlice([]int64{5, 6, 7})
			decoded, err := Collect(codec.dec, enc.Bytes(), 3)
			require.NoError(t, err)
			require.Equal(t, []int64{5, 6, 7}, decoded)
		})
	}
}

func TestIntCodecs_ShortData(t *testing.T) {
	for name, codec := range intCodecs() {
		t.Run(name, func(t *testing.T) {
			enc := codec.enc()
			defer enc.Finish()
			enc.WriteSlice([]int64{1, 2})

			_, err := Collect(codec.dec, enc.Bytes(), 3)
			require.ErrorIs(t, err, errs.ErrInvalidColumnPayload)
		})
	}
}

func TestIntDeltaEncoder_Layout(t *testing.T) {
	enc := NewIntDeltaEncoder()
	defer enc.Finish()

	// zigzag: 10 -> 20, +1 -> 2, -2 -> 3
	enc.WriteSlice([]int64{10, 11, 9})
	require.Equal(t, []byte{20, 2, 3}, enc.Bytes())
}

func TestIntDeltaEncoder_CounterIsCompact(t *testing.T) {
	enc := NewIntDeltaEncoder()
	defer enc.Finish()

	for i := range 1000 {
		enc.Write(1_700_000_000_000 + int64(i))
	}

	// one varint for the start, one byte per step
	require.Less(t, len(enc.Bytes()), 1000+8)
}

func TestCollect_ZeroCount(t *testing.T) {
	values, err := Collect[int64](NewIntDeltaDecoder(), []byte{1, 2, 3}, 0)
	require.NoError(t, err)
	require.Nil(t, values)
}
