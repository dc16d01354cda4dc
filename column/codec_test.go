package column

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/encodable/errs"
)

func TestDecode_LoneInt(t *testing.T) {
	v, err := DecodeAs[int64](Encoding{Ints: []int64{1}})
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
}

func TestDecode_LonePrimitives(t *testing.T) {
	f, err := DecodeAs[float64](Encoding{Floats: []float64{1.0}})
	require.NoError(t, err)
	require.InDelta(t, 1.0, f, 1e-12)

	b, err := DecodeAs[bool](Encoding{Bools: []bool{true}})
	require.NoError(t, err)
	require.True(t, b)
}

func TestEncode_Flat(t *testing.T) {
	enc, err := Encode(flat{A: 1.0, B: 2, C: true})
	require.NoError(t, err)

	requireEncoding(t, Encoding{
		Floats: []float64{1.0},
		Ints:   []int64{2},
		Bools:  []bool{true},
	}, enc)
}

func TestEncode_Nested(t *testing.T) {
	enc, err := Encode(sampleFoo())
	require.NoError(t, err)

	requireEncoding(t, Encoding{
		Floats: []float64{2.0, 8.0},
		Ints:   []int64{1, 2, 9},
		Bools:  []bool{false, true},
	}, enc)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := sampleFoo()

	enc, err := Encode(original)
	require.NoError(t, err)

	decoded, err := DecodeAs[foo](enc)
	require.NoError(t, err)
	require.Equal(t, original, decoded)

	reencoded, err := Encode(decoded)
	require.NoError(t, err)
	require.True(t, enc.Equal(reencoded), "re-encoding must reproduce the same columns")
}

func TestEncodeDecode_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		original := foo{
			A: rng.Int64() - rng.Int64(),
			Bar: bar{
				A: rng.NormFloat64() * 1e6,
				B: rng.Int64(),
				C: rng.IntN(2) == 1,
				D: pair{X: rng.Float64(), N: -rng.Int64()},
			},
			C: rng.IntN(2) == 1,
		}

		enc, err := Encode(original)
		require.NoError(t, err)

		floats, ints, bools := enc.Counts()
		require.Equal(t, 2, floats)
		require.Equal(t, 3, ints)
		require.Equal(t, 2, bools)

		decoded, err := DecodeAs[foo](enc)
		require.NoError(t, err)
		require.Equal(t, original, decoded)

		reencoded, err := Encode(decoded)
		require.NoError(t, err)
		require.True(t, enc.Equal(reencoded))
	}
}

func TestEncode_OrderPreservation(t *testing.T) {
	type ab struct {
		A int64
		B int64
	}
	type ba struct {
		B int64
		A int64
	}

	encAB, err := Encode(ab{A: 1, B: 2})
	require.NoError(t, err)

	encBA, err := Encode(ba{A: 1, B: 2})
	require.NoError(t, err)

	require.Equal(t, []int64{1, 2}, encAB.Ints)
	require.Equal(t, []int64{2, 1}, encBA.Ints)
}

func TestEncode_ColumnIndependence(t *testing.T) {
	type mixed struct {
		F1 float64
		I1 int64
		B1 bool
		F2 float64
		B2 bool
		I2 int64
		F3 float64
	}

	enc, err := Encode(mixed{F1: 0.1, I1: 10, B1: true, F2: 0.2, B2: false, I2: 20, F3: 0.3})
	require.NoError(t, err)

	requireEncoding(t, Encoding{
		Floats: []float64{0.1, 0.2, 0.3},
		Ints:   []int64{10, 20},
		Bools:  []bool{true, false},
	}, enc)
}

func TestDecode_ExhaustionBoundary(t *testing.T) {
	tests := []struct {
		name string
		enc  Encoding
		want error
	}{
		{
			name: "missing bool",
			enc:  Encoding{Floats: []float64{1.0}, Ints: []int64{2}},
			want: errs.ErrBoolIndexOutOfBounds,
		},
		{
			name: "missing int",
			enc:  Encoding{Floats: []float64{1.0}, Bools: []bool{true}},
			want: errs.ErrIntIndexOutOfBounds,
		},
		{
			name: "missing float",
			enc:  Encoding{Ints: []int64{2}, Bools: []bool{true}},
			want: errs.ErrFloatIndexOutOfBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAs[flat](tt.enc)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_FirstExcessPull(t *testing.T) {
	type threeInts struct {
		A, B, C int64
	}

	d := NewDeserializer(Encoding{Ints: []int64{1, 2}})

	var v threeInts
	err := ReadValue(d, &v)
	require.ErrorIs(t, err, errs.ErrIntIndexOutOfBounds)
	require.Equal(t, int64(1), v.A)
	require.Equal(t, int64(2), v.B)

	_, ints, _ := d.Position()
	require.Equal(t, 2, ints)
}

func TestDecode_SurplusBoundary(t *testing.T) {
	enc := Encoding{Floats: []float64{1.0, 9.9}}

	d := NewDeserializer(enc)
	var f float64
	require.NoError(t, ReadValue(d, &f), "shape traversal itself succeeds")
	require.InDelta(t, 1.0, f, 1e-12)
	require.False(t, d.Completed())

	_, err := DecodeAs[float64](enc)
	require.ErrorIs(t, err, errs.ErrIncomplete)
}

func TestDecode_SurplusPerColumn(t *testing.T) {
	encs := []Encoding{
		{Floats: []float64{1.0}, Ints: []int64{2}, Bools: []bool{true, false}},
		{Floats: []float64{1.0}, Ints: []int64{2, 3}, Bools: []bool{true}},
		{Floats: []float64{1.0, 2.0}, Ints: []int64{2}, Bools: []bool{true}},
	}

	for _, enc := range encs {
		_, err := DecodeAs[flat](enc)
		require.ErrorIs(t, err, errs.ErrIncomplete)
	}
}

func TestDecode_TraversalErrorWinsOverIncomplete(t *testing.T) {
	_, err := DecodeAs[flat](Encoding{Floats: []float64{1, 2}, Ints: []int64{1}})
	require.ErrorIs(t, err, errs.ErrBoolIndexOutOfBounds)
	require.NotErrorIs(t, err, errs.ErrIncomplete)
}

func TestDecode_InvalidTarget(t *testing.T) {
	enc := Encoding{Ints: []int64{1}}

	require.ErrorIs(t, Decode(enc, int64(0)), errs.ErrInvalidTarget)
	require.ErrorIs(t, Decode(enc, nil), errs.ErrInvalidTarget)

	var nilPtr *int64
	require.ErrorIs(t, Decode(enc, nilPtr), errs.ErrInvalidTarget)
}

func TestDecode_IntoExisting(t *testing.T) {
	enc, err := Encode(flat{A: 3.5, B: 4, C: true})
	require.NoError(t, err)

	var v flat
	require.NoError(t, Decode(enc, &v))
	require.Equal(t, flat{A: 3.5, B: 4, C: true}, v)
}

type rejecting struct{ Limit int64 }

var errTooLarge = errors.New("limit too large")

func (r rejecting) MarshalColumns(w Writer) error {
	if r.Limit > 100 {
		return errTooLarge
	}

	return w.WriteInt64(r.Limit)
}

func (r *rejecting) UnmarshalColumns(rd Reader) error {
	v, err := rd.ReadInt64()
	if err != nil {
		return err
	}

	if v > 100 {
		return errTooLarge
	}
	r.Limit = v

	return nil
}

func TestEncode_MessagePassthrough(t *testing.T) {
	_, err := Encode(rejecting{Limit: 1000})

	var msgErr *errs.MessageError
	require.ErrorAs(t, err, &msgErr)
	require.Equal(t, errs.SideSer, msgErr.Side)
	require.Equal(t, errTooLarge.Error(), msgErr.Msg)
	require.ErrorIs(t, err, errTooLarge)
}

func TestDecode_MessagePassthrough(t *testing.T) {
	_, err := DecodeAs[rejecting](Encoding{Ints: []int64{1000}})

	var msgErr *errs.MessageError
	require.ErrorAs(t, err, &msgErr)
	require.Equal(t, errs.SideDe, msgErr.Side)
	require.Equal(t, errTooLarge.Error(), msgErr.Msg)
}

type leftOpen struct{}

func (leftOpen) MarshalColumns(w Writer) error {
	if err := w.BeginTuple(1); err != nil {
		return err
	}

	return w.WriteBool(true)
}

func TestEncode_AggregateLeftOpen(t *testing.T) {
	_, err := Encode(leftOpen{})
	require.ErrorIs(t, err, errs.ErrAggregateLength)
}

// twoInts writes two bare leaves without declaring an aggregate.
type twoInts struct{ a, b int64 }

func (p twoInts) MarshalColumns(w Writer) error {
	if err := w.WriteInt64(p.a); err != nil {
		return err
	}

	return w.WriteInt64(p.b)
}

func (p *twoInts) UnmarshalColumns(r Reader) error {
	a, err := r.ReadInt64()
	if err != nil {
		return err
	}

	b, err := r.ReadInt64()
	if err != nil {
		return err
	}
	p.a, p.b = a, b

	return nil
}

type withTwoInts struct {
	X float64
	P twoInts
	Q [2]twoInts
}

func TestEncodeDecode_MultiLeafMarshalerMember(t *testing.T) {
	enc := Encoding{Floats: []float64{1}, Ints: []int64{2, 3, 4, 5, 6, 7}}

	decoded, err := DecodeAs[withTwoInts](enc)
	require.NoError(t, err)
	require.Equal(t, withTwoInts{X: 1, P: twoInts{2, 3}, Q: [2]twoInts{{4, 5}, {6, 7}}}, decoded)

	reencoded, err := Encode(decoded)
	require.NoError(t, err)
	require.True(t, enc.Equal(reencoded))
}

type extraEnd struct{}

func (extraEnd) MarshalColumns(w Writer) error {
	if err := w.WriteBool(true); err != nil {
		return err
	}

	return w.End()
}

func TestEncode_MarshalerCannotCloseParent(t *testing.T) {
	type holder struct {
		A int64
		E extraEnd
	}

	_, err := Encode(holder{A: 1})
	require.ErrorIs(t, err, errs.ErrUnbalancedAggregate)
}

func TestDecode_TopLevelPointer(t *testing.T) {
	original := &flat{A: 1.5, B: 2, C: true}

	enc, err := Encode(original)
	require.NoError(t, err)

	decoded, err := DecodeAs[*flat](enc)
	require.NoError(t, err)
	require.Equal(t, original, decoded)

	twice, err := DecodeAs[**flat](enc)
	require.NoError(t, err)
	require.NotNil(t, twice)
	require.Equal(t, original, *twice)

	marshaler, err := DecodeAs[*ptrMarshaler](Encoding{Ints: []int64{42}})
	require.NoError(t, err)
	require.Equal(t, int64(21), marshaler.V)
}
