package column

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type flat struct {
	A float64
	B int64
	C bool
}

// pair is a heterogeneous tuple with a hand-written traversal.
type pair struct {
	X float64
	N int64
}

func (p pair) MarshalColumns(w Writer) error {
	if err := w.BeginTuple(2); err != nil {
		return err
	}
	if err := w.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := w.WriteInt64(p.N); err != nil {
		return err
	}

	return w.End()
}

func (p *pair) UnmarshalColumns(r Reader) error {
	fields, err := r.ReadTuple(2)
	if err != nil {
		return err
	}

	if _, err := fields.Next(func(r Reader) error {
		var err error
		p.X, err = r.ReadFloat64()

		return err
	}); err != nil {
		return err
	}

	_, err = fields.Next(func(r Reader) error {
		var err error
		p.N, err = r.ReadInt64()

		return err
	})

	return err
}

type bar struct {
	A float64
	B int64
	C bool
	D pair
}

type foo struct {
	A   int64
	Bar bar
	C   bool
}

func sampleFoo() foo {
	return foo{
		A: 1,
		Bar: bar{
			A: 2.0,
			B: 2,
			C: false,
			D: pair{X: 8.0, N: 9},
		},
		C: true,
	}
}

// requireEncoding compares encodings, floats within a small tolerance.
func requireEncoding(t *testing.T, expected, actual Encoding) {
	t.Helper()

	require.Len(t, actual.Floats, len(expected.Floats), "float column length")
	for i := range expected.Floats {
		require.InDelta(t, expected.Floats[i], actual.Floats[i], 1e-12, "float %d", i)
	}

	require.Len(t, actual.Ints, len(expected.Ints), "int column length")
	for i := range expected.Ints {
		require.Equal(t, expected.Ints[i], actual.Ints[i], "int %d", i)
	}

	require.Len(t, actual.Bools, len(expected.Bools), "bool column length")
	for i := range expected.Bools {
		require.Equal(t, expected.Bools[i], actual.Bools[i], "bool %d", i)
	}
}
