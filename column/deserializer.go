package column

import (
	"fmt"

	"github.com/arloliu/encodable/errs"
	"github.com/arloliu/encodable/format"
)

// Deserializer hands out the values of a borrowed Encoding to a decode traversal.
//
// Each column has its own cursor, starting at zero and advanced by one on every
// successful pull of that kind. Cursors never move backwards. A Deserializer drives
// a single traversal and is not safe for concurrent use.
type Deserializer struct {
	enc Encoding
	fi  int
	ii  int
	bi  int
}

var _ Reader = (*Deserializer)(nil)

// NewDeserializer creates a Deserializer reading from enc. The columns are read,
// never modified.
func NewDeserializer(enc Encoding) *Deserializer {
	return &Deserializer{enc: enc}
}

// ReadFloat64 returns the next float.
func (d *Deserializer) ReadFloat64() (float64, error) {
	if d.fi >= len(d.enc.Floats) {
		return 0, errs.ErrFloatIndexOutOfBounds
	}
	v := d.enc.Floats[d.fi]
	d.fi++

	return v, nil
}

// ReadInt64 returns the next int.
func (d *Deserializer) ReadInt64() (int64, error) {
	if d.ii >= len(d.enc.Ints) {
		return 0, errs.ErrIntIndexOutOfBounds
	}
	v := d.enc.Ints[d.ii]
	d.ii++

	return v, nil
}

// ReadBool returns the next bool.
func (d *Deserializer) ReadBool() (bool, error) {
	if d.bi >= len(d.enc.Bools) {
		return false, errs.ErrBoolIndexOutOfBounds
	}
	v := d.enc.Bools[d.bi]
	d.bi++

	return v, nil
}

// ReadStruct returns a cursor over the fields of a record.
func (d *Deserializer) ReadStruct(name string, fields int) (*Fields, error) {
	if fields < 0 {
		return nil, fmt.Errorf("struct %s: %w: %d", name, errs.ErrInvalidAggregateLength, fields)
	}

	return &Fields{r: d, n: fields}, nil
}

// ReadTuple returns a cursor over the members of a tuple.
func (d *Deserializer) ReadTuple(n int) (*Fields, error) {
	if n < 0 {
		return nil, fmt.Errorf("tuple: %w: %d", errs.ErrInvalidAggregateLength, n)
	}

	return &Fields{r: d, n: n}, nil
}

// Reject fails with an UnsupportedKindError.
func (d *Deserializer) Reject(kind format.Kind) error {
	return errs.Unsupported(kind)
}

// Completed reports whether every column has been read to its end.
func (d *Deserializer) Completed() bool {
	return d.fi == len(d.enc.Floats) && d.ii == len(d.enc.Ints) && d.bi == len(d.enc.Bools)
}

// Position returns the current cursor of each column.
func (d *Deserializer) Position() (floats, ints, bools int) {
	return d.fi, d.ii, d.bi
}

// Fields is a bounded cursor over the members of a struct or tuple.
type Fields struct {
	r Reader
	n int
	i int
}

// Next decodes the next member by calling fn with the underlying Reader.
//
// It returns false once all members have been produced, whatever data is left in
// the encoding.
//
// Parameters:
//   - fn: Decodes one member; it may pull any number of leaves from the Reader
//
// Returns:
//   - bool: True if a member was decoded, false when the cursor is exhausted
//   - error: Whatever fn returned
func (f *Fields) Next(fn func(Reader) error) (bool, error) {
	if f.i >= f.n {
		return false, nil
	}
	f.i++

	if err := fn(f.r); err != nil {
		return true, err
	}

	return true, nil
}

// Len returns the declared number of members.
func (f *Fields) Len() int {
	return f.n
}

// Remaining returns the number of members not yet produced.
func (f *Fields) Remaining() int {
	return f.n - f.i
}
