package column

import "github.com/arloliu/encodable/format"

// Writer receives the leaves and aggregate boundaries of a value, in traversal order.
//
// A record of N fields is written as BeginStruct(name, N), then its N members, then
// End. Tuples use BeginTuple the same way. A member is either a leaf write or a
// complete nested aggregate.
type Writer interface {
	WriteFloat64(v float64) error
	WriteInt64(v int64) error
	WriteBool(v bool) error

	BeginStruct(name string, fields int) error
	BeginTuple(n int) error
	End() error

	// Reject reports a value of a kind that cannot be encoded. It always fails.
	Reject(kind format.Kind) error
}

// Reader hands out the values a target shape asks for, in traversal order.
//
// The encoding carries no type tags: the kind of each pull is decided by the
// caller, never by the data.
type Reader interface {
	ReadFloat64() (float64, error)
	ReadInt64() (int64, error)
	ReadBool() (bool, error)

	// ReadStruct and ReadTuple return a cursor over exactly fields (or n) members.
	ReadStruct(name string, fields int) (*Fields, error)
	ReadTuple(n int) (*Fields, error)

	// Reject reports a requested kind that cannot be decoded. It always fails.
	Reject(kind format.Kind) error
}

// Marshaler is implemented by types that write their own leaves.
//
// When a Marshaler is reached through WriteValue, as a field, array element or the
// top-level value, its whole MarshalColumns call counts as one member of the
// enclosing struct or tuple, whatever it writes. The matching UnmarshalColumns runs
// inside a single Fields.Next call and may pull as many leaves as MarshalColumns
// wrote. Aggregates it opens must be closed before it returns.
type Marshaler interface {
	MarshalColumns(w Writer) error
}

// Unmarshaler is implemented by types that rebuild themselves from a Reader.
// UnmarshalColumns must pull its leaves in the same order MarshalColumns writes them.
type Unmarshaler interface {
	UnmarshalColumns(r Reader) error
}
