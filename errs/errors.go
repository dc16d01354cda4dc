// Package errs defines the errors returned by encodable packages.
//
// Sentinel errors are compared with errors.Is. Two typed errors carry extra
// information: MessageError forwards a failure raised by caller-supplied traversal
// code, and UnsupportedKindError names the kind that was rejected.
package errs

import (
	"errors"
	"fmt"

	"github.com/arloliu/encodable/format"
)

// Decode errors.
var (
	// ErrFloatIndexOutOfBounds is returned when a decode requests more floats than the encoding holds.
	ErrFloatIndexOutOfBounds = errors.New("float index out of bounds")
	// ErrIntIndexOutOfBounds is returned when a decode requests more ints than the encoding holds.
	ErrIntIndexOutOfBounds = errors.New("int index out of bounds")
	// ErrBoolIndexOutOfBounds is returned when a decode requests more bools than the encoding holds.
	ErrBoolIndexOutOfBounds = errors.New("bool index out of bounds")
	// ErrIncomplete is returned when a decode finished without exhausting every column.
	ErrIncomplete = errors.New("the encoding's values haven't been exhausted")
	// ErrInvalidTarget is returned when the decode target is not a non-nil pointer.
	ErrInvalidTarget = errors.New("decode target must be a non-nil pointer")
	// ErrInvalidAggregateLength is returned when an aggregate is declared with a negative length.
	ErrInvalidAggregateLength = errors.New("invalid aggregate length")
)

// Encode errors.
var (
	// ErrUnsupportedKind is matched by every UnsupportedKindError.
	ErrUnsupportedKind = errors.New("unsupported kind")
	// ErrAggregateLength is returned when an aggregate receives a different number of members than declared.
	ErrAggregateLength = errors.New("aggregate member count mismatch")
	// ErrUnbalancedAggregate is returned by End without a matching Begin.
	ErrUnbalancedAggregate = errors.New("end of aggregate without begin")
	// ErrSerializerConsumed is returned by writes after Consume.
	ErrSerializerConsumed = errors.New("serializer already consumed")
)

// Blob errors.
var (
	ErrInvalidHeaderSize    = errors.New("invalid header size")
	ErrInvalidHeaderFlags   = errors.New("invalid header flags")
	ErrInvalidOffsets       = errors.New("invalid column section offsets")
	ErrChecksumMismatch     = errors.New("checksum mismatch")
	ErrInvalidColumnPayload = errors.New("invalid column payload")
	ErrTooManyValues        = errors.New("too many values in column")
	ErrDecompressLimit      = errors.New("decompressed size exceeds limit")
)

// Side tells which traversal raised a MessageError.
type Side uint8

const (
	SideSer Side = iota + 1
	SideDe
)

func (s Side) String() string {
	switch s {
	case SideSer:
		return "Ser"
	case SideDe:
		return "De"
	default:
		return "Unknown"
	}
}

// MessageError carries a failure raised by caller-supplied traversal code, such as
// a Marshaler rejecting one of its own values. Msg is the human-readable message;
// Err is the original error, if any.
type MessageError struct {
	Side Side
	Msg  string
	Err  error
}

// SerMessage creates a MessageError raised while encoding.
func SerMessage(msg string) *MessageError {
	return &MessageError{Side: SideSer, Msg: msg}
}

// DeMessage creates a MessageError raised while decoding.
func DeMessage(msg string) *MessageError {
	return &MessageError{Side: SideDe, Msg: msg}
}

func (e *MessageError) Error() string {
	return fmt.Sprintf("%s message: %s", e.Side, e.Msg)
}

func (e *MessageError) Unwrap() error {
	return e.Err
}

// UnsupportedKindError is returned when a traversal visits a kind that cannot be
// stored in an encoding.
type UnsupportedKindError struct {
	Kind format.Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported kind: %s", e.Kind)
}

func (e *UnsupportedKindError) Is(target error) bool {
	return target == ErrUnsupportedKind
}

// Unsupported creates an UnsupportedKindError for kind.
func Unsupported(kind format.Kind) error {
	return &UnsupportedKindError{Kind: kind}
}

var known = []error{
	ErrFloatIndexOutOfBounds,
	ErrIntIndexOutOfBounds,
	ErrBoolIndexOutOfBounds,
	ErrIncomplete,
	ErrInvalidTarget,
	ErrInvalidAggregateLength,
	ErrUnsupportedKind,
	ErrAggregateLength,
	ErrUnbalancedAggregate,
	ErrSerializerConsumed,
}

// Wrap returns err unchanged when it already belongs to the taxonomy and otherwise
// forwards it as a MessageError raised on side. A nil err stays nil.
func Wrap(side Side, err error) error {
	if err == nil {
		return nil
	}

	var msgErr *MessageError
	if errors.As(err, &msgErr) {
		return err
	}

	for _, k := range known {
		if errors.Is(err, k) {
			return err
		}
	}

	return &MessageError{Side: side, Msg: err.Error(), Err: err}
}
