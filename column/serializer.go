package column

import (
	"fmt"

	"github.com/arloliu/encodable/errs"
	"github.com/arloliu/encodable/format"
)

// aggregate is an open struct or tuple on the serializer stack.
type aggregate struct {
	kind     format.Kind
	declared int
	written  int
	opaque   bool // a Marshaler call, counted as one member of its parent
}

// Serializer builds an Encoding from a traversal. It is not safe for concurrent use
// and must not be reused after Consume.
type Serializer struct {
	enc      Encoding
	stack    []aggregate
	consumed bool
}

var _ Writer = (*Serializer)(nil)

// NewSerializer creates a Serializer with an empty Encoding.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// WriteFloat64 appends v to the float column.
func (s *Serializer) WriteFloat64(v float64) error {
	if err := s.member(); err != nil {
		return err
	}
	s.enc.Floats = append(s.enc.Floats, v)

	return nil
}

// WriteInt64 appends v to the int column.
func (s *Serializer) WriteInt64(v int64) error {
	if err := s.member(); err != nil {
		return err
	}
	s.enc.Ints = append(s.enc.Ints, v)

	return nil
}

// WriteBool appends v to the bool column.
func (s *Serializer) WriteBool(v bool) error {
	if err := s.member(); err != nil {
		return err
	}
	s.enc.Bools = append(s.enc.Bools, v)

	return nil
}

// BeginStruct opens a record of the given number of fields.
func (s *Serializer) BeginStruct(name string, fields int) error {
	if err := s.begin(format.KindStruct, fields); err != nil {
		return fmt.Errorf("struct %s: %w", name, err)
	}

	return nil
}

// BeginTuple opens a tuple of n members.
func (s *Serializer) BeginTuple(n int) error {
	return s.begin(format.KindTuple, n)
}

// End closes the innermost open aggregate. It fails if the aggregate received a
// different number of members than it declared.
func (s *Serializer) End() error {
	if s.consumed {
		return errs.ErrSerializerConsumed
	}

	if len(s.stack) == 0 {
		return errs.ErrUnbalancedAggregate
	}

	top := s.stack[len(s.stack)-1]
	if top.opaque {
		return errs.ErrUnbalancedAggregate
	}
	s.stack = s.stack[:len(s.stack)-1]

	if top.written != top.declared {
		return fmt.Errorf("%w: %s declared %d members, got %d", errs.ErrAggregateLength, top.kind, top.declared, top.written)
	}

	return nil
}

// Reject fails with an UnsupportedKindError. Nothing is appended.
func (s *Serializer) Reject(kind format.Kind) error {
	return errs.Unsupported(kind)
}

// Consume returns the Encoding built so far. The Serializer must not be used afterwards.
func (s *Serializer) Consume() Encoding {
	enc := s.enc
	s.enc = Encoding{}
	s.stack = nil
	s.consumed = true

	return enc
}

func (s *Serializer) begin(kind format.Kind, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidAggregateLength, n)
	}

	if err := s.member(); err != nil {
		return err
	}
	s.stack = append(s.stack, aggregate{kind: kind, declared: n})

	return nil
}

// member counts one member against the innermost open aggregate.
func (s *Serializer) member() error {
	if s.consumed {
		return errs.ErrSerializerConsumed
	}

	if len(s.stack) == 0 {
		return nil
	}

	top := &s.stack[len(s.stack)-1]
	if !top.opaque && top.written >= top.declared {
		return fmt.Errorf("%w: %s declared %d members", errs.ErrAggregateLength, top.kind, top.declared)
	}
	top.written++

	return nil
}

// beginOpaque counts one member against the enclosing aggregate and opens a frame
// in which a Marshaler may write any number of members.
func (s *Serializer) beginOpaque() error {
	if err := s.member(); err != nil {
		return err
	}
	s.stack = append(s.stack, aggregate{opaque: true})

	return nil
}

// endOpaque closes the frame opened by beginOpaque. Aggregates the Marshaler left
// open are reported as a length mismatch.
func (s *Serializer) endOpaque() error {
	if s.consumed {
		return errs.ErrSerializerConsumed
	}

	if len(s.stack) == 0 {
		return errs.ErrUnbalancedAggregate
	}

	top := s.stack[len(s.stack)-1]
	if !top.opaque {
		return fmt.Errorf("%w: %s left open by Marshaler", errs.ErrAggregateLength, top.kind)
	}
	s.stack = s.stack[:len(s.stack)-1]

	return nil
}
