package column

import (
	"reflect"

	"github.com/arloliu/encodable/errs"
	"github.com/arloliu/encodable/format"
)

// TagName is the struct tag consulted by the reflection walk. A field tagged
// `column:"-"` is skipped by both encode and decode.
const TagName = "column"

var (
	marshalerType   = reflect.TypeFor[Marshaler]()
	unmarshalerType = reflect.TypeFor[Unmarshaler]()
)

// WriteValue writes v to w.
//
// Types implementing Marshaler write themselves. Otherwise float64, int64 and bool
// kinds are leaves, structs are records of their exported fields in declaration
// order and arrays are tuples. Any other kind is rejected. Pointers passed directly
// to WriteValue are followed; pointers found inside v are optional values and are
// rejected.
func WriteValue(w Writer, v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() && !rv.Type().Implements(marshalerType) {
		rv = rv.Elem()
	}

	return writeValue(w, rv)
}

// ReadValue decodes into the value ptr points to, pulling from r in the same order
// WriteValue writes. When ptr points to a pointer, nil pointers on the way are
// allocated, so values written through a top-level pointer decode back into one.
func ReadValue(r Reader, ptr any) error {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errs.ErrInvalidTarget
	}

	return readValue(r, allocPointers(rv.Elem()))
}

// marshal runs m as a single member of the enclosing aggregate, however many
// leaves it writes.
func marshal(w Writer, m Marshaler) error {
	s, ok := w.(*Serializer)
	if !ok {
		return m.MarshalColumns(w)
	}

	if err := s.beginOpaque(); err != nil {
		return err
	}

	if err := m.MarshalColumns(s); err != nil {
		return err
	}

	return s.endOpaque()
}

// allocPointers follows the pointers of a decode target, allocating nil ones, so
// that decoding into *T mirrors WriteValue following *T.
func allocPointers(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}

	return v
}

func writeValue(w Writer, v reflect.Value) error {
	if !v.IsValid() {
		return w.Reject(format.KindInvalid)
	}

	t := v.Type()
	if t.Implements(marshalerType) {
		if (t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface) && v.IsNil() {
			return w.Reject(format.KindOption)
		}

		return marshal(w, v.Interface().(Marshaler)) //nolint:forcetypeassert
	}

	if t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(marshalerType) {
		if !v.CanAddr() {
			tmp := reflect.New(t)
			tmp.Elem().Set(v)
			v = tmp.Elem()
		}

		return marshal(w, v.Addr().Interface().(Marshaler)) //nolint:forcetypeassert
	}

	switch t.Kind() { //nolint:exhaustive
	case reflect.Float64:
		return w.WriteFloat64(v.Float())
	case reflect.Int64:
		return w.WriteInt64(v.Int())
	case reflect.Bool:
		return w.WriteBool(v.Bool())
	case reflect.Struct:
		fields := structFields(t)
		if len(fields) == 0 {
			return w.Reject(format.KindUnit)
		}

		if err := w.BeginStruct(t.Name(), len(fields)); err != nil {
			return err
		}

		for _, idx := range fields {
			if err := writeValue(w, v.Field(idx)); err != nil {
				return err
			}
		}

		return w.End()
	case reflect.Array:
		if err := w.BeginTuple(v.Len()); err != nil {
			return err
		}

		for i := range v.Len() {
			if err := writeValue(w, v.Index(i)); err != nil {
				return err
			}
		}

		return w.End()
	default:
		return w.Reject(kindOf(t))
	}
}

func readValue(r Reader, v reflect.Value) error {
	t := v.Type()
	if v.CanAddr() && reflect.PointerTo(t).Implements(unmarshalerType) {
		return v.Addr().Interface().(Unmarshaler).UnmarshalColumns(r) //nolint:forcetypeassert
	}

	switch t.Kind() { //nolint:exhaustive
	case reflect.Float64:
		f, err := r.ReadFloat64()
		if err != nil {
			return err
		}
		v.SetFloat(f)

		return nil
	case reflect.Int64:
		i, err := r.ReadInt64()
		if err != nil {
			return err
		}
		v.SetInt(i)

		return nil
	case reflect.Bool:
		b, err := r.ReadBool()
		if err != nil {
			return err
		}
		v.SetBool(b)

		return nil
	case reflect.Struct:
		fields := structFields(t)
		if len(fields) == 0 {
			return r.Reject(format.KindUnit)
		}

		cursor, err := r.ReadStruct(t.Name(), len(fields))
		if err != nil {
			return err
		}

		for _, idx := range fields {
			field := v.Field(idx)
			if _, err := cursor.Next(func(r Reader) error { return readValue(r, field) }); err != nil {
				return err
			}
		}

		return nil
	case reflect.Array:
		cursor, err := r.ReadTuple(v.Len())
		if err != nil {
			return err
		}

		for i := range v.Len() {
			elem := v.Index(i)
			if _, err := cursor.Next(func(r Reader) error { return readValue(r, elem) }); err != nil {
				return err
			}
		}

		return nil
	default:
		return r.Reject(kindOf(t))
	}
}

// structFields returns the indexes of the fields of t taking part in a traversal.
func structFields(t reflect.Type) []int {
	fields := make([]int, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get(TagName) == "-" {
			continue
		}
		fields = append(fields, i)
	}

	return fields
}

func kindOf(t reflect.Type) format.Kind {
	switch t.Kind() {
	case reflect.Float64:
		return format.KindFloat64
	case reflect.Int64:
		return format.KindInt64
	case reflect.Bool:
		return format.KindBool
	case reflect.Struct:
		return format.KindStruct
	case reflect.Array:
		return format.KindTuple
	case reflect.Int8:
		return format.KindInt8
	case reflect.Int16:
		return format.KindInt16
	case reflect.Int32:
		return format.KindInt32
	case reflect.Int:
		return format.KindInt
	case reflect.Uint8:
		return format.KindUint8
	case reflect.Uint16:
		return format.KindUint16
	case reflect.Uint32:
		return format.KindUint32
	case reflect.Uint64:
		return format.KindUint64
	case reflect.Uint, reflect.Uintptr:
		return format.KindUint
	case reflect.Float32:
		return format.KindFloat32
	case reflect.String:
		return format.KindString
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return format.KindBytes
		}

		return format.KindSeq
	case reflect.Map:
		return format.KindMap
	case reflect.Pointer:
		return format.KindOption
	case reflect.Interface:
		return format.KindEnum
	case reflect.Complex64, reflect.Complex128:
		return format.KindComplex
	case reflect.Func:
		return format.KindFunc
	case reflect.Chan:
		return format.KindChan
	default:
		return format.KindInvalid
	}
}
