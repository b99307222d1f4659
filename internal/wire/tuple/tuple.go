// Package tuple implements the heterogeneous encoded record (4.C): a
// fixed sequence of serializable types laid out contiguously over a
// storage.Storage, with cumulative-offset field access and an Invoke
// helper that expands the tuple as positional arguments to a callable.
//
// Field types are carried as reflect.Type rather than a compile-time type
// list because Go generics have no variadic type parameter — there is no
// way to write Tuple[T1, T2, ..., Tn] for arbitrary n. This is the one
// place in the module where reflect is load-bearing rather than optional:
// the owning action builds a Layout from a function's reflect.Type and
// drives decoding through it.
package tuple

import (
	"fmt"
	"reflect"

	"github.com/danmuck/wirecall/internal/wire"
	"github.com/danmuck/wirecall/internal/wire/storage"
)

// Layout is the compile-time-shape (but runtime-computed, since Go can't
// express it as a type) description of a tuple: its field types, their
// cumulative byte offsets, and its total size. Offset of field i equals
// the sum of sizes of fields 0..i-1; total size is the sum of all field
// sizes. No padding is ever inserted.
type Layout struct {
	types   []reflect.Type
	offsets []int
	size    int
}

// NewLayout computes the layout for a sequence of serializable field
// types, in order.
func NewLayout(types ...reflect.Type) *Layout {
	l := &Layout{types: types, offsets: make([]int, len(types))}
	offset := 0
	for i, t := range types {
		l.offsets[i] = offset
		offset += wire.SizeOfValue(t)
	}
	l.size = offset
	return l
}

// Size is the tuple's total encoded footprint.
func (l *Layout) Size() int { return l.size }

// Len is the field count.
func (l *Layout) Len() int { return len(l.types) }

// OffsetOf is field i's byte offset.
func (l *Layout) OffsetOf(i int) int { return l.offsets[i] }

// Tuple is a layout bound to concrete storage and codec configuration.
// The storage is never partially written in a well-behaved sequence: a
// Tuple built via New is zero-valued until every field has been Set, or
// is populated field-by-field by an incremental decoder (see
// internal/ioadapter), and either way every byte of it is meaningful once
// construction completes.
type Tuple struct {
	layout  *Layout
	storage *storage.Storage
	order   wire.ByteOrder
	signed  wire.SignedMode
}

// New allocates a zero-valued Tuple over the given layout.
func New(layout *Layout, order wire.ByteOrder, signed wire.SignedMode) *Tuple {
	return &Tuple{
		layout:  layout,
		storage: storage.New(make([]byte, layout.size), order, signed),
		order:   order,
		signed:  signed,
	}
}

// Layout returns the tuple's field layout.
func (tp *Tuple) Layout() *Layout { return tp.layout }

// Bytes exposes the tuple's packed encoding for streaming I/O.
func (tp *Tuple) Bytes() []byte { return tp.storage.Bytes() }

// Get decodes field i into a fresh reflect.Value of its declared type.
func (tp *Tuple) Get(i int) reflect.Value {
	t := tp.layout.types[i]
	v := reflect.New(t).Elem()
	off := tp.layout.offsets[i]
	wire.DecodeValue(v, tp.order, tp.signed, tp.storage.Bytes()[off:])
	return v
}

// Set encodes value into field i's storage range. value's type must match
// the layout's declared type for i.
func (tp *Tuple) Set(i int, value reflect.Value) {
	t := tp.layout.types[i]
	if value.Type() != t {
		panic(fmt.Sprintf("tuple: field %d has type %s, got %s", i, t, value.Type()))
	}
	off := tp.layout.offsets[i]
	wire.EncodeValue(value, tp.order, tp.signed, tp.storage.Bytes()[off:])
}

// Invoke expands the tuple's fields as positional arguments to f and
// returns f's results. f's parameter types must match the layout's
// declared types in order; this is exactly how an action applies the
// user function to freshly decoded arguments.
func (tp *Tuple) Invoke(f reflect.Value) []reflect.Value {
	args := make([]reflect.Value, tp.layout.Len())
	for i := range args {
		args[i] = tp.Get(i)
	}
	return f.Call(args)
}
