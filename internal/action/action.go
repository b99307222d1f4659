// Package action implements the server-side type-erased function
// wrapper (4.F): given a byte getter and a byte putter, an Action decodes
// arguments, invokes the bound function, and encodes the return value.
//
// Two flavors share the Action interface. OwningAction erases an
// arbitrary callable behind reflect.Value and a tuple.Layout; it supports
// closures, mutable captures, and array-typed arguments/returns, at the
// cost of reflect.Value.Call's unavoidable allocation per invocation. The
// WeakActionN/WeakActionNVoid families (N=0..3) are pure generics over
// scalar types, holding a plain Go function value and staging arguments
// and return values in fixed on-stack byte arrays — the dispatch path
// through them allocates nothing, matching the source's no-storage /
// static_storage_duration restriction exactly. There is no single generic
// type bridging both: Go's lack of variadic and const generics means the
// arity-parameterized, heap-free family and the arbitrary-arity,
// reflect-driven family cannot be unified without losing one property or
// the other, so the source's "two variants" becomes eight concrete types
// here instead of one flag.
package action

import (
	"fmt"
	"reflect"

	"github.com/danmuck/wirecall/internal/ioadapter"
	"github.com/danmuck/wirecall/internal/keyring"
	"github.com/danmuck/wirecall/internal/wire"
	"github.com/danmuck/wirecall/internal/wire/tuple"
)

// Action is the server-side capability every dispatcher slot holds:
// decode arguments, run the function, encode the result.
type Action interface {
	// Signature is the action's bound function signature.
	Signature() keyring.Signature
	// InputSize is the number of bytes Invoke reads from its getter.
	InputSize() int
	// OutputSize is the number of bytes Invoke writes to its putter.
	OutputSize() int
	// Invoke decodes exactly InputSize() bytes from get, applies the
	// bound function, and if OutputSize() > 0 writes exactly that many
	// bytes to put.
	Invoke(get ioadapter.Getter, put ioadapter.Putter)
}

// OwningAction erases fn behind reflect.Value. Its signature is taken from
// fn's reflect.Type; dispatcher.New and Dispatcher.Replace compare it with
// the keyring and panic on a mismatch, never at dispatch.
type OwningAction struct {
	fn     reflect.Value
	sig    keyring.Signature
	order  wire.ByteOrder
	signed wire.SignedMode
	layout *tuple.Layout
}

// NewOwning binds fn under the given codec configuration. fn must be a
// function value with at most one return value; its parameter and return
// types become the action's signature.
func NewOwning(fn any, order wire.ByteOrder, signed wire.SignedMode) *OwningAction {
	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		panic(fmt.Sprintf("action: NewOwning requires a function, got %s", t))
	}
	sig := keyring.Signature{}
	for i := 0; i < t.NumIn(); i++ {
		sig.Args = append(sig.Args, t.In(i))
	}
	switch t.NumOut() {
	case 0:
	case 1:
		sig.Ret = t.Out(0)
	default:
		panic(fmt.Sprintf("action: NewOwning requires at most one return value, got %d", t.NumOut()))
	}
	return &OwningAction{
		fn:     v,
		sig:    sig,
		order:  order,
		signed: signed,
		layout: tuple.NewLayout(sig.Args...),
	}
}

func (a *OwningAction) Signature() keyring.Signature { return a.sig }
func (a *OwningAction) InputSize() int               { return a.sig.InputSize() }
func (a *OwningAction) OutputSize() int              { return a.sig.OutputSize() }

func (a *OwningAction) Invoke(get ioadapter.Getter, put ioadapter.Putter) {
	args := tuple.New(a.layout, a.order, a.signed)
	buf := args.Bytes()
	for i := range buf {
		buf[i] = get()
	}
	results := args.Invoke(a.fn)
	if a.sig.Ret == nil {
		return
	}
	out := make([]byte, wire.SizeOfValue(a.sig.Ret))
	wire.EncodeValue(results[0], a.order, a.signed, out)
	ioadapter.WriteValue(put, out)
}

// readScalar pulls exactly size(T) bytes from get into a fixed on-stack
// array, never the heap, and decodes them as T.
func readScalar[T wire.Scalar](get ioadapter.Getter, order wire.ByteOrder, signed wire.SignedMode) T {
	var tmp [8]byte
	n := wire.SizeOf[T]()
	for i := 0; i < n; i++ {
		tmp[i] = get()
	}
	return wire.ReadAs[T](tmp[:n], order, signed)
}

// writeScalar is readScalar's inverse: encodes value into a fixed
// on-stack array and streams exactly size(T) bytes to put.
func writeScalar[T wire.Scalar](value T, put ioadapter.Putter, order wire.ByteOrder, signed wire.SignedMode) {
	var tmp [8]byte
	n := wire.SizeOf[T]()
	wire.WriteAs(value, order, signed, tmp[:n])
	for i := 0; i < n; i++ {
		put(tmp[i])
	}
}

func sig0[R wire.Scalar]() keyring.Signature {
	return keyring.Signature{Ret: keyring.TypeOf[R]()}
}

func sig0Void() keyring.Signature { return keyring.Signature{} }

func sig1[A1, R wire.Scalar]() keyring.Signature {
	return keyring.Signature{Args: []reflect.Type{keyring.TypeOf[A1]()}, Ret: keyring.TypeOf[R]()}
}

func sig1Void[A1 wire.Scalar]() keyring.Signature {
	return keyring.Signature{Args: []reflect.Type{keyring.TypeOf[A1]()}}
}

func sig2[A1, A2, R wire.Scalar]() keyring.Signature {
	return keyring.Signature{
		Args: []reflect.Type{keyring.TypeOf[A1](), keyring.TypeOf[A2]()},
		Ret:  keyring.TypeOf[R](),
	}
}

func sig2Void[A1, A2 wire.Scalar]() keyring.Signature {
	return keyring.Signature{Args: []reflect.Type{keyring.TypeOf[A1](), keyring.TypeOf[A2]()}}
}

func sig3[A1, A2, A3, R wire.Scalar]() keyring.Signature {
	return keyring.Signature{
		Args: []reflect.Type{keyring.TypeOf[A1](), keyring.TypeOf[A2](), keyring.TypeOf[A3]()},
		Ret:  keyring.TypeOf[R](),
	}
}

func sig3Void[A1, A2, A3 wire.Scalar]() keyring.Signature {
	return keyring.Signature{Args: []reflect.Type{keyring.TypeOf[A1](), keyring.TypeOf[A2](), keyring.TypeOf[A3]()}}
}
