package keyring

import (
	"fmt"
	"reflect"

	"github.com/danmuck/wirecall/internal/wire"
)

// Request is the payload a key produces for one invocation: the encoded
// index followed by the encoded arguments, ready to stream to a Putter,
// plus enough information to decode a matching response.
type Request[R wire.Scalar] struct {
	payload []byte
	order   wire.ByteOrder
	signed  wire.SignedMode
}

// PayloadLength is size(index_type) + sum of argument sizes.
func (r Request[R]) PayloadLength() int { return len(r.payload) }

// Bytes is the request's wire encoding, index first then arguments.
func (r Request[R]) Bytes() []byte { return r.payload }

// Decode interprets in (a response payload of size(R) bytes) as R.
func (r Request[R]) Decode(in []byte) R {
	return wire.ReadAs[R](in, r.order, r.signed)
}

// RequestVoid is Request's void-return counterpart: it carries no decode
// step because the dispatcher emits no response bytes for a void action.
type RequestVoid struct {
	payload []byte
}

func (r RequestVoid) PayloadLength() int { return len(r.payload) }
func (r RequestVoid) Bytes() []byte      { return r.payload }

// checkSignature panics if want does not equal the declared signature at
// index i in k. This is the construction-time analogue of the source's
// static_assert signature check (P5): Go generics cannot express a
// variadic, compile-time-checked parameter pack, so the check is made
// eager instead of literally compile-time, and it runs once, at key
// construction, never on the hot dispatch path.
func checkSignature(k *Keyring, i int, want Signature) {
	got := k.Signature(i)
	if !got.Equal(want) {
		panic(fmt.Sprintf("keyring: index %d has signature %s, key declares %s", i, got, want))
	}
}

func buildPayload(k *Keyring, index int, argBytes ...[]byte) []byte {
	out := make([]byte, k.IndexWidth())
	k.WriteIndex(uint64(index), out)
	for _, b := range argBytes {
		out = append(out, b...)
	}
	return out
}

func encodeArg[T wire.Scalar](k *Keyring, value T) []byte {
	buf := make([]byte, wire.SizeOf[T]())
	wire.WriteAs(value, k.order, k.signed, buf)
	return buf
}

// Key0 is a zero-argument, value-returning key for action index.
type Key0[R wire.Scalar] struct {
	index int
	k     *Keyring
}

func NewKey0[R wire.Scalar](k *Keyring, index int) Key0[R] {
	checkSignature(k, index, Signature{Ret: TypeOf[R]()})
	return Key0[R]{index: index, k: k}
}

func (key Key0[R]) Call() Request[R] {
	return Request[R]{payload: buildPayload(key.k, key.index), order: key.k.order, signed: key.k.signed}
}

// Key0Void is Key0's void-returning counterpart.
type Key0Void struct {
	index int
	k     *Keyring
}

func NewKey0Void(k *Keyring, index int) Key0Void {
	checkSignature(k, index, Signature{})
	return Key0Void{index: index, k: k}
}

func (key Key0Void) Call() RequestVoid {
	return RequestVoid{payload: buildPayload(key.k, key.index)}
}

// Key1 is a one-argument, value-returning key.
type Key1[A1 wire.Scalar, R wire.Scalar] struct {
	index int
	k     *Keyring
}

func NewKey1[A1 wire.Scalar, R wire.Scalar](k *Keyring, index int) Key1[A1, R] {
	checkSignature(k, index, Signature{Args: []reflect.Type{TypeOf[A1]()}, Ret: TypeOf[R]()})
	return Key1[A1, R]{index: index, k: k}
}

func (key Key1[A1, R]) Call(a1 A1) Request[R] {
	payload := buildPayload(key.k, key.index, encodeArg(key.k, a1))
	return Request[R]{payload: payload, order: key.k.order, signed: key.k.signed}
}

// Key1Void is Key1's void-returning counterpart.
type Key1Void[A1 wire.Scalar] struct {
	index int
	k     *Keyring
}

func NewKey1Void[A1 wire.Scalar](k *Keyring, index int) Key1Void[A1] {
	checkSignature(k, index, Signature{Args: []reflect.Type{TypeOf[A1]()}})
	return Key1Void[A1]{index: index, k: k}
}

func (key Key1Void[A1]) Call(a1 A1) RequestVoid {
	return RequestVoid{payload: buildPayload(key.k, key.index, encodeArg(key.k, a1))}
}

// Key2 is a two-argument, value-returning key.
type Key2[A1, A2 wire.Scalar, R wire.Scalar] struct {
	index int
	k     *Keyring
}

func NewKey2[A1, A2 wire.Scalar, R wire.Scalar](k *Keyring, index int) Key2[A1, A2, R] {
	checkSignature(k, index, Signature{Args: []reflect.Type{TypeOf[A1](), TypeOf[A2]()}, Ret: TypeOf[R]()})
	return Key2[A1, A2, R]{index: index, k: k}
}

func (key Key2[A1, A2, R]) Call(a1 A1, a2 A2) Request[R] {
	payload := buildPayload(key.k, key.index, encodeArg(key.k, a1), encodeArg(key.k, a2))
	return Request[R]{payload: payload, order: key.k.order, signed: key.k.signed}
}

// Key2Void is Key2's void-returning counterpart.
type Key2Void[A1, A2 wire.Scalar] struct {
	index int
	k     *Keyring
}

func NewKey2Void[A1, A2 wire.Scalar](k *Keyring, index int) Key2Void[A1, A2] {
	checkSignature(k, index, Signature{Args: []reflect.Type{TypeOf[A1](), TypeOf[A2]()}})
	return Key2Void[A1, A2]{index: index, k: k}
}

func (key Key2Void[A1, A2]) Call(a1 A1, a2 A2) RequestVoid {
	return RequestVoid{payload: buildPayload(key.k, key.index, encodeArg(key.k, a1), encodeArg(key.k, a2))}
}

// Key3 is a three-argument, value-returning key.
type Key3[A1, A2, A3 wire.Scalar, R wire.Scalar] struct {
	index int
	k     *Keyring
}

func NewKey3[A1, A2, A3 wire.Scalar, R wire.Scalar](k *Keyring, index int) Key3[A1, A2, A3, R] {
	checkSignature(k, index, Signature{Args: []reflect.Type{TypeOf[A1](), TypeOf[A2](), TypeOf[A3]()}, Ret: TypeOf[R]()})
	return Key3[A1, A2, A3, R]{index: index, k: k}
}

func (key Key3[A1, A2, A3, R]) Call(a1 A1, a2 A2, a3 A3) Request[R] {
	payload := buildPayload(key.k, key.index, encodeArg(key.k, a1), encodeArg(key.k, a2), encodeArg(key.k, a3))
	return Request[R]{payload: payload, order: key.k.order, signed: key.k.signed}
}

// Key3Void is Key3's void-returning counterpart.
type Key3Void[A1, A2, A3 wire.Scalar] struct {
	index int
	k     *Keyring
}

func NewKey3Void[A1, A2, A3 wire.Scalar](k *Keyring, index int) Key3Void[A1, A2, A3] {
	checkSignature(k, index, Signature{Args: []reflect.Type{TypeOf[A1](), TypeOf[A2](), TypeOf[A3]()}})
	return Key3Void[A1, A2, A3]{index: index, k: k}
}

func (key Key3Void[A1, A2, A3]) Call(a1 A1, a2 A2, a3 A3) RequestVoid {
	payload := buildPayload(key.k, key.index, encodeArg(key.k, a1), encodeArg(key.k, a2), encodeArg(key.k, a3))
	return RequestVoid{payload: payload}
}
