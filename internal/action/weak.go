package action

import (
	"github.com/danmuck/wirecall/internal/ioadapter"
	"github.com/danmuck/wirecall/internal/keyring"
	"github.com/danmuck/wirecall/internal/wire"
)

// WeakAction0 binds a statically known, capture-free zero-argument
// function of static lifetime. No heap allocation occurs on any call to
// Invoke, including the first: fn is a plain function value, not a
// closure over dynamically allocated state.
type WeakAction0[R wire.Scalar] struct {
	fn     func() R
	order  wire.ByteOrder
	signed wire.SignedMode
}

func NewWeakAction0[R wire.Scalar](fn func() R, order wire.ByteOrder, signed wire.SignedMode) WeakAction0[R] {
	return WeakAction0[R]{fn: fn, order: order, signed: signed}
}

func (a WeakAction0[R]) Signature() keyring.Signature { return sig0[R]() }
func (a WeakAction0[R]) InputSize() int                { return 0 }
func (a WeakAction0[R]) OutputSize() int               { return wire.SizeOf[R]() }
func (a WeakAction0[R]) Invoke(get ioadapter.Getter, put ioadapter.Putter) {
	writeScalar(a.fn(), put, a.order, a.signed)
}

// WeakAction0Void is WeakAction0's void-returning counterpart.
type WeakAction0Void struct {
	fn func()
}

func NewWeakAction0Void(fn func()) WeakAction0Void { return WeakAction0Void{fn: fn} }

func (a WeakAction0Void) Signature() keyring.Signature { return sig0Void() }
func (a WeakAction0Void) InputSize() int                { return 0 }
func (a WeakAction0Void) OutputSize() int               { return 0 }
func (a WeakAction0Void) Invoke(get ioadapter.Getter, put ioadapter.Putter) {
	a.fn()
}

// WeakAction1 binds a one-argument, value-returning function.
type WeakAction1[A1, R wire.Scalar] struct {
	fn     func(A1) R
	order  wire.ByteOrder
	signed wire.SignedMode
}

func NewWeakAction1[A1, R wire.Scalar](fn func(A1) R, order wire.ByteOrder, signed wire.SignedMode) WeakAction1[A1, R] {
	return WeakAction1[A1, R]{fn: fn, order: order, signed: signed}
}

func (a WeakAction1[A1, R]) Signature() keyring.Signature { return sig1[A1, R]() }
func (a WeakAction1[A1, R]) InputSize() int                { return wire.SizeOf[A1]() }
func (a WeakAction1[A1, R]) OutputSize() int               { return wire.SizeOf[R]() }
func (a WeakAction1[A1, R]) Invoke(get ioadapter.Getter, put ioadapter.Putter) {
	a1 := readScalar[A1](get, a.order, a.signed)
	writeScalar(a.fn(a1), put, a.order, a.signed)
}

// WeakAction1Void is WeakAction1's void-returning counterpart.
type WeakAction1Void[A1 wire.Scalar] struct {
	fn     func(A1)
	order  wire.ByteOrder
	signed wire.SignedMode
}

func NewWeakAction1Void[A1 wire.Scalar](fn func(A1), order wire.ByteOrder, signed wire.SignedMode) WeakAction1Void[A1] {
	return WeakAction1Void[A1]{fn: fn, order: order, signed: signed}
}

func (a WeakAction1Void[A1]) Signature() keyring.Signature { return sig1Void[A1]() }
func (a WeakAction1Void[A1]) InputSize() int                { return wire.SizeOf[A1]() }
func (a WeakAction1Void[A1]) OutputSize() int               { return 0 }
func (a WeakAction1Void[A1]) Invoke(get ioadapter.Getter, put ioadapter.Putter) {
	a.fn(readScalar[A1](get, a.order, a.signed))
}

// WeakAction2 binds a two-argument, value-returning function.
type WeakAction2[A1, A2, R wire.Scalar] struct {
	fn     func(A1, A2) R
	order  wire.ByteOrder
	signed wire.SignedMode
}

func NewWeakAction2[A1, A2, R wire.Scalar](fn func(A1, A2) R, order wire.ByteOrder, signed wire.SignedMode) WeakAction2[A1, A2, R] {
	return WeakAction2[A1, A2, R]{fn: fn, order: order, signed: signed}
}

func (a WeakAction2[A1, A2, R]) Signature() keyring.Signature { return sig2[A1, A2, R]() }
func (a WeakAction2[A1, A2, R]) InputSize() int {
	return wire.SizeOf[A1]() + wire.SizeOf[A2]()
}
func (a WeakAction2[A1, A2, R]) OutputSize() int { return wire.SizeOf[R]() }
func (a WeakAction2[A1, A2, R]) Invoke(get ioadapter.Getter, put ioadapter.Putter) {
	a1 := readScalar[A1](get, a.order, a.signed)
	a2 := readScalar[A2](get, a.order, a.signed)
	writeScalar(a.fn(a1, a2), put, a.order, a.signed)
}

// WeakAction2Void is WeakAction2's void-returning counterpart.
type WeakAction2Void[A1, A2 wire.Scalar] struct {
	fn     func(A1, A2)
	order  wire.ByteOrder
	signed wire.SignedMode
}

func NewWeakAction2Void[A1, A2 wire.Scalar](fn func(A1, A2), order wire.ByteOrder, signed wire.SignedMode) WeakAction2Void[A1, A2] {
	return WeakAction2Void[A1, A2]{fn: fn, order: order, signed: signed}
}

func (a WeakAction2Void[A1, A2]) Signature() keyring.Signature { return sig2Void[A1, A2]() }
func (a WeakAction2Void[A1, A2]) InputSize() int {
	return wire.SizeOf[A1]() + wire.SizeOf[A2]()
}
func (a WeakAction2Void[A1, A2]) OutputSize() int { return 0 }
func (a WeakAction2Void[A1, A2]) Invoke(get ioadapter.Getter, put ioadapter.Putter) {
	a1 := readScalar[A1](get, a.order, a.signed)
	a2 := readScalar[A2](get, a.order, a.signed)
	a.fn(a1, a2)
}

// WeakAction3 binds a three-argument, value-returning function.
type WeakAction3[A1, A2, A3, R wire.Scalar] struct {
	fn     func(A1, A2, A3) R
	order  wire.ByteOrder
	signed wire.SignedMode
}

func NewWeakAction3[A1, A2, A3, R wire.Scalar](fn func(A1, A2, A3) R, order wire.ByteOrder, signed wire.SignedMode) WeakAction3[A1, A2, A3, R] {
	return WeakAction3[A1, A2, A3, R]{fn: fn, order: order, signed: signed}
}

func (a WeakAction3[A1, A2, A3, R]) Signature() keyring.Signature { return sig3[A1, A2, A3, R]() }
func (a WeakAction3[A1, A2, A3, R]) InputSize() int {
	return wire.SizeOf[A1]() + wire.SizeOf[A2]() + wire.SizeOf[A3]()
}
func (a WeakAction3[A1, A2, A3, R]) OutputSize() int { return wire.SizeOf[R]() }
func (a WeakAction3[A1, A2, A3, R]) Invoke(get ioadapter.Getter, put ioadapter.Putter) {
	a1 := readScalar[A1](get, a.order, a.signed)
	a2 := readScalar[A2](get, a.order, a.signed)
	a3 := readScalar[A3](get, a.order, a.signed)
	writeScalar(a.fn(a1, a2, a3), put, a.order, a.signed)
}

// WeakAction3Void is WeakAction3's void-returning counterpart.
type WeakAction3Void[A1, A2, A3 wire.Scalar] struct {
	fn     func(A1, A2, A3)
	order  wire.ByteOrder
	signed wire.SignedMode
}

func NewWeakAction3Void[A1, A2, A3 wire.Scalar](fn func(A1, A2, A3), order wire.ByteOrder, signed wire.SignedMode) WeakAction3Void[A1, A2, A3] {
	return WeakAction3Void[A1, A2, A3]{fn: fn, order: order, signed: signed}
}

func (a WeakAction3Void[A1, A2, A3]) Signature() keyring.Signature { return sig3Void[A1, A2, A3]() }
func (a WeakAction3Void[A1, A2, A3]) InputSize() int {
	return wire.SizeOf[A1]() + wire.SizeOf[A2]() + wire.SizeOf[A3]()
}
func (a WeakAction3Void[A1, A2, A3]) OutputSize() int { return 0 }
func (a WeakAction3Void[A1, A2, A3]) Invoke(get ioadapter.Getter, put ioadapter.Putter) {
	a1 := readScalar[A1](get, a.order, a.signed)
	a2 := readScalar[A2](get, a.order, a.signed)
	a3 := readScalar[A3](get, a.order, a.signed)
	a.fn(a1, a2, a3)
}
