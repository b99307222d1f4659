package keyring

import (
	"reflect"
	"strconv"
)

var byteType = reflect.TypeOf(uint8(0))

// RelayArgKey describes a key whose single argument is a fixed-size byte
// buffer — the shape the buffered dispatcher's Reply operation forwards a
// staged response into, as a new request against a different dispatcher.
// This is a distinct, narrower type from Key1 rather than a special case
// of it: Key1 is generic over any wire.Scalar argument type, but Go's
// generics have no length-parameterized array type, so a byte-buffer
// argument of runtime-declared size cannot be expressed as a type
// parameter. RelayArgKey instead validates the argument shape (a
// [size]uint8 array) against the keyring at construction time using
// reflect.ArrayOf, the same way every other key validates its signature.
type RelayArgKey struct {
	index   int
	argSize int
	k       *Keyring
}

// NewRelayArgKey validates that k's action at index takes exactly one
// argument, a [argSize]uint8 array, and returns a RelayArgKey describing
// it. Panics on mismatch, consistent with every other construction-time
// signature check in this package.
func NewRelayArgKey(k *Keyring, index int, argSize int) RelayArgKey {
	want := Signature{Args: []reflect.Type{reflect.ArrayOf(argSize, byteType)}}
	got := k.Signature(index)
	if len(got.Args) != 1 || got.Args[0] != want.Args[0] {
		panic("keyring: relay target does not take a single [" + strconv.Itoa(argSize) + "]byte argument")
	}
	return RelayArgKey{index: index, argSize: argSize, k: k}
}

// ArgSize is the byte-buffer argument's exact footprint.
func (rk RelayArgKey) ArgSize() int { return rk.argSize }

// Build assembles the full wire request (index followed by payload) for
// forwarding payload, which must have length ArgSize().
func (rk RelayArgKey) Build(payload []byte) []byte {
	out := make([]byte, rk.k.IndexWidth())
	rk.k.WriteIndex(uint64(rk.index), out)
	return append(out, payload...)
}
