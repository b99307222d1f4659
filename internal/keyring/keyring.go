// Package keyring implements the compile-time action table declaration
// (4.E): an ordered list of function signatures together with a fixed
// (ByteOrder, SignedMode), and the index-type arithmetic every layer above
// it depends on.
//
// "Compile-time" in the source means the keyring's shape is a C++ type
// parameter pack. Go has no variadic generics, so a Keyring here is an
// ordinary runtime value built once at program startup (typically in an
// init or a package var) and then treated as immutable for the rest of
// the program's life — the invariant the source enforces statically is
// enforced here by never mutating a Keyring's signature list after
// construction, and by every downstream construction-time check in
// internal/keyring and internal/dispatcher panicking rather than accepting
// a mismatch silently.
package keyring

import (
	"fmt"
	"reflect"

	"github.com/danmuck/wirecall/internal/wire"
)

// Signature is a function signature: its argument types in declared
// order and its return type, or a nil Ret for a void-returning function.
type Signature struct {
	Args []reflect.Type
	Ret  reflect.Type
}

// InputSize is the total encoded size of the arguments.
func (s Signature) InputSize() int {
	total := 0
	for _, t := range s.Args {
		total += wire.SizeOfValue(t)
	}
	return total
}

// OutputSize is the encoded size of the return value, or 0 if void.
func (s Signature) OutputSize() int {
	if s.Ret == nil {
		return 0
	}
	return wire.SizeOfValue(s.Ret)
}

// Equal reports whether s and other declare the same argument types in
// the same order and the same return type (or both void).
func (s Signature) Equal(other Signature) bool {
	if len(s.Args) != len(other.Args) {
		return false
	}
	for i := range s.Args {
		if s.Args[i] != other.Args[i] {
			return false
		}
	}
	return s.Ret == other.Ret
}

func (s Signature) String() string {
	args := make([]string, len(s.Args))
	for i, a := range s.Args {
		args[i] = a.String()
	}
	ret := "void"
	if s.Ret != nil {
		ret = s.Ret.String()
	}
	return fmt.Sprintf("(%v) -> %s", args, ret)
}

// Keyring is the ordered, fixed signature list plus the codec
// configuration shared by every key and action derived from it.
type Keyring struct {
	order  wire.ByteOrder
	signed wire.SignedMode
	sigs   []Signature
}

// New declares a keyring of the given signatures, in index order, under
// the given codec configuration. The indices are permanent: sigs[i]
// becomes index i for the keyring's lifetime.
func New(order wire.ByteOrder, signed wire.SignedMode, sigs ...Signature) *Keyring {
	return &Keyring{order: order, signed: signed, sigs: append([]Signature{}, sigs...)}
}

// Size is N, the number of declared actions.
func (k *Keyring) Size() int { return len(k.sigs) }

// ByteOrder is the keyring's declared byte order.
func (k *Keyring) ByteOrder() wire.ByteOrder { return k.order }

// SignedMode is the keyring's declared signed-integer representation.
func (k *Keyring) SignedMode() wire.SignedMode { return k.signed }

// Signature returns the declared signature at index i. Panics (via slice
// index) if i is out of range, matching 4.G's "unchecked at this layer"
// contract for direct table access; the dispatcher's get_index/dispatch
// path is the one place out-of-range indices are handled gracefully.
func (k *Keyring) Signature(i int) Signature { return k.sigs[i] }

// IndexWidth is sizeof(index_type): the smallest power-of-two byte width
// wide enough to hold every index 0..Size()-1.
func (k *Keyring) IndexWidth() int {
	n := k.Size()
	switch {
	case n <= 1<<8:
		return 1
	case n <= 1<<16:
		return 2
	default:
		return 4
	}
}

// WriteIndex encodes idx at its keyring's declared index width and byte
// order into out, which must have length >= IndexWidth().
func (k *Keyring) WriteIndex(idx uint64, out []byte) {
	switch k.IndexWidth() {
	case 1:
		wire.WriteAs(uint8(idx), k.order, k.signed, out)
	case 2:
		wire.WriteAs(uint16(idx), k.order, k.signed, out)
	default:
		wire.WriteAs(uint32(idx), k.order, k.signed, out)
	}
}

// ReadIndex decodes an index from in per the keyring's declared width and
// byte order.
func (k *Keyring) ReadIndex(in []byte) uint64 {
	switch k.IndexWidth() {
	case 1:
		return uint64(wire.ReadAs[uint8](in, k.order, k.signed))
	case 2:
		return uint64(wire.ReadAs[uint16](in, k.order, k.signed))
	default:
		return uint64(wire.ReadAs[uint32](in, k.order, k.signed))
	}
}

// TypeOf is a small convenience used at every generic key/action
// construction site to obtain a Signature's reflect.Type for a type
// parameter T without the caller needing to import reflect itself.
func TypeOf[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}
