package wire

import (
	"fmt"
	"reflect"
)

// SizeOfValue returns the on-wire footprint of v's type: the scalar width
// for an integer kind, or the element width times length for a fixed-size
// array, recursively. It is the reflect-based counterpart to SizeOf, used
// where the type is only known at runtime (the tuple and the owning
// action, which both work from a reflect.Type derived from a function
// signature rather than a compile-time type parameter).
func SizeOfValue(t reflect.Type) int {
	switch t.Kind() {
	case reflect.Uint8, reflect.Int8:
		return 1
	case reflect.Uint16, reflect.Int16:
		return 2
	case reflect.Uint32, reflect.Int32:
		return 4
	case reflect.Uint64, reflect.Int64:
		return 8
	case reflect.Array:
		return t.Len() * SizeOfValue(t.Elem())
	default:
		panic(fmt.Sprintf("wire: type %s is not serializable (only fixed-width integers and arrays thereof are)", t))
	}
}

// EncodeValue writes v's on-wire representation into out, which must have
// length >= SizeOfValue(v.Type()). Arrays are emitted element-wise in
// ascending index order, each per the scalar rules.
func EncodeValue(v reflect.Value, order ByteOrder, signed SignedMode, out []byte) {
	switch v.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := SizeOfValue(v.Type())
		putUint(v.Uint(), n, order, out)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := SizeOfValue(v.Type())
		pattern := signedPatternFrom(v.Int(), n, signed)
		putUint(pattern, n, order, out)
	case reflect.Array:
		elemSize := SizeOfValue(v.Type().Elem())
		for i := 0; i < v.Len(); i++ {
			EncodeValue(v.Index(i), order, signed, out[i*elemSize:])
		}
	default:
		panic(fmt.Sprintf("wire: value of kind %s is not serializable", v.Kind()))
	}
}

// DecodeValue reads out.Type()'s on-wire representation from in and
// stores it into out, which must be addressable (settable).
func DecodeValue(out reflect.Value, order ByteOrder, signed SignedMode, in []byte) {
	switch out.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := SizeOfValue(out.Type())
		out.SetUint(getUint(n, order, in))
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := SizeOfValue(out.Type())
		pattern := getUint(n, order, in)
		out.SetInt(patternToSigned(pattern, n, signed))
	case reflect.Array:
		elemSize := SizeOfValue(out.Type().Elem())
		for i := 0; i < out.Len(); i++ {
			DecodeValue(out.Index(i), order, signed, in[i*elemSize:])
		}
	default:
		panic(fmt.Sprintf("wire: value of kind %s is not serializable", out.Kind()))
	}
}
