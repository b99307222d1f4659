// Package storage implements the unaligned storage component (4.B): a
// packed byte buffer with offset-indexed typed read/write, routed through
// the scalar codec in internal/wire. There is no bounds check at this
// layer, matching the source's "offsets are compile-time provable for
// tuple usage" contract; callers that don't compute their own offsets get
// a slice-index panic instead of a silent corruption, which is the
// closest honest Go analogue to an unchecked access.
package storage

import "github.com/danmuck/wirecall/internal/wire"

// Storage is a fixed-size packed buffer shared by every field of a tuple.
type Storage struct {
	bytes  []byte
	order  wire.ByteOrder
	signed wire.SignedMode
}

// New wraps buf (not copied) as a Storage using the given codec
// configuration. len(buf) is the storage's compile-time size.
func New(buf []byte, order wire.ByteOrder, signed wire.SignedMode) *Storage {
	return &Storage{bytes: buf, order: order, signed: signed}
}

// Bytes exposes the backing buffer for streaming (byte-wise iteration) use.
func (s *Storage) Bytes() []byte { return s.bytes }

// InterpretAs decodes a T at offset.
func InterpretAs[T wire.Scalar](s *Storage, offset int) T {
	return wire.ReadAs[T](s.bytes[offset:], s.order, s.signed)
}

// Write encodes value at offset.
func Write[T wire.Scalar](s *Storage, value T, offset int) {
	wire.WriteAs(value, s.order, s.signed, s.bytes[offset:])
}
