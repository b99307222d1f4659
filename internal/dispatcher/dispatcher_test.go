package dispatcher

import (
	"testing"

	"github.com/danmuck/wirecall/internal/action"
	"github.com/danmuck/wirecall/internal/ioadapter"
	"github.com/danmuck/wirecall/internal/keyring"
	"github.com/danmuck/wirecall/internal/wire"
)

func addDispatcher() *Dispatcher {
	add := action.NewWeakAction2[uint16, uint16, uint16](func(a, b uint16) uint16 { return a + b }, wire.LittleEndian, wire.TwosComplement)
	k := keyring.New(wire.LittleEndian, wire.TwosComplement, add.Signature())
	return New(k, add)
}

func TestDispatchConservation(t *testing.T) {
	d := addDispatcher()
	in := []byte{0x00, 0x02, 0x00, 0x03, 0x00}
	get := ioadapter.SliceGetter(in)
	var out []byte
	put := ioadapter.SlicePutter(&out)
	idx := d.Dispatch(get, put)
	if idx != 0 {
		t.Fatalf("idx = %d, want 0", idx)
	}
	if string(out) != string([]byte{0x05, 0x00}) {
		t.Fatalf("out = %v, want [5 0]", out)
	}
}

func TestDispatchOutOfRange(t *testing.T) {
	d := addDispatcher()
	in := []byte{0x01, 0x00, 0x00, 0x00, 0x00}
	get := ioadapter.SliceGetter(in)
	var out []byte
	put := ioadapter.SlicePutter(&out)
	idx := d.Dispatch(get, put)
	if idx != 1 {
		t.Fatalf("idx = %d, want 1", idx)
	}
	if len(out) != 0 {
		t.Fatalf("out-of-range dispatch must not invoke an action, got %v", out)
	}
}

func TestReplaceRejectsMismatchedSignature(t *testing.T) {
	d := addDispatcher()
	bad := action.NewWeakAction1Void[uint8](func(uint8) {}, wire.LittleEndian, wire.TwosComplement)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched Replace")
		}
	}()
	d.Replace(0, bad)
}

func TestReplaceAcceptsMatchingSignature(t *testing.T) {
	d := addDispatcher()
	mul := action.NewWeakAction2[uint16, uint16, uint16](func(a, b uint16) uint16 { return a * b }, wire.LittleEndian, wire.TwosComplement)
	d.Replace(0, mul)
	get := ioadapter.SliceGetter([]byte{0x00, 0x02, 0x00, 0x03, 0x00})
	var out []byte
	put := ioadapter.SlicePutter(&out)
	d.Dispatch(get, put)
	if string(out) != string([]byte{0x06, 0x00}) {
		t.Fatalf("out = %v, want [6 0]", out)
	}
}
