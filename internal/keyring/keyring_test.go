package keyring

import (
	"reflect"
	"testing"

	"github.com/danmuck/wirecall/internal/wire"
)

func TestIndexWidth(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{1, 1},
		{256, 1},
		{257, 2},
		{65536, 2},
		{65537, 4},
		{300, 2},
	}
	for _, tc := range cases {
		sigs := make([]Signature, tc.n)
		k := New(wire.LittleEndian, wire.TwosComplement, sigs...)
		if got := k.IndexWidth(); got != tc.want {
			t.Errorf("IndexWidth(n=%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	k := New(wire.BigEndian, wire.TwosComplement, make([]Signature, 300)...)
	buf := make([]byte, k.IndexWidth())
	k.WriteIndex(299, buf)
	if got := k.ReadIndex(buf); got != 299 {
		t.Fatalf("index round trip = %d, want 299", got)
	}
}

func TestKey1SignatureMismatchPanics(t *testing.T) {
	k := New(wire.LittleEndian, wire.TwosComplement,
		Signature{Args: []reflect.Type{TypeOf[uint16]()}, Ret: TypeOf[uint16]()},
	)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on signature mismatch")
		}
	}()
	NewKey1[uint8, uint16](k, 0)
}

func TestKey2RoundTripPayload(t *testing.T) {
	k := New(wire.LittleEndian, wire.TwosComplement,
		Signature{Args: []reflect.Type{TypeOf[uint16](), TypeOf[uint16]()}, Ret: TypeOf[uint16]()},
	)
	key := NewKey2[uint16, uint16, uint16](k, 0)
	req := key.Call(2, 3)
	want := []byte{0x00, 0x02, 0x00, 0x03, 0x00}
	if string(req.Bytes()) != string(want) {
		t.Fatalf("payload = %v, want %v", req.Bytes(), want)
	}
}

func TestKey0VoidRoundTripPayload(t *testing.T) {
	k := New(wire.LittleEndian, wire.TwosComplement, Signature{})
	key := NewKey0Void(k, 0)
	req := key.Call()
	if len(req.Bytes()) != 1 || req.Bytes()[0] != 0x00 {
		t.Fatalf("payload = %v, want [0x00]", req.Bytes())
	}
}
