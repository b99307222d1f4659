package buffered

import (
	"testing"

	"github.com/danmuck/wirecall/internal/action"
	"github.com/danmuck/wirecall/internal/dispatcher"
	"github.com/danmuck/wirecall/internal/keyring"
	"github.com/danmuck/wirecall/internal/testutil/testlog"
	"github.com/danmuck/wirecall/internal/wire"
)

func feed(bd *Dispatcher, bytes []byte) PacketStatus {
	var status PacketStatus
	for _, b := range bytes {
		status = bd.Put(b)
	}
	return status
}

func drain(bd *Dispatcher) []byte {
	var out []byte
	for bd.IsLoaded() {
		out = append(out, bd.Get())
	}
	return out
}

// S1/S2: add(u16,u16)->u16 at index 0 of a one-action keyring, index_type u8.
func addKeyringDispatcher(order wire.ByteOrder) *dispatcher.Dispatcher {
	add := action.NewWeakAction2[uint16, uint16, uint16](func(a, b uint16) uint16 { return a + b }, order, wire.TwosComplement)
	k := keyring.New(order, wire.TwosComplement, add.Signature())
	return dispatcher.New(k, add)
}

func TestS1LittleEndianAdd(t *testing.T) {
	testlog.Start(t)
	bd := NewDouble(addKeyringDispatcher(wire.LittleEndian))
	status := feed(bd, []byte{0x00, 0x02, 0x00, 0x03, 0x00})
	if status != Resolved {
		t.Fatalf("status = %v, want RESOLVED", status)
	}
	got := drain(bd)
	want := []byte{0x05, 0x00}
	if string(got) != string(want) {
		t.Fatalf("response = %v, want %v", got, want)
	}
}

func TestS2BigEndianAdd(t *testing.T) {
	testlog.Start(t)
	bd := NewDouble(addKeyringDispatcher(wire.BigEndian))
	status := feed(bd, []byte{0x00, 0x00, 0x02, 0x00, 0x03})
	if status != Resolved {
		t.Fatalf("status = %v, want RESOLVED", status)
	}
	got := drain(bd)
	want := []byte{0x00, 0x05}
	if string(got) != string(want) {
		t.Fatalf("response = %v, want %v", got, want)
	}
}

// noopKeyringDispatcher builds a keyring of n identical noop() -> void
// actions, used for the wide-index and void-response scenarios where the
// specific function bound at each slot doesn't matter.
func noopKeyringDispatcher(n int) *dispatcher.Dispatcher {
	noop := action.NewWeakAction0Void(func() {})
	sigs := make([]keyring.Signature, n)
	actions := make([]action.Action, n)
	for i := range actions {
		sigs[i] = noop.Signature()
		actions[i] = noop
	}
	k := keyring.New(wire.LittleEndian, wire.TwosComplement, sigs...)
	return dispatcher.New(k, actions...)
}

// S3: 300-action keyring (index_type u16), request names index 300 (out of range).
func TestS3DroppedOutOfRangeWideIndex(t *testing.T) {
	testlog.Start(t)
	d := noopKeyringDispatcher(300)
	bd := NewDouble(d)
	status := feed(bd, []byte{0x2C, 0x01}) // 300 little-endian u16
	if status != Dropped {
		t.Fatalf("status = %v, want DROPPED", status)
	}
	if bd.IsLoaded() {
		t.Fatal("dropped packet must not stage any output")
	}
}

func TestS4NoopVoidAction(t *testing.T) {
	testlog.Start(t)
	d := noopKeyringDispatcher(10)
	bd := NewDouble(d)
	status := feed(bd, []byte{0x07})
	if status != Resolved {
		t.Fatalf("status = %v, want RESOLVED", status)
	}
	if bd.IsLoaded() {
		t.Fatal("void action must stage zero response bytes")
	}
}

func TestS5ArraySwap(t *testing.T) {
	testlog.Start(t)
	swap := action.NewOwning(func(in [4]uint8) [4]uint8 {
		return [4]uint8{in[3], in[2], in[1], in[0]}
	}, wire.LittleEndian, wire.TwosComplement)
	k := keyring.New(wire.LittleEndian, wire.TwosComplement, swap.Signature())
	d := dispatcher.New(k, swap)
	bd := NewDouble(d)
	status := feed(bd, []byte{0x00, 0x01, 0x02, 0x03, 0x04})
	if status != Resolved {
		t.Fatalf("status = %v, want RESOLVED", status)
	}
	got := drain(bd)
	want := []byte{0x04, 0x03, 0x02, 0x01}
	if string(got) != string(want) {
		t.Fatalf("response = %v, want %v", got, want)
	}
}

func TestS7SingleBufferReuse(t *testing.T) {
	testlog.Start(t)
	id := action.NewWeakAction1[uint8, uint8](func(a uint8) uint8 { return a }, wire.LittleEndian, wire.TwosComplement)
	k := keyring.New(wire.LittleEndian, wire.TwosComplement, id.Signature())
	d := dispatcher.New(k, id)
	bd := NewSingle(d)

	if status := feed(bd, []byte{0x00, 0x2A}); status != Resolved {
		t.Fatalf("first request status = %v, want RESOLVED", status)
	}
	if got := drain(bd); string(got) != string([]byte{0x2A}) {
		t.Fatalf("first response = %v, want [0x2A]", got)
	}

	if status := feed(bd, []byte{0x00, 0x17}); status != Resolved {
		t.Fatalf("second request status = %v, want RESOLVED", status)
	}
	if got := drain(bd); string(got) != string([]byte{0x17}) {
		t.Fatalf("second response = %v, want [0x17]", got)
	}
}

func TestP4DroppedLeavesOutputUntouched(t *testing.T) {
	testlog.Start(t)
	d := noopKeyringDispatcher(1)
	bd := NewDouble(d)
	status := bd.Put(0x01) // out of range: only index 0 exists
	if status != Dropped {
		t.Fatalf("status = %v, want DROPPED", status)
	}
	if bd.IsLoaded() {
		t.Fatal("dropped dispatcher must not have staged output")
	}
	for _, b := range bd.obuf {
		if b != 0 {
			t.Fatalf("dropped dispatcher touched its output buffer: %v", bd.obuf)
		}
	}
}

func TestReplyExactSizeMatch(t *testing.T) {
	testlog.Start(t)
	source := action.NewWeakAction0[uint16](func() uint16 { return 0x0102 }, wire.LittleEndian, wire.TwosComplement)
	sourceKeyring := keyring.New(wire.LittleEndian, wire.TwosComplement, source.Signature())
	sourceDispatcher := dispatcher.New(sourceKeyring, source)
	bd := NewDouble(sourceDispatcher)
	if status := feed(bd, []byte{0x00}); status != Resolved {
		t.Fatalf("status = %v, want RESOLVED", status)
	}

	sink := action.NewOwning(func(buf [2]uint8) { _ = buf }, wire.LittleEndian, wire.TwosComplement)
	sinkKeyring := keyring.New(wire.LittleEndian, wire.TwosComplement, sink.Signature())
	relay := keyring.NewRelayArgKey(sinkKeyring, 0, 2)

	var forwarded []byte
	ok := bd.Reply(func(b byte) { forwarded = append(forwarded, b) }, relay)
	if !ok {
		t.Fatal("Reply should succeed on an exact-size match")
	}
	want := []byte{0x00, 0x02, 0x01}
	if string(forwarded) != string(want) {
		t.Fatalf("forwarded = %v, want %v", forwarded, want)
	}
	if bd.IsLoaded() {
		t.Fatal("Reply must drain the local output buffer")
	}
}

func TestReplyFailsOnSizeMismatch(t *testing.T) {
	testlog.Start(t)
	source := action.NewWeakAction0[uint16](func() uint16 { return 1 }, wire.LittleEndian, wire.TwosComplement)
	sourceKeyring := keyring.New(wire.LittleEndian, wire.TwosComplement, source.Signature())
	bd := NewDouble(dispatcher.New(sourceKeyring, source))
	feed(bd, []byte{0x00})

	sink := action.NewOwning(func(buf [4]uint8) { _ = buf }, wire.LittleEndian, wire.TwosComplement)
	sinkKeyring := keyring.New(wire.LittleEndian, wire.TwosComplement, sink.Signature())
	relay := keyring.NewRelayArgKey(sinkKeyring, 0, 4)

	ok := bd.Reply(func(byte) {}, relay)
	if ok {
		t.Fatal("Reply must fail when staged size differs from the target argument size")
	}
	if !bd.IsLoaded() {
		t.Fatal("a failed Reply must not drain the output buffer")
	}
}

func TestReplyFailsOnPartialDrain(t *testing.T) {
	testlog.Start(t)
	source := action.NewWeakAction0[uint16](func() uint16 { return 1 }, wire.LittleEndian, wire.TwosComplement)
	sourceKeyring := keyring.New(wire.LittleEndian, wire.TwosComplement, source.Signature())
	bd := NewDouble(dispatcher.New(sourceKeyring, source))
	feed(bd, []byte{0x00})
	bd.Get() // partially drain

	sink := action.NewOwning(func(buf [2]uint8) { _ = buf }, wire.LittleEndian, wire.TwosComplement)
	sinkKeyring := keyring.New(wire.LittleEndian, wire.TwosComplement, sink.Signature())
	relay := keyring.NewRelayArgKey(sinkKeyring, 0, 2)

	if bd.Reply(func(byte) {}, relay) {
		t.Fatal("Reply must fail once the output buffer has been partially drained")
	}
}
