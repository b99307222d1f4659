package bufsize

import (
	"testing"

	"github.com/danmuck/wirecall/internal/action"
	"github.com/danmuck/wirecall/internal/keyring"
	"github.com/danmuck/wirecall/internal/wire"
)

func TestNeededBuffers(t *testing.T) {
	add := action.NewWeakAction2[uint16, uint16, uint16](func(a, b uint16) uint16 { return a + b }, wire.LittleEndian, wire.TwosComplement)
	noop := action.NewWeakAction0Void(func() {})
	k := keyring.New(wire.LittleEndian, wire.TwosComplement, add.Signature(), noop.Signature())

	if got := MaxInputSize(k); got != 4 {
		t.Errorf("MaxInputSize = %d, want 4", got)
	}
	if got := MaxOutputSize(k); got != 2 {
		t.Errorf("MaxOutputSize = %d, want 2", got)
	}
	if got := NeededInputBuffer(k); got != 5 {
		t.Errorf("NeededInputBuffer = %d, want 5", got)
	}
	if got := NeededOutputBuffer(k); got != 2 {
		t.Errorf("NeededOutputBuffer = %d, want 2", got)
	}
	if got := NeededSingleBuffer(k); got != 5 {
		t.Errorf("NeededSingleBuffer = %d, want 5", got)
	}
}
