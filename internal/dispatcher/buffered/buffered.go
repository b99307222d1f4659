// Package buffered implements the buffered dispatcher state machine
// (4.H): it accumulates an incoming request byte by byte, decides when
// the request is complete, runs the dispatch, stages the response, and
// releases response bytes on demand. It supports a single-buffer
// configuration (input and output share one array, legal only when the
// caller never starts a new request while the prior response is still
// being drained) and a double-buffer configuration (separate arrays, no
// such restriction), both sized from the backing keyring by
// internal/dispatcher/bufsize.
package buffered

import (
	"github.com/rs/zerolog"

	"github.com/danmuck/wirecall/internal/dispatcher"
	"github.com/danmuck/wirecall/internal/dispatcher/bufsize"
	"github.com/danmuck/wirecall/internal/ioadapter"
	"github.com/danmuck/wirecall/internal/keyring"
)

// Dispatcher is the byte-streamed state machine wrapping a
// dispatcher.Dispatcher. Zero value is not usable; construct with
// NewSingle or NewDouble.
type Dispatcher struct {
	d    *dispatcher.Dispatcher
	ibuf []byte
	obuf []byte

	indexLoaded bool
	loadCount   int
	ibufNext    int
	index       uint64

	obufNext   int
	obufBottom int

	log zerolog.Logger
}

// NewSingle builds a single-buffer configuration: one array of size
// max(neededInputBuffer, neededOutputBuffer) shared as both input and
// output staging. The caller must not call Put while IsLoaded would
// return true; this is an aliasing contract the type cannot enforce at
// compile time, exactly as the source documents it as undefined
// behavior rather than a runtime-checked precondition.
func NewSingle(d *dispatcher.Dispatcher) *Dispatcher {
	buf := make([]byte, bufsize.NeededSingleBuffer(d.Keyring()))
	return newBuffered(d, buf, buf)
}

// NewDouble builds a double-buffer configuration: separate input and
// output arrays, sized exactly to what the keyring needs. A new request
// may be fed at any time, even while a prior response is still draining.
func NewDouble(d *dispatcher.Dispatcher) *Dispatcher {
	k := d.Keyring()
	ibuf := make([]byte, bufsize.NeededInputBuffer(k))
	obuf := make([]byte, bufsize.NeededOutputBuffer(k))
	return newBuffered(d, ibuf, obuf)
}

func newBuffered(d *dispatcher.Dispatcher, ibuf, obuf []byte) *Dispatcher {
	bd := &Dispatcher{d: d, ibuf: ibuf, obuf: obuf, log: zerolog.Nop()}
	bd.resetInput()
	return bd
}

// WithLogger attaches a structured logger that receives a debug event on
// every PacketStatus transition. The default is a no-op logger, so
// dispatch never pays for logging unless a caller opts in — the
// zero-allocation WeakAction invoke path in particular must never gain a
// log call on it, and this keeps the logging strictly at the buffered
// layer, above the per-action dispatch.
func (bd *Dispatcher) WithLogger(l zerolog.Logger) *Dispatcher {
	bd.log = l
	return bd
}

// resetInput returns the input side of the state machine to Idle,
// without touching the output buffer's contents — the invariant P4
// depends on (DROPPED must leave the output buffer untouched).
func (bd *Dispatcher) resetInput() {
	bd.indexLoaded = false
	bd.loadCount = bd.d.Keyring().IndexWidth()
	bd.ibufNext = 0
}

// Put advances the state machine by exactly one input byte and reports
// the resulting status.
func (bd *Dispatcher) Put(b byte) PacketStatus {
	bd.ibuf[bd.ibufNext] = b
	bd.ibufNext++
	bd.loadCount--
	if bd.loadCount > 0 {
		bd.log.Debug().Str("status", Loading.String()).Msg("byte accumulated")
		return Loading
	}

	if !bd.indexLoaded {
		idxWidth := bd.d.Keyring().IndexWidth()
		idx := bd.d.Keyring().ReadIndex(bd.ibuf[:idxWidth])
		if idx >= uint64(bd.d.Size()) {
			bd.resetInput()
			bd.log.Debug().Str("status", Dropped.String()).Uint64("index", idx).Msg("index out of range")
			return Dropped
		}
		bd.index = idx
		needed := bd.d.Action(int(idx)).InputSize()
		if needed == 0 {
			bd.runAction()
			bd.resetInput()
			bd.log.Debug().Str("status", Resolved.String()).Uint64("index", idx).Msg("dispatched")
			return Resolved
		}
		bd.indexLoaded = true
		bd.loadCount = needed
		bd.log.Debug().Str("status", Loading.String()).Uint64("index", idx).Msg("index loaded")
		return Loading
	}

	bd.runAction()
	bd.resetInput()
	bd.log.Debug().Str("status", Resolved.String()).Uint64("index", bd.index).Msg("dispatched")
	return Resolved
}

// runAction invokes the resolved action against the arguments already
// staged in ibuf, and stages its response (if any) at the front of obuf.
func (bd *Dispatcher) runAction() {
	idxWidth := bd.d.Keyring().IndexWidth()
	a := bd.d.Action(int(bd.index))

	get := ioadapter.SliceGetter(bd.ibuf[idxWidth : idxWidth+a.InputSize()])
	written := 0
	put := ioadapter.Putter(func(b byte) {
		bd.obuf[written] = b
		written++
	})
	a.Invoke(get, put)

	bd.obufNext = 0
	bd.obufBottom = written
}

// Get returns the next staged response byte, advancing the drain
// cursor, or an arbitrary byte if nothing is staged. Callers should
// check IsLoaded first.
func (bd *Dispatcher) Get() byte {
	if bd.obufNext < bd.obufBottom {
		b := bd.obuf[bd.obufNext]
		bd.obufNext++
		return b
	}
	return 0
}

// IsLoaded reports whether response bytes remain to be drained.
func (bd *Dispatcher) IsLoaded() bool { return bd.obufNext != bd.obufBottom }

// ReadFrom repeatedly pulls a byte from get and feeds it to Put until the
// status is Resolved or Dropped, then returns that status. If get itself
// blocks, ReadFrom blocks; no implicit yielding occurs.
func (bd *Dispatcher) ReadFrom(get ioadapter.Getter) PacketStatus {
	for {
		status := bd.Put(get())
		if status == Resolved || status == Dropped {
			return status
		}
	}
}

// WriteTo drains every staged response byte to put.
func (bd *Dispatcher) WriteTo(put ioadapter.Putter) {
	for bd.IsLoaded() {
		put(bd.Get())
	}
}

// Process runs ReadFrom followed by WriteTo iff the result was Resolved.
func (bd *Dispatcher) Process(get ioadapter.Getter, put ioadapter.Putter) PacketStatus {
	status := bd.ReadFrom(get)
	if status == Resolved {
		bd.WriteTo(put)
	}
	return status
}

// Reply forwards the currently staged, fully untouched response as the
// single byte-buffer argument of a new request against target, through
// put, and drains the local output buffer. It requires an exact size
// match between the staged response and target's argument — the
// implementation's resolution of the source's documented open question
// about padding a shorter payload into a larger foreign argument: this
// port never pads, so a size mismatch in either direction fails rather
// than silently zero-extending or truncating.
//
// Reply returns false, with no side effect, if the output buffer has
// already been partially drained (obufNext != 0) or if the staged size
// does not exactly equal target.ArgSize().
func (bd *Dispatcher) Reply(put ioadapter.Putter, target keyring.RelayArgKey) bool {
	if bd.obufNext != 0 {
		return false
	}
	staged := bd.obufBottom - bd.obufNext
	if staged != target.ArgSize() {
		return false
	}
	request := target.Build(bd.obuf[bd.obufNext:bd.obufBottom])
	ioadapter.WriteValue(put, request)
	bd.obufNext = bd.obufBottom
	return true
}
