// Package dispatcher implements the runtime action table (4.G): an array
// of N actions built from a keyring, routing an incoming request to
// actions[index] by decoding a leading index from the request stream.
package dispatcher

import (
	"strconv"

	"github.com/danmuck/wirecall/internal/action"
	"github.com/danmuck/wirecall/internal/ioadapter"
	"github.com/danmuck/wirecall/internal/keyring"
)

// Dispatcher routes one incoming request to the matching action.
// actions[i].Signature() equals the keyring's declared signature at i at
// all times, enforced at construction and on every Replace.
type Dispatcher struct {
	keyring *keyring.Keyring
	actions []action.Action
}

// New builds a dispatcher over k with the given actions, in index order.
// Each actions[i]'s signature must equal k.Signature(i); a mismatch
// panics immediately, the same construction-time check Key constructors
// already perform, so a Dispatcher can never be built in an inconsistent
// state.
func New(k *keyring.Keyring, actions ...action.Action) *Dispatcher {
	if len(actions) != k.Size() {
		panic("dispatcher: action count does not match keyring size")
	}
	for i, a := range actions {
		requireSignatureMatch(k, i, a)
	}
	return &Dispatcher{keyring: k, actions: append([]action.Action{}, actions...)}
}

func requireSignatureMatch(k *keyring.Keyring, i int, a action.Action) {
	want := k.Signature(i)
	if !a.Signature().Equal(want) {
		panic("dispatcher: action " + strconv.Itoa(i) + " signature does not match keyring")
	}
}

// Keyring is the dispatcher's backing keyring.
func (d *Dispatcher) Keyring() *keyring.Keyring { return d.keyring }

// Size is N, the number of actions.
func (d *Dispatcher) Size() int { return len(d.actions) }

// Action returns the action at index i. No bound check is performed; a
// plain Go slice index panics on out-of-range access exactly as the
// source's documented unchecked operator[] would.
func (d *Dispatcher) Action(i int) action.Action { return d.actions[i] }

// Replace swaps the action at index i for newAction, provided
// newAction's signature equals Sigᵢ. Panics otherwise — the same
// construction-time enforcement as New, applied again since a signature
// mismatch here would break every Key already built against this
// dispatcher's keyring.
func (d *Dispatcher) Replace(i int, newAction action.Action) {
	requireSignatureMatch(d.keyring, i, newAction)
	d.actions[i] = newAction
}

// GetIndex reads sizeof(index_type) bytes from get and decodes them as
// an index, without dispatching.
func (d *Dispatcher) GetIndex(get ioadapter.Getter) uint64 {
	buf := ioadapter.ReadValue(get, d.keyring.IndexWidth())
	return d.keyring.ReadIndex(buf)
}

// Dispatch reads the leading index from get, and if it names a valid
// action, invokes it against the remainder of get and put. The index
// read is always returned, in range or not, so the caller can detect an
// out-of-range request and react (the buffered layer turns this into a
// DROPPED packet).
func (d *Dispatcher) Dispatch(get ioadapter.Getter, put ioadapter.Putter) uint64 {
	idx := d.GetIndex(get)
	if idx >= uint64(len(d.actions)) {
		return idx
	}
	d.actions[idx].Invoke(get, put)
	return idx
}

// GetAction reads the leading index from get and returns the action it
// names, or nil if the index is out of range.
func (d *Dispatcher) GetAction(get ioadapter.Getter) action.Action {
	idx := d.GetIndex(get)
	if idx >= uint64(len(d.actions)) {
		return nil
	}
	return d.actions[idx]
}
