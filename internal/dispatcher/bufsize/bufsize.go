// Package bufsize implements the buffer-sizing metafunctions (4.I): the
// minimum input and output buffer sizes any action declared in a keyring
// could need. The source computes these as template metafunctions at
// compile time; here they are ordinary functions over a *keyring.Keyring
// computed once at program startup (the keyring is itself immutable for
// its lifetime, so the result never changes), rather than a value baked
// into a type.
package bufsize

import "github.com/danmuck/wirecall/internal/keyring"

// MaxInputSize is max over i of input_size(Sigᵢ).
func MaxInputSize(k *keyring.Keyring) int {
	max := 0
	for i := 0; i < k.Size(); i++ {
		if n := k.Signature(i).InputSize(); n > max {
			max = n
		}
	}
	return max
}

// MaxOutputSize is max over i of output_size(Sigᵢ).
func MaxOutputSize(k *keyring.Keyring) int {
	max := 0
	for i := 0; i < k.Size(); i++ {
		if n := k.Signature(i).OutputSize(); n > max {
			max = n
		}
	}
	return max
}

// NeededInputBuffer is MaxInputSize(k) + sizeof(index_type).
func NeededInputBuffer(k *keyring.Keyring) int {
	return MaxInputSize(k) + k.IndexWidth()
}

// NeededOutputBuffer is MaxOutputSize(k).
func NeededOutputBuffer(k *keyring.Keyring) int {
	return MaxOutputSize(k)
}

// NeededSingleBuffer is the size of the one buffer a single-buffer
// configuration shares between input and output duty:
// max(NeededInputBuffer(k), NeededOutputBuffer(k)).
func NeededSingleBuffer(k *keyring.Keyring) int {
	in, out := NeededInputBuffer(k), NeededOutputBuffer(k)
	if in > out {
		return in
	}
	return out
}
