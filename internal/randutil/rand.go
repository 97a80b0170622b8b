// Package randutil centralises deterministic RNG construction so every
// call site derives reproducible sequences from a single int64 seed.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Rand is a deterministic random source with value-semantics cloning.
// Draft generation and rebalancing hand these off between stages; Clone
// snapshots the PCG state so a retry loop can continue the same stream
// without aliasing the caller's generator.
type Rand struct {
	pcg *rand.PCG
	*rand.Rand
}

// New returns a *Rand seeded deterministically from the provided int64.
// The helper derives the two 64-bit seeds required by rand/v2 PCG.
func New(seed int64) *Rand {
	u := uint64(seed)
	pcg := rand.NewPCG(mix(u), mix(u+goldenRatio64))
	return &Rand{pcg: pcg, Rand: rand.New(pcg)}
}

// Clone returns an independent generator that continues from the exact
// current state of r. Advancing one does not affect the other.
func (r *Rand) Clone() *Rand {
	state, err := r.pcg.MarshalBinary()
	if err != nil {
		// PCG state marshalling cannot fail in practice; fall back to a
		// fresh stream rather than aliasing the source.
		return New(int64(r.Uint64()))
	}
	pcg := &rand.PCG{}
	if err := pcg.UnmarshalBinary(state); err != nil {
		return New(int64(r.Uint64()))
	}
	return &Rand{pcg: pcg, Rand: rand.New(pcg)}
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
