package effect

import (
	"math"
	"math/rand/v2"
)

// randomEngine produces uniform and Gaussian samples from a fixed seed.
type randomEngine struct {
	rng *rand.Rand
	// The polar method produces samples in pairs; the second one is kept
	// for the next call.
	spare    float64
	hasSpare bool
}

func newRandomEngine(seed uint64) *randomEngine {
	return &randomEngine{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// uniform returns a sample from [lo, hi).
func (r *randomEngine) uniform(lo, hi float64) float64 {
	return r.rng.Float64()*(hi-lo) + lo
}

// gaussian returns a normally distributed sample. The spread is scaled by
// variance directly, not by its square root.
func (r *randomEngine) gaussian(mean, variance float64) float64 {
	return r.standardNormal()*variance + mean
}

func (r *randomEngine) standardNormal() float64 {
	if r.hasSpare {
		r.hasSpare = false
		return r.spare
	}
	var u, v, s float64
	for {
		u = 2*r.rng.Float64() - 1
		v = 2*r.rng.Float64() - 1
		s = u*u + v*v
		if s < 1 && s != 0 {
			break
		}
	}
	f := math.Sqrt(-2 * math.Log(s) / s)
	r.spare = u * f
	r.hasSpare = true
	return v * f
}
