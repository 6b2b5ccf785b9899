package vmath

import "math"

// --- Randomness ---

// golden is the 64-bit golden ratio increment used by splitmix64
const golden = 0x9e3779b97f4a7c15

// FastRand is a xorshift64 (13, 17, 5) stream
// Integer-only state update keeps sequences identical across platforms
type FastRand struct {
	state uint64
}

// NewFastRand seeds a stream, zero is remapped since xorshift would stay at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0,1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo,hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Gaussian approximates a unit normal with the Irwin-Hall sum of four uniforms
// Variance of the sum is 4/12, rescaled to 1
func (r *FastRand) Gaussian() float64 {
	sum := r.Float64() + r.Float64() + r.Float64() + r.Float64()
	return (sum - 2) * math.Sqrt(3)
}

// UnitVector returns a uniformly distributed direction on the unit sphere
// Consumes exactly two draws
func (r *FastRand) UnitVector() Vec3F {
	z := r.Range(-1, 1)
	phi := r.Range(0, 2*math.Pi)
	s := math.Sqrt(1 - z*z)
	return Vec3F{X: s * math.Cos(phi), Y: z, Z: s * math.Sin(phi)}
}

// Mix64 is the splitmix64 finalizer
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// SubSeed derives a child seed from a parent seed and sibling index
// Negative indices are valid and used for per-population header streams
func SubSeed(parent uint64, index int) uint64 {
	s := Mix64(parent ^ golden*uint64(int64(index)+1))
	if s == 0 {
		s = golden
	}
	return s
}
