package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastRand_Deterministic(t *testing.T) {
	a := NewFastRand(1337)
	b := NewFastRand(1337)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Next(), b.Next(), "draw %d diverged", i)
	}
}

func TestFastRand_ZeroSeedRemapped(t *testing.T) {
	r := NewFastRand(0)
	assert.NotZero(t, r.Next(), "zero seed must not lock the stream at zero")
}

func TestFastRand_Float64Range(t *testing.T) {
	r := NewFastRand(42)
	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		f := r.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
		sum += f
	}
	assert.InDelta(t, 0.5, sum/n, 0.02, "mean of uniform draws")
}

func TestFastRand_Gaussian(t *testing.T) {
	r := NewFastRand(7)
	var sum, sumSq float64
	const n = 20000
	for i := 0; i < n; i++ {
		g := r.Gaussian()
		sum += g
		sumSq += g * g
	}
	mean := sum / n
	assert.InDelta(t, 0, mean, 0.05)
	assert.InDelta(t, 1, sumSq/n-mean*mean, 0.08)
}

func TestFastRand_UnitVector(t *testing.T) {
	r := NewFastRand(99)
	for i := 0; i < 100; i++ {
		v := r.UnitVector()
		assert.InDelta(t, 1, V3FMag(v), 1e-9)
	}
}

func TestSubSeed_DeterministicAndDistinct(t *testing.T) {
	assert.Equal(t, SubSeed(1337, 42), SubSeed(1337, 42))

	seen := make(map[uint64]int)
	for i := -1; i < 1000; i++ {
		s := SubSeed(1337, i)
		prev, dup := seen[s]
		require.False(t, dup, "index %d collides with %d", i, prev)
		seen[s] = i
	}
}

// Adjacent siblings should differ in roughly half their bits
func TestSubSeed_SiblingsDecorrelated(t *testing.T) {
	total := 0
	const n = 256
	for i := 0; i < n; i++ {
		diff := SubSeed(1, i) ^ SubSeed(1, i+1)
		total += popCount(diff)
	}
	avg := float64(total) / n
	assert.InDelta(t, 32, avg, 4, "average differing bits between siblings")

	// First draws of sibling streams should not track each other
	var corr float64
	for i := 0; i < n; i++ {
		a := NewFastRand(SubSeed(5, i)).Float64() - 0.5
		b := NewFastRand(SubSeed(5, i+1)).Float64() - 0.5
		corr += a * b
	}
	assert.Less(t, math.Abs(corr/n), 0.03)
}

func popCount(x uint64) int {
	c := 0
	for x != 0 {
		x &= x - 1
		c++
	}
	return c
}

func TestV3FRotateY(t *testing.T) {
	v := V3FRotateY(Vec3F{X: 1}, math.Pi/2)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 1, v.Z, 1e-12)

	tan := V3FTangentY(Vec3F{X: 2})
	assert.InDelta(t, 1, tan.Z, 1e-12)
	assert.InDelta(t, 0, V3FDot(tan, Vec3F{X: 2}), 1e-12)
}

func TestV3FCross(t *testing.T) {
	z := V3FCross(Vec3F{X: 1}, Vec3F{Y: 1})
	assert.Equal(t, Vec3F{Z: 1}, z)
	a := Vec3F{X: 1, Y: 2, Z: 3}
	b := Vec3F{X: -2, Y: 0.5, Z: 4}
	c := V3FCross(a, b)
	assert.InDelta(t, 0, V3FDot(c, a), 1e-12)
	assert.InDelta(t, 0, V3FDot(c, b), 1e-12)
}

func TestEasing(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
	}{
		{"SmoothStep", SmoothStep},
		{"EaseInOutCubic", EaseInOutCubic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, tt.fn(-1))
			assert.Equal(t, 1.0, tt.fn(2))
			assert.InDelta(t, 0.5, tt.fn(0.5), 1e-12)
			prev := 0.0
			for i := 0; i <= 100; i++ {
				v := tt.fn(float64(i) / 100)
				assert.GreaterOrEqual(t, v, prev)
				prev = v
			}
		})
	}
}
