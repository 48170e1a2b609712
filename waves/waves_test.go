package waves

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpulses(t *testing.T) {
	seq := Impulses(2, 5, 3, 2)
	require.Len(t, seq, 17)

	// one impulse per cycle, wid samples wide, plus a partial cycle
	expected := []float64{1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1}
	assert.Equal(t, expected, seq)
}

func TestSquare(t *testing.T) {
	seq := Square(3, 0.4, 10, 2, 0)
	require.Len(t, seq, 20)

	var high int
	for _, v := range seq {
		switch v {
		case 3:
			high++
		case 0:
		default:
			t.Fatalf("unexpected value %v", v)
		}
	}
	assert.Equal(t, 8, high)
}

func TestSawtooth(t *testing.T) {
	seq := Sawtooth(2, 8, 2, 0)
	require.Len(t, seq, 16)
	assert.Equal(t, 0.0, seq[0])
	assert.Equal(t, 2.0, seq[4])
	assert.InDelta(t, 2.0, maxOf(seq), 1e-12)
	assert.InDelta(t, 0.0, minOf(seq), 1e-12)

	// periodic
	for i := 0; i < 8; i++ {
		assert.Equal(t, seq[i], seq[i+8])
	}
}

func TestSine(t *testing.T) {
	seq := Sine(2, 12, 3, 5)
	require.Len(t, seq, 41)
	assert.Equal(t, 0.0, seq[0])
	assert.InDelta(t, 2.0, seq[3], 1e-12)
	for i := 0; i < 12; i++ {
		assert.InDelta(t, seq[i], seq[i+12], 1e-12)
	}
}

func TestAperiodic(t *testing.T) {
	seq := Aperiodic(1, 200)
	require.Len(t, seq, 200)
	assert.LessOrEqual(t, maxOf(seq), 1.0+1e-12)
	assert.GreaterOrEqual(t, minOf(seq), -1.0-1e-12)
}

func TestBrownianDeterministic(t *testing.T) {
	a := Brownian(1, 100, 42)
	b := Brownian(1, 100, 42)
	c := Brownian(1, 100, 43)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestAddNoise(t *testing.T) {
	base := Sine(1, 10, 5, 0)

	same := AddNoise(base, 0, 1)
	assert.Equal(t, base, same)

	noisy := AddNoise(base, 0.5, 1)
	require.Len(t, noisy, len(base))
	assert.NotEqual(t, base, noisy)

	// seeded noise is reproducible
	assert.Equal(t, noisy, AddNoise(base, 0.5, 1))

	// input is never modified
	assert.Equal(t, Sine(1, 10, 5, 0), base)
}

func TestMix(t *testing.T) {
	base := make([]float64, 1000)
	for i := range base {
		base[i] = 1
	}

	all := Mix(base, 9, 1.0, 1)
	for _, v := range all {
		assert.Equal(t, 9.0, v)
	}

	none := Mix(base, 9, 0, 1)
	assert.Equal(t, base, none)

	some := Mix(base, 9, 0.5, 1)
	var replaced int
	for _, v := range some {
		if v == 9 {
			replaced++
		}
	}
	assert.InDelta(t, 500, replaced, 100)
}

func maxOf(xs []float64) float64 {
	m := math.Inf(-1)
	for _, x := range xs {
		m = math.Max(m, x)
	}
	return m
}

func minOf(xs []float64) float64 {
	m := math.Inf(1)
	for _, x := range xs {
		m = math.Min(m, x)
	}
	return m
}
