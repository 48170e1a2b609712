// Package waves generates synthetic periodic timeseries for tests and
// demonstrations.
package waves

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Impulses creates a train of impulses, wid samples wide, one per period,
// for the given number of cycles, with partial extra samples appended.
func Impulses(wid, period, cycles, partial int) []float64 {
	cycle := make([]float64, period)
	for i := 0; i < wid && i < period; i++ {
		cycle[i] = 1
	}
	return tile(cycle, cycles, partial)
}

// Square creates a square wave of the given amplitude and duty cycle.
func Square(amp, duty float64, period, cycles, partial int) []float64 {
	seq := Impulses(int(duty*float64(period)), period, cycles, partial)
	floats.Scale(amp, seq)
	return seq
}

// Sawtooth creates a triangle wave ranging over 0..amp.
func Sawtooth(amp float64, period, cycles, partial int) []float64 {
	up := period / 2
	down := period - up
	cycle := make([]float64, period)
	for i := 0; i < up; i++ {
		cycle[i] = amp * float64(i) / float64(up)
	}
	for i := 0; i < down; i++ {
		cycle[up+i] = amp - amp*float64(i)/float64(down)
	}
	return tile(cycle, cycles, partial)
}

// Sine creates a sine wave ranging over -amp..amp.
func Sine(amp float64, period, cycles, partial int) []float64 {
	cycle := make([]float64, period)
	for i := range cycle {
		cycle[i] = amp * math.Sin(float64(i)*2*math.Pi/float64(period))
	}
	return tile(cycle, cycles, partial)
}

// Aperiodic creates an oscillating signal of continuously drifting period,
// ranging over +-amp. Useful as a null case for period estimators.
func Aperiodic(amp float64, n int) []float64 {
	drift := Sine(float64(n), n, 1, 0)
	seq := make([]float64, n)
	for i := range seq {
		period := math.Abs(drift[i]) + float64(n)/10
		seq[i] = amp * math.Sin(float64(i)*2*math.Pi/period)
	}
	return seq
}

// Brownian creates a brownian motion from seeded normal steps with the
// given standard deviation.
func Brownian(scale float64, n int, seed uint64) []float64 {
	steps := noise(scale, n, seed)
	out := make([]float64, n)
	floats.CumSum(out, steps)
	return out
}

// AddNoise returns seq plus a zero-centered seeded normal noise vector
// with standard deviation scale. A scale of 0 returns a copy.
func AddNoise(seq []float64, scale float64, seed uint64) []float64 {
	out := make([]float64, len(seq))
	copy(out, seq)
	if scale == 0 {
		return out
	}
	floats.Add(out, noise(scale, len(seq), seed))
	return out
}

// Mix randomly replaces values of seq with val according to prob.
func Mix(seq []float64, val, prob float64, seed uint64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, len(seq))
	for i, v := range seq {
		if rng.Float64() <= prob {
			out[i] = val
		} else {
			out[i] = v
		}
	}
	return out
}

func noise(scale float64, n int, seed uint64) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: scale, Src: rand.NewSource(seed)}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

func tile(cycle []float64, cycles, partial int) []float64 {
	period := len(cycle)
	seq := make([]float64, 0, period*cycles+partial)
	for c := 0; c < cycles; c++ {
		seq = append(seq, cycle...)
	}
	for i := 0; i < partial; i++ {
		seq = append(seq, seq[i])
	}
	return seq
}
