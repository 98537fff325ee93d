package stats

import "math"

// Running accumulates the sufficient statistics for single-pass
// mean/variance/min/max over a stream of values.
type Running struct {
	count uint64
	sum   float64
	sumSq float64
	min   float64
	max   float64
}

func NewRunning() *Running {
	return &Running{
		count: 0,
		sum:   0,
		sumSq: 0,
		min:   math.Inf(1),
		max:   math.Inf(-1),
	}
}

func (r *Running) Update(value float64) {
	r.count++
	r.sum += value
	r.sumSq += value * value
	r.min = math.Min(r.min, value)
	r.max = math.Max(r.max, value)
}

func (r *Running) Count() uint64 {
	return r.count
}

func (r *Running) Mean() float64 {
	if r.count == 0 {
		return 0
	}
	return r.sum / float64(r.count)
}

// Variance is the population variance. Floating-point cancellation can
// push sumSq/n - mean^2 slightly below zero; it is clamped so variance
// is never negative or NaN.
func (r *Running) Variance() float64 {
	if r.count == 0 {
		return 0
	}
	mean := r.Mean()
	variance := r.sumSq/float64(r.count) - mean*mean
	if variance < 0 {
		return 0
	}
	return variance
}

func (r *Running) SD() float64 {
	return math.Sqrt(r.Variance())
}

func (r *Running) Min() float64 {
	return r.min
}

func (r *Running) Max() float64 {
	return r.max
}
