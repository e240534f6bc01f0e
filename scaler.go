package charts3d

import (
	"math"
)

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

func (r Range) Degenerate() bool {
	return !(r.T > r.F)
}

// fix substitutes a unit width range when max <= min.
func (r Range) fix() Range {
	if r.Degenerate() {
		r.T = r.F + 1
	}
	return r
}

// Normalize maps v from the range into [0, 1]. Values outside the range are not
// clamped.
func (r Range) Normalize(v float64) float64 {
	r = r.fix()
	return (v - r.F) / r.Len()
}

// normalizeLog maps v on a log10 scale. It falls back to the linear mapping when
// the range or v is not strictly positive.
func (r Range) normalizeLog(v float64) float64 {
	if r.F <= 0 || v <= 0 {
		return r.Normalize(v)
	}
	r = r.fix()
	var (
		lo = math.Log10(r.F)
		hi = math.Log10(r.T)
	)
	return (math.Log10(v) - lo) / (hi - lo)
}

// Values returns the tick values of the range. A positive step is used as is,
// otherwise the range is divided in c parts.
func (r Range) Values(c int, step float64) []float64 {
	r = r.fix()
	if step <= 0 {
		if c <= 0 {
			c = 1
		}
		step = r.Len() / float64(c)
	}
	var all []float64
	for v := r.F; v <= r.T+step*1e-9; v += step {
		all = append(all, v)
		if len(all) > maxTicks {
			break
		}
	}
	return all
}

func (r Range) logValues() []float64 {
	if r.F <= 0 {
		return r.Values(defaultTicks, 0)
	}
	r = r.fix()
	var all []float64
	for e := math.Floor(math.Log10(r.F)); e <= math.Ceil(math.Log10(r.T)); e++ {
		v := math.Pow(10, e)
		if v < r.F || v > r.T {
			continue
		}
		all = append(all, v)
	}
	if len(all) == 0 {
		all = append(all, r.F, r.T)
	}
	return all
}

const (
	defaultTicks = 5
	maxTicks     = 100
)

type extent struct {
	Range
	seen bool
}

func (e *extent) add(v float64) {
	if isBad(v) {
		return
	}
	if !e.seen {
		e.F, e.T = v, v
		e.seen = true
		return
	}
	e.F = math.Min(e.F, v)
	e.T = math.Max(e.T, v)
}

func (e extent) get() Range {
	if !e.seen {
		return NewRange(0, 1)
	}
	return e.Range
}
