package audit

import (
	"math"
	"sort"
)

// Stats summarizes the mana costs of one sweep.
type Stats struct {
	Trials      int         `json:"trials"`
	Mean        float64     `json:"mean"`
	Var         float64     `json:"var"`
	StdDev      float64     `json:"stdDev"`
	P50         float64     `json:"p50"`
	P90         float64     `json:"p90"`
	P99         float64     `json:"p99"`
	Histogram   map[int]int `json:"histogram"`
	CappedShare float64     `json:"cappedShare"`
	// raw samples if the caller needs exports
	Samples []int `json:"-"`
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{Histogram: map[int]int{}}
	}
	var sum float64
	hist := make(map[int]int)
	for _, v := range xs {
		sum += float64(v)
		hist[v]++
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)

	return Stats{
		Trials:    n,
		Mean:      mean,
		Var:       variance,
		StdDev:    math.Sqrt(variance),
		P50:       percentile(cp, 0.50),
		P90:       percentile(cp, 0.90),
		P99:       percentile(cp, 0.99),
		Histogram: hist,
		Samples:   xs,
	}
}

// percentile interpolates linearly between the closest ranks of sorted.
func percentile(sorted []int, p float64) float64 {
	n := len(sorted)
	if n == 1 || p <= 0 {
		return float64(sorted[0])
	}
	if p >= 1 {
		return float64(sorted[n-1])
	}
	pos := p * float64(n-1)
	i := int(math.Floor(pos))
	f := pos - float64(i)
	if i+1 >= n {
		return float64(sorted[i])
	}
	return float64(sorted[i])*(1-f) + float64(sorted[i+1])*f
}
