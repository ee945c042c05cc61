// Population-wide capital statistics shared by the redistribution policies.
package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// snapshot is the mean and population standard deviation of one step's
// capital vector. It is taken once per step and read by every policy.
type snapshot struct {
	mean float64
	std  float64
}

func takeSnapshot(capital []float64) snapshot {
	mean, std := stat.PopMeanStdDev(capital, nil)
	return snapshot{mean: mean, std: std}
}

// zscores writes (x - mean) / std into dst. A zero or non-finite std means
// everyone holds the same capital, and every z-score is 0.
func (s snapshot) zscores(dst, x []float64) {
	if s.std == 0 || math.IsNaN(s.std) || math.IsInf(s.std, 0) {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	for i, v := range x {
		dst[i] = (v - s.mean) / s.std
	}
}

// phi is the standard normal cumulative distribution function.
func phi(z float64) float64 {
	return distuv.UnitNormal.CDF(z)
}
