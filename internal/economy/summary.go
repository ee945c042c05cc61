// Distribution statistics for a population's capital vector.
package economy

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the shape of a capital distribution.
type Summary struct {
	Population int     `json:"population"`
	Total      float64 `json:"total"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Gini       float64 `json:"gini"`
	TopDecile  float64 `json:"top_decile_share"` // Share of total capital held by the richest 10%

	Richest       int     `json:"richest"`        // Index of the richest individual
	RichestTalent float64 `json:"richest_talent"` // Talent of the richest individual
	MaxTalent     float64 `json:"max_talent"`
	TalentCorr    float64 `json:"talent_correlation"` // Pearson correlation of talent and capital
}

// Summarize computes distribution statistics for capital. talent may be nil,
// in which case the talent fields are left zero.
func Summarize(capital, talent []float64) Summary {
	n := len(capital)
	if n == 0 {
		return Summary{}
	}

	sorted := slices.Clone(capital)
	slices.Sort(sorted)

	s := Summary{
		Population: n,
		Total:      floats.Sum(capital),
		Mean:       stat.Mean(capital, nil),
		Median:     stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:        sorted[0],
		Max:        sorted[n-1],
		Gini:       gini(sorted),
		Richest:    floats.MaxIdx(capital),
	}

	top := n / 10
	if top == 0 {
		top = 1
	}
	if s.Total != 0 {
		s.TopDecile = floats.Sum(sorted[n-top:]) / s.Total
	}

	if len(talent) == n {
		s.RichestTalent = talent[s.Richest]
		s.MaxTalent = floats.Max(talent)
		s.TalentCorr = stat.Correlation(talent, capital, nil)
		if math.IsNaN(s.TalentCorr) {
			s.TalentCorr = 0
		}
	}
	return s
}

// gini computes the Gini coefficient of an ascending-sorted sample.
// Returns 0 for empty or zero-sum samples.
func gini(sorted []float64) float64 {
	n := float64(len(sorted))
	total := floats.Sum(sorted)
	if n == 0 || total == 0 {
		return 0
	}
	var weighted float64
	for i, v := range sorted {
		weighted += float64(i+1) * v
	}
	return (2*weighted)/(n*total) - (n+1)/n
}
