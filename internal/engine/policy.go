// Redistribution and wealth-dependent luck policies, applied after the
// update rules in a fixed order: rich-get-luckier, tax, safety net.
package engine

import "math"

// recalibrateLuck sets each individual's luck probability for the next step
// to Φ(z), so relatively wealthy individuals become luckier.
func (s *Simulation) recalibrateLuck(z []float64) {
	for i, zi := range z {
		s.Pop.Luck[i] = phi(zi)
	}
}

// applyTax levies a progressive rate between min_tax_rate and max_tax_rate.
// z must be computed from pre-tax capital.
func (s *Simulation) applyTax(next, z []float64) {
	span := s.Params.MaxTaxRate - s.Params.MinTaxRate
	for i, zi := range z {
		rate := s.Params.MinTaxRate + span*phi(zi)
		next[i] *= 1 - rate
	}
}

// applySafetyNet keeps capital from falling below each individual's starting capital.
func (s *Simulation) applySafetyNet(next []float64) {
	for i, floor := range s.Pop.Initial {
		next[i] = math.Max(next[i], floor)
	}
}
