// Package agents provides the population data model and its initializer.
package agents

// TalentDist names the distribution talent is drawn from.
type TalentDist string

const (
	TalentNormal  TalentDist = "normal"  // N(mu_t, std_t) clipped to [0, 1]
	TalentUniform TalentDist = "uniform" // U[0, 1)
)

// Valid reports whether d names a supported distribution.
func (d TalentDist) Valid() bool {
	return d == TalentNormal || d == TalentUniform
}

// Population holds per-individual state as parallel slices indexed 0..N-1.
// Talent and Initial are fixed for the run; Capital and Luck change every step.
type Population struct {
	Talent  []float64 `json:"talent"`
	Initial []float64 `json:"initial_capital"`
	Capital []float64 `json:"capital"`
	Luck    []float64 `json:"luck_probability"`
}

// Size returns the number of individuals.
func (p *Population) Size() int {
	return len(p.Talent)
}
