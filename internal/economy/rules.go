// Package economy provides the capital update rules and distribution statistics.
package economy

// Outcome is the result of one individual's event draw for one step.
type Outcome int8

const (
	OutcomeNone    Outcome = 0
	OutcomeLucky   Outcome = 1
	OutcomeUnlucky Outcome = -1
)

func (o Outcome) String() string {
	switch {
	case o > 0:
		return "lucky"
	case o < 0:
		return "unlucky"
	default:
		return "none"
	}
}

// Rule identifies which capital update applies to an individual.
type Rule uint8

const (
	RuleNeutral Rule = iota
	RuleLucky
	RuleUnlucky
	ruleCount
)

// RuleFor maps a signed outcome to its update rule.
func RuleFor(o Outcome) Rule {
	switch {
	case o > 0:
		return RuleLucky
	case o < 0:
		return RuleUnlucky
	default:
		return RuleNeutral
	}
}

// Neutral accrues interest plus a talent-proportional salary.
func Neutral(interestRate, salary, talent, prev float64) float64 {
	return prev*(1+interestRate) + salary*talent
}

// Lucky doubles capital in fixed mode, otherwise scales it by (1+talent).
func Lucky(interestRate, talent, prev float64, fixed bool) float64 {
	if fixed {
		return 2 * prev * (1 + interestRate)
	}
	return (1 + talent) * prev * (1 + interestRate)
}

// Unlucky halves capital in fixed mode, otherwise scales it by talent.
func Unlucky(interestRate, talent, prev float64, fixed bool) float64 {
	if fixed {
		return 0.5 * prev * (1 + interestRate)
	}
	return talent * prev * (1 + interestRate)
}

// Rates bundles the coefficients shared by all three rules.
type Rates struct {
	InterestRate float64
	Salary       float64 // w_talent
	Fixed        bool    // 2x / 0.5x multipliers, talent-independent
}

// Apply evaluates a single rule for one individual.
func (r Rates) Apply(rule Rule, talent, prev float64) float64 {
	switch rule {
	case RuleLucky:
		return Lucky(r.InterestRate, talent, prev, r.Fixed)
	case RuleUnlucky:
		return Unlucky(r.InterestRate, talent, prev, r.Fixed)
	default:
		return Neutral(r.InterestRate, r.Salary, talent, prev)
	}
}

// ApplyAll writes next-step capital into dst. Individuals are grouped by
// rule first and each group is updated in one pass, so the result is
// identical to calling Apply per individual.
func (r Rates) ApplyAll(dst []float64, outcomes []Outcome, talent, prev []float64) {
	var groups [ruleCount][]int
	for i, o := range outcomes {
		rule := RuleFor(o)
		groups[rule] = append(groups[rule], i)
	}

	for _, i := range groups[RuleNeutral] {
		dst[i] = Neutral(r.InterestRate, r.Salary, talent[i], prev[i])
	}
	for _, i := range groups[RuleLucky] {
		dst[i] = Lucky(r.InterestRate, talent[i], prev[i], r.Fixed)
	}
	for _, i := range groups[RuleUnlucky] {
		dst[i] = Unlucky(r.InterestRate, talent[i], prev[i], r.Fixed)
	}
}
