package economy

import (
	"math"
	"testing"
)

func TestNeutral(t *testing.T) {
	got := Neutral(0.1, 2, 0.5, 10)
	want := 10*1.1 + 2*0.5
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Neutral = %v, want %v", got, want)
	}
}

func TestLuckyUnlucky(t *testing.T) {
	tests := []struct {
		name    string
		rate    float64
		talent  float64
		prev    float64
		fixed   bool
		lucky   float64
		unlucky float64
	}{
		{"fixed no interest", 0, 0.7, 10, true, 20, 5},
		{"fixed with interest", 0.1, 0.7, 10, true, 22, 5.5},
		{"talent weighted", 0, 0.6, 10, false, 16, 6},
		{"talent weighted with interest", 0.5, 0.5, 4, false, 9, 3},
		{"zero talent", 0, 0, 10, false, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lucky(tt.rate, tt.talent, tt.prev, tt.fixed); math.Abs(got-tt.lucky) > 1e-9 {
				t.Errorf("Lucky = %v, want %v", got, tt.lucky)
			}
			if got := Unlucky(tt.rate, tt.talent, tt.prev, tt.fixed); math.Abs(got-tt.unlucky) > 1e-9 {
				t.Errorf("Unlucky = %v, want %v", got, tt.unlucky)
			}
		})
	}
}

func TestFixedMultipliersCancel(t *testing.T) {
	for _, c := range []float64{0.001, 1, 10, 12345.678, -3} {
		if got := Unlucky(0, 0.3, Lucky(0, 0.3, c, true), true); math.Abs(got-c) > 1e-9*math.Abs(c) {
			t.Errorf("unlucky(lucky(%v)) = %v", c, got)
		}
		if got := Lucky(0, 0.3, Unlucky(0, 0.3, c, true), true); math.Abs(got-c) > 1e-9*math.Abs(c) {
			t.Errorf("lucky(unlucky(%v)) = %v", c, got)
		}
	}
}

func TestRuleFor(t *testing.T) {
	tests := []struct {
		o    Outcome
		want Rule
	}{
		{OutcomeNone, RuleNeutral},
		{OutcomeLucky, RuleLucky},
		{OutcomeUnlucky, RuleUnlucky},
		{Outcome(5), RuleLucky},
		{Outcome(-2), RuleUnlucky},
	}
	for _, tt := range tests {
		if got := RuleFor(tt.o); got != tt.want {
			t.Errorf("RuleFor(%d) = %d, want %d", tt.o, got, tt.want)
		}
	}
}

func TestApplyAllMatchesApply(t *testing.T) {
	for _, fixed := range []bool{true, false} {
		r := Rates{InterestRate: 0.02, Salary: 1.5, Fixed: fixed}
		outcomes := []Outcome{OutcomeNone, OutcomeLucky, OutcomeUnlucky, OutcomeUnlucky, OutcomeNone, OutcomeLucky}
		talent := []float64{0.1, 0.9, 0.5, 0.0, 1.0, 0.3}
		prev := []float64{10, 20, 30, 40, 50, 60}

		dst := make([]float64, len(prev))
		r.ApplyAll(dst, outcomes, talent, prev)

		for i := range dst {
			want := r.Apply(RuleFor(outcomes[i]), talent[i], prev[i])
			if dst[i] != want {
				t.Errorf("fixed=%v: individual %d: ApplyAll = %v, Apply = %v", fixed, i, dst[i], want)
			}
		}
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeLucky.String() != "lucky" || OutcomeUnlucky.String() != "unlucky" || OutcomeNone.String() != "none" {
		t.Errorf("unexpected outcome names: %s %s %s", OutcomeLucky, OutcomeUnlucky, OutcomeNone)
	}
}
