// Simulation parameters and their validation.
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/talgya/fortune/internal/agents"
	"github.com/talgya/fortune/internal/economy"
)

// ErrInvalidParams is wrapped by every parameter validation failure.
var ErrInvalidParams = errors.New("invalid simulation parameters")

// Params configures a single simulation run.
type Params struct {
	PEvent       float64 `json:"p_event" yaml:"p_event"`             // Per-step probability an event occurs
	PLucky0      float64 `json:"p_lucky0" yaml:"p_lucky0"`           // Initial probability an event is lucky
	UseDefault   bool    `json:"use_default" yaml:"use_default"`     // Fixed 2x / 0.5x multipliers
	WTalent      float64 `json:"w_talent" yaml:"w_talent"`           // Salary coefficient
	InterestRate float64 `json:"interest_rate" yaml:"interest_rate"` // Applied by all three rules
	MinTaxRate   float64 `json:"min_tax_rate" yaml:"min_tax_rate"`
	MaxTaxRate   float64 `json:"max_tax_rate" yaml:"max_tax_rate"`
	NTimestamps  int     `json:"n_timestamps" yaml:"n_timestamps"`
	N            int     `json:"n" yaml:"n"`

	MuT   float64           `json:"mu_t" yaml:"mu_t"`
	StdT  float64           `json:"std_t" yaml:"std_t"`
	TDist agents.TalentDist `json:"t_dist" yaml:"t_dist"`
	MuC   float64           `json:"mu_c" yaml:"mu_c"`
	StdC  float64           `json:"std_c" yaml:"std_c"`
	CEven bool              `json:"c_even" yaml:"c_even"`

	TurnOnRich    bool `json:"turn_on_rich" yaml:"turn_on_rich"`
	TurnOnTax     bool `json:"turn_on_tax" yaml:"turn_on_tax"`
	TurnOnSafenet bool `json:"turn_on_safenet" yaml:"turn_on_safenet"`

	// Seed for all random draws. Zero picks a fresh seed, reported in Result.Seed.
	Seed int64 `json:"seed" yaml:"seed"`
}

// DefaultParams returns the baseline scenario: 1000 individuals over 80
// steps, talent-weighted luck, no redistribution.
func DefaultParams() Params {
	return Params{
		PEvent:       1.0 / 20,
		PLucky0:      0.5,
		UseDefault:   false,
		WTalent:      1,
		InterestRate: 0,
		MinTaxRate:   0.1,
		MaxTaxRate:   0.4,
		NTimestamps:  80,
		N:            1000,
		MuT:          0.6,
		StdT:         0.1,
		TDist:        agents.TalentNormal,
		MuC:          10,
		StdC:         2,
		CEven:        true,
	}
}

// Validate checks every parameter before any random draw is made.
func (p Params) Validate() error {
	finite := []struct {
		name string
		v    float64
	}{
		{"p_event", p.PEvent},
		{"p_lucky0", p.PLucky0},
		{"w_talent", p.WTalent},
		{"interest_rate", p.InterestRate},
		{"min_tax_rate", p.MinTaxRate},
		{"max_tax_rate", p.MaxTaxRate},
		{"mu_t", p.MuT},
		{"std_t", p.StdT},
		{"mu_c", p.MuC},
		{"std_c", p.StdC},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParams, f.name, f.v)
		}
	}

	if p.N <= 0 {
		return fmt.Errorf("%w: n must be positive, got %d", ErrInvalidParams, p.N)
	}
	if p.NTimestamps < 0 {
		return fmt.Errorf("%w: n_timestamps must not be negative, got %d", ErrInvalidParams, p.NTimestamps)
	}

	unit := []struct {
		name string
		v    float64
	}{
		{"p_event", p.PEvent},
		{"p_lucky0", p.PLucky0},
		{"min_tax_rate", p.MinTaxRate},
		{"max_tax_rate", p.MaxTaxRate},
	}
	for _, u := range unit {
		if u.v < 0 || u.v > 1 {
			return fmt.Errorf("%w: %s must be in [0, 1], got %v", ErrInvalidParams, u.name, u.v)
		}
	}
	if p.MinTaxRate > p.MaxTaxRate {
		return fmt.Errorf("%w: min_tax_rate (%v) exceeds max_tax_rate (%v)", ErrInvalidParams, p.MinTaxRate, p.MaxTaxRate)
	}

	if !p.TDist.Valid() {
		return fmt.Errorf("%w: t_dist must be %q or %q, got %q",
			ErrInvalidParams, agents.TalentNormal, agents.TalentUniform, p.TDist)
	}
	if p.StdT < 0 {
		return fmt.Errorf("%w: std_t must not be negative, got %v", ErrInvalidParams, p.StdT)
	}
	if p.StdC < 0 {
		return fmt.Errorf("%w: std_c must not be negative, got %v", ErrInvalidParams, p.StdC)
	}
	return nil
}

func (p Params) spawnConfig() agents.SpawnConfig {
	return agents.SpawnConfig{
		Size:            p.N,
		TalentDist:      p.TDist,
		TalentMean:      p.MuT,
		TalentStd:       p.StdT,
		CapitalEven:     p.CEven,
		CapitalMean:     p.MuC,
		CapitalStd:      p.StdC,
		LuckProbability: p.PLucky0,
	}
}

func (p Params) rates() economy.Rates {
	return economy.Rates{
		InterestRate: p.InterestRate,
		Salary:       p.WTalent,
		Fixed:        p.UseDefault,
	}
}
