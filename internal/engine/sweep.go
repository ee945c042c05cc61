// Parameter sweeps over the event probability.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/fortune/internal/economy"
	"github.com/talgya/fortune/internal/entropy"
)

// SweepPoint is the outcome of one run in a sweep.
type SweepPoint struct {
	PEvent  float64         `json:"p_event"`
	Final   []float64       `json:"final_capital"`
	Talent  []float64       `json:"talent"`
	Summary economy.Summary `json:"summary"`
}

// Group is a labeled sweep, one half of a two-group comparison.
type Group struct {
	Label  string       `json:"label"`
	Points []SweepPoint `json:"points"`
}

// Sweep runs one simulation per event probability, in the order given.
// Every run shares base's seed, so runs differ only by p_event. All
// probabilities are validated before the first run starts.
func Sweep(base Params, pEvents []float64) ([]SweepPoint, error) {
	if len(pEvents) == 0 {
		return nil, fmt.Errorf("%w: sweep needs at least one p_event", ErrInvalidParams)
	}

	runs := make([]Params, len(pEvents))
	for i, pe := range pEvents {
		p := base
		p.PEvent = pe
		if err := p.Validate(); err != nil {
			return nil, err
		}
		runs[i] = p
	}

	seed := entropy.ResolveSeed(base.Seed)
	points := make([]SweepPoint, 0, len(runs))
	for _, p := range runs {
		p.Seed = seed
		res, err := Run(p)
		if err != nil {
			return nil, fmt.Errorf("run p_event=%v: %w", p.PEvent, err)
		}
		points = append(points, SweepPoint{
			PEvent:  p.PEvent,
			Final:   res.Final,
			Talent:  res.Talent,
			Summary: res.Summary(),
		})
		slog.Debug("sweep point done", "p_event", p.PEvent, "seed", seed)
	}
	return points, nil
}

// CompareGroups runs the same sweep under two parameter sets.
// When neither group sets a seed, both share one so the groups see the same draws.
func CompareGroups(labelA string, a Params, labelB string, b Params, pEvents []float64) (Group, Group, error) {
	if a.Seed == 0 && b.Seed == 0 {
		seed := entropy.ResolveSeed(0)
		a.Seed, b.Seed = seed, seed
	}
	pa, err := Sweep(a, pEvents)
	if err != nil {
		return Group{}, Group{}, fmt.Errorf("group %q: %w", labelA, err)
	}
	pb, err := Sweep(b, pEvents)
	if err != nil {
		return Group{}, Group{}, fmt.Errorf("group %q: %w", labelB, err)
	}
	return Group{Label: labelA, Points: pa}, Group{Label: labelB, Points: pb}, nil
}
