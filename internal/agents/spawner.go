// Population spawning: per-individual talent and starting capital.
package agents

import (
	"fmt"
	"math"

	"github.com/talgya/fortune/internal/entropy"
)

// SpawnConfig controls initial population generation.
type SpawnConfig struct {
	Size       int
	TalentDist TalentDist
	TalentMean float64
	TalentStd  float64

	// CapitalEven gives everyone CapitalMean; otherwise capital ~ N(CapitalMean, CapitalStd).
	CapitalEven bool
	CapitalMean float64
	CapitalStd  float64

	LuckProbability float64 // Shared initial probability that an event is lucky
}

// Spawner creates populations from per-individual random streams.
type Spawner struct {
	streams *entropy.Streams
}

// NewSpawner creates a spawner drawing from the given streams.
func NewSpawner(streams *entropy.Streams) *Spawner {
	return &Spawner{streams: streams}
}

// Spawn draws talent and starting capital for cfg.Size individuals.
func (s *Spawner) Spawn(cfg SpawnConfig) (*Population, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("spawn: population size must be positive, got %d", cfg.Size)
	}
	if !cfg.TalentDist.Valid() {
		return nil, fmt.Errorf("spawn: unknown talent distribution %q", cfg.TalentDist)
	}
	if s.streams.Len() < cfg.Size {
		return nil, fmt.Errorf("spawn: %d random streams for %d individuals", s.streams.Len(), cfg.Size)
	}

	pop := &Population{
		Talent:  make([]float64, cfg.Size),
		Initial: make([]float64, cfg.Size),
		Capital: make([]float64, cfg.Size),
		Luck:    make([]float64, cfg.Size),
	}

	for i := 0; i < cfg.Size; i++ {
		rng := s.streams.At(i)

		switch cfg.TalentDist {
		case TalentNormal:
			t := cfg.TalentMean + cfg.TalentStd*rng.NormFloat64()
			pop.Talent[i] = math.Min(math.Max(t, 0), 1)
		case TalentUniform:
			pop.Talent[i] = rng.Float64()
		}

		if cfg.CapitalEven {
			pop.Initial[i] = cfg.CapitalMean
		} else {
			pop.Initial[i] = cfg.CapitalMean + cfg.CapitalStd*rng.NormFloat64()
		}

		pop.Capital[i] = pop.Initial[i]
		pop.Luck[i] = cfg.LuckProbability
	}

	return pop, nil
}
