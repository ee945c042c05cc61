package agents

import (
	"strings"
	"testing"

	"github.com/talgya/fortune/internal/entropy"
)

func baseConfig(n int) SpawnConfig {
	return SpawnConfig{
		Size:            n,
		TalentDist:      TalentNormal,
		TalentMean:      0.6,
		TalentStd:       0.1,
		CapitalEven:     true,
		CapitalMean:     10,
		CapitalStd:      2,
		LuckProbability: 0.5,
	}
}

func TestSpawnNormalTalentClipped(t *testing.T) {
	cfg := baseConfig(2000)
	cfg.TalentStd = 0.5 // wide enough that clipping matters
	pop, err := NewSpawner(entropy.NewStreams(1, cfg.Size)).Spawn(cfg)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	var zeros, ones int
	for i, tal := range pop.Talent {
		if tal < 0 || tal > 1 {
			t.Fatalf("talent[%d] = %v outside [0, 1]", i, tal)
		}
		if tal == 0 {
			zeros++
		}
		if tal == 1 {
			ones++
		}
	}
	if zeros == 0 || ones == 0 {
		t.Errorf("expected clipping at both bounds, got %d zeros and %d ones", zeros, ones)
	}
}

func TestSpawnUniformTalent(t *testing.T) {
	cfg := baseConfig(500)
	cfg.TalentDist = TalentUniform
	pop, err := NewSpawner(entropy.NewStreams(2, cfg.Size)).Spawn(cfg)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	for i, tal := range pop.Talent {
		if tal < 0 || tal >= 1 {
			t.Fatalf("talent[%d] = %v outside [0, 1)", i, tal)
		}
	}
}

func TestSpawnEvenCapital(t *testing.T) {
	pop, err := NewSpawner(entropy.NewStreams(3, 100)).Spawn(baseConfig(100))
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if pop.Size() != 100 {
		t.Fatalf("Size = %d", pop.Size())
	}
	for i := range pop.Initial {
		if pop.Initial[i] != 10 || pop.Capital[i] != 10 {
			t.Fatalf("individual %d: initial %v capital %v", i, pop.Initial[i], pop.Capital[i])
		}
		if pop.Luck[i] != 0.5 {
			t.Fatalf("individual %d: luck %v", i, pop.Luck[i])
		}
	}
}

func TestSpawnNormalCapital(t *testing.T) {
	cfg := baseConfig(1000)
	cfg.CapitalEven = false
	pop, err := NewSpawner(entropy.NewStreams(4, cfg.Size)).Spawn(cfg)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	var sum float64
	distinct := make(map[float64]bool)
	for _, c := range pop.Initial {
		sum += c
		distinct[c] = true
	}
	if mean := sum / 1000; mean < 9.5 || mean > 10.5 {
		t.Errorf("mean initial capital %v, want about 10", mean)
	}
	if len(distinct) < 900 {
		t.Errorf("only %d distinct starting capitals", len(distinct))
	}
}

func TestSpawnCapitalIsCopied(t *testing.T) {
	pop, err := NewSpawner(entropy.NewStreams(5, 3)).Spawn(baseConfig(3))
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	pop.Capital[0] = -1
	if pop.Initial[0] != 10 {
		t.Error("mutating Capital changed Initial")
	}
}

func TestSpawnReproducible(t *testing.T) {
	cfg := baseConfig(50)
	a, _ := NewSpawner(entropy.NewStreams(6, 50)).Spawn(cfg)
	b, _ := NewSpawner(entropy.NewStreams(6, 50)).Spawn(cfg)
	for i := range a.Talent {
		if a.Talent[i] != b.Talent[i] {
			t.Fatalf("talent[%d] differs: %v vs %v", i, a.Talent[i], b.Talent[i])
		}
	}
}

func TestSpawnErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SpawnConfig)
		streams int
		wantErr string
	}{
		{"zero size", func(c *SpawnConfig) { c.Size = 0 }, 1, "population size"},
		{"unknown talent dist", func(c *SpawnConfig) { c.TalentDist = "pareto" }, 10, "pareto"},
		{"too few streams", func(c *SpawnConfig) {}, 5, "random streams"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig(10)
			tt.mutate(&cfg)
			_, err := NewSpawner(entropy.NewStreams(1, tt.streams)).Spawn(cfg)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestTalentDistValid(t *testing.T) {
	if !TalentNormal.Valid() || !TalentUniform.Valid() || TalentDist("").Valid() {
		t.Error("unexpected Valid results")
	}
}
