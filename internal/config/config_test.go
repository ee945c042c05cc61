package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/talgya/fortune/internal/agents"
	"github.com/talgya/fortune/internal/engine"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Simulation.N != 1000 || cfg.Simulation.NTimestamps != 80 {
		t.Errorf("expected n=1000 steps=80, got n=%d steps=%d", cfg.Simulation.N, cfg.Simulation.NTimestamps)
	}
	if cfg.Simulation.PEvent != 0.05 {
		t.Errorf("expected p_event 0.05, got %v", cfg.Simulation.PEvent)
	}
	if cfg.Simulation.TDist != agents.TalentNormal {
		t.Errorf("expected normal talent, got %q", cfg.Simulation.TDist)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %q", cfg.Logging.Level)
	}
	if cfg.Database.Path != "" {
		t.Errorf("expected archiving disabled, got %q", cfg.Database.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fortune.yaml")

	content := `
simulation:
  p_event: 0.1
  use_default: true
  n: 250
  t_dist: uniform
  turn_on_tax: true
  seed: 99

logging:
  level: debug

database:
  path: /tmp/runs.db

plot:
  log_scale: false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	sim := cfg.Simulation
	if sim.PEvent != 0.1 || !sim.UseDefault || sim.N != 250 || sim.TDist != agents.TalentUniform || !sim.TurnOnTax || sim.Seed != 99 {
		t.Errorf("unexpected simulation config %+v", sim)
	}
	// Keys not in the file keep their defaults.
	if sim.NTimestamps != 80 || sim.MuC != 10 || sim.MaxTaxRate != 0.4 {
		t.Errorf("defaults lost: steps=%d mu_c=%v max_tax=%v", sim.NTimestamps, sim.MuC, sim.MaxTaxRate)
	}
	if cfg.Logging.Level != "debug" || cfg.Database.Path != "/tmp/runs.db" || cfg.Plot.LogScale {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Plot.Width != 10 {
		t.Errorf("plot width default lost: %v", cfg.Plot.Width)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("simulation: [unclosed"), 0644)
	if _, err := LoadFromFile(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FORTUNE_SEED", "1234")
	t.Setenv("FORTUNE_N", "64")
	t.Setenv("FORTUNE_STEPS", "12")
	t.Setenv("FORTUNE_DB", "runs.db")
	t.Setenv("FORTUNE_LOG_LEVEL", "trace")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.Seed != 1234 || cfg.Simulation.N != 64 || cfg.Simulation.NTimestamps != 12 {
		t.Errorf("env overrides not applied: %+v", cfg.Simulation)
	}
	if cfg.Database.Path != "runs.db" || cfg.Logging.Level != "trace" {
		t.Errorf("env overrides not applied: db=%q level=%q", cfg.Database.Path, cfg.Logging.Level)
	}
}

func TestLoadEnvOverridesBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fortune.yaml")
	os.WriteFile(path, []byte("simulation:\n  n: 10\n"), 0644)
	t.Setenv("FORTUNE_N", "20")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.N != 20 {
		t.Errorf("expected env n=20 to win, got %d", cfg.Simulation.N)
	}
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("FORTUNE_N", "lots")
	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), "FORTUNE_N") {
		t.Errorf("expected FORTUNE_N error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Simulation.MinTaxRate = 0.9
	if err := cfg.Validate(); !errors.Is(err, engine.ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}

	cfg = Default()
	cfg.Plot.Height = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero plot height")
	}
}
