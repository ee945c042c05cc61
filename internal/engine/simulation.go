// Simulation holds the population and advances it one step at a time.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/talgya/fortune/internal/agents"
	"github.com/talgya/fortune/internal/economy"
	"github.com/talgya/fortune/internal/entropy"
)

// Simulation holds the complete population state and its recorded history.
type Simulation struct {
	Params Params
	Seed   int64 // Resolved seed; never zero
	Pop    *agents.Population
	Step   int // Steps completed so far, 0..Params.NTimestamps

	// Capital[t][i] is individual i's capital after t steps; row 0 is the starting capital.
	Capital [][]float64
	// Events[t][i] is the outcome drawn during step t+1.
	Events [][]economy.Outcome

	streams *entropy.Streams
	rates   economy.Rates
	z       []float64 // Per-step z-score scratch, reused across steps
}

// Result is everything a run produces.
type Result struct {
	Params Params    `json:"params"`
	Seed   int64     `json:"seed"`
	Final  []float64 `json:"final_capital"`
	Talent []float64 `json:"talent"`

	// Capital and Events both have NTimestamps+1 rows of N entries.
	// The last Events row is all OutcomeNone.
	Capital [][]float64         `json:"capital"`
	Events  [][]economy.Outcome `json:"events"`
}

// NewSimulation validates p, draws the population, and records step 0.
// Nothing is drawn if p is invalid.
func NewSimulation(p Params) (*Simulation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	seed := entropy.ResolveSeed(p.Seed)
	streams := entropy.NewStreams(seed, p.N)

	pop, err := agents.NewSpawner(streams).Spawn(p.spawnConfig())
	if err != nil {
		return nil, fmt.Errorf("spawn population: %w", err)
	}

	s := &Simulation{
		Params:  p,
		Seed:    seed,
		Pop:     pop,
		Capital: make([][]float64, 1, p.NTimestamps+1),
		Events:  make([][]economy.Outcome, 0, p.NTimestamps+1),
		streams: streams,
		rates:   p.rates(),
		z:       make([]float64, p.N),
	}
	s.Capital[0] = slices.Clone(pop.Capital)
	return s, nil
}

// Done reports whether all NTimestamps steps have run.
func (s *Simulation) Done() bool {
	return s.Step >= s.Params.NTimestamps
}

// Advance runs one step: draw events, apply update rules, apply the enabled
// policies, and record history. It is a no-op once Done.
func (s *Simulation) Advance() {
	if s.Done() {
		return
	}

	n := s.Pop.Size()
	outcomes := make([]economy.Outcome, n)
	s.generateEvents(outcomes)

	next := make([]float64, n)
	s.rates.ApplyAll(next, outcomes, s.Pop.Talent, s.Pop.Capital)

	// Both policies read the same pre-tax snapshot. Rich-get-luckier only
	// touches luck probabilities, so running it first leaves the tax base intact.
	if s.Params.TurnOnRich || s.Params.TurnOnTax {
		takeSnapshot(next).zscores(s.z, next)
	}
	if s.Params.TurnOnRich {
		s.recalibrateLuck(s.z)
	}
	if s.Params.TurnOnTax {
		s.applyTax(next, s.z)
	}
	if s.Params.TurnOnSafenet {
		s.applySafetyNet(next)
	}

	s.Pop.Capital = next
	s.Capital = append(s.Capital, next)
	s.Events = append(s.Events, outcomes)
	s.Step++

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		snap := takeSnapshot(next)
		slog.Debug("step", "step", s.Step, "mean", snap.mean, "std", snap.std)
	}
}

// Result returns the run's outputs. The trailing all-OutcomeNone row is added to
// the returned event history only, so Result may be called at any step.
func (s *Simulation) Result() *Result {
	events := make([][]economy.Outcome, len(s.Events), len(s.Events)+1)
	copy(events, s.Events)
	events = append(events, make([]economy.Outcome, s.Pop.Size()))

	capital := make([][]float64, len(s.Capital))
	for t, row := range s.Capital {
		capital[t] = slices.Clone(row)
	}

	return &Result{
		Params:  s.Params,
		Seed:    s.Seed,
		Final:   slices.Clone(s.Pop.Capital),
		Talent:  slices.Clone(s.Pop.Talent),
		Capital: capital,
		Events:  events,
	}
}

// Trajectory returns individual i's capital and outcome series, each of
// length NTimestamps+1.
func (r *Result) Trajectory(i int) ([]float64, []economy.Outcome) {
	capital := make([]float64, len(r.Capital))
	events := make([]economy.Outcome, len(r.Events))
	for t := range r.Capital {
		capital[t] = r.Capital[t][i]
	}
	for t := range r.Events {
		events[t] = r.Events[t][i]
	}
	return capital, events
}

// Summary returns distribution statistics for the final capital vector.
func (r *Result) Summary() economy.Summary {
	return economy.Summarize(r.Final, r.Talent)
}

// Run validates p and runs a full simulation.
func Run(p Params) (*Result, error) {
	sim, err := NewSimulation(p)
	if err != nil {
		return nil, err
	}
	return NewEngine().Run(sim), nil
}
