// Package engine provides the population time-stepping simulator.
package engine

import (
	"fmt"
	"log/slog"
	"time"
)

// DefaultReportEvery is how many steps pass between progress reports.
const DefaultReportEvery = 10

// Engine drives a Simulation forward until it has run every step.
type Engine struct {
	Step        int // Steps completed by the current run
	ReportEvery int // Steps between OnReport calls; <= 0 disables reports

	// Callbacks, populated during setup.
	OnStep   func(step int, sim *Simulation) // Every step
	OnReport func(step int, sim *Simulation) // Every ReportEvery steps
}

// NewEngine creates an engine that logs a population summary every
// DefaultReportEvery steps.
func NewEngine() *Engine {
	return &Engine{
		ReportEvery: DefaultReportEvery,
		OnReport:    logReport,
	}
}

// Run advances sim through all remaining steps and returns its result.
func (e *Engine) Run(sim *Simulation) *Result {
	start := time.Now()
	slog.Info("simulation started",
		"population", sim.Pop.Size(),
		"steps", sim.Params.NTimestamps,
		"seed", sim.Seed,
		"rich", sim.Params.TurnOnRich,
		"tax", sim.Params.TurnOnTax,
		"safenet", sim.Params.TurnOnSafenet,
	)

	e.Step = sim.Step
	for !sim.Done() {
		e.step(sim)
	}

	res := sim.Result()
	sum := res.Summary()
	slog.Info("simulation finished",
		"steps", e.Step,
		"elapsed", time.Since(start),
		"median", fmt.Sprintf("%.3f", sum.Median),
		"max", fmt.Sprintf("%.3f", sum.Max),
		"gini", fmt.Sprintf("%.3f", sum.Gini),
	)
	return res
}

// step advances the simulation by one step and fires callbacks.
func (e *Engine) step(sim *Simulation) {
	sim.Advance()
	e.Step = sim.Step

	if e.OnStep != nil {
		e.OnStep(e.Step, sim)
	}

	if e.ReportEvery > 0 && e.Step%e.ReportEvery == 0 && e.OnReport != nil {
		e.OnReport(e.Step, sim)
	}
}

func logReport(step int, sim *Simulation) {
	snap := takeSnapshot(sim.Pop.Capital)
	slog.Info("progress",
		"step", step,
		"of", sim.Params.NTimestamps,
		"mean_capital", fmt.Sprintf("%.3f", snap.mean),
		"std_capital", fmt.Sprintf("%.3f", snap.std),
	)
}
