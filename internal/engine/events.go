// Event generation: who has an event this step, and whether it is lucky.
package engine

import (
	"github.com/talgya/fortune/internal/economy"
)

// generateEvents fills out with this step's outcomes. Each individual draws
// twice from its own stream: one Bernoulli(p_event) trial and one uniform
// compared against its luck probability. Both draws happen whether or not an
// event occurs so stream consumption is the same every step.
func (s *Simulation) generateEvents(out []economy.Outcome) {
	for i := range out {
		rng := s.streams.At(i)
		occurs := rng.Float64() < s.Params.PEvent
		u := rng.Float64()

		switch {
		case !occurs:
			out[i] = economy.OutcomeNone
		case u < s.Pop.Luck[i]:
			out[i] = economy.OutcomeLucky
		default:
			out[i] = economy.OutcomeUnlucky
		}
	}
}
