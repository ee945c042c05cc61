package main

import (
	"github.com/spf13/cobra"

	"github.com/talgya/fortune/internal/agents"
	"github.com/talgya/fortune/internal/config"
)

// addSimFlags registers the simulation overrides shared by run and sweep.
func addSimFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int64("seed", 0, "Random seed (0 picks one)")
	f.Int("n", 0, "Population size")
	f.Int("steps", 0, "Number of time steps")
	f.Float64("p-lucky", 0, "Initial probability an event is lucky")
	f.Float64("w-talent", 0, "Salary coefficient")
	f.Float64("interest", 0, "Interest rate")
	f.String("t-dist", "", "Talent distribution: normal or uniform")
	f.Bool("fixed", false, "Use fixed 2x / 0.5x luck multipliers")
	f.Bool("uneven", false, "Draw starting capital from N(mu_c, std_c)")
	f.Bool("rich", false, "Enable rich-get-luckier")
	f.Bool("tax", false, "Enable progressive taxation")
	f.Bool("safenet", false, "Enable the safety net")
	f.Bool("linear", false, "Plot capital on a linear axis")
}

// applySimFlags copies every flag the user set onto cfg.
func applySimFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	p := &cfg.Simulation

	var err error
	set := func(name string, apply func() error) {
		if err == nil && f.Lookup(name) != nil && f.Changed(name) {
			err = apply()
		}
	}

	set("seed", func() (e error) { p.Seed, e = f.GetInt64("seed"); return })
	set("n", func() (e error) { p.N, e = f.GetInt("n"); return })
	set("steps", func() (e error) { p.NTimestamps, e = f.GetInt("steps"); return })
	set("p-event", func() (e error) { p.PEvent, e = f.GetFloat64("p-event"); return })
	set("p-lucky", func() (e error) { p.PLucky0, e = f.GetFloat64("p-lucky"); return })
	set("w-talent", func() (e error) { p.WTalent, e = f.GetFloat64("w-talent"); return })
	set("interest", func() (e error) { p.InterestRate, e = f.GetFloat64("interest"); return })
	set("t-dist", func() error {
		v, e := f.GetString("t-dist")
		p.TDist = agents.TalentDist(v)
		return e
	})
	set("fixed", func() (e error) { p.UseDefault, e = f.GetBool("fixed"); return })
	set("uneven", func() error {
		v, e := f.GetBool("uneven")
		p.CEven = !v
		return e
	})
	set("rich", func() (e error) { p.TurnOnRich, e = f.GetBool("rich"); return })
	set("tax", func() (e error) { p.TurnOnTax, e = f.GetBool("tax"); return })
	set("safenet", func() (e error) { p.TurnOnSafenet, e = f.GetBool("safenet"); return })
	set("linear", func() error {
		v, e := f.GetBool("linear")
		cfg.Plot.LogScale = !v
		return e
	})
	return err
}
