package main

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/fortune/internal/engine"
	"github.com/talgya/fortune/internal/visualization"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run one simulation per event probability and compare outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			pEvents, _ := cmd.Flags().GetFloat64Slice("p-events")
			plotPath, _ := cmd.Flags().GetString("plot")
			compare, _ := cmd.Flags().GetBool("compare-safenet")

			if !compare {
				points, err := engine.Sweep(cfg.Simulation, pEvents)
				if err != nil {
					return err
				}
				if plotPath != "" {
					style := plotStyle(cfg)
					p, err := visualization.SweepScatter(points, "Final capital vs talent", style)
					if err != nil {
						return fmt.Errorf("plot sweep: %w", err)
					}
					if err := visualization.Save(p, plotPath, style); err != nil {
						return fmt.Errorf("save plot: %w", err)
					}
					slog.Info("figure written", "path", plotPath)
				}
				if jsonOut {
					return writeJSON(cmd.OutOrStdout(), summaries(points))
				}
				printSweep(cmd, "", points)
				return nil
			}

			without, with := cfg.Simulation, cfg.Simulation
			without.TurnOnSafenet = false
			with.TurnOnSafenet = true
			a, b, err := engine.CompareGroups("no safety net", without, "safety net", with, pEvents)
			if err != nil {
				return err
			}
			if plotPath != "" {
				style := plotStyle(cfg)
				p, err := visualization.GroupScatter(a, b, "Safety net comparison", style)
				if err != nil {
					return fmt.Errorf("plot comparison: %w", err)
				}
				if err := visualization.Save(p, plotPath, style); err != nil {
					return fmt.Errorf("save plot: %w", err)
				}
				slog.Info("figure written", "path", plotPath)
			}
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					a.Label: summaries(a.Points),
					b.Label: summaries(b.Points),
				})
			}
			printSweep(cmd, a.Label, a.Points)
			printSweep(cmd, b.Label, b.Points)
			return nil
		},
	}

	addSimFlags(cmd)
	cmd.Flags().Float64Slice("p-events", []float64{0.01, 0.05, 0.1, 0.2}, "Event probabilities to sweep")
	cmd.Flags().String("plot", "", "Write a talent/capital scatter to this file")
	cmd.Flags().Bool("compare-safenet", false, "Run the sweep with and without the safety net")
	return cmd
}

func summaries(points []engine.SweepPoint) []map[string]any {
	out := make([]map[string]any, len(points))
	for i, sp := range points {
		out[i] = map[string]any{"p_event": sp.PEvent, "summary": sp.Summary}
	}
	return out
}

func printSweep(cmd *cobra.Command, label string, points []engine.SweepPoint) {
	w := cmd.OutOrStdout()
	if label != "" {
		fmt.Fprintf(w, "== %s\n", label)
	}
	fmt.Fprintf(w, "%-8s %14s %14s %8s %10s\n", "p_event", "median", "max", "gini", "talent r")
	for _, sp := range points {
		s := sp.Summary
		fmt.Fprintf(w, "%-8g %14s %14s %8.3f %10.3f\n",
			sp.PEvent,
			humanize.FormatFloat("#,###.##", s.Median),
			humanize.FormatFloat("#,###.##", s.Max),
			s.Gini, s.TalentCorr)
	}
}
