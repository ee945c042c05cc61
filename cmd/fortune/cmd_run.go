package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/talgya/fortune/internal/config"
	"github.com/talgya/fortune/internal/economy"
	"github.com/talgya/fortune/internal/engine"
	"github.com/talgya/fortune/internal/visualization"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation and summarize the final capital distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			plotPath, _ := cmd.Flags().GetString("plot")
			individual, _ := cmd.Flags().GetInt("individual")
			save, _ := cmd.Flags().GetBool("save")
			label, _ := cmd.Flags().GetString("label")

			if individual >= cfg.Simulation.N {
				return fmt.Errorf("--individual %d out of range for n=%d", individual, cfg.Simulation.N)
			}

			res, err := engine.Run(cfg.Simulation)
			if err != nil {
				return err
			}
			sum := res.Summary()

			if plotPath != "" {
				who := individual
				if who < 0 {
					who = sum.Richest
				}
				if err := plotTrajectory(res, who, plotPath, cfg); err != nil {
					return err
				}
			}

			var runID string
			if save {
				db, err := openArchive(cfg)
				if err != nil {
					return err
				}
				if db == nil {
					return fmt.Errorf("--save needs a database path (--db, FORTUNE_DB or database.path)")
				}
				defer db.Close()
				if runID, err = db.SaveRun(label, res); err != nil {
					return fmt.Errorf("archive run: %w", err)
				}
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"run_id":  runID,
					"seed":    res.Seed,
					"params":  res.Params,
					"summary": sum,
				})
			}
			printSummary(cmd.OutOrStdout(), res.Seed, sum)
			if runID != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "archived as %s\n", runID)
			}
			return nil
		},
	}

	addSimFlags(cmd)
	cmd.Flags().Float64("p-event", 0, "Per-step probability an event occurs")
	cmd.Flags().String("plot", "", "Write a capital-over-time figure to this file (.png, .svg, .pdf)")
	cmd.Flags().Int("individual", -1, "Individual to plot (-1 plots the richest)")
	cmd.Flags().Bool("save", false, "Archive the run in the SQLite database")
	cmd.Flags().String("label", "", "Label stored with an archived run")
	return cmd
}

func plotTrajectory(res *engine.Result, who int, path string, cfg *config.Config) error {
	capital, events := res.Trajectory(who)
	title := fmt.Sprintf("Individual %d (talent %.3f)", who, res.Talent[who])
	style := plotStyle(cfg)

	p, err := visualization.Trajectory(capital, events, title, style)
	if err != nil {
		return fmt.Errorf("plot trajectory: %w", err)
	}
	if err := visualization.Save(p, path, style); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	slog.Info("figure written", "path", path, "individual", who)
	return nil
}

func plotStyle(cfg *config.Config) visualization.Style {
	style := visualization.DefaultStyle()
	style.LogScale = cfg.Plot.LogScale
	style.Width = vg.Length(cfg.Plot.Width) * vg.Inch
	style.Height = vg.Length(cfg.Plot.Height) * vg.Inch
	return style
}

func printSummary(w io.Writer, seed int64, s economy.Summary) {
	fmt.Fprintf(w, "seed:              %d\n", seed)
	fmt.Fprintf(w, "population:        %s\n", humanize.Comma(int64(s.Population)))
	fmt.Fprintf(w, "total capital:     %s\n", humanize.FormatFloat("#,###.##", s.Total))
	fmt.Fprintf(w, "mean / median:     %s / %s\n",
		humanize.FormatFloat("#,###.##", s.Mean), humanize.FormatFloat("#,###.##", s.Median))
	fmt.Fprintf(w, "min / max:         %s / %s\n",
		humanize.FormatFloat("#,###.##", s.Min), humanize.FormatFloat("#,###.##", s.Max))
	fmt.Fprintf(w, "gini:              %.3f\n", s.Gini)
	fmt.Fprintf(w, "top 10%% share:     %.1f%%\n", s.TopDecile*100)
	fmt.Fprintf(w, "richest:           #%d (talent %.3f, max talent %.3f)\n", s.Richest, s.RichestTalent, s.MaxTalent)
	fmt.Fprintf(w, "talent/capital r:  %.3f\n", s.TalentCorr)
}
