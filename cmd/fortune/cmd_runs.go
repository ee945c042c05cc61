package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List archived runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}
			db, err := openArchive(cfg)
			if err != nil {
				return err
			}
			if db == nil {
				return fmt.Errorf("no run archive configured (--db, FORTUNE_DB or database.path)")
			}
			defer db.Close()

			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := db.ListRuns(limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), runs)
			}

			w := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(w, "no archived runs")
				return nil
			}
			for _, r := range runs {
				fmt.Fprintf(w, "%s  %-16s n=%-6d steps=%-4d median=%s gini=%.3f  %s\n",
					r.ID, r.Label, r.N, r.Steps,
					humanize.FormatFloat("#,###.##", r.Median), r.Gini,
					humanize.Time(time.Unix(r.CreatedAt, 0)))
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum number of runs to list")
	return cmd
}
