// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epimob/internal/store"
	"github.com/katalvlaran/epimob/montecarlo"
	"github.com/katalvlaran/epimob/vulnerability"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs [ID]",
		Short: "List recorded simulation runs, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("db") {
				cfg.Store.Path, _ = cmd.Flags().GetString("db")
			}
			if cfg.Store.Path == "" {
				return fmt.Errorf("no run database: pass --db or set store.path")
			}
			s, err := store.Open(cfg.Store.Path)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			jsonOut, _ := cmd.Flags().GetBool("json")
			if len(args) == 1 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid run id %q: %w", args[0], err)
				}
				r, err := s.GetRun(cmd.Context(), id)
				if err != nil {
					return err
				}
				report := runReport(r)
				if jsonOut {
					return writeJSON(cmd.OutOrStdout(), report)
				}
				printSimulateReport(cmd.OutOrStdout(), report)
				return nil
			}

			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := s.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOut {
				reports := make([]simulateReport, 0, len(runs))
				for _, r := range runs {
					reports = append(reports, runReport(r))
				}
				return writeJSON(cmd.OutOrStdout(), reports)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSCENARIO\tVARIANT\tTRIALS\tABD MEAN\tVBD MEAN\tCREATED")
			for _, r := range runs {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.4f\t%.4f\t%s\n",
					r.ID, r.Scenario, r.Variant, r.Trials,
					r.Summary(vulnerability.ABD).Mean, r.Summary(vulnerability.VBD).Mean,
					r.CreatedAt.Local().Format(time.DateTime))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().String("db", "", "SQLite run database")
	cmd.Flags().Int("limit", 20, "Maximum runs to list (0 for all)")

	return cmd
}

func runReport(r store.Run) simulateReport {
	report := newSimulateReport(r.Scenario, &montecarlo.Result{
		Variant:   r.Variant,
		Partition: r.Partition,
		Baseline:  r.Baseline,
		Series:    r.Series,
		Excluded:  r.Excluded,
		Trials:    r.Trials,
		Seed:      r.Seed,
		Workers:   r.Workers,
	})
	report.RunID = r.ID
	return report
}
