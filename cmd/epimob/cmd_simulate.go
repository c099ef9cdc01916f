// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epimob/internal/config"
	"github.com/katalvlaran/epimob/internal/store"
	"github.com/katalvlaran/epimob/intervention"
	"github.com/katalvlaran/epimob/montecarlo"
	"github.com/katalvlaran/epimob/scenario"
	"github.com/katalvlaran/epimob/vulnerability"
)

type diseaseReport struct {
	Baseline jsonFloat     `json:"baseline"`
	Excluded int           `json:"excluded"`
	Ratio    summaryReport `json:"ratio"`
}

type simulateReport struct {
	RunID     int64                                   `json:"run_id,omitempty"`
	Scenario  string                                  `json:"scenario"`
	Variant   intervention.Variant                    `json:"variant"`
	Trials    int                                     `json:"trials"`
	Seed      int64                                   `json:"seed"`
	Workers   int                                     `json:"workers"`
	Hotspots  []int                                   `json:"hotspots"`
	Suburbs   []int                                   `json:"suburbs"`
	Diseases  map[vulnerability.Disease]diseaseReport `json:"diseases"`
	ElapsedMS int64                                   `json:"elapsed_ms"`
}

func newSimulateReport(name string, res *montecarlo.Result) simulateReport {
	r := simulateReport{
		Scenario:  name,
		Variant:   res.Variant,
		Trials:    res.Trials,
		Seed:      res.Seed,
		Workers:   res.Workers,
		Hotspots:  orEmpty(res.Partition.Hotspots),
		Suburbs:   orEmpty(res.Partition.Suburbs),
		Diseases:  make(map[vulnerability.Disease]diseaseReport, 2),
		ElapsedMS: res.Elapsed.Milliseconds(),
	}
	for _, d := range vulnerability.Diseases() {
		r.Diseases[d] = diseaseReport{
			Baseline: jsonFloat(res.Baseline[d]),
			Excluded: res.Excluded[d],
			Ratio:    newSummaryReport(res.Summary(d)),
		}
	}
	return r
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate FILE",
		Short: "Run a Monte Carlo mobility intervention study",
		Long: `Simulate segments the scenario, scores its baseline vulnerability and then
applies the chosen intervention repeatedly, reporting the distribution of
modified/baseline vulnerability ratios for ABD and VBD.

Variants:
  direct        move hotspot-to-hotspot flow onto suburbs (deterministic)
  randomized-a  hotspot/suburb block mixing with a uniform random share
  randomized-b  block mixing with area-derived targets plus Gaussian noise

Example:
  epimob simulate city.yaml --variant randomized-b --trials 5000 --workers 4 --db runs.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if err := applySimulateFlags(cmd, cfg); err != nil {
				return err
			}

			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			res, err := montecarlo.Simulate(cmd.Context(), sc,
				montecarlo.WithVariant(cfg.Simulation.Variant),
				montecarlo.WithTrials(cfg.Simulation.Trials),
				montecarlo.WithSeed(cfg.Simulation.Seed),
				montecarlo.WithWorkers(cfg.Simulation.Workers),
				montecarlo.WithSigma(cfg.Simulation.Sigma),
				montecarlo.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			report := newSimulateReport(sc.Name, res)
			if cfg.Store.Path != "" {
				s, err := store.Open(cfg.Store.Path)
				if err != nil {
					return err
				}
				defer func() { _ = s.Close() }()
				if report.RunID, err = s.SaveRun(cmd.Context(), sc.Name, res); err != nil {
					return fmt.Errorf("saving run: %w", err)
				}
				logger.Info("run saved", "id", report.RunID, "db", s.Path())
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			printSimulateReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().String("variant", "", "Intervention: direct, randomized-a, randomized-b")
	cmd.Flags().Int("trials", 0, "Number of Monte Carlo trials")
	cmd.Flags().Int64("seed", 0, "Random seed")
	cmd.Flags().Int("workers", 0, "Parallel workers")
	cmd.Flags().Float64("sigma", 0, "Noise standard deviation for randomized-b")
	cmd.Flags().String("db", "", "SQLite file to record the run in")

	return cmd
}

// applySimulateFlags overlays explicitly set flags on cfg and revalidates.
func applySimulateFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("variant") {
		s, _ := flags.GetString("variant")
		v, err := intervention.ParseVariant(s)
		if err != nil {
			return err
		}
		cfg.Simulation.Variant = v
	}
	if flags.Changed("trials") {
		cfg.Simulation.Trials, _ = flags.GetInt("trials")
	}
	if flags.Changed("seed") {
		cfg.Simulation.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("workers") {
		cfg.Simulation.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("sigma") {
		cfg.Simulation.Sigma, _ = flags.GetFloat64("sigma")
	}
	if flags.Changed("db") {
		cfg.Store.Path, _ = flags.GetString("db")
	}
	return cfg.Validate()
}

func printSimulateReport(w io.Writer, r simulateReport) {
	fmt.Fprintf(w, "scenario: %s\n", r.Scenario)
	fmt.Fprintf(w, "variant: %s  trials: %d  seed: %d  workers: %d  elapsed: %s\n",
		r.Variant, r.Trials, r.Seed, r.Workers, time.Duration(r.ElapsedMS)*time.Millisecond)
	fmt.Fprintf(w, "hotspots: %v\n", r.Hotspots)
	fmt.Fprintf(w, "suburbs: %v\n", r.Suburbs)
	for _, d := range vulnerability.Diseases() {
		dr := r.Diseases[d]
		s := dr.Ratio
		fmt.Fprintf(w, "%s baseline=%.6g samples=%d excluded=%d mean=%.4f sd=%.4f p05=%.4f p50=%.4f p95=%.4f\n",
			d, float64(dr.Baseline), s.Count, dr.Excluded,
			float64(s.Mean), float64(s.StdDev), float64(s.P05), float64(s.P50), float64(s.P95))
	}
	if r.RunID != 0 {
		fmt.Fprintf(w, "run id: %d\n", r.RunID)
	}
}
