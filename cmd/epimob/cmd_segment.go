// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epimob/scenario"
	"github.com/katalvlaran/epimob/segment"
)

func newSegmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segment FILE",
		Short: "Split a scenario's units into hotspots and suburbs",
		Long: `Segment sorts the scenario's population density, fits a cubic spline to
its cumulative sum and cuts where the end tangent crosses zero. Units at or
above the cut are hotspots; the rest are suburbs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			density := sc.DensityOrDerived()
			x1, _, err := segment.Threshold(density)
			if err != nil {
				return err
			}
			p, err := segment.Segment(density)
			if err != nil {
				return err
			}
			logger.Debug("segmented", "scenario", sc.Name, "units", sc.N(), "threshold", x1)

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"scenario":  sc.Name,
					"units":     sc.N(),
					"threshold": x1,
					"hotspots":  orEmpty(p.Hotspots),
					"suburbs":   orEmpty(p.Suburbs),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scenario: %s (%d units)\n", sc.Name, sc.N())
			fmt.Fprintf(out, "threshold: %d\n", x1)
			fmt.Fprintf(out, "hotspots: %v\n", orEmpty(p.Hotspots))
			fmt.Fprintf(out, "suburbs: %v\n", orEmpty(p.Suburbs))
			return nil
		},
	}
}
