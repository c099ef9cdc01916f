// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epimob/scenario"
	"github.com/katalvlaran/epimob/vulnerability"
)

func newVulnerabilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "vulnerability FILE",
		Aliases: []string{"vuln"},
		Short:   "Score a scenario's ABD and VBD vulnerability",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			m, err := sc.MobilityMatrix()
			if err != nil {
				return err
			}
			ev := vulnerability.New(vulnerability.WithLogger(logger))

			scores := make(map[vulnerability.Disease]jsonFloat, 2)
			for _, d := range vulnerability.Diseases() {
				v, err := ev.Evaluate(d, m, sc.Inputs())
				if errors.Is(err, vulnerability.ErrZeroDenominator) {
					logger.Warn("score undefined", "disease", d.String(), "err", err)
					v, err = math.NaN(), nil
				}
				if err != nil {
					return fmt.Errorf("%s: %w", d, err)
				}
				scores[d] = jsonFloat(v)
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"scenario":      sc.Name,
					"units":         sc.N(),
					"vulnerability": scores,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scenario: %s (%d units)\n", sc.Name, sc.N())
			for _, d := range vulnerability.Diseases() {
				fmt.Fprintf(out, "%s: %.6g\n", d, float64(scores[d]))
			}
			return nil
		},
	}
}
