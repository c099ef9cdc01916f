// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/epimob/montecarlo"
)

// jsonFloat encodes NaN and ±Inf as null; encoding/json rejects them.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

type summaryReport struct {
	Count  int       `json:"count"`
	Mean   jsonFloat `json:"mean"`
	StdDev jsonFloat `json:"std_dev"`
	Min    jsonFloat `json:"min"`
	Max    jsonFloat `json:"max"`
	P05    jsonFloat `json:"p05"`
	P50    jsonFloat `json:"p50"`
	P95    jsonFloat `json:"p95"`
}

func newSummaryReport(s montecarlo.Summary) summaryReport {
	return summaryReport{
		Count:  s.Count,
		Mean:   jsonFloat(s.Mean),
		StdDev: jsonFloat(s.StdDev),
		Min:    jsonFloat(s.Min),
		Max:    jsonFloat(s.Max),
		P05:    jsonFloat(s.P05),
		P50:    jsonFloat(s.P50),
		P95:    jsonFloat(s.P95),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// orEmpty keeps empty index lists as [] rather than null in JSON output.
func orEmpty(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}
