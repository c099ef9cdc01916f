// SPDX-License-Identifier: MIT

// Package epimob estimates how the spatial structure of human mobility
// shapes the epidemic potential of airborne (ABD) and vector-borne (VBD)
// diseases, and how synthetic interventions on that mobility change it.
//
// The library is organized as subpackages:
//
//	matrix/        dense row-major matrices, validators, algebra, eigenvalues
//	segment/       density segmenter: hotspots vs suburbs by spline tangent
//	vulnerability/ spectral-radius vulnerability metrics for ABD and VBD
//	intervention/  deterministic and randomized mobility rewrites
//	montecarlo/    parallel Monte Carlo driver and ratio summaries
//	scenario/      study-area input bundle with YAML/JSON loading
//
// A typical study:
//
//	sc, _ := scenario.Load("city.yaml")
//	res, _ := montecarlo.Simulate(ctx, sc,
//		montecarlo.WithVariant(intervention.RandomizedB),
//		montecarlo.WithTrials(5000),
//		montecarlo.WithWorkers(4),
//	)
//	fmt.Println(res.Summary(vulnerability.VBD).Mean)
//
// The epimob command (cmd/epimob) wraps the same pipeline and can record
// runs in a SQLite database.
package epimob
